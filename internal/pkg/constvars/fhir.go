package constvars

const (
	ResourcePatient = "Patient"
)

const (
	FhirTelecomSystemEmail = "email"
	FhirTelecomSystemPhone = "phone"
	FhirTelecomUseMobile   = "mobile"
	FhirNameUseOfficial    = "official"
	FhirAddressUseHome     = "home"
	FhirBirthDateFormat    = "2006-01-02"
)

const (
	FhirContactRelationshipSystem    = "http://terminology.hl7.org/CodeSystem/v2-0131"
	FhirContactRelationshipEmergency = "C"
)

const (
	FhirExtensionBaseURL                = "https://intake.example.org/fhir/StructureDefinition/"
	FhirExtensionOccupation             = FhirExtensionBaseURL + "occupation"
	FhirExtensionInsuranceProvider      = FhirExtensionBaseURL + "insurance-provider"
	FhirExtensionInsurancePolicyNumber  = FhirExtensionBaseURL + "insurance-policy-number"
	FhirExtensionAllergies              = FhirExtensionBaseURL + "allergies"
	FhirExtensionCurrentMedication      = FhirExtensionBaseURL + "current-medication"
	FhirExtensionFamilyMedicalHistory   = FhirExtensionBaseURL + "family-medical-history"
	FhirExtensionPastMedicalHistory     = FhirExtensionBaseURL + "past-medical-history"
	FhirExtensionTreatmentConsent       = FhirExtensionBaseURL + "treatment-consent"
	FhirExtensionDisclosureConsent      = FhirExtensionBaseURL + "disclosure-consent"
	FhirExtensionPrivacyConsent         = FhirExtensionBaseURL + "privacy-consent"
	FhirExtensionIdentificationDocument = FhirExtensionBaseURL + "identification-document"
	FhirExtensionOwnerReference         = FhirExtensionBaseURL + "owner-user-id"
	FhirIdentifierSystemIdentification  = "https://intake.example.org/fhir/identification"
)
