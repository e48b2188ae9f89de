package utils

import (
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/fhir_dto"
)

// BuildFhirPatientRequest maps an intake record onto a FHIR Patient.
// documentURL is empty when no identification document was stored.
func BuildFhirPatientRequest(request *requests.PatientRecordRequest, documentURL string) *fhir_dto.Patient {
	patient := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Active:       true,
		Name: []fhir_dto.HumanName{
			{Use: constvars.FhirNameUseOfficial, Text: request.Name},
		},
		Telecom: []fhir_dto.ContactPoint{
			{System: constvars.FhirTelecomSystemEmail, Value: request.Email},
			{System: constvars.FhirTelecomSystemPhone, Value: request.Phone, Use: constvars.FhirTelecomUseMobile},
		},
		Gender:    request.Gender,
		BirthDate: request.BirthDate.Format(constvars.FhirBirthDateFormat),
		Address: []fhir_dto.Address{
			{Use: constvars.FhirAddressUseHome, Text: request.Address},
		},
		Contact: []fhir_dto.PatientContact{
			{
				Relationship: []fhir_dto.CodeableConcept{
					{
						Coding: []fhir_dto.Coding{
							{System: constvars.FhirContactRelationshipSystem, Code: constvars.FhirContactRelationshipEmergency},
						},
					},
				},
				Name: &fhir_dto.HumanName{Text: request.EmergencyContactName},
				Telecom: []fhir_dto.ContactPoint{
					{System: constvars.FhirTelecomSystemPhone, Value: request.EmergencyContactNumber},
				},
			},
		},
		GeneralPractitioner: []fhir_dto.Reference{
			{Display: request.PrimaryPhysician},
		},
	}

	if request.IdentificationNumber != "" {
		patient.Identifier = append(patient.Identifier, fhir_dto.Identifier{
			System: constvars.FhirIdentifierSystemIdentification,
			Value:  request.IdentificationNumber,
			Type:   &fhir_dto.CodeableConcept{Text: request.IdentificationType},
		})
	}

	patient.Extension = append(patient.Extension,
		stringExtension(constvars.FhirExtensionOwnerReference, request.UserID),
		stringExtension(constvars.FhirExtensionOccupation, request.Occupation),
		stringExtension(constvars.FhirExtensionInsuranceProvider, request.InsuranceProvider),
		stringExtension(constvars.FhirExtensionInsurancePolicyNumber, request.InsurancePolicyNumber),
	)
	for _, ext := range []fhir_dto.Extension{
		stringExtension(constvars.FhirExtensionAllergies, request.Allergies),
		stringExtension(constvars.FhirExtensionCurrentMedication, request.CurrentMedication),
		stringExtension(constvars.FhirExtensionFamilyMedicalHistory, request.FamilyMedicalHistory),
		stringExtension(constvars.FhirExtensionPastMedicalHistory, request.PastMedicalHistory),
	} {
		if ext.ValueString != "" {
			patient.Extension = append(patient.Extension, ext)
		}
	}
	patient.Extension = append(patient.Extension,
		booleanExtension(constvars.FhirExtensionTreatmentConsent, request.TreatmentConsent),
		booleanExtension(constvars.FhirExtensionDisclosureConsent, request.DisclosureConsent),
		booleanExtension(constvars.FhirExtensionPrivacyConsent, request.PrivacyConsent),
	)

	if documentURL != "" && request.IdentificationDocument != nil {
		patient.Extension = append(patient.Extension, fhir_dto.Extension{
			Url: constvars.FhirExtensionIdentificationDocument,
			ValueAttachment: &fhir_dto.Attachment{
				ContentType: request.IdentificationDocument.ContentType,
				Url:         documentURL,
				Size:        int64(len(request.IdentificationDocument.BlobFile)),
				Title:       request.IdentificationDocument.FileName,
			},
		})
	}

	return patient
}

func stringExtension(url, value string) fhir_dto.Extension {
	return fhir_dto.Extension{Url: url, ValueString: value}
}

func booleanExtension(url string, value bool) fhir_dto.Extension {
	return fhir_dto.Extension{Url: url, ValueBoolean: &value}
}
