package requests

import "time"

// IdentificationFilePayload is the transportable form of an attached
// identification document.
type IdentificationFilePayload struct {
	BlobFile    []byte `json:"blobFile"`
	ContentType string `json:"contentType"`
	FileName    string `json:"fileName"`
}

// PatientRecordRequest is what the remote patient service receives.
// IdentificationDocument stays nil, and absent on the wire, when no file
// was attached.
type PatientRecordRequest struct {
	UserID                 string                     `json:"userId"`
	Name                   string                     `json:"name"`
	Email                  string                     `json:"email"`
	Phone                  string                     `json:"phone"`
	BirthDate              time.Time                  `json:"birthDate"`
	Gender                 string                     `json:"gender"`
	Address                string                     `json:"address"`
	Occupation             string                     `json:"occupation"`
	EmergencyContactName   string                     `json:"emergencyContactName"`
	EmergencyContactNumber string                     `json:"emergencyContactNumber"`
	PrimaryPhysician       string                     `json:"primaryPhysician"`
	InsuranceProvider      string                     `json:"insuranceProvider"`
	InsurancePolicyNumber  string                     `json:"insurancePolicyNumber"`
	Allergies              string                     `json:"allergies"`
	CurrentMedication      string                     `json:"currentMedication"`
	FamilyMedicalHistory   string                     `json:"familyMedicalHistory"`
	PastMedicalHistory     string                     `json:"pastMedicalHistory"`
	IdentificationType     string                     `json:"identificationType"`
	IdentificationNumber   string                     `json:"identificationNumber"`
	IdentificationDocument *IdentificationFilePayload `json:"identificationDocument,omitempty"`
	TreatmentConsent       bool                       `json:"treatmentConsent"`
	DisclosureConsent      bool                       `json:"disclosureConsent"`
	PrivacyConsent         bool                       `json:"privacyConsent"`
}
