package utils

import (
	"patient-intake-service/internal/pkg/dto/requests"
)

// BuildPatientRecordRequest composes the outbound record from a draft
// snapshot. Scalar fields are copied as they are; only the birth date is
// normalized. The file payload is built from the first attached file and
// left nil when nothing was attached.
func BuildPatientRecordRequest(draft *requests.PatientIntakeDraft, ownerID string) (*requests.PatientRecordRequest, error) {
	birthDate, err := NormalizeBirthDate(draft.BirthDate)
	if err != nil {
		return nil, err
	}

	return &requests.PatientRecordRequest{
		UserID:                 ownerID,
		Name:                   draft.Name,
		Email:                  draft.Email,
		Phone:                  draft.Phone,
		BirthDate:              birthDate,
		Gender:                 draft.Gender,
		Address:                draft.Address,
		Occupation:             draft.Occupation,
		EmergencyContactName:   draft.EmergencyContactName,
		EmergencyContactNumber: draft.EmergencyContactNumber,
		PrimaryPhysician:       draft.PrimaryPhysician,
		InsuranceProvider:      draft.InsuranceProvider,
		InsurancePolicyNumber:  draft.InsurancePolicyNumber,
		Allergies:              draft.Allergies,
		CurrentMedication:      draft.CurrentMedication,
		FamilyMedicalHistory:   draft.FamilyMedicalHistory,
		PastMedicalHistory:     draft.PastMedicalHistory,
		IdentificationType:     draft.IdentificationType,
		IdentificationNumber:   draft.IdentificationNumber,
		IdentificationDocument: BuildIdentificationFilePayload(draft.IdentificationDocument),
		TreatmentConsent:       draft.TreatmentConsent,
		DisclosureConsent:      draft.DisclosureConsent,
		PrivacyConsent:         draft.PrivacyConsent,
	}, nil
}

func BuildIdentificationFilePayload(files []requests.IdentificationFile) *requests.IdentificationFilePayload {
	if len(files) == 0 {
		return nil
	}

	first := files[0]
	blob := make([]byte, len(first.Content))
	copy(blob, first.Content)

	return &requests.IdentificationFilePayload{
		BlobFile:    blob,
		ContentType: first.ContentType,
		FileName:    first.Name,
	}
}
