package utils

import "patient-intake-service/internal/pkg/dto/requests"

func newValidDraft() *requests.PatientIntakeDraft {
	return &requests.PatientIntakeDraft{
		Name:                   "Adrian Hajdin",
		Email:                  "adrian@example.com",
		Phone:                  "+14441234567",
		BirthDate:              requests.BirthDateInput{Text: "1990-01-15"},
		Gender:                 "male",
		Address:                "12 Wall Street, New York",
		Occupation:             "Software engineer",
		EmergencyContactName:   "Jane Hajdin",
		EmergencyContactNumber: "+14447654321",
		PrimaryPhysician:       "John Green",
		InsuranceProvider:      "BlueCross",
		InsurancePolicyNumber:  "ABC123456789",
		Allergies:              "Peanuts",
		CurrentMedication:      "Ibuprofen 200mg",
		FamilyMedicalHistory:   "Mother had diabetes",
		PastMedicalHistory:     "Appendectomy",
		IdentificationType:     "Driver's License",
		IdentificationNumber:   "D1234567",
		TreatmentConsent:       true,
		DisclosureConsent:      true,
		PrivacyConsent:         true,
	}
}
