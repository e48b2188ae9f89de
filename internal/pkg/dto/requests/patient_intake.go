package requests

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
)

// PatientIntakeDraft mirrors every field of the patient intake form.
type PatientIntakeDraft struct {
	Name                   string               `json:"name" yaml:"name" validate:"required,min=2,max=50"`
	Email                  string               `json:"email" yaml:"email" validate:"required,email"`
	Phone                  string               `json:"phone" yaml:"phone" validate:"required,phone_number"`
	BirthDate              BirthDateInput       `json:"birthDate" yaml:"birthDate" validate:"required"`
	Gender                 string               `json:"gender" yaml:"gender" validate:"required,oneof=male female other"`
	Address                string               `json:"address" yaml:"address" validate:"required,min=5,max=500"`
	Occupation             string               `json:"occupation" yaml:"occupation" validate:"required,min=2,max=500"`
	EmergencyContactName   string               `json:"emergencyContactName" yaml:"emergencyContactName" validate:"required,min=2,max=50"`
	EmergencyContactNumber string               `json:"emergencyContactNumber" yaml:"emergencyContactNumber" validate:"required,phone_number"`
	PrimaryPhysician       string               `json:"primaryPhysician" yaml:"primaryPhysician" validate:"required,min=2"`
	InsuranceProvider      string               `json:"insuranceProvider" yaml:"insuranceProvider" validate:"required,min=2,max=50"`
	InsurancePolicyNumber  string               `json:"insurancePolicyNumber" yaml:"insurancePolicyNumber" validate:"required,min=2,max=50"`
	Allergies              string               `json:"allergies" yaml:"allergies" validate:"omitempty,max=1000"`
	CurrentMedication      string               `json:"currentMedication" yaml:"currentMedication" validate:"omitempty,max=1000"`
	FamilyMedicalHistory   string               `json:"familyMedicalHistory" yaml:"familyMedicalHistory" validate:"omitempty,max=1000"`
	PastMedicalHistory     string               `json:"pastMedicalHistory" yaml:"pastMedicalHistory" validate:"omitempty,max=1000"`
	IdentificationType     string               `json:"identificationType" yaml:"identificationType" validate:"omitempty,max=100"`
	IdentificationNumber   string               `json:"identificationNumber" yaml:"identificationNumber" validate:"omitempty,max=100"`
	IdentificationDocument []IdentificationFile `json:"identificationDocument" yaml:"-" validate:"omitempty,dive"`
	TreatmentConsent       bool                 `json:"treatmentConsent" yaml:"treatmentConsent" validate:"required"`
	DisclosureConsent      bool                 `json:"disclosureConsent" yaml:"disclosureConsent" validate:"required"`
	PrivacyConsent         bool                 `json:"privacyConsent" yaml:"privacyConsent" validate:"required"`
}

// BirthDateInput is whatever the date picker produced: raw text, a parsed
// time, or nothing at all.
type BirthDateInput struct {
	Text string     `json:"text,omitempty" yaml:"text,omitempty"`
	Time *time.Time `json:"time,omitempty" yaml:"time,omitempty"`
}

func (b BirthDateInput) IsEmpty() bool {
	return b.Text == "" && (b.Time == nil || b.Time.IsZero())
}

// UnmarshalYAML lets draft files carry the birth date as a plain scalar.
func (b *BirthDateInput) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var text string
	if err := unmarshal(&text); err != nil {
		return err
	}
	b.Text = text
	b.Time = nil
	return nil
}

// UnmarshalJSON accepts either a bare date string or the {text, time}
// object form.
func (b *BirthDateInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*b = BirthDateInput{}
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return err
		}
		*b = BirthDateInput{Text: text}
		return nil
	}

	type plain BirthDateInput
	var decoded plain
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return err
	}
	*b = BirthDateInput(decoded)
	return nil
}

// IdentificationFile is a file attached through the document uploader.
type IdentificationFile struct {
	Name        string `json:"name" validate:"required"`
	ContentType string `json:"contentType" validate:"document_content_type"`
	Content     []byte `json:"content" validate:"required"`
}

// Clone returns a deep copy so an in-flight submission never shares
// memory with a form that keeps being edited.
func (d *PatientIntakeDraft) Clone() *PatientIntakeDraft {
	clone := *d
	if d.BirthDate.Time != nil {
		t := *d.BirthDate.Time
		clone.BirthDate.Time = &t
	}
	if d.IdentificationDocument != nil {
		clone.IdentificationDocument = make([]IdentificationFile, len(d.IdentificationDocument))
		for i, file := range d.IdentificationDocument {
			content := make([]byte, len(file.Content))
			copy(content, file.Content)
			clone.IdentificationDocument[i] = IdentificationFile{
				Name:        file.Name,
				ContentType: file.ContentType,
				Content:     content,
			}
		}
	}
	return &clone
}

// ValidationErrorSet maps a field's wire name to a readable message. An
// empty set means the draft may be submitted.
type ValidationErrorSet map[string]string

func (s ValidationErrorSet) IsEmpty() bool {
	return len(s) == 0
}
