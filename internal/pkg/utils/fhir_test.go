package utils

import (
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findExtension(patient *fhir_dto.Patient, url string) (fhir_dto.Extension, bool) {
	for _, ext := range patient.Extension {
		if ext.Url == url {
			return ext, true
		}
	}
	return fhir_dto.Extension{}, false
}

func TestBuildFhirPatientRequest(t *testing.T) {
	t.Run("Maps Demographics And Owner", func(t *testing.T) {
		request, err := BuildPatientRecordRequest(newValidDraft(), "U1")
		require.NoError(t, err)

		patient := BuildFhirPatientRequest(request, "")

		assert.Equal(t, constvars.ResourcePatient, patient.ResourceType)
		assert.Equal(t, "1990-01-15", patient.BirthDate)
		assert.Equal(t, "Adrian Hajdin", patient.Name[0].Text)
		assert.Equal(t, "male", patient.Gender)
		assert.Equal(t, "John Green", patient.GeneralPractitioner[0].Display)
		assert.Equal(t, "+14447654321", patient.Contact[0].Telecom[0].Value)
		assert.Equal(t, "D1234567", patient.Identifier[0].Value)

		owner, ok := findExtension(patient, constvars.FhirExtensionOwnerReference)
		require.True(t, ok)
		assert.Equal(t, "U1", owner.ValueString)

		consent, ok := findExtension(patient, constvars.FhirExtensionPrivacyConsent)
		require.True(t, ok)
		require.NotNil(t, consent.ValueBoolean)
		assert.True(t, *consent.ValueBoolean)

		_, ok = findExtension(patient, constvars.FhirExtensionIdentificationDocument)
		assert.False(t, ok, "no document extension without a stored document")
	})

	t.Run("Attaches Stored Document", func(t *testing.T) {
		draft := newValidDraft()
		draft.IdentificationDocument = []requests.IdentificationFile{
			{Name: "license.png", ContentType: "image/png", Content: []byte{1, 2, 3}},
		}
		request, err := BuildPatientRecordRequest(draft, "U1")
		require.NoError(t, err)

		patient := BuildFhirPatientRequest(request, "https://files.example.org/license.png")

		document, ok := findExtension(patient, constvars.FhirExtensionIdentificationDocument)
		require.True(t, ok)
		require.NotNil(t, document.ValueAttachment)
		assert.Equal(t, "https://files.example.org/license.png", document.ValueAttachment.Url)
		assert.Equal(t, "image/png", document.ValueAttachment.ContentType)
		assert.Equal(t, int64(3), document.ValueAttachment.Size)
		assert.Equal(t, "license.png", document.ValueAttachment.Title)
	})

	t.Run("Skips Empty Optional History", func(t *testing.T) {
		draft := newValidDraft()
		draft.Allergies = ""
		request, err := BuildPatientRecordRequest(draft, "U1")
		require.NoError(t, err)

		patient := BuildFhirPatientRequest(request, "")

		_, ok := findExtension(patient, constvars.FhirExtensionAllergies)
		assert.False(t, ok)
	})
}
