package forms

import (
	"context"
	"patient-intake-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValidForm(t *testing.T, c *Controller) {
	t.Helper()
	values := map[string]interface{}{
		"name":                   "Adrian Hajdin",
		"email":                  "adrian@example.com",
		"phone":                  "+14441234567",
		"birthDate":              "1990-01-15",
		"gender":                 "male",
		"address":                "12 Wall Street, New York",
		"occupation":             "Software engineer",
		"emergencyContactName":   "Jane Hajdin",
		"emergencyContactNumber": "+14447654321",
		"primaryPhysician":       "John Green",
		"insuranceProvider":      "BlueCross",
		"insurancePolicyNumber":  "ABC123456789",
		"treatmentConsent":       "on",
		"disclosureConsent":      true,
		"privacyConsent":         "true",
	}
	for name, value := range values {
		require.NoError(t, c.SetField(name, value), name)
	}
}

func TestLoadFormDefinition(t *testing.T) {
	definition, err := LoadFormDefinition()
	require.NoError(t, err)

	assert.Equal(t, "Get Started", definition.SubmitLabel)
	require.Len(t, definition.Sections, 4)

	names := map[string]string{}
	for _, section := range definition.Sections {
		for _, field := range section.Fields {
			names[field.Name] = field.Kind
		}
	}
	for name := range fieldIndex() {
		assert.Contains(t, names, name, "form definition misses %s", name)
	}
	assert.Equal(t, "file", names["identificationDocument"])
	assert.Equal(t, "male", definition.DefaultValues["gender"])
}

func TestParseFormDefinition_Invalid(t *testing.T) {
	_, err := ParseFormDefinition([]byte("sections: [unterminated"))
	assert.Error(t, err)
}

func TestController_Defaults(t *testing.T) {
	c, err := NewDefaultController()
	require.NoError(t, err)

	values := c.Values()
	assert.Equal(t, "male", values.Gender)
	assert.Equal(t, "Birth Certificate", values.IdentificationType)
	assert.Empty(t, values.Name)
	assert.False(t, values.TreatmentConsent)
	assert.Empty(t, values.IdentificationDocument)
}

func TestController_SetField(t *testing.T) {
	t.Run("Listeners Hear Every Change", func(t *testing.T) {
		c, err := NewController(nil, nil)
		require.NoError(t, err)

		var changed []string
		unsubscribe := c.OnChange(func(fieldName string) {
			changed = append(changed, fieldName)
		})

		require.NoError(t, c.SetField("name", "Adrian"))
		require.NoError(t, c.SetField("privacyConsent", "on"))
		unsubscribe()
		require.NoError(t, c.SetField("email", "adrian@example.com"))

		assert.Equal(t, []string{"name", "privacyConsent"}, changed)
		assert.True(t, c.Values().PrivacyConsent)
	})

	t.Run("Unknown Field Is Rejected", func(t *testing.T) {
		c, err := NewController(nil, nil)
		require.NoError(t, err)

		notified := false
		c.OnChange(func(string) { notified = true })

		assert.Error(t, c.SetField("favouriteColour", "blue"))
		assert.False(t, notified)
	})

	t.Run("Wrong Value Type Is Rejected", func(t *testing.T) {
		c, err := NewController(nil, nil)
		require.NoError(t, err)

		assert.Error(t, c.SetField("name", 42))
		assert.Error(t, c.SetField("treatmentConsent", "maybe"))
		assert.Error(t, c.SetField("identificationDocument", "passport.pdf"))
	})

	t.Run("Birth Date Accepts Text Or Time", func(t *testing.T) {
		c, err := NewController(nil, nil)
		require.NoError(t, err)

		require.NoError(t, c.SetField("birthDate", "01/15/1990"))
		assert.Equal(t, "01/15/1990", c.Values().BirthDate.Text)

		picked := time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)
		require.NoError(t, c.SetField("birthDate", picked))
		values := c.Values()
		assert.Empty(t, values.BirthDate.Text)
		require.NotNil(t, values.BirthDate.Time)
		assert.True(t, picked.Equal(*values.BirthDate.Time))
	})

	t.Run("Single File Becomes List", func(t *testing.T) {
		c, err := NewController(nil, nil)
		require.NoError(t, err)

		file := requests.IdentificationFile{Name: "id.png", ContentType: "image/png", Content: []byte{1, 2}}
		require.NoError(t, c.SetField("identificationDocument", file))
		assert.Equal(t, []requests.IdentificationFile{file}, c.Values().IdentificationDocument)

		require.NoError(t, c.SetField("identificationDocument", nil))
		assert.Empty(t, c.Values().IdentificationDocument)
	})
}

func TestController_Values_IsSnapshot(t *testing.T) {
	c, err := NewController(nil, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetField("identificationDocument", requests.IdentificationFile{Name: "id.png", Content: []byte{1}}))

	snapshot := c.Values()
	snapshot.IdentificationDocument[0].Content[0] = 9
	snapshot.Name = "changed"

	current := c.Values()
	assert.Equal(t, byte(1), current.IdentificationDocument[0].Content[0])
	assert.Empty(t, current.Name)
}

func TestController_HandleSubmit(t *testing.T) {
	t.Run("Invalid Draft Never Reaches Handler", func(t *testing.T) {
		c, err := NewDefaultController()
		require.NoError(t, err)

		called := false
		ran := c.HandleSubmit(context.Background(), func(ctx context.Context, draft *requests.PatientIntakeDraft) {
			called = true
		})

		assert.False(t, ran)
		assert.False(t, called)
		errs := c.Errors()
		assert.Contains(t, errs, "name")
		assert.Equal(t, "You must consent to treatment in order to proceed", errs["treatmentConsent"])
		assert.Equal(t, "Date of birth is required", errs["birthDate"])
	})

	t.Run("Valid Draft Is Handed Over Once", func(t *testing.T) {
		c, err := NewDefaultController()
		require.NoError(t, err)
		fillValidForm(t, c)

		var received []*requests.PatientIntakeDraft
		ran := c.HandleSubmit(context.Background(), func(ctx context.Context, draft *requests.PatientIntakeDraft) {
			received = append(received, draft)
		})

		require.True(t, ran)
		require.Len(t, received, 1)
		assert.Equal(t, "Adrian Hajdin", received[0].Name)
		assert.True(t, c.Errors().IsEmpty())

		require.NoError(t, c.SetField("name", "Someone Else"))
		assert.Equal(t, "Adrian Hajdin", received[0].Name)
	})

	t.Run("Custom Schema Is Used", func(t *testing.T) {
		schema := func(draft *requests.PatientIntakeDraft) requests.ValidationErrorSet {
			return requests.ValidationErrorSet{"name": "taken"}
		}
		c, err := NewController(schema, nil)
		require.NoError(t, err)

		assert.Equal(t, requests.ValidationErrorSet{"name": "taken"}, c.Validate())
	})
}

func TestController_Reset(t *testing.T) {
	c, err := NewDefaultController()
	require.NoError(t, err)
	fillValidForm(t, c)
	c.Validate()

	require.NoError(t, c.Reset())

	values := c.Values()
	assert.Empty(t, values.Name)
	assert.Equal(t, "male", values.Gender)
	assert.True(t, c.Errors().IsEmpty())
}
