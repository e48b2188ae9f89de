package utils

import (
	"errors"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateIntakeDraft runs the intake schema against draft and returns one
// message per failing field, keyed by the field's wire name.
func ValidateIntakeDraft(draft *requests.PatientIntakeDraft) requests.ValidationErrorSet {
	errorSet := requests.ValidationErrorSet{}

	err := ValidateStruct(draft)
	if err == nil {
		return errorSet
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errorSet[constvars.ValidationErrorSetFormKey] = constvars.ErrDevInvalidInput
		return errorSet
	}

	for _, fieldErr := range validationErrors {
		fieldName := topLevelFieldName(fieldErr.Namespace())
		if _, exists := errorSet[fieldName]; exists {
			continue
		}
		errorSet[fieldName] = formatFieldError(fieldName, fieldErr)
	}
	return errorSet
}

func formatFieldError(fieldName string, fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	if message, ok := constvars.CustomFieldValidationErrorMessages[fieldName+"."+tag]; ok {
		return message
	}

	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
	}
	return fieldName + " " + customMessage
}

// topLevelFieldName turns "PatientIntakeDraft.identificationDocument[0].contentType"
// into "identificationDocument".
func topLevelFieldName(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	if idx := strings.IndexAny(namespace, ".["); idx >= 0 {
		namespace = namespace[:idx]
	}
	return namespace
}
