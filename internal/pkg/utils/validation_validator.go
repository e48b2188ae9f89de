package utils

import (
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate      *validator.Validate
	rePhoneNumber = regexp.MustCompile(constvars.RegexPhoneNumber)
)

var allowedDocumentContentTypes = map[string]bool{
	constvars.MIMEImagePNG:       true,
	constvars.MIMEImageJPEG:      true,
	constvars.MIMEImageGIF:       true,
	constvars.MIMEImageSVG:       true,
	constvars.MIMEApplicationPDF: true,
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(birthDateValue, requests.BirthDateInput{})
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("document_content_type", validateDocumentContentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// birthDateValue exposes the date picker input to validator as a plain
// string so "required" means "something was picked".
func birthDateValue(field reflect.Value) interface{} {
	input, ok := field.Interface().(requests.BirthDateInput)
	if !ok || input.IsEmpty() {
		return ""
	}
	if input.Text != "" {
		return input.Text
	}
	return input.Time.String()
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return rePhoneNumber.MatchString(fl.Field().String())
}

func validateDocumentContentType(fl validator.FieldLevel) bool {
	return IsAllowedDocumentContentType(fl.Field().String())
}

func IsAllowedDocumentContentType(contentType string) bool {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	return allowedDocumentContentTypes[strings.ToLower(mediaType)]
}
