package constvars

const (
	RegexPhoneNumber = `^\+[1-9]\d{9,14}$`
)

const (
	ValidationErrorSetFormKey = "form"
)
