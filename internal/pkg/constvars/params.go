package constvars

const (
	URLParamUserID = "user_id"
)

const (
	FormFieldIdentificationDocument = "identificationDocument"
)
