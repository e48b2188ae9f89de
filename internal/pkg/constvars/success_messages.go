package constvars

const (
	FormDefinitionGetSuccessMessage = "Successfully retrieved intake form"
	PatientRegisteredSuccessMessage = "Successfully registered patient"
)
