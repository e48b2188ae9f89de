package constvars

const (
	IntakeNewAppointmentRouteFormat = "/patients/%s/new-appointment"
	IntakeSubmitLockKeyFormat       = "intake:submit:%s"
	IntakeDocumentObjectNameFormat  = "identification-documents/%s/%s-%s"
	SubmissionQuotaLimiterGroup     = "INTAKE-SUBMIT"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	MailerTemplatePatientRegistered = "patient_registered"
	MailerSubjectPatientRegistered  = "Your patient profile is ready"
)

const (
	DiagnosticsCollectionIntakeFailures = "intake_failures"
)
