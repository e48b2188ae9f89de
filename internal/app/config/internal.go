package config

type InternalConfig struct {
	App    App
	FHIR   AppFHIR
	Minio  AppMinio
	Mailer AppMailer
	Intake AppIntake
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	RequestTimeoutInSeconds    int
}

type AppFHIR struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	MaxRequestsPerSecond    int
	MaxRequestsBurst        int
}

type AppMinio struct {
	BucketName                              string
	IdentificationDocumentMaxUploadSizeInMB int64
	PreSignedUrlObjectExpiryTimeInHours     int
}

type AppMailer struct {
	EmailSender string
	Queue       string
}

// AppIntake tunes the submission flow.
type AppIntake struct {
	// SubmitLockExpiryInSeconds bounds how long a crashed replica can hold
	// an owner's submission lock
	SubmitLockExpiryInSeconds int
	// DiagnosticsTimeoutInSeconds bounds each fire-and-forget failure report
	DiagnosticsTimeoutInSeconds int
	// SubmitQuotaPerOwner caps registrations per owner in one window, 0 disables it
	SubmitQuotaPerOwner        int
	SubmitQuotaWindowInSeconds int
}
