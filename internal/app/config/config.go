package config

import (
	"patient-intake-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
		},
		FHIR: AppFHIR{
			BaseUrl:                 utils.GetEnvString("FHIR_BASE_URL", "http://localhost:5555/fhir"),
			RequestTimeoutInSeconds: utils.GetEnvInt("FHIR_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond:    utils.GetEnvInt("FHIR_MAX_REQUESTS_PER_SECOND", 20),
			MaxRequestsBurst:        utils.GetEnvInt("FHIR_MAX_REQUESTS_BURST", 5),
		},
		Minio: AppMinio{
			BucketName:                              utils.GetEnvString("MINIO_BUCKET_NAME", "patient-intake"),
			IdentificationDocumentMaxUploadSizeInMB: utils.GetEnvInt64("MINIO_IDENTIFICATION_DOCUMENT_MAX_UPLOAD_SIZE_IN_MB", 5),
			PreSignedUrlObjectExpiryTimeInHours:     utils.GetEnvInt("MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		Mailer: AppMailer{
			EmailSender: utils.GetEnvString("MAILER_EMAIL_SENDER", "no-reply@intake.example.org"),
			Queue:       utils.GetEnvString("MAILER_RABBITMQ_QUEUE", "mailer"),
		},
		Intake: AppIntake{
			SubmitLockExpiryInSeconds:   utils.GetEnvInt("INTAKE_SUBMIT_LOCK_EXPIRY_IN_SECONDS", 60),
			DiagnosticsTimeoutInSeconds: utils.GetEnvInt("INTAKE_DIAGNOSTICS_TIMEOUT_IN_SECONDS", 5),
			SubmitQuotaPerOwner:         utils.GetEnvInt("INTAKE_SUBMIT_QUOTA_PER_OWNER", 10),
			SubmitQuotaWindowInSeconds:  utils.GetEnvInt("INTAKE_SUBMIT_QUOTA_WINDOW_IN_SECONDS", 3600),
		},
	}
}
