package bootstrap

import (
	"patient-intake-service/internal/app/config"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/app/drivers/database"
	"patient-intake-service/internal/app/drivers/messaging"
	"patient-intake-service/internal/app/drivers/storage"
	"patient-intake-service/internal/app/services/core/intake"
	"patient-intake-service/internal/app/services/core/patients"
	fhirPatients "patient-intake-service/internal/app/services/fhir_spark/patients"
	"patient-intake-service/internal/app/services/shared/diagnostics"
	"patient-intake-service/internal/app/services/shared/locker"
	"patient-intake-service/internal/app/services/shared/mailer"
	"patient-intake-service/internal/app/services/shared/ratelimiter"
	"patient-intake-service/internal/app/services/shared/redis"
	minioStorage "patient-intake-service/internal/app/services/shared/storage"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ConnectDrivers opens MinIO and every driver enabled in the environment.
func ConnectDrivers(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) *config.Bootstrap {
	b := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	b.Minio = storage.NewMinio(driverConfig, internalConfig, log)
	if driverConfig.Redis.Enabled {
		b.Redis = database.NewRedisClient(driverConfig, log)
	}
	if driverConfig.MongoDB.Enabled {
		b.MongoDB = database.NewMongoDB(driverConfig, log)
	}
	if driverConfig.RabbitMQ.Enabled {
		b.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}
	return b
}

func NewPatientService(b *config.Bootstrap) contracts.PatientService {
	fhirConfig := b.InternalConfig.FHIR
	limiter := rate.NewLimiter(rate.Limit(fhirConfig.MaxRequestsPerSecond), fhirConfig.MaxRequestsBurst)
	patientFhirClient := fhirPatients.NewPatientFhirClient(
		fhirConfig.BaseUrl,
		time.Duration(fhirConfig.RequestTimeoutInSeconds)*time.Second,
		limiter,
		b.Logger,
	)

	var mailerService contracts.MailerService
	if b.RabbitMQ != nil {
		service, err := mailer.NewMailerService(b.RabbitMQ, b.InternalConfig.Mailer.Queue)
		if err != nil {
			b.Logger.Fatal("Failed to open mailer channel", zap.Error(err))
		}
		mailerService = service
	}

	return patients.NewPatientUsecase(
		patientFhirClient,
		minioStorage.NewMinioStorage(b.Minio),
		mailerService,
		b.InternalConfig,
		b.Logger,
	)
}

func NewDiagnosticReporter(b *config.Bootstrap) contracts.DiagnosticReporter {
	reporters := []contracts.DiagnosticReporter{diagnostics.NewLogReporter(b.Logger)}
	if b.MongoDB != nil {
		database := b.MongoDB.Database(b.DriverConfig.MongoDB.DbName)
		timeout := time.Duration(b.InternalConfig.Intake.DiagnosticsTimeoutInSeconds) * time.Second
		reporters = append(reporters, diagnostics.NewMongoReporter(database, b.Logger, timeout))
	}
	return diagnostics.NewMultiReporter(reporters...)
}

// NewLocker returns nil when Redis is disabled, which keeps submissions
// single-flight per process only.
func NewLocker(b *config.Bootstrap) contracts.LockerService {
	if b.Redis == nil {
		return nil
	}
	return locker.NewLockService(redis.NewRedisRepository(b.Redis), b.Logger)
}

// NewResourceLimiter returns nil when Redis is disabled.
func NewResourceLimiter(b *config.Bootstrap) *ratelimiter.ResourceLimiter {
	if b.Redis == nil {
		return nil
	}
	return ratelimiter.NewResourceLimiter(redis.NewRedisRepository(b.Redis), b.Logger)
}

// NewRegistry builds the per-owner orchestrators that share the services.
func NewRegistry(b *config.Bootstrap, navigator contracts.Navigator) *intake.Registry {
	patientService := NewPatientService(b)
	reporter := NewDiagnosticReporter(b)
	lockerService := NewLocker(b)
	lockExpiry := time.Duration(b.InternalConfig.Intake.SubmitLockExpiryInSeconds) * time.Second

	return intake.NewRegistry(func(ownerID string) *intake.Orchestrator {
		return intake.NewOrchestrator(patientService, navigator, reporter, lockerService, lockExpiry, b.Logger)
	})
}
