package patients

import (
	"context"
	"patient-intake-service/internal/app/config"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/dto/responses"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/fhir_dto"
	"patient-intake-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientFhirClient contracts.PatientFhirClient
	MinioStorage      contracts.Storage
	MailerService     contracts.MailerService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

// NewPatientUsecase registers patients on the FHIR server. The mailer is
// optional, without it no welcome notification is queued.
func NewPatientUsecase(
	patientFhirClient contracts.PatientFhirClient,
	minioStorage contracts.Storage,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientService {
	return &patientUsecase{
		PatientFhirClient: patientFhirClient,
		MinioStorage:      minioStorage,
		MailerService:     mailerService,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.PatientRecordRequest) (*responses.RegisteredPatient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, request.UserID),
	)

	documentURL, err := uc.storeIdentificationDocument(ctx, request)
	if err != nil {
		return nil, err
	}

	patientFhirRequest := utils.BuildFhirPatientRequest(request, documentURL)
	var patient *fhir_dto.Patient
	err = utils.LogOperation(ctx, uc.Log, "patientUsecase.createFhirPatient", func() error {
		var err error
		patient, err = uc.PatientFhirClient.CreatePatient(ctx, patientFhirRequest)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.notifyPatientRegistered(ctx, request, patient.ID)

	uc.Log.Info("patientUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	return &responses.RegisteredPatient{
		ID:                        patient.ID,
		IdentificationDocumentURL: documentURL,
	}, nil
}

func (uc *patientUsecase) storeIdentificationDocument(ctx context.Context, request *requests.PatientRecordRequest) (string, error) {
	document := request.IdentificationDocument
	if document == nil {
		return "", nil
	}

	requestID := utils.GetRequestID(ctx)
	bucketName := uc.InternalConfig.Minio.BucketName
	objectName := utils.GenerateDocumentObjectName(request.UserID, document.FileName)

	uploadedName, err := uc.MinioStorage.UploadFile(ctx, document.BlobFile, document.ContentType, bucketName, objectName)
	if err != nil {
		uc.Log.Error("patientUsecase.storeIdentificationDocument error uploading document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	documentURL, err := uc.MinioStorage.GetObjectUrlWithExpiryTime(ctx, bucketName, uploadedName, expiry)
	if err != nil {
		uc.Log.Error("patientUsecase.storeIdentificationDocument error presigning document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, uploadedName),
			zap.Error(err),
		)
		return "", err
	}

	return documentURL, nil
}

// notifyPatientRegistered queues the welcome email. Failures are logged only,
// the patient already exists at this point.
func (uc *patientUsecase) notifyPatientRegistered(ctx context.Context, request *requests.PatientRecordRequest, patientID string) {
	if uc.MailerService == nil {
		return
	}

	emailPayload := &requests.EmailPayload{
		From:         uc.InternalConfig.Mailer.EmailSender,
		To:           request.Email,
		Subject:      constvars.MailerSubjectPatientRegistered,
		TemplateName: constvars.MailerTemplatePatientRegistered,
		TemplateData: map[string]string{
			"name":       request.Name,
			"patient_id": patientID,
			"redirect":   utils.GenerateNewAppointmentRoute(request.UserID),
		},
	}

	err := uc.MailerService.SendEmail(ctx, emailPayload)
	if err != nil {
		uc.Log.Warn("patientUsecase.notifyPatientRegistered error queueing email",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingQueueNameKey, uc.InternalConfig.Mailer.Queue),
			zap.Error(exceptions.ErrRabbitMQPublishMessage(err, uc.InternalConfig.Mailer.Queue)),
		)
	}
}
