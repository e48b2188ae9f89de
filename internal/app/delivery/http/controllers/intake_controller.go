package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"patient-intake-service/internal/app/config"
	"patient-intake-service/internal/app/services/core/forms"
	"patient-intake-service/internal/app/services/core/intake"
	"patient-intake-service/internal/app/services/shared/ratelimiter"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/dto/responses"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// FormFactory builds an empty intake form seeded with its defaults.
type FormFactory func() (*forms.Controller, error)

type IntakeController struct {
	Log      *zap.Logger
	Registry *intake.Registry
	NewForm  FormFactory
	// ResourceLimiter caps registrations per owner, nil when Redis is disabled.
	ResourceLimiter *ratelimiter.ResourceLimiter
	InternalConfig  *config.InternalConfig
}

func NewIntakeController(
	logger *zap.Logger,
	registry *intake.Registry,
	newForm FormFactory,
	resourceLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
) *IntakeController {
	return &IntakeController{
		Log:             logger,
		Registry:        registry,
		NewForm:         newForm,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *IntakeController) GetFormDefinition(w http.ResponseWriter, r *http.Request) {
	definition, err := forms.LoadFormDefinition()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FormDefinitionGetSuccessMessage, definition)
}

func (ctrl *IntakeController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	ownerID := chi.URLParam(r, constvars.URLParamUserID)

	ctrl.Log.Debug("Patient intake submission started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
	)

	form, err := ctrl.NewForm()
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if isMultipartRequest(r) {
		err = ctrl.fillFromMultipart(r, form)
	} else {
		err = ctrl.fillFromJSON(r, form)
	}
	if err != nil {
		ctrl.Log.Error("Failed to read intake submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := ctrl.submissionContext(r.Context())
	defer cancel()
	ctx, target := withNavigationTarget(ctx)

	orchestrator, release := ctrl.Registry.Acquire(ownerID)
	defer release()

	status := intake.SubmitStatusFailed
	retryAfterSecs := 0
	submitted := form.HandleSubmit(ctx, func(ctx context.Context, draft *requests.PatientIntakeDraft) {
		// only attempts that would reach the patient service count
		// against the owner's quota
		if orchestrator.IsBusy() {
			status = intake.SubmitStatusBusy
			return
		}
		allowed, retryAfter := ctrl.applySubmissionQuota(ctx, ownerID)
		if !allowed {
			retryAfterSecs = retryAfter
			return
		}
		status = orchestrator.Submit(ctx, draft, ownerID)
	})
	if !submitted {
		validationErrors := form.Errors()
		ctrl.Log.Info("Patient intake submission rejected by validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("error_count", len(validationErrors)),
		)
		utils.BuildFailureResponse(w, constvars.StatusUnprocessableEntity, constvars.ErrClientFormInvalid, responses.IntakeValidationErrors{Errors: validationErrors})
		return
	}

	if retryAfterSecs > 0 {
		w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfterSecs))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSubmissionQuotaExceeded(nil, ownerID))
		return
	}

	ctrl.Log.Info("Patient intake submission finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOwnerIDKey, ownerID),
		zap.String(constvars.LoggingSubmitStatusKey, status.String()),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	switch status {
	case intake.SubmitStatusCreated:
		path, ok := target.get()
		if !ok {
			path = utils.GenerateNewAppointmentRoute(ownerID)
		}
		if wantsJSON(r) {
			utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PatientRegisteredSuccessMessage, responses.RegisterPatient{Redirect: path})
			return
		}
		http.Redirect(w, r, path, constvars.StatusSeeOther)
	case intake.SubmitStatusBusy:
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSubmissionInProgress(nil, ownerID))
	case intake.SubmitStatusInvalidDate:
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidBirthDate(nil, form.Values().BirthDate.Text))
	default:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(ctx.Err()))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRegisterPatient(nil))
	}
}

// applySubmissionQuota counts one registration attempt for ownerID. A
// limiter failure lets the attempt through.
func (ctrl *IntakeController) applySubmissionQuota(ctx context.Context, ownerID string) (bool, int) {
	if ctrl.ResourceLimiter == nil {
		return true, 0
	}

	out, err := ctrl.ResourceLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      ownerID,
		LimiterGroupName:  constvars.SubmissionQuotaLimiterGroup,
		WindowDurationSec: ctrl.InternalConfig.Intake.SubmitQuotaWindowInSeconds,
		MaxQuota:          ctrl.InternalConfig.Intake.SubmitQuotaPerOwner,
	})
	if err != nil {
		ctrl.Log.Warn("IntakeController.applySubmissionQuota limiter unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingOwnerIDKey, ownerID),
			zap.Error(err),
		)
		return true, 0
	}
	if !out.Allowed {
		retryAfter := out.RetryAfterSecs
		if retryAfter <= 0 {
			retryAfter = 1
		}
		return false, retryAfter
	}
	return true, 0
}

func (ctrl *IntakeController) submissionContext(parent context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}

func (ctrl *IntakeController) maxDocumentBytes() int64 {
	return ctrl.InternalConfig.Minio.IdentificationDocumentMaxUploadSizeInMB << 20
}

func (ctrl *IntakeController) fillFromMultipart(r *http.Request, form *forms.Controller) error {
	maxBytes := ctrl.maxDocumentBytes()
	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrDocumentTooLarge(err, maxBytesErr.Limit)
		}
		return exceptions.ErrCannotParseMultipartForm(err)
	}
	defer r.MultipartForm.RemoveAll()

	for name, values := range r.MultipartForm.Value {
		if len(values) == 0 {
			continue
		}
		err = form.SetField(name, values[0])
		if err != nil {
			return err
		}
	}

	headers := r.MultipartForm.File[constvars.FormFieldIdentificationDocument]
	if len(headers) == 0 {
		return nil
	}
	files := make([]requests.IdentificationFile, 0, len(headers))
	for _, header := range headers {
		file, err := readUploadedFile(header, maxBytes)
		if err != nil {
			return err
		}
		files = append(files, file)
	}
	return form.SetField(constvars.FormFieldIdentificationDocument, files)
}

func readUploadedFile(header *multipart.FileHeader, maxBytes int64) (requests.IdentificationFile, error) {
	if maxBytes > 0 && header.Size > maxBytes {
		return requests.IdentificationFile{}, exceptions.ErrDocumentTooLarge(fmt.Errorf("%s is %d bytes", header.Filename, header.Size), maxBytes)
	}

	file, err := header.Open()
	if err != nil {
		return requests.IdentificationFile{}, exceptions.ErrCannotReadFile(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return requests.IdentificationFile{}, exceptions.ErrCannotReadFile(err)
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" || contentType == constvars.MIMEOctetStream {
		contentType = http.DetectContentType(content)
	}

	return requests.IdentificationFile{
		Name:        header.Filename,
		ContentType: contentType,
		Content:     content,
	}, nil
}

// fillFromJSON feeds each top-level key through the form so JSON and
// multipart submissions share the same field rules.
func (ctrl *IntakeController) fillFromJSON(r *http.Request, form *forms.Controller) error {
	var body map[string]json.RawMessage
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrDocumentTooLarge(err, maxBytesErr.Limit)
		}
		return exceptions.ErrCannotParseJSON(err)
	}

	for name, raw := range body {
		var value interface{}
		switch name {
		case constvars.FormFieldIdentificationDocument:
			var files []requests.IdentificationFile
			err = json.Unmarshal(raw, &files)
			if err == nil {
				err = ctrl.checkDocumentSizes(files)
			}
			value = files
		case "birthDate":
			var birthDate requests.BirthDateInput
			err = json.Unmarshal(raw, &birthDate)
			value = birthDate
		default:
			err = json.Unmarshal(raw, &value)
		}
		if err != nil {
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) {
				return err
			}
			return exceptions.ErrInvalidFormFieldValue(err, name, string(raw))
		}

		err = form.SetField(name, value)
		if err != nil {
			return err
		}
	}
	return nil
}

func (ctrl *IntakeController) checkDocumentSizes(files []requests.IdentificationFile) error {
	maxBytes := ctrl.maxDocumentBytes()
	if maxBytes <= 0 {
		return nil
	}
	for _, file := range files {
		if int64(len(file.Content)) > maxBytes {
			return exceptions.ErrDocumentTooLarge(fmt.Errorf("%s is %d bytes", file.Name, len(file.Content)), maxBytes)
		}
	}
	return nil
}

func isMultipartRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get(constvars.HeaderContentType))
	return err == nil && mediaType == constvars.MIMEMultipartForm
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get(constvars.HeaderAccept), constvars.MIMEApplicationJSON)
}
