package patients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/fhir_dto"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type patientFhirClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewPatientFhirClient talks to the Patient endpoint of a FHIR server.
// Outbound calls wait on limiter, a nil limiter disables throttling.
func NewPatientFhirClient(baseUrl string, timeout time.Duration, limiter *rate.Limiter, logger *zap.Logger) contracts.PatientFhirClient {
	return &patientFhirClient{
		BaseUrl:    strings.TrimRight(baseUrl, "/") + "/" + constvars.ResourcePatient,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

func (c *patientFhirClient) CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientFhirClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("patientFhirClient.CreatePatient error waiting for rate limiter",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrRateLimitWait(err)
		}
	}

	requestJSON, err := json.Marshal(request)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			c.Log.Error("patientFhirClient.CreatePatient error reading response body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrCreateFHIRResource(err, constvars.ResourcePatient)
		}

		fhirErr := fmt.Errorf("unexpected status code %d", resp.StatusCode)
		var outcome fhir_dto.OperationOutcome
		if json.Unmarshal(bodyBytes, &outcome) == nil && len(outcome.Issue) > 0 {
			fhirErr = fmt.Errorf("status %d: %s", resp.StatusCode, outcome.Issue[0].Diagnostics)
		}
		c.Log.Error("patientFhirClient.CreatePatient FHIR error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(fhirErr),
		)
		return nil, exceptions.ErrCreateFHIRResource(fhirErr, constvars.ResourcePatient)
	}

	patientFhir := new(fhir_dto.Patient)
	err = json.NewDecoder(resp.Body).Decode(patientFhir)
	if err != nil {
		c.Log.Error("patientFhirClient.CreatePatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatient)
	}

	c.Log.Info("patientFhirClient.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientFhir.ID),
	)
	return patientFhir, nil
}
