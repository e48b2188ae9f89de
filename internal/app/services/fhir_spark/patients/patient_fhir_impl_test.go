package patients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/fhir_dto"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func TestPatientFhirClient_CreatePatient(t *testing.T) {
	request := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		Name:         []fhir_dto.HumanName{{Text: "Adrian Hajdin"}},
		Gender:       constvars.GenderMale,
		BirthDate:    "1990-01-15",
	}

	t.Run("Created Patient Is Decoded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/fhir/Patient", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationFHIRJSON, r.Header.Get(constvars.HeaderContentType))
			assert.Equal(t, "req-1", r.Header.Get(constvars.HeaderXRequestID))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var received fhir_dto.Patient
			require.NoError(t, json.Unmarshal(body, &received))
			assert.Equal(t, "Adrian Hajdin", received.Name[0].Text)

			received.ID = "P1"
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(received)
		}))
		defer server.Close()

		client := NewPatientFhirClient(server.URL+"/fhir/", time.Second, nil, zap.NewNop())
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

		patient, err := client.CreatePatient(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, "P1", patient.ID)
	})

	t.Run("Operation Outcome Becomes Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"invalid","diagnostics":"birthDate is malformed"}]}`))
		}))
		defer server.Close()

		client := NewPatientFhirClient(server.URL, time.Second, nil, zap.NewNop())
		patient, err := client.CreatePatient(context.Background(), request)

		assert.Nil(t, patient)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "birthDate is malformed")
	})

	t.Run("Non JSON Failure Still Errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		client := NewPatientFhirClient(server.URL, time.Second, nil, zap.NewNop())
		patient, err := client.CreatePatient(context.Background(), request)

		assert.Nil(t, patient)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("Exhausted Limiter Respects Context", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"resourceType":"Patient","id":"P1"}`))
		}))
		defer server.Close()

		limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
		client := NewPatientFhirClient(server.URL, time.Second, limiter, zap.NewNop())

		_, err := client.CreatePatient(context.Background(), request)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = client.CreatePatient(ctx, request)

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
