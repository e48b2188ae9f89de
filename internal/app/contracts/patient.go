package contracts

import (
	"context"
	"patient-intake-service/internal/pkg/dto/requests"
	"patient-intake-service/internal/pkg/dto/responses"
	"patient-intake-service/internal/pkg/fhir_dto"
)

// PatientService creates a patient record from a composed intake request.
type PatientService interface {
	RegisterPatient(ctx context.Context, request *requests.PatientRecordRequest) (*responses.RegisteredPatient, error)
}

type PatientFhirClient interface {
	CreatePatient(ctx context.Context, request *fhir_dto.Patient) (*fhir_dto.Patient, error)
}
