package utils

import (
	"fmt"
	"patient-intake-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateNewAppointmentRoute(ownerID string) string {
	return fmt.Sprintf(constvars.IntakeNewAppointmentRouteFormat, ownerID)
}

func GenerateSubmitLockKey(ownerID string) string {
	return fmt.Sprintf(constvars.IntakeSubmitLockKeyFormat, ownerID)
}

func GenerateDocumentObjectName(ownerID, fileName string) string {
	return fmt.Sprintf(constvars.IntakeDocumentObjectNameFormat, ownerID, uuid.NewString(), fileName)
}
