package utils

import (
	"context"
	"patient-intake-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// LogOperation times fn and logs its outcome under operation, tagged with
// the request ID carried by ctx. The error from fn is returned untouched.
func LogOperation(ctx context.Context, logger *zap.Logger, operation string, fn func() error) error {
	requestID := GetRequestID(ctx)
	start := time.Now()

	logger.Debug(operation+" started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	)

	err := fn()
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error(operation+" failed", append(fields, zap.Error(err))...)
		return err
	}

	logger.Info(operation+" completed", fields...)
	return nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
