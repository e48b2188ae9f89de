package diagnostics

import (
	"context"
	"errors"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type logReporter struct {
	Log *zap.Logger
}

// NewLogReporter writes every reported failure to the application log.
func NewLogReporter(logger *zap.Logger) contracts.DiagnosticReporter {
	return &logReporter{Log: logger}
}

func (r *logReporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Error(err),
	}

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		fields = append(fields, zap.Int(constvars.LoggingStatusCodeKey, customErr.StatusCode))
		if len(customErr.Locations) > 0 {
			fields = append(fields, zap.Any(constvars.LoggingErrorLocationKey, customErr.Locations))
		}
	}

	r.Log.Error("intake submission failed", fields...)
}

type multiReporter struct {
	reporters []contracts.DiagnosticReporter
}

// NewMultiReporter fans a report out to every non-nil reporter in order.
func NewMultiReporter(reporters ...contracts.DiagnosticReporter) contracts.DiagnosticReporter {
	active := make([]contracts.DiagnosticReporter, 0, len(reporters))
	for _, reporter := range reporters {
		if reporter != nil {
			active = append(active, reporter)
		}
	}
	return &multiReporter{reporters: active}
}

func (r *multiReporter) Report(ctx context.Context, err error) {
	for _, reporter := range r.reporters {
		reporter.Report(ctx, err)
	}
}
