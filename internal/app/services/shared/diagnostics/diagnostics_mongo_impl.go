package diagnostics

import (
	"context"
	"errors"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/pkg/constvars"
	"patient-intake-service/internal/pkg/exceptions"
	"patient-intake-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type failureReport struct {
	RequestID     string                `bson:"request_id,omitempty"`
	Message       string                `bson:"message"`
	ClientMessage string                `bson:"client_message,omitempty"`
	StatusCode    int                   `bson:"status_code,omitempty"`
	Locations     []exceptions.Location `bson:"locations,omitempty"`
	OccurredAt    time.Time             `bson:"occurred_at"`
}

// documentInserter is the part of *mongo.Collection the reporter needs.
type documentInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

type mongoReporter struct {
	Collection documentInserter
	Log        *zap.Logger
	Timeout    time.Duration
	now        func() time.Time
}

// NewMongoReporter stores failure reports in the intake failures collection.
// Insert errors are logged and never reach the caller.
func NewMongoReporter(db *mongo.Database, logger *zap.Logger, timeout time.Duration) contracts.DiagnosticReporter {
	return newMongoReporter(db.Collection(constvars.DiagnosticsCollectionIntakeFailures), logger, timeout)
}

func newMongoReporter(collection documentInserter, logger *zap.Logger, timeout time.Duration) *mongoReporter {
	return &mongoReporter{
		Collection: collection,
		Log:        logger,
		Timeout:    timeout,
		now:        time.Now,
	}
}

func (r *mongoReporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}
	requestID := utils.GetRequestID(ctx)

	report := failureReport{
		RequestID:  requestID,
		Message:    err.Error(),
		OccurredAt: r.now().UTC(),
	}
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		report.ClientMessage = customErr.ClientMessage
		report.StatusCode = customErr.StatusCode
		report.Locations = customErr.Locations
	}

	// The request context may already be done when a submission failed on
	// a deadline, the report still has to be written.
	insertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.Timeout)
	defer cancel()

	_, insertErr := r.Collection.InsertOne(insertCtx, report)
	if insertErr != nil {
		r.Log.Error("mongoReporter.Report error inserting failure report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(exceptions.ErrMongoDBInsertDocument(insertErr)),
		)
	}
}
