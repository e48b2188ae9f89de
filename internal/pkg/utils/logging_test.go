package utils

import (
	"context"
	"errors"
	"patient-intake-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogOperation(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("Success Is Logged As Completed", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		err := LogOperation(ctx, zap.New(core), "storage.upload", func() error { return nil })

		require.NoError(t, err)
		completed := logs.FilterMessage("storage.upload completed").All()
		require.Len(t, completed, 1)
		fields := completed[0].ContextMap()
		assert.Equal(t, "req-1", fields[constvars.LoggingRequestIDKey])
		assert.Equal(t, "storage.upload", fields[constvars.LoggingOperationKey])
		assert.Equal(t, true, fields[constvars.LoggingSuccessKey])
	})

	t.Run("Failure Is Logged And Returned Untouched", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		cause := errors.New("bucket missing")

		err := LogOperation(ctx, zap.New(core), "storage.upload", func() error { return cause })

		assert.Same(t, cause, err)
		failed := logs.FilterMessage("storage.upload failed").All()
		require.Len(t, failed, 1)
		assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
		assert.Zero(t, logs.FilterMessage("storage.upload completed").Len())
	})
}
