package contracts

import "context"

// DiagnosticReporter receives failures that must not crash the caller.
// Implementations must not block the caller on their own failures.
type DiagnosticReporter interface {
	Report(ctx context.Context, err error)
}
