package controllers

import (
	"context"
	"patient-intake-service/internal/app/contracts"
	"patient-intake-service/internal/pkg/constvars"
	"sync"
)

// navigationTarget collects the path a submission navigated to while the
// handler still owns the response.
type navigationTarget struct {
	mu   sync.Mutex
	path string
	hits int
}

func (t *navigationTarget) set(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.path = path
	t.hits++
}

func (t *navigationTarget) get() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.path, t.hits > 0
}

func withNavigationTarget(ctx context.Context) (context.Context, *navigationTarget) {
	target := new(navigationTarget)
	return context.WithValue(ctx, constvars.CONTEXT_NAVIGATION_TARGET_KEY, target), target
}

type redirectNavigator struct{}

// NewRedirectNavigator hands navigation back to the HTTP handler serving
// the request, which answers with a redirect.
func NewRedirectNavigator() contracts.Navigator {
	return redirectNavigator{}
}

func (redirectNavigator) GoTo(ctx context.Context, path string) {
	if target, ok := ctx.Value(constvars.CONTEXT_NAVIGATION_TARGET_KEY).(*navigationTarget); ok {
		target.set(path)
	}
}
