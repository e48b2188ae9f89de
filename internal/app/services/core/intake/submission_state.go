package intake

import "sync"

type SubmissionState int

const (
	SubmissionStateIdle SubmissionState = iota
	SubmissionStateSubmitting
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionStateIdle:
		return "idle"
	case SubmissionStateSubmitting:
		return "submitting"
	}
	return "unknown"
}

// StateListener observes every transition of a submission gate.
type StateListener func(state SubmissionState)

// submissionGate is the single-flight state machine of one form instance.
// begin moves Idle to Submitting, settle moves it back.
type submissionGate struct {
	mu        sync.Mutex
	state     SubmissionState
	listeners []StateListener
}

func (g *submissionGate) begin() bool {
	g.mu.Lock()
	if g.state != SubmissionStateIdle {
		g.mu.Unlock()
		return false
	}
	g.state = SubmissionStateSubmitting
	listeners := append([]StateListener(nil), g.listeners...)
	g.mu.Unlock()

	notify(listeners, SubmissionStateSubmitting)
	return true
}

func (g *submissionGate) settle() {
	g.mu.Lock()
	g.state = SubmissionStateIdle
	listeners := append([]StateListener(nil), g.listeners...)
	g.mu.Unlock()

	notify(listeners, SubmissionStateIdle)
}

func (g *submissionGate) current() SubmissionState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *submissionGate) subscribe(listener StateListener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, listener)
}

func notify(listeners []StateListener, state SubmissionState) {
	for _, listener := range listeners {
		listener(state)
	}
}
