package intake

// SubmitStatus is the outcome of one submit attempt.
type SubmitStatus int

const (
	// SubmitStatusCreated means the record exists and navigation happened.
	SubmitStatusCreated SubmitStatus = iota
	// SubmitStatusBusy means another submission of the same form was in
	// flight and nothing was sent.
	SubmitStatusBusy
	// SubmitStatusFailed covers rejections, transport errors and empty results.
	SubmitStatusFailed
	// SubmitStatusInvalidDate means the birth date could not be normalized.
	SubmitStatusInvalidDate
)

func (s SubmitStatus) String() string {
	switch s {
	case SubmitStatusCreated:
		return "created"
	case SubmitStatusBusy:
		return "busy"
	case SubmitStatusFailed:
		return "failed"
	case SubmitStatusInvalidDate:
		return "invalid_date"
	}
	return "unknown"
}
