package api

import "errors"

// FaultKind classifies what went wrong with a backend call.
type FaultKind string

const (
	// FaultNetwork means the request did not complete at all.
	FaultNetwork FaultKind = "network"
	// FaultServer means the backend answered with a non-2xx status.
	FaultServer FaultKind = "server"
	// FaultAuth means the backend rejected the credential (401/403).
	FaultAuth FaultKind = "auth"
	// FaultValidation means the request was rejected before any network
	// call was made.
	FaultValidation FaultKind = "validation"
)

// Fault is the error type returned by every Client call. Message is
// safe to show to the end user: it is either the message extracted from
// the backend's response body or a generic fallback.
type Fault struct {
	Kind    FaultKind
	Status  int
	Message string
	Err     error
}

func (f *Fault) Error() string {
	return f.Message
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// IsAuth reports whether err is a credential rejection. Callers use it
// to apply the single auth-fault policy: clear the session and send the
// user back to the login page.
func IsAuth(err error) bool {
	var f *Fault
	return errors.As(err, &f) && f.Kind == FaultAuth
}

// UserMessage extracts the user-facing text from err. For non-Fault
// errors it returns the given fallback.
func UserMessage(err error, fallback string) string {
	var f *Fault
	if errors.As(err, &f) && f.Message != "" {
		return f.Message
	}
	return fallback
}
