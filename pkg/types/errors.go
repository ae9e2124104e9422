package types

import "fmt"

// ValidationError reports caller-supplied order parameters that violate the
// builder's preconditions. Raised before signing so a nonsensical payload is
// never signed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// SigningError wraps a refusal or failure of the wallet signing capability
// (user rejection, disconnected wallet).
type SigningError struct {
	Op  string // what was being signed
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("sign %s: %v", e.Op, e.Err)
}

func (e *SigningError) Unwrap() error { return e.Err }

// SessionError means the credential-derivation relay rejected the challenge
// or was unreachable. Status is zero on transport failures.
type SessionError struct {
	Status int
	Body   string
	Err    error
}

func (e *SessionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("derive session: %v", e.Err)
	}
	return fmt.Sprintf("derive session: relay returned status %d: %s", e.Status, e.Body)
}

func (e *SessionError) Unwrap() error { return e.Err }

// SubmissionError means the order-intake relay rejected the signed order or
// was unreachable. Status and Body carry the relay's diagnostics verbatim;
// Status is zero on transport failures.
type SubmissionError struct {
	Status int
	Body   string
	Err    error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submit order: %v", e.Err)
	}
	return fmt.Sprintf("submit order: relay returned status %d: %s", e.Status, e.Body)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
