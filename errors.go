package vimfault

// FaultError is the error returned in place of a result when a vim25 call
// fails with a fault.
//
// Every fault from the service satisfies FaultError, so generic handlers can
// use errors.As with a FaultError target. Specific handlers discriminate with
// Kind, or with errors.Is and a *Kind target, which also matches derived kinds.
type FaultError interface {
	error

	// Kind returns the fault kind. It is never nil.
	Kind() *Kind

	// WireName returns the wire name as received. For faults built directly
	// by the caller it is the kind's wire name.
	WireName() string

	// Message returns the human-readable message the server sent.
	Message() string

	// Detail returns the structured fields of this occurrence.
	// It may be empty but is always bound to Kind().
	Detail() Detail

	// Code returns the fault category.
	Code() Code

	// Classification returns whether the operation is worth retrying.
	Classification() Classification

	// Context returns attached transport metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]any

	// Unwrap returns the lower-level error this fault was identified from,
	// or nil.
	Unwrap() error
}
