package vimfault

import (
	"fmt"
	"strings"
)

// faultError is the concrete implementation of FaultError.
// It is private to enforce construction through package functions.
type faultError struct {
	kind           *Kind
	wireName       string
	message        string
	detail         Detail
	classification Classification
	context        map[string]any
	cause          error
}

// Error returns the string representation of the error.
// Format: "[Name] message" or "[Name] message: cause" if cause is present.
// Faults bound to UnknownFault print the received wire name.
func (e *faultError) Error() string {
	name := e.kind.name
	if e.kind == UnknownFault && e.wireName != "" {
		name = e.wireName
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %s", name, e.message, causeText(e.cause))
	}
	return fmt.Sprintf("[%s] %s", name, e.message)
}

// causeText renders err on one line. Joined errors print their parts
// separated by "; " instead of newlines.
func causeText(err error) string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || !strings.Contains(err.Error(), "\n") {
		return err.Error()
	}
	parts := make([]string, 0, len(joined.Unwrap()))
	for _, part := range joined.Unwrap() {
		if part != nil {
			parts = append(parts, causeText(part))
		}
	}
	return strings.Join(parts, "; ")
}

// Kind returns the fault kind.
func (e *faultError) Kind() *Kind {
	return e.kind
}

// WireName returns the received wire name.
func (e *faultError) WireName() string {
	return e.wireName
}

// Message returns the fault message.
func (e *faultError) Message() string {
	return e.message
}

// Detail returns the detail record.
func (e *faultError) Detail() Detail {
	return e.detail
}

// Code returns the kind's code.
func (e *faultError) Code() Code {
	return e.kind.Code()
}

// Classification returns the fault classification.
func (e *faultError) Classification() Classification {
	return e.classification
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached (maintains immutability).
func (e *faultError) Context() map[string]any {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *faultError) Unwrap() error {
	return e.cause
}

// Is matches a *Kind target by kind lineage and a FaultError target by Equal.
func (e *faultError) Is(target error) bool {
	switch t := target.(type) {
	case *Kind:
		return e.kind.IsA(t)
	case FaultError:
		return Equal(e, t)
	}
	return false
}

// Equal reports whether a and b have the same kind, message and detail.
// For UnknownFault the wire name is the only identity, so it is compared as
// well; for every other kind "vim25:X" and "X" are the same fault. Causes,
// context and classification overrides are not compared.
func Equal(a, b FaultError) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	if a.Kind() == UnknownFault && a.WireName() != b.WireName() {
		return false
	}
	return a.Message() == b.Message() && a.Detail().Equal(b.Detail())
}

func copyContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	out := make(map[string]any, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
