package vimfault

import "fmt"

// New creates a FaultError of the given kind with no cause.
//
// A nil kind binds to UnknownFault. A detail built for a different kind is
// re-bound to kind, keeping only the fields kind declares.
//
// Example:
//
//	d, _ := vimfault.NewDetail(vimfault.FileNotFound, map[string]any{"file": "[ds1] vm/vm.vmx"})
//	err := vimfault.New(vimfault.FileNotFound, "File was not found", d)
func New(kind *Kind, message string, detail Detail) FaultError {
	return newFault(kind, "", message, detail, nil)
}

// Newf creates a FaultError with a formatted message.
//
// Example:
//
//	err := vimfault.Newf(vimfault.NotFound, vimfault.Detail{}, "datacenter %s not found", name)
func Newf(kind *Kind, detail Detail, format string, args ...any) FaultError {
	return newFault(kind, "", fmt.Sprintf(format, args...), detail, nil)
}

// Wrap creates a FaultError that was identified while handling cause, for
// example a decode error whose fault element could still be read.
// The cause is accessible via Unwrap and compatible with errors.Is and errors.As.
//
// Unlike a plain error wrapper, Wrap with a nil cause still returns a fault:
// the remote failure happened regardless of how it was found.
//
// Example:
//
//	if err := dec.Decode(&body); err != nil {
//	    return vimfault.Wrap(err, vimfault.ConcurrentAccess, msg, vimfault.Detail{})
//	}
func Wrap(cause error, kind *Kind, message string, detail Detail) FaultError {
	return newFault(kind, "", message, detail, cause)
}

// Wrapf wraps cause with a formatted message.
func Wrapf(cause error, kind *Kind, detail Detail, format string, args ...any) FaultError {
	return newFault(kind, "", fmt.Sprintf(format, args...), detail, cause)
}

func newFault(kind *Kind, wireName, message string, detail Detail, cause error) *faultError {
	if kind == nil {
		kind = UnknownFault
	}
	if wireName == "" {
		wireName = kind.wireName
	}
	return &faultError{
		kind:           kind,
		wireName:       wireName,
		message:        message,
		detail:         detail.rebind(kind),
		classification: kind.Classification(),
		cause:          cause,
	}
}
