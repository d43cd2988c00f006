package vimfault

import (
	stderrors "errors"
	"reflect"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if vimfault.Is(err, vimfault.FileFault) {
//	    // FileFault or any derived kind (FileNotFound, FileLocked, ...)
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsFault returns the outermost FaultError in err's chain.
func AsFault(err error) (FaultError, bool) {
	var fe FaultError
	if stderrors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// AsKind returns the first FaultError in err's chain whose kind is kind or
// derives from it.
//
// Example:
//
//	if fe, ok := vimfault.AsKind(err, vimfault.FileFault); ok {
//	    path, _ := vimfault.KeyFile.From(fe.Detail())
//	}
func AsKind(err error, kind *Kind) (FaultError, bool) {
	for _, e := range Chain(err) {
		if fe, ok := e.(FaultError); ok && fe.Kind().IsA(kind) {
			return fe, true
		}
	}
	return nil, false
}

// GetKind returns the kind of the outermost fault in err's chain.
// Returns nil if the chain holds no fault.
func GetKind(err error) *Kind {
	if fe, ok := AsFault(err); ok {
		return fe.Kind()
	}
	return nil
}

// GetCode returns the code of the outermost fault in err's chain.
// Returns CodeUnknown if err is nil or holds no fault.
func GetCode(err error) Code {
	if fe, ok := AsFault(err); ok {
		return fe.Code()
	}
	return CodeUnknown
}

// GetClassification returns the classification of the outermost fault.
// Returns ClassificationPermanent if err is nil or holds no fault. This is a
// safe default that prevents inappropriate retry attempts.
func GetClassification(err error) Classification {
	if fe, ok := AsFault(err); ok {
		return fe.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the outermost fault is classified as retryable.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// Get reads a detail field from the outermost fault in err's chain.
//
// Example:
//
//	if holder, ok := vimfault.Get(err, vimfault.KeyTask); ok {
//	    waitFor(holder)
//	}
func Get[T FieldValue](err error, key Key[T]) (T, bool) {
	fe, ok := AsFault(err)
	if !ok {
		var zero T
		return zero, false
	}
	return key.From(fe.Detail())
}

// Chain returns err followed by every error reachable through Unwrap,
// depth-first, including the branches of joined errors. Each error appears
// once even if the graph is cyclic.
func Chain(err error) []error {
	var out []error
	seen := make(map[error]bool)
	var walk func(error)
	walk = func(e error) {
		if e == nil || isSeen(seen, e) {
			return
		}
		out = append(out, e)
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(u.Unwrap())
		}
	}
	walk(err)
	return out
}

// isSeen records e and reports whether it was already recorded. Errors of
// uncomparable dynamic types are never considered seen.
func isSeen(seen map[error]bool, e error) bool {
	if !reflect.TypeOf(e).Comparable() {
		return false
	}
	if seen[e] {
		return true
	}
	seen[e] = true
	return false
}
