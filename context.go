package vimfault

// WithContext adds a single context field to a fault.
// Returns a new FaultError with the field added; existing fields are preserved.
// Returns nil if fe is nil.
//
// Context carries transport metadata such as the invoked method or the SOAP
// faultcode. It is not part of the fault's identity.
//
// Example:
//
//	fe = vimfault.WithContext(fe, "method", "PowerOnVM_Task")
func WithContext(fe FaultError, key string, value any) FaultError {
	if fe == nil {
		return nil
	}
	return WithContextMap(fe, map[string]any{key: value})
}

// WithContextMap adds multiple context fields to a fault.
// New fields override existing ones with the same key.
// Returns nil if fe is nil.
func WithContextMap(fe FaultError, ctx map[string]any) FaultError {
	if fe == nil {
		return nil
	}

	out := clone(fe)
	merged := make(map[string]any, len(out.context)+len(ctx))
	for k, v := range out.context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	out.context = merged
	return out
}

// WithClassification overrides the classification of one fault occurrence.
// Returns nil if fe is nil.
//
// Example:
//
//	// The caller knows this host is being rebooted and will come back.
//	fe = vimfault.WithClassification(fe, vimfault.ClassificationRetryable)
func WithClassification(fe FaultError, classification Classification) FaultError {
	if fe == nil {
		return nil
	}
	out := clone(fe)
	out.classification = classification
	return out
}

// clone copies fe into a new faultError.
func clone(fe FaultError) *faultError {
	if e, ok := fe.(*faultError); ok {
		c := *e
		c.context = copyContext(e.context)
		return &c
	}
	return &faultError{
		kind:           fe.Kind(),
		wireName:       fe.WireName(),
		message:        fe.Message(),
		detail:         fe.Detail(),
		classification: fe.Classification(),
		context:        fe.Context(),
		cause:          fe.Unwrap(),
	}
}
