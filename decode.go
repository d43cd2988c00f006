package vimfault

import "errors"

// Context keys set by the binding.
const (
	// ContextWireName records the wire name of a malformed fault.
	ContextWireName = "wire_name"

	// ContextRawDetail holds the undecoded detail fields of an unknown fault.
	ContextRawDetail = "raw_detail"
)

// Decode binds a fault occurrence decoded by the transport.
//
// wireName is resolved against the registry. On a miss the result is an
// UnknownFault carrying message, cause and the received wire name, with an
// empty detail and the raw fields under ContextRawDetail. On a hit the raw
// fields are converted with NewDetail; any problems become the cause, joined
// with the transport's cause when both exist. In both cases WireName returns
// wireName exactly as received.
//
// Decode never fails and never returns nil.
func (r *Registry) Decode(wireName, message string, raw map[string]any, cause error) FaultError {
	kind, err := r.Lookup(wireName)
	if err != nil {
		return unknown(wireName, message, raw, cause)
	}
	return bind(kind, wireName, message, raw, cause)
}

// Bind builds a fault of a kind the caller resolved itself, for example from
// a Go type name. The fault's wire name is the kind's.
//
// A kind that is not registered in r binds to UnknownFault like a Decode
// miss, with the kind's wire name and the raw fields kept.
func (r *Registry) Bind(kind *Kind, message string, raw map[string]any, cause error) FaultError {
	if !r.Contains(kind) {
		wireName := ""
		if kind != nil {
			wireName = kind.wireName
		}
		return unknown(wireName, message, raw, cause)
	}
	return bind(kind, kind.wireName, message, raw, cause)
}

func bind(kind *Kind, wireName, message string, raw map[string]any, cause error) *faultError {
	detail, err := NewDetail(kind, raw)
	if err != nil {
		cause = joinCause(cause, err)
	}
	return newFault(kind, wireName, message, detail, cause)
}

func unknown(wireName, message string, raw map[string]any, cause error) *faultError {
	fe := newFault(UnknownFault, wireName, message, Detail{}, cause)
	if len(raw) > 0 {
		rawCopy := make(map[string]any, len(raw))
		for k, v := range raw {
			rawCopy[k] = v
		}
		fe.context = map[string]any{ContextRawDetail: rawCopy}
	}
	return fe
}

func joinCause(cause, err error) error {
	if cause == nil {
		return err
	}
	return errors.Join(cause, err)
}

// Decode binds a fault occurrence against the default registry.
func Decode(wireName, message string, raw map[string]any, cause error) FaultError {
	return defaultRegistry.Decode(wireName, message, raw, cause)
}

// Malformed builds the fault used when the transport found a fault element
// but could not decode its detail at all. The received wire name is kept in
// WireName and in the ContextWireName context entry. MalformedFault is never
// registered, so no registry is involved.
func Malformed(wireName, message string, cause error) FaultError {
	fe := newFault(MalformedFault, wireName, message, Detail{}, cause)
	fe.context = map[string]any{ContextWireName: wireName}
	return fe
}
