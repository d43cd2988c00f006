package vimfault

import (
	"encoding/json"
	"fmt"
)

// ErrorResponse is the flat JSON form of a fault.
//
// The cause chain is excluded: it holds transport internals (decoder state,
// raw payload fragments) that do not belong in API responses.
type ErrorResponse struct {
	// Kind is the fault kind name, e.g. "FileNotFound".
	Kind string `json:"kind"`

	// WireName is the wire name as received, e.g. "FileNotFoundFault".
	WireName string `json:"wireName,omitempty"`

	// Code is the fault category.
	Code string `json:"code"`

	// Message is the server's message.
	Message string `json:"message"`

	// Classification indicates whether the operation is worth retrying.
	Classification string `json:"classification"`

	// Detail holds the structured fields of the occurrence.
	// Omitted from JSON if empty.
	Detail map[string]any `json:"detail,omitempty"`

	// Context contains optional transport metadata.
	// Omitted from JSON if empty.
	Context map[string]any `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For faults, the outermost FaultError in the chain is described. Other errors
// are reported with CodeUnknown, ClassificationPermanent and their message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	fe, ok := AsFault(err)
	if !ok {
		return &ErrorResponse{
			Kind:           UnknownFault.name,
			Code:           string(CodeUnknown),
			Message:        err.Error(),
			Classification: string(ClassificationPermanent),
		}
	}
	return response(fe)
}

func response(fe FaultError) *ErrorResponse {
	return &ErrorResponse{
		Kind:           fe.Kind().Name(),
		WireName:       fe.WireName(),
		Code:           string(fe.Code()),
		Message:        fe.Message(),
		Classification: string(fe.Classification()),
		Detail:         fe.Detail().Fields(),
		Context:        fe.Context(),
	}
}

// MarshalJSON implements json.Marshaler for faultError so faults can be
// embedded directly in API responses.
//
// Example:
//
//	data, _ := json.Marshal(fe)
//	// {"kind":"FileNotFound","wireName":"FileNotFoundFault","code":"NOT_FOUND",...}
func (e *faultError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(response(e))
	if err != nil {
		return nil, fmt.Errorf("marshal %s fault: %w", e.kind.name, err)
	}
	return data, nil
}
