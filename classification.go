package vimfault

// Classification indicates whether the remote operation is worth retrying.
// It is advisory: the transport or caller owns the retry policy.
type Classification string

const (
	// ClassificationRetryable indicates transient failures that may succeed on retry.
	// Examples: concurrent modification, a task already in progress, host timeouts.
	ClassificationRetryable Classification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: missing files, invalid arguments, permission denials.
	ClassificationPermanent Classification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c Classification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps codes to their default classification.
// Individual kinds may override it with WithDefaultClassification.
var defaultClassifications = map[Code]Classification{
	// Retryable errors (the server state may change under us)
	CodeConflict: ClassificationRetryable,
	CodeTimeout:  ClassificationRetryable,
	CodeNetwork:  ClassificationRetryable,

	// Permanent errors
	CodeNotFound:          ClassificationPermanent,
	CodeAlreadyExists:     ClassificationPermanent,
	CodeInvalidState:      ClassificationPermanent,
	CodeUnauthorized:      ClassificationPermanent,
	CodeForbidden:         ClassificationPermanent,
	CodeInvalidInput:      ClassificationPermanent,
	CodeInvalidConfig:     ClassificationPermanent,
	CodeNotSupported:      ClassificationPermanent,
	CodeResourceExhausted: ClassificationPermanent,
	CodeCanceled:          ClassificationPermanent,
	CodeFileSystem:        ClassificationPermanent,
	CodeGuest:             ClassificationPermanent,
	CodeInternal:          ClassificationPermanent,
	CodeMalformed:         ClassificationPermanent,
	CodeUnknown:           ClassificationPermanent,
}

// defaultClassification returns the default classification for a code.
// Returns ClassificationPermanent if the code is not in the map.
func defaultClassification(code Code) Classification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
