package vimfault

// Code is the broad category a fault kind belongs to.
// Codes are string-based for debuggability and natural JSON serialization.
type Code string

const (
	// Resource errors.

	// CodeNotFound indicates a referenced object, file or user does not exist.
	CodeNotFound Code = "NOT_FOUND"

	// CodeAlreadyExists indicates the object or file being created already exists.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeConflict indicates the operation raced with another writer or holder.
	CodeConflict Code = "CONFLICT"

	// CodeInvalidState indicates the target is in a state that forbids the operation.
	CodeInvalidState Code = "INVALID_STATE"

	// Permission errors.

	// CodeUnauthorized indicates the session is missing or the login was rejected.
	CodeUnauthorized Code = "UNAUTHORIZED"

	// CodeForbidden indicates the session lacks a required privilege.
	CodeForbidden Code = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates an argument, name or property was rejected.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInvalidConfig indicates a host or virtual machine configuration was rejected.
	CodeInvalidConfig Code = "INVALID_CONFIGURATION"

	// CodeNotSupported indicates the server does not implement the operation.
	CodeNotSupported Code = "NOT_SUPPORTED"

	// Infrastructure errors.

	// CodeResourceExhausted indicates CPU, memory or disk capacity ran out.
	CodeResourceExhausted Code = "INSUFFICIENT_RESOURCES"

	// CodeTimeout indicates the server gave up waiting.
	CodeTimeout Code = "TIMEOUT"

	// CodeCanceled indicates the request was canceled before it completed.
	CodeCanceled Code = "CANCELED"

	// CodeNetwork indicates the server could not reach a managed host.
	CodeNetwork Code = "NETWORK_ERROR"

	// CodeFileSystem indicates a datastore file operation failed.
	CodeFileSystem Code = "FILE_ERROR"

	// CodeGuest indicates an operation inside a guest OS failed.
	CodeGuest Code = "GUEST_OPERATION_FAILED"

	// System errors.

	// CodeInternal indicates a server-side failure with no finer category.
	CodeInternal Code = "INTERNAL_ERROR"

	// CodeMalformed indicates the fault payload could not be decoded.
	CodeMalformed Code = "MALFORMED_FAULT"

	// CodeUnknown indicates a fault kind this client does not know.
	CodeUnknown Code = "UNKNOWN"
)

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool {
	_, ok := defaultClassifications[c]
	return ok
}
