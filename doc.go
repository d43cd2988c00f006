// Package vimfault turns vim25 SOAP faults into typed Go errors.
//
// When a vSphere API call fails, the server sends a fault element named after
// the fault type (FileFaultFault, ConcurrentAccessFault, ...) whose children
// describe why the call failed. This package binds such a fault to a
// FaultError that keeps the fault kind, the server's message, the structured
// detail fields and, optionally, the lower-level error the fault was found
// while handling.
//
// # Features
//
//   - A static catalog of vim25 fault kinds with field schemas and inheritance
//   - One generic FaultError type, discriminated by *Kind
//   - Graceful fallback for fault kinds newer than the client (UnknownFault)
//   - Partial recovery of detail records with a precise problem report
//   - Codes and retry classification per kind
//   - JSON serialization and slog integration
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (kinds, registries, details and faults never change)
//   - Schemas are data: a kind is a name, a base and a field table
//   - Binding never fails: unknown or broken payloads still produce a fault
//
// # Quick Start
//
// Binding a decoded fault:
//
//	err := vimfault.Decode("FileNotFoundFault", "File was not found",
//	    map[string]any{"file": "[ds1] vm/vm.vmx"}, nil)
//
// Generic handling:
//
//	var fe vimfault.FaultError
//	if errors.As(err, &fe) {
//	    log.Printf("%s: %s", fe.Kind().Name(), fe.Message())
//	}
//
// Specific handling:
//
//	switch {
//	case errors.Is(err, vimfault.FileAlreadyExists):
//	    path, _ := vimfault.Get(err, vimfault.KeyFile)
//	    return retryWithOtherPath(path)
//	case errors.Is(err, vimfault.FileFault):
//	    // any other file fault
//	}
//
// Retry logic:
//
//	if vimfault.IsRetryable(err) {
//	    time.Sleep(backoff)
//	    return retry(operation)
//	}
//
// # Kinds and Registries
//
// Each fault kind is a *Kind created with NewKind and listed in the catalog.
// A kind names its vim25 type, its base kind and its own detail fields;
// inherited fields come from the base. The default registry is built once at
// package initialization and is safe for concurrent use. Extend returns a new
// registry with extra kinds, for example kinds loaded from a catalog file.
//
// Wire names are matched case-sensitively on their local part. "vim25:X" and
// "{urn:vim25}X" both resolve like "X"; a Clark name in another namespace does
// not resolve.
//
// # Detail Records
//
// A Detail is built from the transport's raw field map with NewDetail. Values
// are converted to the schema's types: string, int64, bool, MoRef or []string.
// Typed access goes through Key values or DetailAs:
//
//	file, ok := vimfault.KeyFile.From(fe.Detail())
//
//	type lockDetail struct{ File string }
//	d, err := vimfault.DetailAs[lockDetail](fe.Detail())
//
// # Fallbacks
//
// A wire name missing from the registry binds to UnknownFault; its message,
// cause and wire name are kept and the raw fields are available in Context
// under ContextRawDetail. A payload the transport could not decode at all is
// reported with Malformed, which binds to MalformedFault.
//
// # Standard Library Compatibility
//
// FaultError works with standard library error functions:
//
//	// errors.Is matches a kind and all kinds derived from it
//	if errors.Is(err, vimfault.InvalidState) { ... }
//
//	// errors.As finds the fault in a wrapped chain
//	var fe vimfault.FaultError
//	if errors.As(err, &fe) { ... }
//
//	// errors.Unwrap retrieves the lower-level cause
//	cause := errors.Unwrap(fe)
package vimfault
