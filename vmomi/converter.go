// Package vmomi converts faults decoded by govmomi into vimfault errors.
//
// govmomi already parses the SOAP envelope and the fault detail element into
// its generated types. This package maps those values onto the vimfault
// catalog so callers get one FaultError shape regardless of whether the fault
// came from a method call, a task or a property collector update.
package vmomi

import (
	"errors"
	"reflect"

	"github.com/vmware/govmomi/task"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/jmgilman/vimfault"
)

// ContextFaultCode holds the SOAP faultcode of a fault taken from a SOAP
// envelope, e.g. "ServerFaultCode".
const ContextFaultCode = "faultcode"

// Converter maps govmomi fault values onto a registry.
// A Converter is safe for concurrent use.
type Converter struct {
	registry *vimfault.Registry
}

// NewConverter returns a converter that resolves kinds against r.
// A nil r uses vimfault.Default().
func NewConverter(r *vimfault.Registry) *Converter {
	if r == nil {
		r = vimfault.Default()
	}
	return &Converter{registry: r}
}

// FromMethodFault binds a govmomi fault value.
//
// The kind is resolved from the Go type name, which govmomi generates from
// the vim25 type name. Detail fields are read from the value's xml tags. A
// faultCause on the value is converted as well and becomes part of the
// returned fault's cause, joined with cause when both are present. An empty
// message falls back to the first localizable fault message.
//
// A nil fault produces a MalformedFault.
func (c *Converter) FromMethodFault(message string, fault types.BaseMethodFault, cause error) vimfault.FaultError {
	if fault == nil || isNilPointer(fault) {
		return vimfault.Malformed("", message, cause)
	}

	mf := fault.GetMethodFault()
	if message == "" {
		message = faultMessage(mf)
	}
	if mf.FaultCause != nil {
		nested := c.FromLocalizedMethodFault(mf.FaultCause)
		if cause == nil {
			cause = nested
		} else {
			cause = errors.Join(cause, nested)
		}
	}

	name := typeName(fault)
	raw := detailFields(fault)
	if kind, err := c.registry.LookupType(name); err == nil {
		return c.registry.Bind(kind, message, raw, cause)
	}
	return c.registry.Decode(name+"Fault", message, raw, cause)
}

// FromLocalizedMethodFault binds the fault carried by a task result or a
// faultCause. A missing fault value produces a MalformedFault.
func (c *Converter) FromLocalizedMethodFault(lmf *types.LocalizedMethodFault) vimfault.FaultError {
	if lmf == nil {
		return vimfault.Malformed("", "", nil)
	}
	return c.FromMethodFault(lmf.LocalizedMessage, lmf.Fault, nil)
}

// FromError finds a vim25 fault in err's chain and binds it.
//
// Recognized errors are, in chain order: a FaultError (returned as is), a
// govmomi SOAP fault, a govmomi vim fault and a task.Error. It reports false
// when the chain holds none of these.
func (c *Converter) FromError(err error) (vimfault.FaultError, bool) {
	for _, e := range vimfault.Chain(err) {
		switch {
		case isFaultError(e):
			return e.(vimfault.FaultError), true
		case soap.IsSoapFault(e):
			return c.fromSoapFault(soap.ToSoapFault(e)), true
		case soap.IsVimFault(e):
			return c.FromMethodFault("", soap.ToVimFault(e), nil), true
		}
		if te, ok := e.(task.Error); ok {
			return c.FromLocalizedMethodFault(te.LocalizedMethodFault), true
		}
	}
	return nil, false
}

func (c *Converter) fromSoapFault(f *soap.Fault) vimfault.FaultError {
	var fe vimfault.FaultError
	if mf, ok := asMethodFault(f.VimFault()); ok {
		fe = c.FromMethodFault(f.String, mf, nil)
	} else {
		fe = vimfault.Malformed("", f.String, nil)
	}
	if f.Code == "" {
		return fe
	}
	return vimfault.WithContext(fe, ContextFaultCode, f.Code)
}

var defaultConverter = NewConverter(nil)

// FromMethodFault binds a govmomi fault value against the default registry.
func FromMethodFault(message string, fault types.BaseMethodFault, cause error) vimfault.FaultError {
	return defaultConverter.FromMethodFault(message, fault, cause)
}

// FromLocalizedMethodFault binds a task or faultCause fault against the
// default registry.
func FromLocalizedMethodFault(lmf *types.LocalizedMethodFault) vimfault.FaultError {
	return defaultConverter.FromLocalizedMethodFault(lmf)
}

// FromError finds and binds a vim25 fault against the default registry.
func FromError(err error) (vimfault.FaultError, bool) {
	return defaultConverter.FromError(err)
}

func isFaultError(e error) bool {
	_, ok := e.(vimfault.FaultError)
	return ok
}

// asMethodFault accepts both pointer and value forms; govmomi's SOAP decoder
// stores the detail element as a value.
func asMethodFault(v any) (types.BaseMethodFault, bool) {
	if f, ok := v.(types.BaseMethodFault); ok {
		return f, !isNilPointer(f)
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, false
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	f, ok := p.Interface().(types.BaseMethodFault)
	return f, ok
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func typeName(fault types.BaseMethodFault) string {
	t := reflect.TypeOf(fault)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func faultMessage(mf *types.MethodFault) string {
	for _, m := range mf.FaultMessage {
		if m.Message != "" {
			return m.Message
		}
	}
	return ""
}
