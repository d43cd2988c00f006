package vimfault

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ErrMalformedDetail is matched by *DetailError.
var ErrMalformedDetail = errors.New("malformed fault detail")

// MoRef is a vim25 ManagedObjectReference.
type MoRef struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// String returns the reference as "Type:Value", e.g. "VirtualMachine:vm-42".
func (m MoRef) String() string {
	return m.Type + ":" + m.Value
}

// IsZero reports whether the reference is empty.
func (m MoRef) IsZero() bool {
	return m.Type == "" && m.Value == ""
}

// ParseMoRef parses the "Type:Value" form produced by MoRef.String.
func ParseMoRef(s string) (MoRef, error) {
	typ, value, ok := strings.Cut(s, ":")
	if !ok || typ == "" || value == "" {
		return MoRef{}, fmt.Errorf("invalid managed object reference %q", s)
	}
	return MoRef{Type: typ, Value: value}, nil
}

// FieldValue is the set of Go types detail fields are held as.
type FieldValue interface {
	string | int64 | bool | MoRef | []string
}

// FieldProblem describes one field that could not be taken from a payload.
type FieldProblem struct {
	Field  string
	Reason string
}

// DetailError lists the problems found while building a detail record.
type DetailError struct {
	Kind     string
	Problems []FieldProblem
}

// Error returns the string representation of the error.
func (e *DetailError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = p.Field + ": " + p.Reason
	}
	return fmt.Sprintf("malformed %s detail: %s", e.Kind, strings.Join(parts, "; "))
}

// Is reports whether target is ErrMalformedDetail.
func (e *DetailError) Is(target error) bool {
	return target == ErrMalformedDetail
}

// Detail holds the field values of one fault occurrence.
//
// A Detail is immutable; accessors return copies. The zero Detail is an empty
// record bound to no kind.
type Detail struct {
	kind   *Kind
	values map[string]any
}

// NewDetail builds a detail record for kind from raw field values.
//
// Each schema field present in raw is converted to its declared type. Fields
// the schema does not declare are ignored. Missing required fields and values
// that cannot be converted are reported in a *DetailError; the returned Detail
// still holds every field that was valid.
func NewDetail(kind *Kind, raw map[string]any) (Detail, error) {
	d := Detail{kind: kind}
	if kind == nil {
		return d, nil
	}

	var problems []FieldProblem
	for _, f := range kind.Fields() {
		v, ok := raw[f.Name]
		if !ok || v == nil {
			if !f.Optional {
				problems = append(problems, FieldProblem{Field: f.Name, Reason: "missing required field"})
			}
			continue
		}
		cv, err := coerce(f.Type, v)
		if err != nil {
			problems = append(problems, FieldProblem{Field: f.Name, Reason: err.Error()})
			continue
		}
		if d.values == nil {
			d.values = make(map[string]any)
		}
		d.values[f.Name] = cv
	}

	if len(problems) > 0 {
		return d, &DetailError{Kind: kind.name, Problems: problems}
	}
	return d, nil
}

// Kind returns the kind the record was built for.
func (d Detail) Kind() *Kind {
	return d.kind
}

// Len returns the number of fields present.
func (d Detail) Len() int {
	return len(d.values)
}

// IsEmpty reports whether no field is present.
func (d Detail) IsEmpty() bool {
	return len(d.values) == 0
}

// Has reports whether the named field is present.
func (d Detail) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Value returns the named field.
func (d Detail) Value(name string) (any, bool) {
	v, ok := d.values[name]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// Fields returns a copy of all present fields.
// Returns nil if the record is empty.
func (d Detail) Fields() map[string]any {
	if len(d.values) == 0 {
		return nil
	}
	fields := make(map[string]any, len(d.values))
	for k, v := range d.values {
		fields[k] = cloneValue(v)
	}
	return fields
}

// Names returns the present field names in sorted order.
func (d Detail) Names() []string {
	names := make([]string, 0, len(d.values))
	for k := range d.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both records hold the same fields with equal values.
// The bound kind is not compared.
func (d Detail) Equal(other Detail) bool {
	if len(d.values) != len(other.values) {
		return false
	}
	for k, v := range d.values {
		ov, ok := other.values[k]
		if !ok || !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

// rebind returns the record bound to kind, keeping only fields kind declares
// with the same type.
func (d Detail) rebind(kind *Kind) Detail {
	if d.kind == kind {
		return d
	}
	out := Detail{kind: kind}
	for name, v := range d.values {
		f, ok := kind.Field(name)
		if !ok {
			continue
		}
		cv, err := coerce(f.Type, v)
		if err != nil {
			continue
		}
		if out.values == nil {
			out.values = make(map[string]any)
		}
		out.values[name] = cv
	}
	return out
}

func cloneValue(v any) any {
	if s, ok := v.([]string); ok {
		return slices.Clone(s)
	}
	return v
}

func valueEqual(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok || bok {
		return aok && bok && slices.Equal(as, bs)
	}
	return a == b
}

// Key is a typed accessor for one detail field.
type Key[T FieldValue] struct {
	name string
}

// NewKey returns a key reading the named field as T.
func NewKey[T FieldValue](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the field name.
func (k Key[T]) Name() string {
	return k.name
}

// From returns the field from d. It reports false when the field is absent
// or held as a different type.
func (k Key[T]) From(d Detail) (T, bool) {
	var zero T
	v, ok := d.values[k.name]
	if !ok {
		return zero, false
	}
	t, ok := cloneValue(v).(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// DetailAs decodes d into a caller-defined struct.
//
// Struct fields match detail fields by name, case-insensitively, or by a
// `fault:"name"` tag. Absent detail fields leave the struct field zero.
//
// Example:
//
//	type fileDetail struct {
//	    File string `fault:"file"`
//	}
//	fd, err := vimfault.DetailAs[fileDetail](fe.Detail())
func DetailAs[T any](d Detail) (T, error) {
	var out T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "fault",
	})
	if err != nil {
		return out, fmt.Errorf("create detail decoder: %w", err)
	}
	if err := dec.Decode(d.Fields()); err != nil {
		return out, fmt.Errorf("decode %s detail: %w", kindName(d.kind), err)
	}
	return out, nil
}

func kindName(k *Kind) string {
	if k == nil {
		return "unbound"
	}
	return k.name
}
