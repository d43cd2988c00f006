package vimfault

import "fmt"

// FieldType is the value type of one detail field.
type FieldType int

const (
	// TypeString is an xsd:string field.
	TypeString FieldType = iota + 1

	// TypeInt is an xsd:int or xsd:long field, held as int64.
	TypeInt

	// TypeBool is an xsd:boolean field.
	TypeBool

	// TypeMoRef is a ManagedObjectReference field, held as MoRef.
	TypeMoRef

	// TypeStrings is a repeated xsd:string field, held as []string.
	TypeStrings
)

var fieldTypeNames = map[FieldType]string{
	TypeString:  "string",
	TypeInt:     "int",
	TypeBool:    "bool",
	TypeMoRef:   "moref",
	TypeStrings: "strings",
}

// String returns the short name of the type ("string", "int", ...).
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FieldType(%d)", int(t))
}

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	_, ok := fieldTypeNames[t]
	return ok
}

// ParseFieldType returns the FieldType with the given short name.
func ParseFieldType(name string) (FieldType, error) {
	for t, n := range fieldTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown field type %q", ErrInvalidKind, name)
}

// FieldSpec describes one named, typed field of a detail schema.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Optional bool
}

// Field returns a required field spec.
func Field(name string, typ FieldType) FieldSpec {
	return FieldSpec{Name: name, Type: typ}
}

// OptionalField returns a field spec that may be absent from a fault payload.
func OptionalField(name string, typ FieldType) FieldSpec {
	return FieldSpec{Name: name, Type: typ, Optional: true}
}

// Kind identifies one remote fault category together with its detail schema.
//
// Kinds are compared by pointer identity and are immutable once created.
// A Kind also satisfies the error interface so it can be used as an
// errors.Is target: errors.Is(err, FileFault) matches a FileFault and every
// kind derived from it.
type Kind struct {
	name           string
	wireName       string
	base           *Kind
	fields         []FieldSpec
	code           Code
	classification Classification
}

// KindOption configures a Kind during NewKind.
type KindOption func(*Kind)

// WithWireName overrides the default wire name (the type name plus "Fault").
func WithWireName(wireName string) KindOption {
	return func(k *Kind) { k.wireName = wireName }
}

// WithFields declares the kind's own detail fields. Inherited fields come
// from the base kind and must not be repeated.
func WithFields(fields ...FieldSpec) KindOption {
	return func(k *Kind) { k.fields = append(k.fields, fields...) }
}

// WithCode sets the kind's code. Kinds without a code inherit their base's.
func WithCode(code Code) KindOption {
	return func(k *Kind) { k.code = code }
}

// WithDefaultClassification overrides the classification derived from the
// code for every fault of the kind and its descendants.
func WithDefaultClassification(c Classification) KindOption {
	return func(k *Kind) { k.classification = c }
}

// NewKind creates a fault kind named after its vim25 type.
func NewKind(name string, base *Kind, opts ...KindOption) *Kind {
	k := &Kind{
		name:     name,
		wireName: name + "Fault",
		base:     base,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Name returns the vim25 type name, e.g. "FileFault".
func (k *Kind) Name() string {
	return k.name
}

// WireName returns the detail element name the server emits, e.g. "FileFaultFault".
func (k *Kind) WireName() string {
	return k.wireName
}

// Base returns the parent kind, or nil for a root kind.
func (k *Kind) Base() *Kind {
	return k.base
}

// Fields returns the full schema: inherited fields first, then the kind's own.
func (k *Kind) Fields() []FieldSpec {
	var fields []FieldSpec
	if k.base != nil {
		fields = k.base.Fields()
	}
	return append(fields, k.fields...)
}

// Field returns the schema entry for name, searching the base chain.
func (k *Kind) Field(name string) (FieldSpec, bool) {
	for cur := k; cur != nil; cur = cur.base {
		for _, f := range cur.fields {
			if f.Name == name {
				return f, true
			}
		}
	}
	return FieldSpec{}, false
}

// Code returns the kind's code, inherited from the base chain when unset.
func (k *Kind) Code() Code {
	for cur := k; cur != nil; cur = cur.base {
		if cur.code != "" {
			return cur.code
		}
	}
	return CodeUnknown
}

// Classification walks the base chain and returns the first explicit
// classification, or the default for the first code, whichever is nearer.
func (k *Kind) Classification() Classification {
	for cur := k; cur != nil; cur = cur.base {
		if cur.classification != "" {
			return cur.classification
		}
		if cur.code != "" {
			return defaultClassification(cur.code)
		}
	}
	return defaultClassification(CodeUnknown)
}

// IsA reports whether k is other or derives from it.
func (k *Kind) IsA(other *Kind) bool {
	if other == nil {
		return false
	}
	for cur := k; cur != nil; cur = cur.base {
		if cur == other {
			return true
		}
	}
	return false
}

// Lineage returns the kind names from k up to its root.
func (k *Kind) Lineage() []string {
	var names []string
	for cur := k; cur != nil; cur = cur.base {
		names = append(names, cur.name)
	}
	return names
}

// Error implements error so a Kind can be an errors.Is target.
func (k *Kind) Error() string {
	return "vim25 fault " + k.name
}

// String returns the kind name.
func (k *Kind) String() string {
	return k.name
}
