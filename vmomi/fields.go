package vmomi

import (
	"reflect"
	"strings"

	"github.com/vmware/govmomi/vim25/types"

	"github.com/jmgilman/vimfault"
)

var (
	methodFaultType = reflect.TypeOf(types.MethodFault{})
	moRefType       = reflect.TypeOf(types.ManagedObjectReference{})
)

// detailFields reads the fields of a govmomi fault value into the raw map
// form vimfault expects, keyed by xml element name. Embedded types are
// flattened; the MethodFault base is skipped since its faultCause and
// faultMessage are handled separately. Values of shapes vimfault cannot hold
// are left out.
func detailFields(fault types.BaseMethodFault) map[string]any {
	v := reflect.ValueOf(fault)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	raw := make(map[string]any)
	collect(v, raw)
	return raw
}

func collect(v reflect.Value, raw map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if sf.Type != methodFaultType {
				collect(fv, raw)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}

		name, omitEmpty := xmlName(sf)
		if name == "" || (omitEmpty && fv.IsZero()) {
			continue
		}
		if value, ok := fieldValue(fv); ok {
			raw[name] = value
		}
	}
}

// xmlName returns the element or attribute name from a field's xml tag.
func xmlName(sf reflect.StructField) (name string, omitEmpty bool) {
	tag, ok := sf.Tag.Lookup("xml")
	if !ok {
		return "", false
	}
	parts := strings.Split(tag, ",")
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	if parts[0] == "-" {
		return "", false
	}
	return parts[0], omitEmpty
}

func fieldValue(v reflect.Value) (any, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return v.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Struct:
		if v.Type() == moRefType {
			ref := v.Interface().(types.ManagedObjectReference)
			return vimfault.MoRef{Type: ref.Type, Value: ref.Value}, true
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return nil, false
		}
		out := make([]string, v.Len())
		for i := range out {
			out[i] = v.Index(i).String()
		}
		return out, true
	}
	return nil, false
}
