package vimfault

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// coerce converts a raw payload value to the Go type held for typ.
func coerce(typ FieldType, v any) (any, error) {
	switch typ {
	case TypeString:
		return coerceString(v)
	case TypeInt:
		return coerceInt(v)
	case TypeBool:
		return coerceBool(v)
	case TypeMoRef:
		return coerceMoRef(v)
	case TypeStrings:
		return coerceStrings(v)
	default:
		return nil, fmt.Errorf("unsupported field type %v", typ)
	}
}

func coerceString(v any) (any, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	}
	return nil, fmt.Errorf("expected string, got %T", v)
}

func coerceInt(v any) (any, error) {
	if s, ok := v.(string); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected integer, got %q", s)
		}
		return n, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return nil, fmt.Errorf("integer %d overflows int64", u)
		}
		return int64(u), nil
	}
	return nil, fmt.Errorf("expected integer, got %T", v)
}

func coerceBool(v any) (any, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.TrimSpace(b) {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, fmt.Errorf("expected boolean, got %q", b)
	}
	return nil, fmt.Errorf("expected boolean, got %T", v)
}

func coerceMoRef(v any) (any, error) {
	switch m := v.(type) {
	case MoRef:
		return m, nil
	case *MoRef:
		if m == nil {
			return nil, fmt.Errorf("expected managed object reference, got nil")
		}
		return *m, nil
	case string:
		return ParseMoRef(m)
	case map[string]any:
		typ, _ := m["type"].(string)
		value, _ := m["value"].(string)
		if typ == "" || value == "" {
			return nil, fmt.Errorf("managed object reference needs type and value")
		}
		return MoRef{Type: typ, Value: value}, nil
	case map[string]string:
		if m["type"] == "" || m["value"] == "" {
			return nil, fmt.Errorf("managed object reference needs type and value")
		}
		return MoRef{Type: m["type"], Value: m["value"]}, nil
	}
	return nil, fmt.Errorf("expected managed object reference, got %T", v)
}

func coerceStrings(v any) (any, error) {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out, nil
	case string:
		return []string{s}, nil
	case []any:
		out := make([]string, 0, len(s))
		for i, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, item)
			}
			out = append(out, str)
		}
		return out, nil
	}
	return nil, fmt.Errorf("expected string list, got %T", v)
}
