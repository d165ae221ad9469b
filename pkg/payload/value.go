package payload

import (
	"encoding/json"
	"reflect"
)

// Object is a decoded associative value. Keys are case-sensitive.
type Object = map[string]any

// Type is the discriminant of a decoded value.
type Type int

const (
	TypeUnknown Type = iota
	TypeNull
	TypeBool
	TypeString
	TypeNumber
	TypeArray
	TypeObject
)

var typeNames = map[Type]string{
	TypeUnknown: "unknown",
	TypeNull:    "null",
	TypeBool:    "boolean",
	TypeString:  "string",
	TypeNumber:  "number",
	TypeArray:   "array",
	TypeObject:  "object",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeUnknown]
}

// TypeOf classifies v. Typed nil pointers, maps and slices are reported as
// TypeNull so that a composite that resolved to nothing is filtered like an
// explicit null.
func TypeOf(v any) Type {
	switch x := v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBool
	case string:
		return TypeString
	case json.Number,
		float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return TypeNumber
	case Object:
		if x == nil {
			return TypeNull
		}
		return TypeObject
	case []any:
		if x == nil {
			return TypeNull
		}
		return TypeArray
	case []Object:
		if x == nil {
			return TypeNull
		}
		return TypeArray
	default:
		if isNil(v) {
			return TypeNull
		}
		return TypeUnknown
	}
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// AsObject returns v as an Object when it is a non-null object.
func AsObject(v any) (Object, bool) {
	o, ok := v.(Object)
	if !ok || o == nil {
		return nil, false
	}
	return o, true
}

// AsArray returns the elements of v when it is a non-null array.
func AsArray(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		if x == nil {
			return nil, false
		}
		return x, true
	case []Object:
		if x == nil {
			return nil, false
		}
		out := make([]any, len(x))
		for i, o := range x {
			out[i] = o
		}
		return out, true
	default:
		return nil, false
	}
}
