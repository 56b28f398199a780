package jsondec

import (
	"sort"

	"github.com/halvdan/jsondec/i18n"
)

// Kind identifies which of the six JSON variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the variant name used in diagnostics ("string", "list", ...).
// Arrays render as "list" to match the decoder error wording.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable, closed union over the JSON variants. Values are
// built once (by the parse entry points or the constructors below) and never
// mutated; they are safe to share across goroutines.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Boolean wraps a bool as a Value.
func Boolean(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64 as a Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String wraps a string as a Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array wraps a sequence of Values.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object wraps a key/value mapping. The map is used as-is; callers must not
// mutate it afterwards.
func Object(fields map[string]Value) Value { return Value{kind: KindObject, obj: fields} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean payload; zero unless Kind is KindBool.
func (v Value) Bool() bool { return v.b }

// Num returns the numeric payload; zero unless Kind is KindNumber.
func (v Value) Num() float64 { return v.num }

// Str returns the string payload; empty unless Kind is KindString.
func (v Value) Str() string { return v.str }

// Items returns the array payload; nil unless Kind is KindArray.
func (v Value) Items() []Value { return v.arr }

// Len returns the number of array items or object fields.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns the object's keys in sorted order; nil unless Kind is KindObject.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	ks := make([]string, 0, len(v.obj))
	for k := range v.obj {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}

// Has reports whether v is an object containing key.
func (v Value) Has(key string) bool {
	if v.kind != KindObject {
		return false
	}
	_, ok := v.obj[key]
	return ok
}

// Field looks up key inside an object Value. A missing key yields a
// CodeRequired issue; a non-object receiver yields CodeInvalidType. The issue
// path is the JSON Pointer of the key.
func (v Value) Field(key string) (Value, error) {
	if v.kind != KindObject {
		return Value{}, Issues{Issue{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, map[string]string{"expected": "object"}),
			Params:  map[string]any{"expected": "object"},
		}}
	}
	fv, ok := v.obj[key]
	if !ok {
		return Value{}, Issues{Issue{
			Path:    JoinPointer("", key),
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, map[string]string{"key": key}),
			Params:  map[string]any{"key": key},
		}}
	}
	return fv, nil
}
