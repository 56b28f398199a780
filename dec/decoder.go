// Package dec provides composable, type-safe decoders over jsondec values.
//
// A Decoder is a pure function from a parsed Value to a typed result.
// Decoders are built once from the primitives below, combined with Named
// fields and the DecodeN family (or the ObjectBuilder), and reused across
// arbitrarily many inputs. Failure is always reported through jsondec.Issues
// so callers can branch on codes and paths instead of matching message text.
package dec

import (
	"math"

	jsondec "github.com/halvdan/jsondec"
	"github.com/halvdan/jsondec/i18n"
)

// Decoder converts a Value into a typed result. Decoders are stateless and
// safe to share across goroutines.
type Decoder[T any] func(jsondec.Value) (T, error)

// String matches the string variant.
func String() Decoder[string] {
	return func(v jsondec.Value) (string, error) {
		if v.Kind() != jsondec.KindString {
			return "", shapeIssue("string")
		}
		return v.Str(), nil
	}
}

// Float matches the number variant.
func Float() Decoder[float64] {
	return func(v jsondec.Value) (float64, error) {
		if v.Kind() != jsondec.KindNumber {
			return 0, shapeIssue("float")
		}
		return v.Num(), nil
	}
}

// Int decodes a number and rounds it toward negative infinity.
func Int() Decoder[int] {
	return Map(Float(), func(f float64) int { return int(math.Floor(f)) })
}

// Bool matches the boolean variant.
func Bool() Decoder[bool] {
	return func(v jsondec.Value) (bool, error) {
		if v.Kind() != jsondec.KindBool {
			return false, shapeIssue("bool")
		}
		return v.Bool(), nil
	}
}

// Map transforms a decoder's successful result.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		a, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// AndThen sequences a decoder with a decoder-producing continuation: the
// chosen continuation runs against the same input value, enabling
// value-dependent decoding (for example, branching on a tag field).
func AndThen[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		a, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(v)
	}
}

// TryMap transforms a decoder's result through a fallible function.
func TryMap[A, B any](d Decoder[A], f func(A) (B, error)) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		a, err := d(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)
	}
}

// Nullable wraps d so the null variant decodes to nil instead of failing.
func Nullable[A any](d Decoder[A]) Decoder[*A] {
	return func(v jsondec.Value) (*A, error) {
		if v.Kind() == jsondec.KindNull {
			return nil, nil
		}
		a, err := d(v)
		if err != nil {
			return nil, err
		}
		return &a, nil
	}
}

// DecodeString parses text and applies d in one step.
func DecodeString[T any](d Decoder[T], text string, opts ...jsondec.ParseOpt) (T, error) {
	var zero T
	v, err := jsondec.FromText(text, opts...)
	if err != nil {
		return zero, err
	}
	return d(v)
}

// DecodeBytes parses data and applies d in one step.
func DecodeBytes[T any](d Decoder[T], data []byte, opts ...jsondec.ParseOpt) (T, error) {
	var zero T
	v, err := jsondec.FromBytes(data, opts...)
	if err != nil {
		return zero, err
	}
	return d(v)
}

// shapeIssue builds the canonical mismatch failure for an expected kind.
func shapeIssue(expected string) error {
	return jsondec.Issues{jsondec.Issue{
		Path:    "/",
		Code:    jsondec.CodeInvalidType,
		Message: i18n.T(jsondec.CodeInvalidType, map[string]string{"expected": expected}),
		Offset:  -1,
		Params:  map[string]any{"expected": expected},
	}}
}
