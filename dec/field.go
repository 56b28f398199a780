package dec

import (
	jsondec "github.com/halvdan/jsondec"
)

// Field pairs an object key with the decoder for its value. The pairing is
// immutable and performs no lookup at construction time; the key is resolved
// only when a DecodeN combinator runs.
type Field[A any] struct {
	Key string
	Dec Decoder[A]
}

// Named associates a property name with a decoder.
func Named[A any](key string, d Decoder[A]) Field[A] { return Field[A]{Key: key, Dec: d} }

// decodeField performs the lookup-then-decode step for one field. Decode
// failures get the field key prefixed onto their path; the message stays
// exactly what the field decoder produced.
func decodeField[A any](v jsondec.Value, f Field[A]) (A, error) {
	var zero A
	fv, err := v.Field(f.Key)
	if err != nil {
		return zero, err
	}
	a, err := f.Dec(fv)
	if err != nil {
		return zero, prefixIssues(err, f.Key)
	}
	return a, nil
}

// The DecodeN family assembles N independently-decoded fields into one typed
// value via a constructor. Evaluation is strictly left to right and
// short-circuits: once field i fails, field i+1 is never looked up or
// decoded, so the reported failure is always attributable to the first
// declared field that is missing or mismatched.

// Decode aliases Decode1 as the conventional single-field entry point.
func Decode[A1, B any](f1 Field[A1], ctor func(A1) B) Decoder[B] {
	return Decode1(f1, ctor)
}

func Decode1[A1, B any](f1 Field[A1], ctor func(A1) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		return ctor(a1), nil
	}
}

func Decode2[A1, A2, B any](f1 Field[A1], f2 Field[A2], ctor func(A1, A2) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2), nil
	}
}

func Decode3[A1, A2, A3, B any](f1 Field[A1], f2 Field[A2], f3 Field[A3], ctor func(A1, A2, A3) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		a3, err := decodeField(v, f3)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2, a3), nil
	}
}

func Decode4[A1, A2, A3, A4, B any](f1 Field[A1], f2 Field[A2], f3 Field[A3], f4 Field[A4], ctor func(A1, A2, A3, A4) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		a3, err := decodeField(v, f3)
		if err != nil {
			return zero, err
		}
		a4, err := decodeField(v, f4)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2, a3, a4), nil
	}
}

func Decode5[A1, A2, A3, A4, A5, B any](f1 Field[A1], f2 Field[A2], f3 Field[A3], f4 Field[A4], f5 Field[A5], ctor func(A1, A2, A3, A4, A5) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		a3, err := decodeField(v, f3)
		if err != nil {
			return zero, err
		}
		a4, err := decodeField(v, f4)
		if err != nil {
			return zero, err
		}
		a5, err := decodeField(v, f5)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2, a3, a4, a5), nil
	}
}

func Decode6[A1, A2, A3, A4, A5, A6, B any](f1 Field[A1], f2 Field[A2], f3 Field[A3], f4 Field[A4], f5 Field[A5], f6 Field[A6], ctor func(A1, A2, A3, A4, A5, A6) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		a3, err := decodeField(v, f3)
		if err != nil {
			return zero, err
		}
		a4, err := decodeField(v, f4)
		if err != nil {
			return zero, err
		}
		a5, err := decodeField(v, f5)
		if err != nil {
			return zero, err
		}
		a6, err := decodeField(v, f6)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2, a3, a4, a5, a6), nil
	}
}

func Decode7[A1, A2, A3, A4, A5, A6, A7, B any](f1 Field[A1], f2 Field[A2], f3 Field[A3], f4 Field[A4], f5 Field[A5], f6 Field[A6], f7 Field[A7], ctor func(A1, A2, A3, A4, A5, A6, A7) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		a3, err := decodeField(v, f3)
		if err != nil {
			return zero, err
		}
		a4, err := decodeField(v, f4)
		if err != nil {
			return zero, err
		}
		a5, err := decodeField(v, f5)
		if err != nil {
			return zero, err
		}
		a6, err := decodeField(v, f6)
		if err != nil {
			return zero, err
		}
		a7, err := decodeField(v, f7)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2, a3, a4, a5, a6, a7), nil
	}
}

func Decode8[A1, A2, A3, A4, A5, A6, A7, A8, B any](f1 Field[A1], f2 Field[A2], f3 Field[A3], f4 Field[A4], f5 Field[A5], f6 Field[A6], f7 Field[A7], f8 Field[A8], ctor func(A1, A2, A3, A4, A5, A6, A7, A8) B) Decoder[B] {
	return func(v jsondec.Value) (B, error) {
		var zero B
		a1, err := decodeField(v, f1)
		if err != nil {
			return zero, err
		}
		a2, err := decodeField(v, f2)
		if err != nil {
			return zero, err
		}
		a3, err := decodeField(v, f3)
		if err != nil {
			return zero, err
		}
		a4, err := decodeField(v, f4)
		if err != nil {
			return zero, err
		}
		a5, err := decodeField(v, f5)
		if err != nil {
			return zero, err
		}
		a6, err := decodeField(v, f6)
		if err != nil {
			return zero, err
		}
		a7, err := decodeField(v, f7)
		if err != nil {
			return zero, err
		}
		a8, err := decodeField(v, f8)
		if err != nil {
			return zero, err
		}
		return ctor(a1, a2, a3, a4, a5, a6, a7, a8), nil
	}
}
