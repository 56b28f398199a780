package dec

import (
	"fmt"
	"reflect"
	"strings"

	jsondec "github.com/halvdan/jsondec"
)

// Any adapts a typed decoder to the dynamic form consumed by ObjectBuilder.
func Any[A any](d Decoder[A]) Decoder[any] {
	return func(v jsondec.Value) (any, error) {
		a, err := d(v)
		if err != nil {
			return nil, err
		}
		return a, nil
	}
}

type namedAny struct {
	key string
	dec Decoder[any]
}

// ObjectBuilder declares object fields in order and produces one decoder
// over all of them, collapsing the fixed-arity DecodeN family into a single
// construct with the same fail-fast, leftmost-first evaluation.
type ObjectBuilder struct {
	fields []namedAny
	err    error
}

// Object starts an empty builder.
func Object() *ObjectBuilder { return &ObjectBuilder{} }

// Field appends a field declaration. Declaring the same key twice is a
// construction error, reported by Build.
func (b *ObjectBuilder) Field(key string, d Decoder[any]) *ObjectBuilder {
	if b.err == nil {
		for _, f := range b.fields {
			if f.key == key {
				b.err = fmt.Errorf("dec: field %q declared twice", key)
				return b
			}
		}
	}
	b.fields = append(b.fields, namedAny{key: key, dec: d})
	return b
}

// Build returns a decoder yielding the decoded fields keyed by name.
// Evaluation follows declaration order and stops at the first failure.
func (b *ObjectBuilder) Build() (Decoder[map[string]any], error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := append([]namedAny(nil), b.fields...)
	return func(v jsondec.Value) (map[string]any, error) {
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			a, err := decodeField(v, Field[any]{Key: f.key, Dec: f.dec})
			if err != nil {
				return nil, err
			}
			out[f.key] = a
		}
		return out, nil
	}, nil
}

// MustBuild is Build that panics on construction errors.
func (b *ObjectBuilder) MustBuild() Decoder[map[string]any] {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

// Bind builds the object decoder and maps its result onto struct T. Declared
// keys are matched to struct fields via their json tag, falling back to the
// field name; fields tagged "-" are skipped.
func Bind[T any](b *ObjectBuilder) (Decoder[T], error) {
	inner, err := b.Build()
	if err != nil {
		return nil, err
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dec: Bind target must be a struct, got %s", rt.Kind())
	}
	index := make(map[string][]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		key := resolveStructKey(sf)
		if key == "" {
			continue
		}
		index[key] = sf.Index
	}
	return func(v jsondec.Value) (T, error) {
		var out T
		m, err := inner(v)
		if err != nil {
			return out, err
		}
		rv := reflect.ValueOf(&out).Elem()
		for key, val := range m {
			idx, ok := index[key]
			if !ok {
				continue
			}
			x := reflect.ValueOf(val)
			if !x.IsValid() {
				continue
			}
			fv := rv.FieldByIndex(idx)
			switch {
			case x.Type().AssignableTo(fv.Type()):
				fv.Set(x)
			case x.Type().ConvertibleTo(fv.Type()):
				fv.Set(x.Convert(fv.Type()))
			default:
				return out, fmt.Errorf("dec: cannot assign key %q of type %s to field type %s", key, x.Type(), fv.Type())
			}
		}
		return out, nil
	}, nil
}

// MustBind is Bind that panics on construction errors.
func MustBind[T any](b *ObjectBuilder) Decoder[T] {
	d, err := Bind[T](b)
	if err != nil {
		panic(err)
	}
	return d
}

// resolveStructKey picks the object key for a struct field: json tag name
// when present, otherwise the field name. A "-" tag disables the field.
func resolveStructKey(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("json"); ok {
		name := tag
		if i := strings.IndexByte(tag, ','); i >= 0 {
			name = tag[:i]
		}
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}
