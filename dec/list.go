package dec

import (
	"strconv"

	jsondec "github.com/halvdan/jsondec"
)

// List decodes an array with d, keeping successes in original order and
// silently dropping elements whose decode failed. Use ListStrict when a
// failing element should fail the whole list.
func List[A any](d Decoder[A]) Decoder[[]A] {
	return func(v jsondec.Value) ([]A, error) {
		if v.Kind() != jsondec.KindArray {
			return nil, shapeIssue("list")
		}
		out := make([]A, 0, v.Len())
		for _, item := range v.Items() {
			a, err := d(item)
			if err != nil {
				continue
			}
			out = append(out, a)
		}
		return out, nil
	}
}

// ListStrict decodes an array with d and fails at the first failing element,
// re-rooting the issue path under the element index.
func ListStrict[A any](d Decoder[A]) Decoder[[]A] {
	return func(v jsondec.Value) ([]A, error) {
		if v.Kind() != jsondec.KindArray {
			return nil, shapeIssue("list")
		}
		out := make([]A, 0, v.Len())
		for i, item := range v.Items() {
			a, err := d(item)
			if err != nil {
				return nil, prefixIssues(err, strconv.Itoa(i))
			}
			out = append(out, a)
		}
		return out, nil
	}
}

// prefixIssues re-roots issue paths under the given pointer token. Messages
// are left untouched so a nested failure reads the same as a standalone one.
func prefixIssues(err error, token string) error {
	iss, ok := jsondec.AsIssues(err)
	if !ok {
		return err
	}
	base := jsondec.JoinPointer("", token)
	out := make(jsondec.Issues, 0, len(iss))
	for _, it := range iss {
		switch it.Path {
		case "", "/":
			it.Path = base
		default:
			it.Path = base + it.Path
		}
		out = append(out, it)
	}
	return out
}
