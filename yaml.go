package jsondec

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/halvdan/jsondec/i18n"
)

// FromYAML parses a YAML document into a Value, restricted to the JSON data
// model: mapping keys must be strings and scalars must map onto null, bool,
// number, or string.
func FromYAML(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, Issues{Issue{
			Path:    "/",
			Code:    CodeParseError,
			Message: i18n.T(CodeParseError, nil),
			Hint:    err.Error(),
			Cause:   err,
			Offset:  -1,
		}}
	}
	return FromAny(raw)
}

// FromAny converts a generic Go value tree (as produced by the yaml and json
// unmarshalers) into a Value. Unsupported types yield an invalid_type issue.
func FromAny(raw any) (Value, error) { return valueFromAny(raw, "") }

func valueFromAny(raw any, path string) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Boolean(x), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case string:
		return String(x), nil
	case []any:
		items := make([]Value, 0, len(x))
		for i, raw := range x {
			v, err := valueFromAny(raw, JoinPointer(path, strconv.Itoa(i)))
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Array(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, raw := range x {
			v, err := valueFromAny(raw, JoinPointer(path, k))
			if err != nil {
				return Value{}, err
			}
			fields[k] = v
		}
		return Object(fields), nil
	case map[any]any:
		fields := make(map[string]Value, len(x))
		for k, raw := range x {
			ks, ok := k.(string)
			if !ok {
				return Value{}, Issues{Issue{
					Path:    normalizePointer(path),
					Code:    CodeInvalidType,
					Message: i18n.T(CodeInvalidType, map[string]string{"expected": "string"}),
					Hint:    fmt.Sprintf("non-string mapping key %v", k),
					Offset:  -1,
					Params:  map[string]any{"expected": "string"},
				}}
			}
			v, err := valueFromAny(raw, JoinPointer(path, ks))
			if err != nil {
				return Value{}, err
			}
			fields[ks] = v
		}
		return Object(fields), nil
	default:
		return Value{}, Issues{Issue{
			Path:    normalizePointer(path),
			Code:    CodeInvalidType,
			Message: i18n.T(CodeInvalidType, nil),
			Hint:    fmt.Sprintf("unsupported value of type %T", raw),
			Offset:  -1,
		}}
	}
}
