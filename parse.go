package jsondec

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/halvdan/jsondec/i18n"
	eng "github.com/halvdan/jsondec/internal/engine"
)

// FromText parses a JSON document into a Value. Malformed input yields Issues
// with code parse_error. The optional ParseOpt enables duplicate key policy,
// depth, and size enforcement.
func FromText(text string, opts ...ParseOpt) (Value, error) {
	return FromReader(strings.NewReader(text), opts...)
}

// FromBytes parses a JSON document from a byte slice.
func FromBytes(data []byte, opts ...ParseOpt) (Value, error) {
	return FromSource(JSONBytes(data), opts...)
}

// FromReader parses a JSON document from a streaming reader.
func FromReader(r io.Reader, opts ...ParseOpt) (Value, error) {
	return FromSource(JSONReader(r), opts...)
}

// FromSource parses a complete document from an arbitrary token Source.
// Exactly one top-level value is accepted; trailing content is an error.
func FromSource(s Source, opts ...ParseOpt) (Value, error) {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.enforceEnabled() {
		s = enforceSource(s, opt)
	}
	v, err := readValue(s)
	if err != nil {
		return Value{}, toIssues(err, s)
	}
	if _, err := s.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, toIssues(err, s)
		}
		return Value{}, parseIssue(s.Location(), "unexpected trailing content")
	}
	return v, nil
}

func readValue(s Source) (Value, error) {
	tok, err := s.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, parseIssue(s.Location(), "unexpected end of input")
		}
		return Value{}, err
	}
	return readValueFrom(s, tok)
}

func readValueFrom(s Source, tok Token) (Value, error) {
	switch tok.Kind {
	case TokenNull:
		return Null(), nil
	case TokenBool:
		return Boolean(tok.Bool), nil
	case TokenString:
		return String(tok.Str), nil
	case TokenNumber:
		f, err := strconv.ParseFloat(tok.Num, 64)
		if err != nil {
			return Value{}, parseIssue(tok.Offset, "invalid number literal: "+tok.Num)
		}
		return Number(f), nil
	case TokenBeginArray:
		var items []Value
		for {
			t, err := s.NextToken()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return Value{}, parseIssue(s.Location(), "unterminated array")
				}
				return Value{}, err
			}
			if t.Kind == TokenEndArray {
				return Array(items...), nil
			}
			item, err := readValueFrom(s, t)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
	case TokenBeginObject:
		fields := make(map[string]Value)
		for {
			t, err := s.NextToken()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return Value{}, parseIssue(s.Location(), "unterminated object")
				}
				return Value{}, err
			}
			if t.Kind == TokenEndObject {
				return Object(fields), nil
			}
			if t.Kind != TokenKey {
				return Value{}, parseIssue(t.Offset, "expected object key")
			}
			fv, err := readValue(s)
			if err != nil {
				return Value{}, err
			}
			// Repeated keys keep the last occurrence; the Strictness policy
			// decides whether that is silent, warned, or fatal.
			fields[t.Str] = fv
		}
	default:
		return Value{}, parseIssue(tok.Offset, "unexpected token")
	}
}

func parseIssue(offset int64, detail string) error {
	return Issues{Issue{
		Path:    "/",
		Code:    CodeParseError,
		Message: i18n.T(CodeParseError, nil),
		Hint:    detail,
		Offset:  offset,
	}}
}

// toIssues converts engine and driver errors into the public Issues form.
func toIssues(err error, s Source) error {
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{Issue{
			Path:    ie.Path,
			Code:    ie.Code,
			Message: i18n.T(ie.Code, nil),
			Hint:    ie.Message,
			Offset:  s.Location(),
		}}
	}
	return Issues{Issue{
		Path:    "/",
		Code:    CodeParseError,
		Message: i18n.T(CodeParseError, nil),
		Hint:    err.Error(),
		Cause:   err,
		Offset:  s.Location(),
	}}
}
