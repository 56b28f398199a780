// Package json provides a token source backed by encoding/json.
package json

import (
	"bytes"
	stdjson "encoding/json"
	"io"
	"strconv"

	eng "github.com/halvdan/jsondec/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type tokenSource struct {
	dec        *stdjson.Decoder
	stack      []frame
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := stdjson.NewDecoder(r)
	dec.UseNumber()
	return &tokenSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *tokenSource) Location() int64 { return s.lastOffset }

func (s *tokenSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case stdjson.Delim:
		switch v {
		case '{':
			s.push(kindObject)
			return s.emit(eng.KindBeginObject), nil
		case '[':
			s.push(kindArray)
			return s.emit(eng.KindBeginArray), nil
		case '}':
			s.pop()
			return s.emit(eng.KindEndObject), nil
		default: // ']'
			s.pop()
			return s.emit(eng.KindEndArray), nil
		}
	case string:
		if s.takeKeySlot() {
			t := s.emit(eng.KindKey)
			t.Str = v
			return t, nil
		}
		s.valueDone()
		t := s.emit(eng.KindString)
		t.Str = v
		return t, nil
	case bool:
		s.valueDone()
		t := s.emit(eng.KindBool)
		t.Bool = v
		return t, nil
	case stdjson.Number:
		s.valueDone()
		t := s.emit(eng.KindNumber)
		t.Num = string(v)
		return t, nil
	case float64:
		s.valueDone()
		t := s.emit(eng.KindNumber)
		t.Num = strconv.FormatFloat(v, 'g', -1, 64)
		return t, nil
	default: // nil is the JSON null literal
		s.valueDone()
		return s.emit(eng.KindNull), nil
	}
}

func (s *tokenSource) emit(k eng.Kind) eng.Token { return eng.Token{Kind: k, Offset: s.lastOffset} }

func (s *tokenSource) push(k containerKind) {
	s.stack = append(s.stack, frame{kind: k, expectingKey: k == kindObject})
}

func (s *tokenSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.valueDone()
}

// takeKeySlot consumes the key position when the enclosing object awaits one.
func (s *tokenSource) takeKeySlot() bool {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && top.expectingKey {
			top.expectingKey = false
			return true
		}
	}
	return false
}

func (s *tokenSource) valueDone() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}
