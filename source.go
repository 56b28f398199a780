package jsondec

import (
	"io"
	"sync"

	eng "github.com/halvdan/jsondec/internal/engine"
	gosrc "github.com/halvdan/jsondec/source/gojson"
	stdsrc "github.com/halvdan/jsondec/source/json"
)

// TokenKind enumerates JSON token kinds.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in the input stream. Offset records the byte
// position when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	Str    string // key and string payloads
	Num    string // numeric payload as text
	Bool   bool
	Offset int64
}

// Source abstracts over polymorphic input sources.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver converts JSON input into a Source via a pluggable SPI. The
// default implementation is backed by goccy/go-json and may be swapped with
// SetJSONDriver.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = goJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the go-json-backed default driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = goJSONDriver{}
	jsonDriverMu.Unlock()
}

func getJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	d := currentJSONDriver
	jsonDriverMu.RUnlock()
	return d
}

// goJSONDriver wraps the goccy/go-json implementation.
type goJSONDriver struct{}

func (goJSONDriver) NewReader(r io.Reader) Source { return SourceFromEngine(gosrc.NewReader(r)) }
func (goJSONDriver) NewBytes(b []byte) Source     { return SourceFromEngine(gosrc.NewBytes(b)) }
func (goJSONDriver) Name() string                 { return "go-json" }

// StdJSONDriver returns a driver backed by encoding/json, for callers that
// prefer the standard library decoder.
func StdJSONDriver() JSONDriver { return stdJSONDriver{} }

type stdJSONDriver struct{}

func (stdJSONDriver) NewReader(r io.Reader) Source { return SourceFromEngine(stdsrc.NewReader(r)) }
func (stdJSONDriver) NewBytes(b []byte) Source     { return SourceFromEngine(stdsrc.NewBytes(b)) }
func (stdJSONDriver) Name() string                 { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source using the current driver.
func JSONReader(r io.Reader) Source { return getJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source using the current driver.
func JSONBytes(b []byte) Source { return getJSONDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.TokenSource as a Source.
func SourceFromEngine(inner eng.TokenSource) Source { return &engineSourceAdapter{inner: inner} }

// enforceSource wraps s with runtime enforcement (duplicate keys, depth,
// bytes), forwarding Warn-severity findings to opt.WarnSink. Sources already
// backed by an engine.TokenSource are unwrapped to avoid adapter round-trips.
func enforceSource(s Source, opt ParseOpt) Source {
	var forward func(eng.SimpleIssue)
	if opt.WarnSink != nil {
		sink := opt.WarnSink
		forward = func(si eng.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: s.Location()})
		}
	}
	eo := eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   forward,
	}
	if ea, ok := s.(*engineSourceAdapter); ok {
		return SourceFromEngine(eng.WrapWithEnforcement(ea.inner, eo))
	}
	return SourceFromEngine(eng.WrapWithEnforcement(engineTokenSource{s}, eo))
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromEngineKind(t.Kind), Str: t.Str, Num: t.Num, Bool: t.Bool, Offset: t.Offset}, nil
}

func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

// engineTokenSource adapts a public Source back into the engine contract so
// third-party sources still get enforcement.
type engineTokenSource struct{ s Source }

func (a engineTokenSource) NextToken() (eng.Token, error) {
	t, err := a.s.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: toEngineKind(t.Kind), Str: t.Str, Num: t.Num, Bool: t.Bool, Offset: t.Offset}, nil
}

func (a engineTokenSource) Location() int64 { return a.s.Location() }

func fromEngineKind(k eng.Kind) TokenKind {
	switch k {
	case eng.KindBeginObject:
		return TokenBeginObject
	case eng.KindEndObject:
		return TokenEndObject
	case eng.KindBeginArray:
		return TokenBeginArray
	case eng.KindEndArray:
		return TokenEndArray
	case eng.KindKey:
		return TokenKey
	case eng.KindString:
		return TokenString
	case eng.KindNumber:
		return TokenNumber
	case eng.KindBool:
		return TokenBool
	default:
		return TokenNull
	}
}

func toEngineKind(k TokenKind) eng.Kind {
	switch k {
	case TokenBeginObject:
		return eng.KindBeginObject
	case TokenEndObject:
		return eng.KindEndObject
	case TokenBeginArray:
		return eng.KindBeginArray
	case TokenEndArray:
		return eng.KindEndArray
	case TokenKey:
		return eng.KindKey
	case TokenString:
		return eng.KindString
	case TokenNumber:
		return eng.KindNumber
	case TokenBool:
		return eng.KindBool
	default:
		return eng.KindNull
	}
}
