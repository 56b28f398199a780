package engine

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

func isEOF(err error) bool { return errors.Is(err, io.EOF) }

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	MaxBytes    int64
	// IssueSink receives non-fatal findings (duplicate keys under DupWarn).
	// Fatal findings are returned as IssueError regardless of the sink.
	IssueSink func(SimpleIssue)
}

// Enabled reports whether wrapping a source with these options would have
// any effect.
func (o EnforceOptions) Enabled() bool {
	return o.OnDuplicate != DupIgnore || o.MaxDepth > 0 || o.MaxBytes > 0
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy, maximum nesting depth, and maximum consumed bytes while tracking
// JSON Pointer paths for its findings.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcer{inner: inner, opt: opt}
}

type enforcer struct {
	inner TokenSource
	opt   EnforceOptions
	stack []frame
	depth int
}

func (e *enforcer) Location() int64 { return e.inner.Location() }

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	rawPath := e.pathFor(tok)
	path := normalizePath(rawPath)

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := frame{kind: kindArray, path: rawPath}
		if tok.Kind == KindBeginObject {
			f = frame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: rawPath}
		}
		e.stack = append(e.stack, f)
		e.depth++
		if e.opt.MaxDepth > 0 && e.depth > e.opt.MaxDepth {
			return Token{}, IssueError{SimpleIssue{Code: "parse_error", Path: path, Message: "max depth exceeded"}}
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		if e.depth > 0 {
			e.depth--
		}
		e.valueDone()
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				if e.opt.OnDuplicate != DupIgnore {
					if _, seen := top.keys[tok.Str]; seen {
						si := SimpleIssue{Code: "duplicate_key", Path: path, Message: "key '" + tok.Str + "' duplicated"}
						if e.opt.OnDuplicate == DupError {
							return Token{}, IssueError{si}
						}
						if e.opt.IssueSink != nil {
							e.opt.IssueSink(si)
						}
					}
				}
				top.keys[tok.Str] = struct{}{}
				top.expectingKey = false
				top.pendingKey = tok.Str
			}
		}
	case KindString, KindNumber, KindBool, KindNull:
		e.valueDone()
	}

	if e.opt.MaxBytes > 0 {
		if off := e.Location(); off >= 0 && off > e.opt.MaxBytes {
			return Token{}, IssueError{SimpleIssue{Code: "truncated", Path: path, Message: "max bytes exceeded"}}
		}
	}

	return tok, nil
}

// valueDone marks that a complete value just finished inside the enclosing
// container, so an object parent expects a key next.
func (e *enforcer) valueDone() {
	if n := len(e.stack); n > 0 {
		top := &e.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}
}

// pathFor computes the JSON Pointer the given token belongs to, advancing
// array indices as sibling values complete.
func (e *enforcer) pathFor(tok Token) string {
	if len(e.stack) == 0 {
		if tok.Kind == KindKey {
			return joinPointer("", tok.Str)
		}
		return ""
	}
	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		return joinPointer(top.path, tok.Str)
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		if top.kind == kindArray {
			p := joinPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		if top.pendingKey != "" || !top.expectingKey {
			return joinPointer(top.path, top.pendingKey)
		}
		return top.path
	default:
		return top.path
	}
}

func normalizePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	if base == "" {
		return "/" + pointerEscaper.Replace(token)
	}
	return base + "/" + pointerEscaper.Replace(token)
}

// DetectDuplicateKeys drains the source and collects duplicate-key findings.
// maxIssues < 0 means unlimited; 0 disables collection; > 0 caps the count
// and appends a "truncated" marker once reached.
func DetectDuplicateKeys(src TokenSource, maxIssues int) ([]SimpleIssue, error) {
	var issues []SimpleIssue
	full := false
	sink := func(si SimpleIssue) {
		if maxIssues == 0 || full {
			return
		}
		issues = append(issues, si)
		if maxIssues > 0 && len(issues) >= maxIssues {
			issues = append(issues, SimpleIssue{Code: "truncated", Path: "/", Message: "max issues reached"})
			full = true
		}
	}
	wrapped := WrapWithEnforcement(src, EnforceOptions{OnDuplicate: DupWarn, IssueSink: sink})
	for {
		if _, err := wrapped.NextToken(); err != nil {
			if isEOF(err) {
				return issues, nil
			}
			return issues, err
		}
		if full {
			return issues, nil
		}
	}
}
