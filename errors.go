package jsondec

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"  // shape mismatch; Params["expected"] names the wanted kind
	CodeRequired     = "required"      // object key absent; Params["key"] names it
	CodeParseError   = "parse_error"   // malformed input text or exceeded depth
	CodeDuplicateKey = "duplicate_key" // duplicate object key in the input
	CodeTruncated    = "truncated"     // input exceeded the configured byte cap
)

// Issue represents a single decode or enforcement finding.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"expected":"string"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Message != "" {
			fmt.Fprintf(b, "%s at %s: %s", it.Code, normalizePointer(it.Path), it.Message)
		} else {
			fmt.Fprintf(b, "%s at %s", it.Code, normalizePointer(it.Path))
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ---- JSON Pointer helpers ----

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// EscapePointerToken escapes a single reference token per RFC 6901.
func EscapePointerToken(s string) string { return pointerEscaper.Replace(s) }

// JoinPointer appends an escaped token to a JSON Pointer base.
func JoinPointer(base, token string) string {
	if base == "" || base == "/" {
		return "/" + EscapePointerToken(token)
	}
	return base + "/" + EscapePointerToken(token)
}

func normalizePointer(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
