// Package engine holds the token-level machinery shared by all input
// sources: token kinds, the TokenSource contract, and streaming enforcement
// of duplicate keys, nesting depth, and input size.
package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
// Numbers are carried as text; conversion happens when the value tree is
// built so sources never lose precision on their own.
type Token struct {
	Kind   Kind
	Str    string // key and string payloads
	Num    string // numeric payload as text
	Bool   bool
	Offset int64 // byte offset; -1 when the source cannot tell
}

// TokenSource is the minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// SimpleIssue is a minimal issue representation used below the public error
// model. The root package converts these into jsondec.Issue values.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)
