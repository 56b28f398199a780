package jsondec

// Severity controls how an enforcement finding is treated.
type Severity int

const (
	// Ignore suppresses the finding entirely.
	Ignore Severity = iota
	// Warn records the finding but lets decoding proceed.
	Warn
	// Error aborts decoding with the finding.
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// Strictness bundles input hygiene policies applied while tokens stream in.
type Strictness struct {
	// OnDuplicateKey decides what happens when an object repeats a key.
	// Ignore keeps last-wins semantics silently. Warn keeps last-wins but
	// reports the duplicates through WarnSink. Error fails the parse at the
	// first duplicate.
	OnDuplicateKey Severity
}

// ParseOpt controls parse-time behavior of the entry points.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth caps container nesting; 0 means no limit.
	MaxDepth int
	// MaxBytes caps consumed input bytes; 0 means no limit.
	MaxBytes int64
	// WarnSink receives Warn-severity findings. Nil drops them.
	WarnSink func(Issue)
}

func (o ParseOpt) enforceEnabled() bool {
	return o.Strictness.OnDuplicateKey != Ignore || o.MaxDepth > 0 || o.MaxBytes > 0
}
