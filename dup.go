package jsondec

import (
	"io"

	eng "github.com/halvdan/jsondec/internal/engine"
)

// DetectDuplicateKeysBytes scans data and reports duplicated object keys
// without building a Value. maxIssues < 0 means unlimited; > 0 caps the
// count and appends a truncated marker once reached.
func DetectDuplicateKeysBytes(data []byte, maxIssues int) ([]Issue, error) {
	return detectDuplicateKeys(JSONBytes(data), maxIssues)
}

// DetectDuplicateKeysReader is the streaming variant of
// DetectDuplicateKeysBytes.
func DetectDuplicateKeysReader(r io.Reader, maxIssues int) ([]Issue, error) {
	return detectDuplicateKeys(JSONReader(r), maxIssues)
}

func detectDuplicateKeys(s Source, maxIssues int) ([]Issue, error) {
	var inner eng.TokenSource
	if ea, ok := s.(*engineSourceAdapter); ok {
		inner = ea.inner
	} else {
		inner = engineTokenSource{s}
	}
	found, err := eng.DetectDuplicateKeys(inner, maxIssues)
	issues := make([]Issue, 0, len(found))
	for _, si := range found {
		issues = append(issues, Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: -1})
	}
	if err != nil {
		return issues, toIssues(err, s)
	}
	return issues, nil
}
