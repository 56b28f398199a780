package jsondec_test

import (
	"testing"

	jsondec "github.com/halvdan/jsondec"
)

func TestDetectDuplicateKeysBytes(t *testing.T) {
	in := []byte(`{"a":1,"b":{"x":1,"x":2},"a":3}`)
	issues, err := jsondec.DetectDuplicateKeysBytes(in, -1)
	if err != nil {
		t.Fatalf("detect error: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("found %d issues, want 2: %+v", len(issues), issues)
	}
	if issues[0].Path != "/b/x" || issues[1].Path != "/a" {
		t.Fatalf("paths = %q, %q", issues[0].Path, issues[1].Path)
	}
	for _, it := range issues {
		if it.Code != jsondec.CodeDuplicateKey {
			t.Fatalf("code = %q", it.Code)
		}
	}
}

func TestDetectDuplicateKeysMaxIssues(t *testing.T) {
	in := []byte(`{"a":1,"a":2,"a":3,"a":4}`)
	issues, err := jsondec.DetectDuplicateKeysBytes(in, 2)
	if err != nil {
		t.Fatalf("detect error: %v", err)
	}
	if len(issues) != 3 {
		t.Fatalf("found %d issues, want 2 findings plus marker: %+v", len(issues), issues)
	}
	if issues[2].Code != jsondec.CodeTruncated {
		t.Fatalf("last issue = %+v, want truncated marker", issues[2])
	}
}

func TestDetectDuplicateKeysClean(t *testing.T) {
	issues, err := jsondec.DetectDuplicateKeysBytes([]byte(`{"a":1,"b":{"a":1}}`), -1)
	if err != nil {
		t.Fatalf("detect error: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("clean input reported %+v", issues)
	}
}
