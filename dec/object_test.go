package dec_test

import (
	"strings"
	"testing"

	jsondec "github.com/halvdan/jsondec"
	"github.com/halvdan/jsondec/dec"
)

func TestObjectBuilder(t *testing.T) {
	d, err := dec.Object().
		Field("name", dec.Any(dec.String())).
		Field("age", dec.Any(dec.Int())).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	got, err := d(mustParse(t, `{"name":"Ann","age":30}`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got["name"] != "Ann" || got["age"] != 30 {
		t.Fatalf("decoded %v", got)
	}
}

func TestObjectBuilderDeclarationOrderFailFast(t *testing.T) {
	var first, second int
	d := dec.Object().
		Field("a", dec.Any(recording(dec.Int(), &first))).
		Field("b", dec.Any(recording(dec.Int(), &second))).
		MustBuild()

	_, err := d(mustParse(t, `{"b":2}`))
	iss, ok := jsondec.AsIssues(err)
	if !ok || iss[0].Code != jsondec.CodeRequired || iss[0].Path != "/a" {
		t.Fatalf("issue = %v", err)
	}
	if first != 0 || second != 0 {
		t.Fatalf("decoders ran %d/%d times after a missing first field", first, second)
	}
}

func TestObjectBuilderDuplicateDeclaration(t *testing.T) {
	_, err := dec.Object().
		Field("a", dec.Any(dec.Int())).
		Field("a", dec.Any(dec.String())).
		Build()
	if err == nil || !strings.Contains(err.Error(), "declared twice") {
		t.Fatalf("duplicate declaration error = %v", err)
	}
}

func TestBind(t *testing.T) {
	type profile struct {
		Name    string   `json:"name"`
		Age     int      `json:"age"`
		Tags    []string `json:"tags"`
		Ignored string   `json:"-"`
	}
	d, err := dec.Bind[profile](dec.Object().
		Field("name", dec.Any(dec.String())).
		Field("age", dec.Any(dec.Int())).
		Field("tags", dec.Any(dec.ListStrict(dec.String()))))
	if err != nil {
		t.Fatalf("Bind error: %v", err)
	}

	got, err := d(mustParse(t, `{"name":"Ann","age":30,"tags":["x"]}`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Name != "Ann" || got.Age != 30 || len(got.Tags) != 1 || got.Tags[0] != "x" {
		t.Fatalf("bound %+v", got)
	}

	_, err = d(mustParse(t, `{"name":"Ann","age":true,"tags":[]}`))
	iss, ok := jsondec.AsIssues(err)
	if !ok || iss[0].Path != "/age" {
		t.Fatalf("bind failure = %v", err)
	}
}

func TestBindRejectsNonStruct(t *testing.T) {
	_, err := dec.Bind[int](dec.Object().Field("a", dec.Any(dec.Int())))
	if err == nil {
		t.Fatalf("Bind on a non-struct should fail at construction")
	}
}
