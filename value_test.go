package jsondec_test

import (
	"testing"

	jsondec "github.com/halvdan/jsondec"
)

func TestKindNames(t *testing.T) {
	cases := map[jsondec.Kind]string{
		jsondec.KindNull:   "null",
		jsondec.KindBool:   "bool",
		jsondec.KindNumber: "float",
		jsondec.KindString: "string",
		jsondec.KindArray:  "list",
		jsondec.KindObject: "object",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestValueConstructorsAndAccessors(t *testing.T) {
	if v := jsondec.Null(); v.Kind() != jsondec.KindNull {
		t.Fatalf("Null kind = %v", v.Kind())
	}
	if v := jsondec.Boolean(true); !v.Bool() {
		t.Fatalf("Boolean payload lost")
	}
	if v := jsondec.Number(1.5); v.Num() != 1.5 {
		t.Fatalf("Number payload = %v", v.Num())
	}
	if v := jsondec.String("hi"); v.Str() != "hi" {
		t.Fatalf("String payload = %q", v.Str())
	}
	arr := jsondec.Array(jsondec.Number(1), jsondec.Number(2))
	if arr.Len() != 2 || arr.Items()[1].Num() != 2 {
		t.Fatalf("Array payload = %v items", arr.Len())
	}
	obj := jsondec.Object(map[string]jsondec.Value{"b": jsondec.Null(), "a": jsondec.Null()})
	if !obj.Has("a") || obj.Has("c") {
		t.Fatalf("Has misreports keys")
	}
	keys := obj.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Keys = %v, want sorted [a b]", keys)
	}
}

func TestFieldLookup(t *testing.T) {
	obj := jsondec.Object(map[string]jsondec.Value{"name": jsondec.String("Ann")})

	v, err := obj.Field("name")
	if err != nil {
		t.Fatalf("Field(name) error: %v", err)
	}
	if v.Str() != "Ann" {
		t.Fatalf("Field(name) = %q", v.Str())
	}

	_, err = obj.Field("age")
	iss, ok := jsondec.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("missing key should yield one issue, got %v", err)
	}
	if iss[0].Code != jsondec.CodeRequired || iss[0].Path != "/age" {
		t.Fatalf("missing key issue = %+v", iss[0])
	}

	_, err = jsondec.Number(1).Field("age")
	iss, ok = jsondec.AsIssues(err)
	if !ok || iss[0].Code != jsondec.CodeInvalidType {
		t.Fatalf("non-object lookup issue = %v", err)
	}
}
