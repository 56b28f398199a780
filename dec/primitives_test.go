package dec_test

import (
	"strconv"
	"testing"
	"time"

	jsondec "github.com/halvdan/jsondec"
	"github.com/halvdan/jsondec/dec"
)

func firstIssue(t *testing.T, err error) jsondec.Issue {
	t.Helper()
	iss, ok := jsondec.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("want Issues, got %v", err)
	}
	return iss[0]
}

var nonString = []jsondec.Value{
	jsondec.Null(),
	jsondec.Boolean(true),
	jsondec.Number(1),
	jsondec.Array(),
	jsondec.Object(nil),
}

func TestString(t *testing.T) {
	d := dec.String()
	got, err := d(jsondec.String("hi"))
	if err != nil || got != "hi" {
		t.Fatalf("String success = %q, %v", got, err)
	}
	for _, v := range nonString {
		_, err := d(v)
		it := firstIssue(t, err)
		if it.Code != jsondec.CodeInvalidType || it.Message != "Could not decode: '{string}'" {
			t.Fatalf("kind %v: issue = %+v", v.Kind(), it)
		}
	}
}

func TestFloat(t *testing.T) {
	d := dec.Float()
	got, err := d(jsondec.Number(2.5))
	if err != nil || got != 2.5 {
		t.Fatalf("Float success = %v, %v", got, err)
	}
	_, err = d(jsondec.String("2.5"))
	if it := firstIssue(t, err); it.Message != "Could not decode: '{float}'" {
		t.Fatalf("Float mismatch message = %q", it.Message)
	}
}

func TestIntFloorsTowardNegativeInfinity(t *testing.T) {
	d := dec.Int()
	cases := map[float64]int{30: 30, 2.9: 2, -1.5: -2, 0: 0}
	for in, want := range cases {
		got, err := d(jsondec.Number(in))
		if err != nil || got != want {
			t.Fatalf("Int(%v) = %d, %v; want %d", in, got, err, want)
		}
	}
	_, err := d(jsondec.Boolean(true))
	if it := firstIssue(t, err); it.Message != "Could not decode: '{float}'" {
		t.Fatalf("Int mismatch message = %q", it.Message)
	}
}

func TestBool(t *testing.T) {
	d := dec.Bool()
	got, err := d(jsondec.Boolean(true))
	if err != nil || !got {
		t.Fatalf("Bool success = %v, %v", got, err)
	}
	_, err = d(jsondec.Null())
	if it := firstIssue(t, err); it.Message != "Could not decode: '{bool}'" {
		t.Fatalf("Bool mismatch message = %q", it.Message)
	}
}

func TestListDropsFailedElements(t *testing.T) {
	d := dec.List(dec.Int())
	got, err := d(jsondec.Array(
		jsondec.Number(1),
		jsondec.String("skip"),
		jsondec.Number(2),
		jsondec.Null(),
		jsondec.Number(3),
	))
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("List kept %v, want [1 2 3] in order", got)
	}
}

func TestListRejectsNonArray(t *testing.T) {
	_, err := dec.List(dec.Int())(jsondec.Object(nil))
	if it := firstIssue(t, err); it.Message != "Could not decode: '{list}'" {
		t.Fatalf("List mismatch message = %q", it.Message)
	}
}

func TestListStrict(t *testing.T) {
	d := dec.ListStrict(dec.Int())
	got, err := d(jsondec.Array(jsondec.Number(1), jsondec.Number(2)))
	if err != nil || len(got) != 2 {
		t.Fatalf("ListStrict success = %v, %v", got, err)
	}

	_, err = d(jsondec.Array(jsondec.Number(1), jsondec.String("bad")))
	it := firstIssue(t, err)
	if it.Path != "/1" {
		t.Fatalf("ListStrict path = %q, want /1", it.Path)
	}
	if it.Message != "Could not decode: '{float}'" {
		t.Fatalf("ListStrict message rewritten: %q", it.Message)
	}
}

func TestMapTryMap(t *testing.T) {
	length := dec.Map(dec.String(), func(s string) int { return len(s) })
	if n, err := length(jsondec.String("four")); err != nil || n != 4 {
		t.Fatalf("Map = %d, %v", n, err)
	}

	atoi := dec.TryMap(dec.String(), func(s string) (int, error) { return strconv.Atoi(s) })
	if n, err := atoi(jsondec.String("42")); err != nil || n != 42 {
		t.Fatalf("TryMap = %d, %v", n, err)
	}
	if _, err := atoi(jsondec.String("nope")); err == nil {
		t.Fatalf("TryMap should propagate transform failure")
	}
}

func TestAndThenBranchesOnValue(t *testing.T) {
	// Pick the payload decoder based on a tag field in the same object.
	tagged := dec.AndThen(
		dec.Decode1(dec.Named("kind", dec.String()), func(k string) string { return k }),
		func(kind string) dec.Decoder[any] {
			if kind == "count" {
				return dec.Decode1(dec.Named("value", dec.Int()), func(n int) any { return n })
			}
			return dec.Decode1(dec.Named("value", dec.String()), func(s string) any { return s })
		},
	)

	v := mustParse(t, `{"kind":"count","value":3}`)
	got, err := tagged(v)
	if err != nil || got != 3 {
		t.Fatalf("tagged count = %v, %v", got, err)
	}

	v = mustParse(t, `{"kind":"label","value":"hi"}`)
	got, err = tagged(v)
	if err != nil || got != "hi" {
		t.Fatalf("tagged label = %v, %v", got, err)
	}
}

func TestNullable(t *testing.T) {
	d := dec.Nullable(dec.Int())
	got, err := d(jsondec.Null())
	if err != nil || got != nil {
		t.Fatalf("Nullable(null) = %v, %v", got, err)
	}
	got, err = d(jsondec.Number(7))
	if err != nil || got == nil || *got != 7 {
		t.Fatalf("Nullable(7) = %v, %v", got, err)
	}
	if _, err := d(jsondec.String("x")); err == nil {
		t.Fatalf("Nullable should not absorb shape mismatches")
	}
}

func TestTime(t *testing.T) {
	d := dec.Time()
	got, err := d(jsondec.String("2024-05-01T10:30:00Z"))
	if err != nil {
		t.Fatalf("Time error: %v", err)
	}
	want := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Time = %v", got)
	}

	_, err = d(jsondec.String("yesterday"))
	if it := firstIssue(t, err); it.Code != jsondec.CodeParseError {
		t.Fatalf("bad timestamp issue = %+v", it)
	}
	_, err = d(jsondec.Number(1714559400))
	if it := firstIssue(t, err); it.Code != jsondec.CodeInvalidType {
		t.Fatalf("non-string timestamp issue = %+v", it)
	}
}

func TestDecodeString(t *testing.T) {
	d := dec.ListStrict(dec.Int())
	got, err := dec.DecodeString(d, `[1,2,3]`)
	if err != nil || len(got) != 3 {
		t.Fatalf("DecodeString = %v, %v", got, err)
	}
	_, err = dec.DecodeString(d, `[1,2`)
	if it := firstIssue(t, err); it.Code != jsondec.CodeParseError {
		t.Fatalf("malformed text issue = %+v", it)
	}
}
