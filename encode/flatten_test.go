package encode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/secretscan/yamlline/parse"
)

func parseAnnotated(t *testing.T, in string) ([]Value, []string) {
	t.Helper()
	root, err := parse.Parse([]byte(in), parse.WithValueAnnotations())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	src := strings.Split(strings.TrimSuffix(in, "\n"), "\n")
	return Flatten(root, src), src
}

func TestFlattenOrder(t *testing.T) {
	// breadth first traversal visits b before the nested z, the line
	// sort has to put z first
	in := "a:\n  z: v2\nb: v3\n"
	vals, _ := parseAnnotated(t, in)
	want := []Value{
		{Key: "z", Value: "v2", Line: 2, SourceLine: "  z: v2"},
		{Key: "b", Value: "v3", Line: 3, SourceLine: "b: v3"},
	}
	if diff := cmp.Diff(want, vals); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenSkipsNonStrings(t *testing.T) {
	in := "n: 10\nb: true\ne:\ns: keepme\nlist:\n- dropped\n"
	vals, _ := parseAnnotated(t, in)
	if len(vals) != 1 || vals[0].Key != "s" || vals[0].Value != "keepme" {
		t.Errorf("vals = %+v", vals)
	}
}

func TestFlattenBinary(t *testing.T) {
	vals, _ := parseAnnotated(t, "data: !!binary aGVsbG8=\n")
	if len(vals) != 1 {
		t.Fatalf("vals = %+v", vals)
	}
	if string(vals[0].Binary) != "hello" || vals[0].Value != "" {
		t.Errorf("binary value = %+v", vals[0])
	}
}

func TestFlattenNil(t *testing.T) {
	if vals := Flatten(nil, nil); vals != nil {
		t.Errorf("Flatten(nil) = %+v", vals)
	}
}

func TestFlattenSourceLineOutOfRange(t *testing.T) {
	root, err := parse.Parse([]byte("a: x\n"), parse.WithValueAnnotations())
	if err != nil {
		t.Fatal(err)
	}
	got := Flatten(root, nil)
	if len(got) != 1 || got[0].SourceLine != "" {
		t.Errorf("vals = %+v", got)
	}
}
