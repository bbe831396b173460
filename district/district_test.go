// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package district_test

import (
	"errors"
	"testing"

	"github.com/creachadair/jdoc"
	"github.com/creachadair/jdoc/ast"
	"github.com/creachadair/jdoc/district"
	"github.com/google/go-cmp/cmp"

	_ "embed"
)

//go:embed testdata/district.json
var districtInput string

func TestCount(t *testing.T) {
	got, err := district.ParseAndCount(districtInput)
	if err != nil {
		t.Fatalf("ParseAndCount: %v", err)
	}
	want := []district.Result{
		{Key: "1", Count: 1},
		{Key: "2", Count: 1},
		{Key: "3", Count: 1},
		{Key: "4", Count: 1},
		{Key: "5", Count: 2},
		{Key: "10", Count: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Results (-want, +got):\n%s", diff)
	}
	if got, want := district.Format(got), "1,1,1,1,2,3"; got != want {
		t.Errorf("Format: got %q, want %q", got, want)
	}
}

func TestCountGraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"Empty", `{"r":{}}`, 1},
		{"Isolated", `{"r":{"a":[]}}`, 1},
		{"Edge", `{"r":{"a":["b"]}}`, 1},
		{"BothDirections", `{"r":{"a":["b"],"b":["a"]}}`, 1},
		{"Repeated", `{"r":{"a":["b","b","b"]}}`, 1},
		{"SelfLoop", `{"r":{"a":["a"]}}`, 1},
		{"Square", `{"r":{"a":["b"],"b":["c"],"c":["d"],"d":["a"]}}`, 1},
		{"TwoTriangles", `{"r":{"a":["b","c"],"b":["c"],"x":["y","z"],"y":["z"]}}`, 2},
		{"TrianglesSharingVertex", `{"r":{"a":["b","c","d","e"],"b":["c"],"d":["e"]}}`, 1},
		{"LongPathNoCycle", `{"r":{"a":["b"],"b":["c"],"c":["d"],"d":["e"]}}`, 1},
		{"ThreeLoops", `{"r":{"a":["a"],"b":["b"],"c":["c"],"d":["e"]}}`, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rs, err := district.Count(ast.MustParse(tc.input))
			if err != nil {
				t.Fatalf("Count: %v", err)
			} else if len(rs) != 1 {
				t.Fatalf("Count: got %d results, want 1", len(rs))
			}
			if rs[0].Count != tc.want {
				t.Errorf("Count: got %d, want %d", rs[0].Count, tc.want)
			}
		})
	}
}

func TestCountOrder(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`{"b":{},"10":{},"9":{},"a":{},"-1":{}}`, []string{"-1", "9", "10", "a", "b"}},
		{`{"10":{},"9":{},"1a":{}}`, []string{"9", "10", "1a"}},
		{`{"1a":{},"x":{},"2":{},"10b":{},"100":{}}`, []string{"2", "100", "10b", "1a", "x"}},
	}
	for _, test := range tests {
		rs, err := district.Count(ast.MustParse(test.input))
		if err != nil {
			t.Fatalf("Count %#q: %v", test.input, err)
		}
		var keys []string
		for _, r := range rs {
			keys = append(keys, r.Key)
		}
		if diff := cmp.Diff(test.want, keys); diff != "" {
			t.Errorf("Count %#q keys (-want, +got):\n%s", test.input, diff)
		}
	}
}

// Edges listed from only one side still join both endpoints, so a cycle
// written entirely as forward references is found.
func TestCountOneSidedEdges(t *testing.T) {
	rs, err := district.Count(ast.MustParse(`{"r":{"a":["b"],"c":["a"],"b":["d","c"]}}`))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	want := []district.Result{{Key: "r", Count: 1}}
	if diff := cmp.Diff(want, rs); diff != "" {
		t.Errorf("Results (-want, +got):\n%s", diff)
	}

	// Two triangles, each written with one-sided references, count as two.
	rs, err = district.Count(ast.MustParse(`{"r":{"a":["b"],"b":["c"],"c":["a"],"x":["y"],"z":["x","y"]}}`))
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if got := district.Format(rs); got != "2" {
		t.Errorf("Format: got %q, want %q", got, "2")
	}
}

func TestCountErrors(t *testing.T) {
	tests := []struct {
		name  string
		input ast.Value
	}{
		{"NilRoot", nil},
		{"ArrayRoot", ast.Array{}},
		{"RegionNotObject", ast.MustParse(`{"1":[]}`)},
		{"AreaNotArray", ast.MustParse(`{"1":{"a":"b"}}`)},
		{"NeighbourNotString", ast.MustParse(`{"1":{"a":["b",2]}}`)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := district.Count(tc.input)
			if err == nil {
				t.Fatalf("Count: got %+v, want error", got)
			}
			t.Logf("Got expected error: %v", err)
		})
	}

	_, err := district.ParseAndCount(`{"1":{"a":["b",]}}`)
	var perr *jdoc.Error
	if !errors.As(err, &perr) || perr.Kind != jdoc.TrailingComma {
		t.Errorf("ParseAndCount: got %v, want %v", err, jdoc.TrailingComma)
	}
}
