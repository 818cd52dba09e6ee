package main

import (
	"strings"
	"testing"
)

func TestParseTypes(t *testing.T) {
	types, err := parseTypes("float32, float64,int32")
	if err != nil {
		t.Fatalf("parseTypes: %v", err)
	}
	if len(types) != 3 {
		t.Fatalf("parseTypes: got %d types, want 3", len(types))
	}

	if _, err := parseTypes("complex64"); err == nil {
		t.Error("parseTypes accepted unsupported type complex64")
	}
	if _, err := parseTypes(""); err == nil {
		t.Error("parseTypes accepted empty type list")
	}
}

func TestExportName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"float32", "Float32"},
		{"uint8", "Uint8"},
		{"int64", "Int64"},
	}
	for _, tt := range tests {
		if got := exportName(tt.in); got != tt.want {
			t.Errorf("exportName(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerate(t *testing.T) {
	src, err := generate("ops_gen.go", "ops", "float32,int32", []string{"float32", "int32"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"package ops",
		"func AddToFloat32(dst, a, b []float32)",
		"func DotFloat32(a, b []float32) float32",
		"func AddToInt32(dst, a, b []int32)",
		"func SumInt32(a []int32) int32",
		"Code generated by lanegen",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code missing %q", want)
		}
	}

	// Float-only operations must not be generated for integer types.
	for _, unwanted := range []string{
		"func DivToInt32", "func SqrtToInt32", "func DotInt32", "func NormInt32",
	} {
		if strings.Contains(out, unwanted) {
			t.Errorf("generated code contains %q for integer type", unwanted)
		}
	}
}
