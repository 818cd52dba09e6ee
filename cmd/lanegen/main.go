// Copyright 2025 go-lanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command lanegen generates non-generic, concrete-typed wrappers around
// the lanes slice operations, for callers that want a plain function per
// element type instead of instantiating generics (cgo callbacks, plugin
// boundaries, assembly-adjacent code).
//
// Usage:
//
//	lanegen -types float32,float64 -pkg ops -output ops_gen.go
//
// Or via go:generate:
//
//	//go:generate go run github.com/gosimd/go-lanes/cmd/lanegen -types float32,float64 -pkg ops -output ops_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	typesFlag  = flag.String("types", "float32,float64", "Comma-separated element types to generate wrappers for")
	pkgFlag    = flag.String("pkg", "ops", "Package name for the generated file")
	outputFlag = flag.String("output", "", "Output file (required)")
)

var supported = map[string]bool{
	"float32": true, "float64": true,
	"int8": true, "int16": true, "int32": true, "int64": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
}

// floatOnly lists operations restricted to float element types.
var floatOnly = map[string]bool{
	"DivTo": true, "SqrtTo": true, "Dot": true, "Norm": true,
}

type opSpec struct {
	Name string
	Kind string // binary, scale, unary, reduce, dot
}

var ops = []opSpec{
	{"AddTo", "binary"},
	{"SubTo", "binary"},
	{"MulTo", "binary"},
	{"DivTo", "binary"},
	{"ScaleTo", "scale"},
	{"SqrtTo", "unary"},
	{"Sum", "reduce"},
	{"MinOf", "reduce"},
	{"MaxOf", "reduce"},
	{"Dot", "dot"},
	{"Norm", "reduce"},
}

type opInst struct {
	Name    string // algo function name
	Wrapper string // generated wrapper name, e.g. AddToFloat32
	Elem    string // element type
	Kind    string
}

type fileData struct {
	Package string
	Types   string
	Ops     []opInst
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by lanegen -types {{.Types}}; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/gosimd/go-lanes/lanes/algo"
)

{{range .Ops}}{{if eq .Kind "binary"}}
func {{.Wrapper}}(dst, a, b []{{.Elem}}) {
	algo.{{.Name}}(dst, a, b)
}
{{else if eq .Kind "scale"}}
func {{.Wrapper}}(dst []{{.Elem}}, s {{.Elem}}, a []{{.Elem}}) {
	algo.{{.Name}}(dst, s, a)
}
{{else if eq .Kind "unary"}}
func {{.Wrapper}}(dst, a []{{.Elem}}) {
	algo.{{.Name}}(dst, a)
}
{{else if eq .Kind "reduce"}}
func {{.Wrapper}}(a []{{.Elem}}) {{.Elem}} {
	return algo.{{.Name}}(a)
}
{{else if eq .Kind "dot"}}
func {{.Wrapper}}(a, b []{{.Elem}}) {{.Elem}} {
	return algo.{{.Name}}(a, b)
}
{{end}}{{end}}`))

func main() {
	flag.Parse()

	if *outputFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: -output flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	types, err := parseTypes(*typesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := generate(*outputFlag, *pkgFlag, *typesFlag, types)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputFlag, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%d types, %d wrappers)\n", *outputFlag, len(types), countWrappers(types))
}

func parseTypes(s string) ([]string, error) {
	var types []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if !supported[t] {
			return nil, fmt.Errorf("unsupported element type %q", t)
		}
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil, fmt.Errorf("no element types specified")
	}
	return types, nil
}

func isFloat(elem string) bool {
	return elem == "float32" || elem == "float64"
}

func countWrappers(types []string) int {
	n := 0
	for _, elem := range types {
		for _, op := range ops {
			if floatOnly[op.Name] && !isFloat(elem) {
				continue
			}
			n++
		}
	}
	return n
}

// exportName turns an element type into an exported suffix: float32
// becomes Float32, uint8 becomes Uint8.
func exportName(elem string) string {
	return strings.ToUpper(elem[:1]) + elem[1:]
}

func generate(filename, pkg, typesArg string, types []string) ([]byte, error) {
	data := fileData{Package: pkg, Types: typesArg}
	for _, elem := range types {
		for _, op := range ops {
			if floatOnly[op.Name] && !isFloat(elem) {
				continue
			}
			data.Ops = append(data.Ops, opInst{
				Name:    op.Name,
				Wrapper: op.Name + exportName(elem),
				Elem:    elem,
				Kind:    op.Kind,
			})
		}
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// imports.Process also gofmts, so template whitespace doesn't have to
	// be exact.
	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
