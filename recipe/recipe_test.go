package recipe_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"cssel/recipe"
	"cssel/selector"
)

func TestParse_Chain(t *testing.T) {
	data := `
selectors:
  - name: main-area
    parts:
      - kind: id
        value: main
      - kind: class
        value: container
      - kind: class
        value: editable
`
	r, err := recipe.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	results, err := r.Build(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "main-area" {
		t.Errorf("expected name 'main-area', got %q", results[0].Name)
	}
	if want := "#main.container.editable"; results[0].CSS != want {
		t.Errorf("expected %q, got %q", want, results[0].CSS)
	}
}

func TestParse_Combine(t *testing.T) {
	data := `
selectors:
  - name: paired-tables
    combine:
      combinator: "+"
      left:
        parts:
          - kind: typeElement
            value: div
          - kind: id
            value: main
      right:
        parts:
          - kind: typeElement
            value: table
          - kind: id
            value: data
`
	r, err := recipe.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	results, err := r.Build(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if want := "div#main + table#data"; len(results) != 1 || results[0].CSS != want {
		t.Fatalf("expected single result %q, got %+v", want, results)
	}
}

func TestParse_NestedCombine(t *testing.T) {
	data := `
selectors:
  - name: triple
    combine:
      combinator: "~"
      left:
        combine:
          combinator: "+"
          left:
            parts: [{kind: typeElement, value: a}]
          right:
            parts: [{kind: typeElement, value: b}]
      right:
        parts: [{kind: typeElement, value: c}]
`
	r, err := recipe.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	results, err := r.Build(zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if want := "a + b ~ c"; len(results) != 1 || results[0].CSS != want {
		t.Fatalf("expected single result %q, got %+v", want, results)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	data := `
selectors:
  - name: bad
    pieces:
      - kind: id
        value: main
`
	if _, err := recipe.Parse([]byte(data)); err == nil {
		t.Error("expected error for unknown field")
	}
}

func TestBuild_AggregatesErrors(t *testing.T) {
	data := `
selectors:
  - name: good
    parts:
      - {kind: typeElement, value: a}
      - {kind: pseudoClass, value: focus}
  - name: out-of-order
    parts:
      - {kind: id, value: x}
      - {kind: typeElement, value: div}
  - name: duplicate-element
    parts:
      - {kind: typeElement, value: div}
      - {kind: typeElement, value: span}
  - name: also-good
    parts:
      - {kind: class, value: note}
`
	r, err := recipe.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	results, err := r.Build(zaptest.NewLogger(t))
	if err == nil {
		t.Fatal("expected aggregated build error")
	}
	if !errors.Is(err, selector.ErrOutOfOrder) {
		t.Errorf("expected ErrOutOfOrder in aggregate, got %v", err)
	}
	if !errors.Is(err, selector.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate in aggregate, got %v", err)
	}
	if !strings.Contains(err.Error(), "out-of-order") {
		t.Errorf("expected definition name in error, got %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 successful results, got %d", len(results))
	}
	if results[0].CSS != "a:focus" || results[1].CSS != ".note" {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestBuild_BadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			"unknown kind",
			"selectors:\n  - parts: [{kind: element, value: div}]\n",
		},
		{
			"empty definition",
			"selectors:\n  - name: empty\n",
		},
		{
			"combine without right",
			"selectors:\n  - combine:\n      combinator: \">\"\n      left:\n        parts: [{kind: typeElement, value: div}]\n",
		},
		{
			"bad combinator",
			"selectors:\n  - combine:\n      combinator: \">>\"\n      left:\n        parts: [{kind: typeElement, value: div}]\n      right:\n        parts: [{kind: typeElement, value: p}]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := recipe.Parse([]byte(tt.data))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if _, err := r.Build(zap.NewNop()); err == nil {
				t.Error("expected build error")
			}
		})
	}
}

func TestBuild_NamelessDefinition(t *testing.T) {
	data := "selectors:\n  - parts: [{kind: class, value: note}]\n"
	r, err := recipe.Parse([]byte(data))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	results, err := r.Build(nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(results) != 1 || results[0].Name != "selector #1" {
		t.Fatalf("expected synthesized name, got %+v", results)
	}
}
