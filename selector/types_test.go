package selector_test

import (
	"testing"

	"cssel/selector"
)

func TestParseKind(t *testing.T) {
	for _, name := range selector.KindNames() {
		k, err := selector.ParseKind(name)
		if err != nil {
			t.Errorf("ParseKind(%q): %v", name, err)
			continue
		}
		if k.String() != name {
			t.Errorf("ParseKind(%q) = %s", name, k)
		}
	}

	if _, err := selector.ParseKind("element"); err == nil {
		t.Error("expected error for unknown kind name")
	}
	if _, err := selector.ParseKind(""); err == nil {
		t.Error("expected error for empty kind name")
	}
}

func TestKindNames(t *testing.T) {
	want := []string{"typeElement", "id", "class", "attribute", "pseudoClass", "pseudoElement"}
	got := selector.KindNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
