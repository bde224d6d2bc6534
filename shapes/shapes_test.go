package shapes_test

import (
	"strings"
	"testing"

	"cssel/shapes"
)

func TestRectangle_Area(t *testing.T) {
	tests := []struct {
		width, height, want float64
	}{
		{3, 4, 12},
		{0, 10, 0},
		{2.5, 2, 5},
	}
	for _, tt := range tests {
		r := shapes.NewRectangle(tt.width, tt.height)
		if got := r.Area(); got != tt.want {
			t.Errorf("area of %gx%g: expected %g, got %g", tt.width, tt.height, tt.want, got)
		}
	}
}

func TestMarshal_Rectangle(t *testing.T) {
	data, err := shapes.Marshal(shapes.NewRectangle(3, 4))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"rectangle"`) {
		t.Errorf("expected type tag in %s", data)
	}

	// pointer form encodes identically
	r := shapes.NewRectangle(3, 4)
	data2, err := shapes.Marshal(&r)
	if err != nil {
		t.Fatalf("marshal pointer: %v", err)
	}
	if string(data) != string(data2) {
		t.Errorf("value and pointer encodings differ: %s vs %s", data, data2)
	}
}

func TestUnmarshal_RestoresConcreteType(t *testing.T) {
	data, err := shapes.Marshal(shapes.NewRectangle(3, 4))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s, err := shapes.Unmarshal(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	r, ok := s.(shapes.Rectangle)
	if !ok {
		t.Fatalf("expected Rectangle, got %T", s)
	}
	if r.Width != 3 || r.Height != 4 {
		t.Errorf("expected 3x4, got %gx%g", r.Width, r.Height)
	}
	if r.Area() != 12 {
		t.Errorf("expected area 12, got %g", r.Area())
	}
}

func TestUnmarshal_BadInput(t *testing.T) {
	if _, err := shapes.Unmarshal([]byte(`{"type":"circle","radius":1}`)); err == nil {
		t.Error("expected error for unknown type tag")
	}
	if _, err := shapes.Unmarshal([]byte(`{"width":3,"height":4}`)); err == nil {
		t.Error("expected error for missing type tag")
	}
	if _, err := shapes.Unmarshal([]byte(`not json`)); err == nil {
		t.Error("expected error for malformed data")
	}
}
