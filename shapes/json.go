package shapes

import (
	"encoding/json"
	"errors"
	"fmt"
)

// type tags stored in the "type" field of encoded shapes
const tagRectangle = "rectangle"

// envelope wraps a shape with its type tag on the wire.
type envelope struct {
	Type string `json:"type"`
	Rectangle
}

// Marshal encodes a shape together with its type tag.
func Marshal(s Shape) ([]byte, error) {
	switch v := s.(type) {
	case Rectangle:
		return json.Marshal(envelope{Type: tagRectangle, Rectangle: v})
	case *Rectangle:
		return json.Marshal(envelope{Type: tagRectangle, Rectangle: *v})
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}
}

// Unmarshal decodes data produced by Marshal, dispatching on the type tag to
// restore the concrete Go type.
func Unmarshal(data []byte) (Shape, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unable to decode shape: %w", err)
	}
	switch env.Type {
	case tagRectangle:
		return env.Rectangle, nil
	case "":
		return nil, errors.New("shape data has no type tag")
	default:
		return nil, fmt.Errorf("unknown shape type %q", env.Type)
	}
}
