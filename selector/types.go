// Package selector builds CSS selector strings from validated simple parts.
//
// A Selector is an immutable value: every operation returns a new value and
// never modifies its receiver, so a known-good value stays usable after a
// rejected call. Parts must be appended in CSS category order (type element,
// ID, class, attribute, pseudo-class, pseudo-element). Class, attribute and
// pseudo-class parts may repeat; type element and pseudo-element may occur at
// most once per chain.
package selector

import "fmt"

// Kind identifies a simple-selector category. Kind values double as ranks:
// parts are valid only in non-decreasing rank order.
type Kind int

const (
	KindTypeElement   Kind = iota + 1 // tag
	KindID                            // #id
	KindClass                         // .class
	KindAttribute                     // [expr]
	KindPseudoClass                   // :name
	KindPseudoElement                 // ::name
)

// String returns the category name as used in recipe files.
func (k Kind) String() string {
	switch k {
	case KindTypeElement:
		return "typeElement"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudoClass"
	case KindPseudoElement:
		return "pseudoElement"
	default:
		return "unknown"
	}
}

// rank returns the fixed CSS ordering position of the category.
func (k Kind) rank() int {
	return int(k)
}

func (k Kind) valid() bool {
	return k >= KindTypeElement && k <= KindPseudoElement
}

// fragment renders the CSS text for a single part of this kind. The value is
// embedded verbatim - callers are responsible for passing legal CSS tokens.
func (k Kind) fragment(value string) string {
	switch k {
	case KindTypeElement:
		return value
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		// this should never happen, all entry points check kind validity
		panic("unsupported selector part kind")
	}
}

// ParseKind maps a category name to its Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindTypeElement; k <= KindPseudoElement; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown selector part kind %q", s)
}

// KindNames returns the names of all selector part categories in rank order.
func KindNames() []string {
	names := make([]string, 0, int(KindPseudoElement))
	for k := KindTypeElement; k <= KindPseudoElement; k++ {
		names = append(names, k.String())
	}
	return names
}
