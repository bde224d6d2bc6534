package selector

import "fmt"

// Selector is a partially or fully built CSS selector. The zero value is the
// empty root, ready for appends.
type Selector struct {
	text             string
	lastRank         int
	hasTypeElement   bool
	hasPseudoElement bool
}

// String returns the CSS text accumulated so far.
func (s Selector) String() string {
	return s.text
}

func (s Selector) append(k Kind, value string) (Selector, error) {
	if k.rank() < s.lastRank {
		return Selector{}, orderingError(k)
	}
	if k == KindTypeElement && s.hasTypeElement {
		return Selector{}, duplicateError(k)
	}
	if k == KindPseudoElement && s.hasPseudoElement {
		return Selector{}, duplicateError(k)
	}

	next := s
	next.text += k.fragment(value)
	next.lastRank = k.rank()
	switch k {
	case KindTypeElement:
		next.hasTypeElement = true
	case KindPseudoElement:
		next.hasPseudoElement = true
	}
	return next, nil
}

// Append adds a single part of the given kind. It is the generic entry point
// used when the kind is only known at run time (recipe files); the typed
// methods below are preferable in code.
func (s Selector) Append(k Kind, value string) (Selector, error) {
	if !k.valid() {
		return Selector{}, fmt.Errorf("unknown selector part kind %d", int(k))
	}
	return s.append(k, value)
}

// TypeElement appends a type (element) selector, e.g. "div". At most one per
// chain, and it must come first.
func (s Selector) TypeElement(name string) (Selector, error) {
	return s.append(KindTypeElement, name)
}

// ID appends an ID selector, rendered as "#name".
func (s Selector) ID(name string) (Selector, error) {
	return s.append(KindID, name)
}

// Class appends a class selector, rendered as ".name". May repeat.
func (s Selector) Class(name string) (Selector, error) {
	return s.append(KindClass, name)
}

// Attribute appends an attribute selector. The expression is the complete
// attribute condition embedded verbatim, e.g. `href$=".png"`.
func (s Selector) Attribute(expr string) (Selector, error) {
	return s.append(KindAttribute, expr)
}

// PseudoClass appends a pseudo-class selector, rendered as ":name".
func (s Selector) PseudoClass(name string) (Selector, error) {
	return s.append(KindPseudoClass, name)
}

// PseudoElement appends a pseudo-element selector, rendered as "::name". At
// most one per chain.
func (s Selector) PseudoElement(name string) (Selector, error) {
	return s.append(KindPseudoElement, name)
}

// TypeElement starts a new chain with a type selector.
func TypeElement(name string) (Selector, error) {
	return Selector{}.TypeElement(name)
}

// ID starts a new chain with an ID selector.
func ID(name string) (Selector, error) {
	return Selector{}.ID(name)
}

// Class starts a new chain with a class selector.
func Class(name string) (Selector, error) {
	return Selector{}.Class(name)
}

// Attribute starts a new chain with an attribute selector.
func Attribute(expr string) (Selector, error) {
	return Selector{}.Attribute(expr)
}

// PseudoClass starts a new chain with a pseudo-class selector.
func PseudoClass(name string) (Selector, error) {
	return Selector{}.PseudoClass(name)
}

// PseudoElement starts a new chain with a pseudo-element selector.
func PseudoElement(name string) (Selector, error) {
	return Selector{}.PseudoElement(name)
}

// Combinator tokens accepted by Combine.
const (
	Descendant = " "
	Child      = ">"
	Sibling    = "~"
	Adjacent   = "+"
)

// Combine joins two selectors with a combinator. The token is always rendered
// with a single space on each side, the descendant combinator included.
//
// The result is terminal for simple-part appends: both at-most-once flags are
// set and the last rank is the maximum, so further append calls are rejected
// instead of silently extending the right-hand compound. Combined values may
// be combined again arbitrarily.
func Combine(left Selector, combinator string, right Selector) (Selector, error) {
	switch combinator {
	case Descendant, Child, Sibling, Adjacent:
	default:
		return Selector{}, combinatorError(combinator)
	}
	return Selector{
		text:             left.text + " " + combinator + " " + right.text,
		lastRank:         KindPseudoElement.rank(),
		hasTypeElement:   true,
		hasPseudoElement: true,
	}, nil
}
