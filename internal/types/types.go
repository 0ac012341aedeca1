// Package types implements the closed type universe and function-signature
// equality that the checker builds on. Modeled after the teacher's own
// internal/types value-type approach (github.com/cwbudde/go-dws), but the
// universe here is a fixed three-member sum rather than an open class
// hierarchy.
package types

import "fmt"

// Kind tags which member of the closed type sum a Type holds.
type Kind int

const (
	FieldElement Kind = iota
	Boolean
	FieldElementArray
)

// Type is a closed sum: FieldElement | Boolean | FieldElementArray(size).
// Equality is structural: two Types are equal iff their Kind matches and,
// for arrays, their Size matches too.
type Type struct {
	Kind Kind
	Size int // only meaningful when Kind == FieldElementArray
}

// Field constructs a scalar field-element type.
func Field() Type { return Type{Kind: FieldElement} }

// Bool constructs a boolean type.
func Bool() Type { return Type{Kind: Boolean} }

// Array constructs a fixed-length field-element array type.
func Array(size int) Type { return Type{Kind: FieldElementArray, Size: size} }

// Equal reports structural equality.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == FieldElementArray {
		return t.Size == other.Size
	}
	return true
}

// PrimitiveCount is 1 for scalars and Size for arrays, matching the
// original's get_primitive_count — used by the synthesizer to lay out
// flat parameters and return values one-primitive-at-a-time.
func (t Type) PrimitiveCount() int {
	if t.Kind == FieldElementArray {
		return t.Size
	}
	return 1
}

// String renders the type the way source and diagnostics spell it:
// "field", "bool", "field[N]".
func (t Type) String() string {
	switch t.Kind {
	case FieldElement:
		return "field"
	case Boolean:
		return "bool"
	case FieldElementArray:
		return fmt.Sprintf("field[%d]", t.Size)
	default:
		return "?"
	}
}

// Signature is an ordered pair of input and output type sequences.
type Signature struct {
	Inputs  []Type
	Outputs []Type
}

// Equal compares input and output sequences element-wise.
func (s Signature) Equal(other Signature) bool {
	return equalTypeSlices(s.Inputs, other.Inputs) && equalTypeSlices(s.Outputs, other.Outputs)
}

func equalTypeSlices(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders a signature as "(t1, t2) -> (t3, t4)", the shape the
// duplicate-definition diagnostic embeds.
func (s Signature) String() string {
	return fmt.Sprintf("(%s) -> (%s)", joinTypes(s.Inputs), joinTypes(s.Outputs))
}

func joinTypes(ts []Type) string {
	out := ""
	for i, t := range ts {
		if i > 0 {
			out += ", "
		}
		out += t.String()
	}
	return out
}

// FunctionDeclaration is a name plus a Signature. Two declarations are
// equal iff both name and signature are equal; the registry (package
// semantic) holds a set of these and forbids duplicates.
type FunctionDeclaration struct {
	Name      string
	Signature Signature
}

// Equal compares name and signature.
func (d FunctionDeclaration) Equal(other FunctionDeclaration) bool {
	return d.Name == other.Name && d.Signature.Equal(other.Signature)
}
