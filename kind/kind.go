// Package kind enumerates the variants a value.T can hold. The zero value is
// Null.
package kind

// T is the discriminant of the value tagged union.
type T int

const (
	Null T = iota
	Integer
	UInteger
	Real
	Bool
	String
	Object
	Array
)

var names = []string{
	"null",
	"integer",
	"uinteger",
	"real",
	"bool",
	"string",
	"object",
	"array",
}

func (k T) String() string {
	if k < Null || k > Array {
		return "invalid"
	}
	return names[k]
}

// Structural reports whether the kind's payload is a heap container subject
// to shared ownership (String, Object, Array) rather than an inline scalar.
func (k T) Structural() bool { return k == String || k == Object || k == Array }
