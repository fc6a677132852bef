package selfcore

// String is immutable text (spec 3.1). Self strings do not carry their
// own slots; lookup on a String is routed to traitsString (spec 4.1).
type String struct {
	Value string
}

func (String) isSelfValue() {}

// NewString creates a String value.
func NewString(v string) String { return String{Value: v} }
