package selfcore

// Mutator is the value a synthetic name+":" constant slot holds. When
// messaged with one argument during a message send, the evaluator
// assigns that argument into the sibling data slot named DataName on
// the same receiver (spec 3.1, 4.2 step 4).
type Mutator struct {
	DataName string
}

func (Mutator) isSelfValue() {}
