package rop

// Nil is the unit type: a placeholder payload for results that carry no
// meaningful value, such as Result[Nil] returned by TryDo.
type Nil struct{}

// Void is the single Nil value.
var Void = Nil{}

func (Nil) String() string {
	return "void"
}

// Equal reports whether v is nil-like. Every nil-like value equals Void.
func (Nil) Equal(v any) bool {
	return IsNil(v)
}
