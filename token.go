package arith

import "strconv"

// Token is a single lexeme scanned from an expression.
type Token struct {
	// Kind is the type of the token.
	Kind Kind
	// Pos is the byte offset of the token's first byte in the source.
	Pos int
	// Text is the exact source text of the token. For Invalid tokens, it is
	// the text that could not be scanned.
	Text string
	// Value is the parsed value of a Num token.
	Value float64
	// Context is a window of the source around an Invalid token.
	Context string
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Kind is the type of a token.
type Kind int

const (
	None Kind = iota
	// Num is a decimal number.
	Num
	// Add, Sub, Mul, and Div are the operators +, -, *, and /.
	Add
	Sub
	Mul
	Div
	// Open and Close are parentheses.
	Open
	Close
	// Invalid is input that is not part of any token.
	Invalid
)

//go:generate stringer -type=Kind
