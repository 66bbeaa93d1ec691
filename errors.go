package arith

import "strconv"

// Descriptions of what the evaluator expected, used in TokenError and EndError.
const (
	// ExpectOperand is expected at the start of a factor.
	ExpectOperand = `number or "("`
	// ExpectOperator is expected after a complete expression.
	ExpectOperator = "operator"
	// ExpectClose is expected after an expression inside parentheses.
	ExpectClose = `operator or ")"`
)

// LexError indicates input that is not part of any token. It implements
// InputError.
type LexError struct {
	// Offset is the byte offset of the invalid input.
	Offset int
	// Text is the invalid input.
	Text string
	// Context is a window of the source around the invalid input.
	Context string
}

func (err *LexError) Error() string {
	return errpos(err.Offset, "invalid input "+strconv.Quote(err.Text)+" in "+strconv.Quote(err.Context))
}

func (err *LexError) Pos() int {
	return err.Offset
}

// TokenError indicates a token that cannot appear where it does. It
// implements InputError.
type TokenError struct {
	// Offset is the byte offset of the token.
	Offset int
	// Text is the token's text.
	Text string
	// Expected describes what could have appeared instead. It is one of
	// ExpectOperand, ExpectOperator, or ExpectClose.
	Expected string
}

func (err *TokenError) Error() string {
	return errpos(err.Offset, "unexpected "+strconv.Quote(err.Text)+", expected "+err.Expected)
}

func (err *TokenError) Pos() int {
	return err.Offset
}

// EndError indicates that the input ended where a token was required. It
// implements InputError.
type EndError struct {
	// Offset is the length of the input.
	Offset int
	// Expected describes the token that was required.
	Expected string
}

func (err *EndError) Error() string {
	return errpos(err.Offset, "unexpected end of input, expected "+err.Expected)
}

func (err *EndError) Pos() int {
	return err.Offset
}

// ParenError indicates a parenthesis with no partner. It implements
// InputError.
type ParenError struct {
	// Offset is the byte offset of the parenthesis.
	Offset int
	// Paren is "(" for an open parenthesis that was never closed or ")" for a
	// close parenthesis that was never opened.
	Paren string
}

func (err *ParenError) Error() string {
	if err.Paren == ")" {
		return errpos(err.Offset, "close parenthesis with no open parenthesis")
	}
	return errpos(err.Offset, "open parenthesis with no close parenthesis")
}

func (err *ParenError) Pos() int {
	return err.Offset
}

// DepthError indicates an expression nested more deeply than the evaluator
// allows. It implements InputError.
type DepthError struct {
	// Offset is the byte offset of the parenthesis or minus sign that went
	// past the limit.
	Offset int
	// Max is the nesting limit.
	Max int
}

func (err *DepthError) Error() string {
	return errpos(err.Offset, "expression nested more than "+strconv.Itoa(err.Max)+" levels deep")
}

func (err *DepthError) Pos() int {
	return err.Offset
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the source of the input that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*EndError)(nil)
	_ InputError = (*ParenError)(nil)
	_ InputError = (*DepthError)(nil)
)
