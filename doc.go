// Package arith evaluates arithmetic expressions on float64.
//
// An expression is made of decimal numbers like "12", "12.5", "12." or ".5",
// the operators + - * /, and parentheses. Multiplication and division bind
// tighter than addition and subtraction, all four are left-associative, and a
// leading - negates the factor after it, so "-2*-(1+2)" is 6. Division by zero
// is not an error; it produces an infinity or NaN like any float64 division.
//
// Evaluation is a single pass over the tokens with no syntax tree. The first
// problem found in the input ends evaluation with an error implementing
// InputError, which knows the byte offset of the offending input. Diagnose
// turns such an error into a message with a caret under that offset.
//
package arith
