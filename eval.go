package arith

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
)

// expr   = term { ('+' | '-') term }
// term   = factor { ('*' | '/') factor }
// factor = '-' factor | num | '(' expr ')'

// TokenSource is a source of tokens for EvalTokens. *Scanner implements it.
type TokenSource interface {
	// Peek returns the next token without consuming it, or false if there are
	// no more tokens.
	Peek() (Token, bool)
	// Advance consumes the next token.
	Advance()
	// Pos returns the offset of the end of the scanned input. It is used to
	// report the position of errors at the end of input.
	Pos() int
}

// Eval evaluates an expression.
func Eval(src string, opts ...Option) (float64, error) {
	c := newConfig(opts)
	if c.debug {
		c.log.Debugf("evaluating %q with tokens:\n%s", src, spew.Sdump(ScanAll(src)))
	}
	return eval(NewScanner(src), c)
}

// EvalTokens evaluates the expression formed by the tokens from src. It
// consumes tokens only as far as it needs to; if the expression is invalid,
// tokens after the first error remain unread.
func EvalTokens(src TokenSource, opts ...Option) (float64, error) {
	return eval(src, newConfig(opts))
}

func eval(src TokenSource, c config) (float64, error) {
	e := evaluator{src: src, log: c.log, max: c.max, debug: c.debug}
	r, err := e.expr()
	if err == nil {
		err = e.end()
	}
	if err != nil {
		if e.debug {
			e.log.WithError(err).Debug("evaluation failed")
		}
		return 0, err
	}
	if e.debug {
		e.log.WithField("result", r).Debug("evaluated")
	}
	return r, nil
}

// evaluator computes an expression while parsing it.
type evaluator struct {
	src TokenSource
	log logrus.FieldLogger
	// depth is the current count of open parentheses and unary minus signs.
	depth int
	max   int
	debug bool
}

// expr evaluates a sum of terms. It returns at the first token that cannot
// continue the sum, leaving that token unconsumed.
func (e *evaluator) expr() (float64, error) {
	acc, err := e.term()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := e.src.Peek()
		if !ok || (op.Kind != Add && op.Kind != Sub) {
			return acc, nil
		}
		e.src.Advance()
		rhs, err := e.term()
		if err != nil {
			return 0, err
		}
		if op.Kind == Add {
			acc += rhs
		} else {
			acc -= rhs
		}
		e.trace(op, rhs, acc)
	}
}

// term evaluates a product of factors. It returns at the first token that
// cannot continue the product, leaving that token unconsumed.
func (e *evaluator) term() (float64, error) {
	acc, err := e.factor()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := e.src.Peek()
		if !ok || (op.Kind != Mul && op.Kind != Div) {
			return acc, nil
		}
		e.src.Advance()
		rhs, err := e.factor()
		if err != nil {
			return 0, err
		}
		// Division by zero gives ±Inf or NaN.
		if op.Kind == Mul {
			acc *= rhs
		} else {
			acc /= rhs
		}
		e.trace(op, rhs, acc)
	}
}

// factor evaluates a number, a negated factor, or a parenthesized expression.
func (e *evaluator) factor() (float64, error) {
	tok, ok := e.src.Peek()
	if !ok {
		return 0, &EndError{Offset: e.src.Pos(), Expected: ExpectOperand}
	}
	switch tok.Kind {
	case Num:
		e.src.Advance()
		e.trace(tok, tok.Value, tok.Value)
		return tok.Value, nil
	case Sub:
		if err := e.push(tok); err != nil {
			return 0, err
		}
		e.src.Advance()
		r, err := e.factor()
		if err != nil {
			return 0, err
		}
		e.depth--
		return -r, nil
	case Open:
		if err := e.push(tok); err != nil {
			return 0, err
		}
		e.src.Advance()
		r, err := e.expr()
		if err != nil {
			return 0, err
		}
		end, ok := e.src.Peek()
		if !ok {
			return 0, &ParenError{Offset: tok.Pos, Paren: tok.Text}
		}
		if end.Kind != Close {
			return 0, unexpected(end, ExpectClose)
		}
		e.src.Advance()
		e.depth--
		return r, nil
	default:
		return 0, unexpected(tok, ExpectOperand)
	}
}

// end checks that the whole input was consumed after the outermost expression.
func (e *evaluator) end() error {
	tok, ok := e.src.Peek()
	switch {
	case !ok:
		return nil
	case tok.Kind == Close:
		return &ParenError{Offset: tok.Pos, Paren: tok.Text}
	default:
		return unexpected(tok, ExpectOperator)
	}
}

// push enters a nested factor beginning with tok.
func (e *evaluator) push(tok Token) error {
	e.depth++
	if e.depth > e.max {
		return &DepthError{Offset: tok.Pos, Max: e.max}
	}
	return nil
}

func (e *evaluator) trace(tok Token, x, acc float64) {
	if !e.debug {
		return
	}
	e.log.WithFields(logrus.Fields{
		"pos":   tok.Pos,
		"token": tok.Kind.String(),
		"value": x,
		"acc":   acc,
	}).Debug("fold")
}

// unexpected returns an error for tok appearing where want was expected.
// Invalid tokens are always lexical errors.
func unexpected(tok Token, want string) error {
	if tok.Kind == Invalid {
		return &LexError{Offset: tok.Pos, Text: tok.Text, Context: tok.Context}
	}
	return &TokenError{Offset: tok.Pos, Text: tok.Text, Expected: want}
}
