package arith

import (
	"errors"
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// ContextRadius is the number of runes on each side of an invalid token that
// are included in its Context.
const ContextRadius = 5

var (
	digits = [256]bool{
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
	}

	// spaces is the ASCII subset of unicode.IsSpace.
	spaces = [256]bool{
		'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
	}

	punct = [256]Kind{
		'+': Add,
		'-': Sub,
		'*': Mul,
		'/': Div,
		'(': Open,
		')': Close,
	}
)

// Scanner is a cursor producing the tokens of an expression one at a time.
// A Scanner cannot be rewound; to scan the same source again, create a new
// one. It is not safe to use a Scanner concurrently.
type Scanner struct {
	src string
	pos int

	// tok and ok hold the result of Peek until Advance.
	tok    Token
	ok     bool
	peeked bool
}

// NewScanner creates a scanner over src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Peek returns the next token without consuming it. The result is false once
// the source is exhausted, and stays false.
func (s *Scanner) Peek() (Token, bool) {
	if !s.peeked {
		s.tok, s.ok = s.scan()
		s.peeked = true
	}
	return s.tok, s.ok
}

// Advance consumes the next token.
func (s *Scanner) Advance() {
	s.Peek()
	s.peeked = false
}

// Next consumes and returns the next token.
func (s *Scanner) Next() (Token, bool) {
	tok, ok := s.Peek()
	s.Advance()
	return tok, ok
}

// Pos returns the byte offset up to which the source has been scanned,
// including a peeked token. After Peek reports the end of the source, Pos is
// the source's length.
func (s *Scanner) Pos() int {
	return s.pos
}

// scan scans the token at the cursor and moves the cursor past it.
func (s *Scanner) scan() (Token, bool) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return Token{}, false
	}
	start := s.pos
	if n := numeral(s.src[start:]); n > 0 {
		s.pos += n
		text := s.src[start:s.pos]
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// Only reachable if numeral accepts something ParseFloat doesn't.
			return s.invalid(start), true
		}
		// Out of range numbers are already ±Inf.
		return Token{Kind: Num, Pos: start, Text: text, Value: v}, true
	}
	if k := punct[s.src[start]]; k != None {
		s.pos++
		return Token{Kind: k, Pos: start, Text: s.src[start:s.pos]}, true
	}
	// DecodeRuneInString reports a width of 1 for invalid UTF-8, so we always
	// make progress.
	_, sz := utf8.DecodeRuneInString(s.src[start:])
	s.pos += sz
	return s.invalid(start), true
}

// skipSpace moves the cursor past whitespace.
func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c < utf8.RuneSelf {
			if !spaces[c] {
				return
			}
			s.pos++
			continue
		}
		r, sz := utf8.DecodeRuneInString(s.src[s.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += sz
	}
}

// invalid creates an Invalid token for the text from start to the cursor.
func (s *Scanner) invalid(start int) Token {
	lo := start
	for n := 0; n < ContextRadius && lo > 0; n++ {
		_, sz := utf8.DecodeLastRuneInString(s.src[:lo])
		lo -= sz
	}
	hi := s.pos
	for n := 0; n < ContextRadius && hi < len(s.src); n++ {
		_, sz := utf8.DecodeRuneInString(s.src[hi:])
		hi += sz
	}
	return Token{
		Kind:    Invalid,
		Pos:     start,
		Text:    s.src[start:s.pos],
		Context: s.src[lo:hi],
	}
}

// numeral returns the length of the longest numeral at the start of s, which
// is either digits with an optional fraction like "1", "1." or "1.5", or a
// bare fraction like ".5". The result is 0 if s does not start with one.
func numeral(s string) int {
	i := run(s)
	if i == len(s) || s[i] != '.' {
		return i
	}
	j := run(s[i+1:])
	if i == 0 && j == 0 {
		// A lone dot.
		return 0
	}
	return i + 1 + j
}

// run returns the length of the run of digits at the start of s.
func run(s string) int {
	for i := 0; i < len(s); i++ {
		if !digits[s[i]] {
			return i
		}
	}
	return len(s)
}

// Tokenize returns the tokens of src as a sequence. Each iteration scans src
// again from the start.
func Tokenize(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := NewScanner(src)
		for tok, ok := s.Next(); ok; tok, ok = s.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// ScanAll returns all tokens of src, including Invalid ones.
func ScanAll(src string) []Token {
	var toks []Token
	for tok := range Tokenize(src) {
		toks = append(toks, tok)
	}
	return toks
}
