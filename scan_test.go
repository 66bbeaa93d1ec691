package arith

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		{"unicode-spaces", "\u00a0\u2003 1", []Token{{Kind: Num, Pos: 6, Text: "1", Value: 1}}},
		// numbers
		{"zero", "0", []Token{{Kind: Num, Pos: 0, Text: "0", Value: 0}}},
		{"int", "9876543210", []Token{{Kind: Num, Pos: 0, Text: "9876543210", Value: 9876543210}}},
		{"two", "1 0", []Token{{Kind: Num, Pos: 0, Text: "1", Value: 1}, {Kind: Num, Pos: 2, Text: "0", Value: 0}}},
		{"frac", "12.50", []Token{{Kind: Num, Pos: 0, Text: "12.50", Value: 12.5}}},
		{"longest", "12.34", []Token{{Kind: Num, Pos: 0, Text: "12.34", Value: 12.34}}},
		{"trailing-dot", "1.", []Token{{Kind: Num, Pos: 0, Text: "1.", Value: 1}}},
		{"leading-dot", ".5", []Token{{Kind: Num, Pos: 0, Text: ".5", Value: 0.5}}},
		{"two-dots", "1.2.3", []Token{{Kind: Num, Pos: 0, Text: "1.2", Value: 1.2}, {Kind: Num, Pos: 3, Text: ".3", Value: 0.3}}},
		{"dot-dot", "1..2", []Token{{Kind: Num, Pos: 0, Text: "1.", Value: 1}, {Kind: Num, Pos: 2, Text: ".2", Value: 0.2}}},
		{"padded", "  7  ", []Token{{Kind: Num, Pos: 2, Text: "7", Value: 7}}},
		// operators and parentheses
		{"ops", "+-*/", []Token{
			{Kind: Add, Pos: 0, Text: "+"},
			{Kind: Sub, Pos: 1, Text: "-"},
			{Kind: Mul, Pos: 2, Text: "*"},
			{Kind: Div, Pos: 3, Text: "/"},
		}},
		{"parens", "(1)", []Token{
			{Kind: Open, Pos: 0, Text: "("},
			{Kind: Num, Pos: 1, Text: "1", Value: 1},
			{Kind: Close, Pos: 2, Text: ")"},
		}},
		{"expr", "2 + 3*4", []Token{
			{Kind: Num, Pos: 0, Text: "2", Value: 2},
			{Kind: Add, Pos: 2, Text: "+"},
			{Kind: Num, Pos: 4, Text: "3", Value: 3},
			{Kind: Mul, Pos: 5, Text: "*"},
			{Kind: Num, Pos: 6, Text: "4", Value: 4},
		}},
		{"neg", "-1", []Token{{Kind: Sub, Pos: 0, Text: "-"}, {Kind: Num, Pos: 1, Text: "1", Value: 1}}},
		// invalid input
		{"dollar", "$", []Token{{Kind: Invalid, Pos: 0, Text: "$", Context: "$"}}},
		{"lone-dot", ".", []Token{{Kind: Invalid, Pos: 0, Text: ".", Context: "."}}},
		{"between", "2 $ 3", []Token{
			{Kind: Num, Pos: 0, Text: "2", Value: 2},
			{Kind: Invalid, Pos: 2, Text: "$", Context: "2 $ 3"},
			{Kind: Num, Pos: 4, Text: "3", Value: 3},
		}},
		{"exponent", "1e5", []Token{
			{Kind: Num, Pos: 0, Text: "1", Value: 1},
			{Kind: Invalid, Pos: 1, Text: "e", Context: "1e5"},
			{Kind: Num, Pos: 2, Text: "5", Value: 5},
		}},
		{"radius", "12345678$987654321", []Token{
			{Kind: Num, Pos: 0, Text: "12345678", Value: 12345678},
			{Kind: Invalid, Pos: 8, Text: "$", Context: "45678$98765"},
			{Kind: Num, Pos: 9, Text: "987654321", Value: 987654321},
		}},
		{"multibyte", "π1", []Token{
			{Kind: Invalid, Pos: 0, Text: "π", Context: "π1"},
			{Kind: Num, Pos: 2, Text: "1", Value: 1},
		}},
		{"multibyte-context", "ππππππ$", []Token{
			{Kind: Invalid, Pos: 0, Text: "π", Context: "ππππππ"},
			{Kind: Invalid, Pos: 2, Text: "π", Context: "ππππππ$"},
			{Kind: Invalid, Pos: 4, Text: "π", Context: "ππππππ$"},
			{Kind: Invalid, Pos: 6, Text: "π", Context: "ππππππ$"},
			{Kind: Invalid, Pos: 8, Text: "π", Context: "ππππππ$"},
			{Kind: Invalid, Pos: 10, Text: "π", Context: "ππππππ$"},
			{Kind: Invalid, Pos: 12, Text: "$", Context: "πππππ$"},
		}},
		{"bad-utf8", "\xff1", []Token{
			{Kind: Invalid, Pos: 0, Text: "\xff", Context: "\xff1"},
			{Kind: Num, Pos: 1, Text: "1", Value: 1},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.tokens, ScanAll(c.src))
		})
	}
}

func TestScanPositions(t *testing.T) {
	srcs := []string{
		"2+3",
		" ( 12.5 -\t.25 ) / 3. ",
		"1 $ 2 # (3)",
		" π + 1\n",
	}
	for _, src := range srcs {
		for tok := range Tokenize(src) {
			require.True(t, strings.HasPrefix(src[tok.Pos:], tok.Text), "token %v in %q", tok, src)
		}
	}
}

func TestScanOverflow(t *testing.T) {
	src := strings.Repeat("9", 400)
	toks := ScanAll(src)
	require.Len(t, toks, 1)
	assert.Equal(t, Num, toks[0].Kind)
	assert.Equal(t, src, toks[0].Text)
	assert.True(t, math.IsInf(toks[0].Value, 1))
}

func TestScannerCursor(t *testing.T) {
	s := NewScanner("  1 +")
	assert.Equal(t, 0, s.Pos())

	tok, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, Token{Kind: Num, Pos: 2, Text: "1", Value: 1}, tok)
	assert.Equal(t, 3, s.Pos())

	// Peeking again doesn't move.
	again, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, tok, again)
	assert.Equal(t, 3, s.Pos())

	s.Advance()
	tok, ok = s.Next()
	require.True(t, ok)
	assert.Equal(t, Token{Kind: Add, Pos: 4, Text: "+"}, tok)

	for i := 0; i < 3; i++ {
		_, ok = s.Next()
		assert.False(t, ok)
		assert.Equal(t, 5, s.Pos())
	}
}

func TestScannerAdvanceWithoutPeek(t *testing.T) {
	s := NewScanner("1 2 3")
	s.Advance()
	s.Advance()
	tok, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, 4, tok.Pos)
}

func TestTokenize(t *testing.T) {
	seq := Tokenize("1+2+3")
	var first []Token
	for tok := range seq {
		first = append(first, tok)
		if len(first) == 2 {
			break
		}
	}
	require.Len(t, first, 2)
	assert.Equal(t, Add, first[1].Kind)

	// Each iteration starts over.
	var all []Token
	for tok := range seq {
		all = append(all, tok)
	}
	require.Len(t, all, 5)
	assert.Equal(t, first, all[:2])
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "Num:12.5@3", Token{Kind: Num, Pos: 3, Text: "12.5", Value: 12.5}.String())
	assert.Equal(t, "Invalid:$@0", Token{Kind: Invalid, Text: "$"}.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestNumeral(t *testing.T) {
	cases := []struct {
		s string
		n int
	}{
		{"", 0},
		{".", 0},
		{"..", 0},
		{"+1", 0},
		{"1", 1},
		{"12+", 2},
		{"1.", 2},
		{"1.5", 3},
		{".5", 2},
		{".5.", 2},
		{"12.34.56", 5},
	}
	for _, c := range cases {
		assert.Equal(t, c.n, numeral(c.s), "numeral(%q)", c.s)
	}
}
