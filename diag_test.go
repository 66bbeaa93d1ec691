package arith_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/arith"
)

func TestDiagnose(t *testing.T) {
	src := "2+*3"
	_, err := arith.Eval(src)
	require.Error(t, err)
	want := "2: unexpected \"*\", expected number or \"(\"\n" +
		"    2+*3\n" +
		"      ^"
	assert.Equal(t, want, arith.Diagnose(err, src))
}

func TestLocate(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		err   error
		line  string
		col   int
		caret string
	}{
		{"first", "$", &arith.LexError{Offset: 0, Text: "$", Context: "$"}, "$", 0, "^"},
		{"end", "(1+", &arith.EndError{Offset: 3, Expected: arith.ExpectOperand}, "(1+", 3, "   ^"},
		{"second-line", "1 +\n2 $\n3", &arith.LexError{Offset: 6, Text: "$"}, "2 $", 2, "  ^"},
		{"crlf", "1 +\r\n2 $", &arith.LexError{Offset: 7, Text: "$"}, "2 $", 2, "  ^"},
		{"tab", "\t2 $", &arith.LexError{Offset: 3, Text: "$"}, "\t2 $", 3, "\t  ^"},
		{"runes", "π+*", &arith.TokenError{Offset: 3, Text: "*", Expected: arith.ExpectOperand}, "π+*", 2, "  ^"},
		{"clamped", "1+", &arith.EndError{Offset: 10, Expected: arith.ExpectOperand}, "1+", 2, "  ^"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, ok := arith.Locate(c.err, c.src)
			require.True(t, ok)
			assert.Equal(t, c.err.Error(), d.Msg)
			assert.Equal(t, c.line, d.Line)
			assert.Equal(t, c.col, d.Col)
			assert.Equal(t, c.caret, d.Caret())
		})
	}
}

func TestLocateWrapped(t *testing.T) {
	src := "1+1)"
	_, err := arith.Eval(src)
	err = fmt.Errorf("expression 1: %w", err)
	d, ok := arith.Locate(err, src)
	require.True(t, ok)
	assert.Equal(t, "expression 1: 3: close parenthesis with no open parenthesis", d.Msg)
	assert.Equal(t, 3, d.Col)
}

func TestDiagnoseOtherErrors(t *testing.T) {
	err := errors.New("boom")
	_, ok := arith.Locate(err, "1+1")
	assert.False(t, ok)
	assert.Equal(t, "boom", arith.Diagnose(err, "1+1"))
}
