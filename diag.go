package arith

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Diagnostic locates an InputError in the line of source containing it.
type Diagnostic struct {
	// Msg is the error message.
	Msg string
	// Line is the line of source containing the error, without its newline.
	Line string
	// Col is the number of runes in Line before the error.
	Col int
}

// Locate finds the line and column of an InputError in src. The second
// result is false if err does not wrap an InputError. Offsets outside src are
// clamped to it.
func Locate(err error, src string) (Diagnostic, bool) {
	var ie InputError
	if !errors.As(err, &ie) {
		return Diagnostic{}, false
	}
	off := ie.Pos()
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	start := strings.LastIndexByte(src[:off], '\n') + 1
	end := strings.IndexByte(src[off:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += off
	}
	d := Diagnostic{
		Msg:  err.Error(),
		Line: strings.TrimSuffix(src[start:end], "\r"),
		Col:  utf8.RuneCountInString(src[start:off]),
	}
	return d, true
}

// Caret returns padding followed by a caret that lines up under the error
// when printed below Line. Tabs before the error are kept so that the caret
// aligns however the terminal expands them.
func (d Diagnostic) Caret() string {
	var b strings.Builder
	n := 0
	for _, r := range d.Line {
		if n == d.Col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		n++
	}
	for ; n < d.Col; n++ {
		b.WriteByte(' ')
	}
	b.WriteByte('^')
	return b.String()
}

func (d Diagnostic) String() string {
	return d.Msg + "\n    " + d.Line + "\n    " + d.Caret()
}

// Diagnose renders err with the line of src where it occurred and a caret
// under the offending input. Errors which are not InputErrors render as their
// messages alone.
func Diagnose(err error, src string) string {
	d, ok := Locate(err, src)
	if !ok {
		return err.Error()
	}
	return d.String()
}
