package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/zephyrtronium/arith"
	"github.com/zephyrtronium/arith/internal/batch"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

var (
	msgStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	caretStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// run runs the command and returns its exit status: 0 if every expression
// evaluated, 1 if any failed or the input could not be read, and 2 for bad
// usage.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		inname, verb   string
		nl, toks, v    bool
		color          bool
		workers, depth int
	)
	fs := flag.NewFlagSet("arith", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "%g", "result formatting string")
	fs.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	fs.BoolVar(&toks, "tokens", false, "dump the tokens of each expression")
	fs.BoolVar(&v, "v", false, "trace evaluation")
	fs.BoolVar(&color, "color", false, "color error messages even when stderr is not a terminal")
	fs.IntVar(&workers, "j", runtime.GOMAXPROCS(0), "number of expressions to evaluate at once")
	fs.IntVar(&depth, "depth", arith.DefaultMaxDepth, "maximum nesting depth")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if depth < 0 {
		fmt.Fprintf(stderr, "depth (%d) must not be negative\n", depth)
		return 2
	}

	log := logrus.New()
	log.SetOutput(stderr)
	if v {
		log.SetLevel(logrus.DebugLevel)
	}

	srcs := fs.Args()
	if len(srcs) == 0 || inname != "" {
		in, err := readInput(inname, stdin, nl)
		if err != nil {
			log.WithError(err).Error("reading input")
			return 1
		}
		srcs = append(in, srcs...)
	}
	if len(srcs) == 0 {
		fmt.Fprintln(stderr, "no expressions to evaluate")
		return 2
	}

	if toks {
		for _, src := range srcs {
			fmt.Fprintf(stderr, "%q:\n", src)
			spew.Fdump(stderr, arith.ScanAll(src))
		}
	}

	opts := []arith.Option{arith.MaxDepth(depth), arith.Debug(v), arith.WithLogger(log)}
	r, err := batch.Eval(context.Background(), srcs,
		batch.Workers(workers),
		batch.WithLogger(log),
		batch.EvalOptions(opts...),
	)
	if err != nil {
		log.WithError(err).Error("evaluating")
		return 1
	}

	styled := color || isTerminal(stderr)
	verb += "\n"
	status := 0
	for _, x := range r {
		if x.Err != nil {
			fmt.Fprintln(stderr, render(x.Err, x.Src, styled))
			status = 1
			continue
		}
		fmt.Fprintf(stdout, verb, x.Value)
	}
	return status
}

// readInput reads expressions from the named file, or from stdin if the name
// is empty or "-". With nl, each non-blank line is an expression; otherwise
// the whole input is one.
func readInput(name string, stdin io.Reader, nl bool) ([]string, error) {
	in := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	if !nl {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimRight(string(b), "\r\n")}, nil
	}
	var r []string
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		r = append(r, line)
	}
	return r, sc.Err()
}

// render formats an evaluation error for display.
func render(err error, src string, styled bool) string {
	d, ok := arith.Locate(err, src)
	if !ok {
		return err.Error()
	}
	if !styled {
		return d.String()
	}
	return msgStyle.Render(d.Msg) + "\n    " + d.Line + "\n    " + caretStyle.Render(d.Caret())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
