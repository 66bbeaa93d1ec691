package arith

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 1000

// Option is an option for evaluation.
type Option interface {
	option(config) config
}

type (
	logopt   struct{ log logrus.FieldLogger }
	depthopt int
	debugopt bool
)

// config holds the settings for a single evaluation.
type config struct {
	// log receives trace output when debug is set.
	log logrus.FieldLogger
	// max is the nesting limit.
	max int
	// debug enables tracing each step of evaluation to log.
	debug bool
}

var quiet = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func newConfig(opts []Option) config {
	c := config{log: quiet, max: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}

// WithLogger sets the logger that receives traces when Debug is enabled. A
// nil logger discards them.
func WithLogger(log logrus.FieldLogger) Option {
	return logopt{log}
}

func (o logopt) option(c config) config {
	c.log = o.log
	if c.log == nil {
		c.log = quiet
	}
	return c
}

// MaxDepth limits how deeply parentheses and unary minus signs may nest. An
// expression that goes deeper fails with a DepthError. Zero selects
// DefaultMaxDepth. Panics if n is negative.
func MaxDepth(n int) Option {
	if n < 0 {
		panic("arith: negative max depth")
	}
	return depthopt(n)
}

func (o depthopt) option(c config) config {
	c.max = int(o)
	if c.max == 0 {
		c.max = DefaultMaxDepth
	}
	return c
}

// Debug enables logging each token and intermediate result at debug level.
func Debug(debug bool) Option {
	return debugopt(debug)
}

func (o debugopt) option(c config) config {
	c.debug = bool(o)
	return c
}
