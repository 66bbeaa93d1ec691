// Package batch evaluates many independent expressions concurrently.
package batch

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/zephyrtronium/arith"
)

// Result is the outcome of evaluating one expression of a batch.
type Result struct {
	// Index is the position of the expression in the batch.
	Index int
	// Src is the expression.
	Src string
	// Value is the result of evaluation if Err is nil.
	Value float64
	// Err is the evaluation error, or the context's error if the expression
	// was never evaluated.
	Err error
}

// Option configures a batch evaluation.
type Option func(*config)

type config struct {
	workers int
	log     logrus.FieldLogger
	opts    []arith.Option
}

// Workers sets the maximum number of expressions evaluated at once. Values
// below 1 are treated as 1.
func Workers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithLogger sets the logger for batch progress.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) { c.log = log }
}

// EvalOptions sets the options used to evaluate each expression.
func EvalOptions(opts ...arith.Option) Option {
	return func(c *config) { c.opts = opts }
}

// Eval evaluates each expression in srcs and returns the results in the same
// order. Errors in individual expressions are reported in their results; the
// returned error is non-nil only if the worker pool fails or ctx is done
// before all expressions are evaluated.
func Eval(ctx context.Context, srcs []string, opts ...Option) ([]Result, error) {
	c := config{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}

	r := make([]Result, len(srcs))
	for i, src := range srcs {
		r[i] = Result{Index: i, Src: src}
	}
	if len(srcs) == 0 {
		return r, nil
	}

	pool, err := ants.NewPool(c.workers)
	if err != nil {
		return nil, fmt.Errorf("batch: creating pool: %w", err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		stopped error
	)
	for i := range r {
		if stopped = ctx.Err(); stopped != nil {
			c.log.WithError(stopped).WithField("remaining", len(r)-i).Debug("batch stopped")
			for j := i; j < len(r); j++ {
				r[j].Err = stopped
			}
			break
		}
		res := &r[i]
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			res.Value, res.Err = arith.Eval(res.Src, c.opts...)
			c.log.WithFields(logrus.Fields{
				"index": res.Index,
				"value": res.Value,
				"error": res.Err,
			}).Debug("evaluated")
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("batch: submitting expression %d: %w", i, err)
		}
	}
	wg.Wait()
	return r, stopped
}
