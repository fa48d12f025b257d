package exec

import (
	"context"
	"errors"
	"fmt"

	"github.com/theory/sqljalali/jalali/types"
	"golang.org/x/sync/errgroup"
)

// ErrExecution errors denote batch execution errors: mismatched inputs and
// interrupted contexts.
var ErrExecution = errors.New("exec")

// Executor represents the context for batch execution.
type Executor struct {
	// with "false" conversion errors yield nil results
	verbose bool

	// with "true" every value converts at 23:59:59
	endOfDay bool

	// maximum number of values converted concurrently
	limit int
}

// Option specifies an execution option.
type Option func(*Executor)

// WithSilent suppresses conversion errors. Values that fail to convert
// yield nil, just like nil inputs.
func WithSilent() Option { return func(e *Executor) { e.verbose = false } }

// WithEndOfDay converts every value as if its end of day flag were true.
// The endOfDay argument to [ToGregorian] may then be nil.
func WithEndOfDay() Option { return func(e *Executor) { e.endOfDay = true } }

// WithParallelism converts up to n values concurrently. Results are always
// returned in input order. Values of n less than 1 are treated as 1.
func WithParallelism(n int) Option {
	return func(e *Executor) { e.limit = max(n, 1) }
}

func newExec(opt ...Option) *Executor {
	e := &Executor{verbose: true, limit: 1}
	for _, o := range opt {
		o(e)
	}
	return e
}

// ToGregorian converts each Jalali string in src to a Gregorian timestamp
// using the end of day flag at the same index in endOfDay. A nil string or
// flag yields a nil timestamp. Returns an [ErrExecution] error if src and
// endOfDay differ in length, unless [WithEndOfDay] is set and endOfDay is
// nil. Conversion errors fail the batch unless [WithSilent] is set.
func ToGregorian(
	ctx context.Context,
	src []*string,
	endOfDay []*bool,
	opt ...Option,
) ([]*types.Timestamp, error) {
	exec := newExec(opt...)
	if len(endOfDay) != len(src) && !(exec.endOfDay && endOfDay == nil) {
		return nil, fmt.Errorf(
			"%w: received %d values but %d end of day flags",
			ErrExecution, len(src), len(endOfDay),
		)
	}

	res := make([]*types.Timestamp, len(src))
	err := exec.run(ctx, len(src), func(i int) error {
		if src[i] == nil {
			return nil
		}

		eod := exec.endOfDay
		if !eod {
			if endOfDay[i] == nil {
				return nil
			}
			eod = *endOfDay[i]
		}

		ts, err := JalaliToGregorian(*src[i], eod)
		if err != nil {
			if exec.verbose {
				return fmt.Errorf("value %d: %w", i, err)
			}
			return nil
		}
		res[i] = ts
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ToJalali converts each Gregorian timestamp in src to a Jalali string. A
// nil timestamp yields a nil string.
func ToJalali(ctx context.Context, src []*types.Timestamp, opt ...Option) ([]*string, error) {
	exec := newExec(opt...)
	res := make([]*string, len(src))
	err := exec.run(ctx, len(src), func(i int) error {
		if src[i] != nil {
			str := GregorianToJalali(src[i].Time)
			res[i] = &str
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// run calls fn for each index in [0, n) with at most e.limit calls in
// flight. It stops at the first error or when ctx is done.
func (e *Executor) run(ctx context.Context, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.limit)

	for i := range n {
		g.Go(func() error {
			// Check for interrupts.
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrExecution, ctx.Err())
			default:
			}
			return fn(i)
		})
	}

	//nolint:wrapcheck // errors are wrapped by fn and the interrupt check.
	return g.Wait()
}
