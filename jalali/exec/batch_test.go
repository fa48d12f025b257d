package exec

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/sqljalali/jalali/parser"
	"github.com/theory/sqljalali/jalali/types"
)

func ptr[T any](v T) *T { return &v }

func TestOptions(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(&Executor{verbose: true, limit: 1}, newExec())
	a.Equal(&Executor{verbose: false, limit: 1}, newExec(WithSilent()))
	a.Equal(&Executor{verbose: true, endOfDay: true, limit: 1}, newExec(WithEndOfDay()))
	a.Equal(&Executor{verbose: true, limit: 8}, newExec(WithParallelism(8)))
	a.Equal(&Executor{verbose: true, limit: 1}, newExec(WithParallelism(0)))
	a.Equal(&Executor{verbose: true, limit: 1}, newExec(WithParallelism(-3)))
	a.Equal(
		&Executor{verbose: false, endOfDay: true, limit: 4},
		newExec(WithSilent(), WithEndOfDay(), WithParallelism(4)),
	)
}

func TestToGregorian(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, tc := range []struct {
		name     string
		src      []*string
		endOfDay []*bool
		opt      []Option
		exp      []*types.Timestamp
		err      error
	}{
		{
			name:     "empty",
			src:      []*string{},
			endOfDay: []*bool{},
			exp:      []*types.Timestamp{},
		},
		{
			name:     "values",
			src:      []*string{ptr("1400-01-01"), ptr("1402-07-15 13:45:59")},
			endOfDay: []*bool{ptr(false), ptr(true)},
			exp: []*types.Timestamp{
				ts(2021, 3, 21, 0, 0, 0, 0),
				ts(2023, 10, 7, 23, 59, 59, 0),
			},
		},
		{
			name:     "nulls",
			src:      []*string{nil, ptr("1400-01-01"), ptr("1400-01-01")},
			endOfDay: []*bool{ptr(false), nil, ptr(false)},
			exp:      []*types.Timestamp{nil, nil, ts(2021, 3, 21, 0, 0, 0, 0)},
		},
		{
			name:     "end_of_day_option",
			src:      []*string{ptr("1400-01-01"), ptr("1400-01-02 10:00")},
			endOfDay: nil,
			opt:      []Option{WithEndOfDay()},
			exp: []*types.Timestamp{
				ts(2021, 3, 21, 23, 59, 59, 0),
				ts(2021, 3, 22, 23, 59, 59, 0),
			},
		},
		{
			name:     "end_of_day_option_overrides_flags",
			src:      []*string{ptr("1400-01-01"), ptr("1400-01-02")},
			endOfDay: []*bool{ptr(false), nil},
			opt:      []Option{WithEndOfDay()},
			exp: []*types.Timestamp{
				ts(2021, 3, 21, 23, 59, 59, 0),
				ts(2021, 3, 22, 23, 59, 59, 0),
			},
		},
		{
			name:     "length_mismatch",
			src:      []*string{ptr("1400-01-01")},
			endOfDay: []*bool{},
			err:      ErrExecution,
		},
		{
			name:     "nil_flags_without_option",
			src:      []*string{ptr("1400-01-01")},
			endOfDay: nil,
			err:      ErrExecution,
		},
		{
			name:     "format_error",
			src:      []*string{ptr("1400-01-01"), ptr("1400-01")},
			endOfDay: []*bool{ptr(false), ptr(false)},
			err:      parser.ErrFormat,
		},
		{
			name:     "parse_error",
			src:      []*string{ptr("1400-01-xx")},
			endOfDay: []*bool{ptr(true)},
			err:      parser.ErrParse,
		},
		{
			name:     "silent",
			src:      []*string{ptr("1400-01"), ptr("1400-01-xx"), ptr("1400-01-01")},
			endOfDay: []*bool{ptr(false), ptr(false), ptr(false)},
			opt:      []Option{WithSilent()},
			exp:      []*types.Timestamp{nil, nil, ts(2021, 3, 21, 0, 0, 0, 0)},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			for _, opt := range [][]Option{tc.opt, append(tc.opt, WithParallelism(3))} {
				res, err := ToGregorian(ctx, tc.src, tc.endOfDay, opt...)
				if tc.err != nil {
					r.ErrorIs(err, tc.err)
					r.Nil(res)
					continue
				}
				r.NoError(err)
				a.Equal(tc.exp, res)
			}
		})
	}
}

func TestToGregorianErrorIndex(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	res, err := ToGregorian(
		context.Background(),
		[]*string{ptr("1400-01-01"), ptr("1400-01")},
		nil,
		WithEndOfDay(),
	)
	r.Nil(res)
	r.EqualError(
		err,
		`value 1: format: invalid Jalali date format "1400-01". Expected format: YYYY-MM-DD`,
	)

	res, err = ToGregorian(context.Background(), []*string{ptr("1400-01-01")}, []*bool{})
	r.Nil(res)
	r.EqualError(err, "exec: received 1 values but 0 end of day flags")
}

func TestToJalali(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		src  []*types.Timestamp
		exp  []*string
	}{
		{
			name: "empty",
			src:  []*types.Timestamp{},
			exp:  []*string{},
		},
		{
			name: "values",
			src: []*types.Timestamp{
				ts(2021, 3, 21, 0, 0, 0, 0),
				ts(2023, 10, 7, 13, 45, 59, 0),
			},
			exp: []*string{ptr("1400-01-01"), ptr("1402-07-15 13:45:59")},
		},
		{
			name: "nulls",
			src:  []*types.Timestamp{nil, ts(2021, 3, 21, 0, 0, 0, 0), nil},
			exp:  []*string{nil, ptr("1400-01-01"), nil},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			for _, opt := range [][]Option{nil, {WithParallelism(2)}} {
				res, err := ToJalali(ctx, tc.src, opt...)
				r.NoError(err)
				a.Equal(tc.exp, res)
			}
		})
	}
}

func TestBatchOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	const size = 2000
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	src := make([]*types.Timestamp, size)
	for i := range src {
		src[i] = &types.Timestamp{Time: start.AddDate(0, 0, i).Add(time.Duration(i) * time.Second)}
	}

	for _, n := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("parallel_%d", n), func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			jalali, err := ToJalali(ctx, src, WithParallelism(n))
			r.NoError(err)
			r.Len(jalali, size)

			flags := make([]*bool, size)
			for i := range flags {
				flags[i] = ptr(false)
			}

			greg, err := ToGregorian(ctx, jalali, flags, WithParallelism(n))
			r.NoError(err)
			r.Len(greg, size)

			for i, got := range greg {
				a.Equal(src[i], got, "value %d", i)
			}
		})
	}
}

func TestBatchCanceled(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := []*string{ptr("1400-01-01"), ptr("1400-01-02")}
	for _, opt := range [][]Option{nil, {WithParallelism(2)}} {
		res, err := ToGregorian(ctx, src, nil, append(opt, WithEndOfDay())...)
		r.Nil(res)
		r.ErrorIs(err, ErrExecution)
		r.ErrorIs(err, context.Canceled)
		r.EqualError(err, "exec: context canceled")

		out, err := ToJalali(ctx, []*types.Timestamp{ts(2021, 3, 21, 0, 0, 0, 0)}, opt...)
		r.Nil(out)
		r.ErrorIs(err, ErrExecution)
		r.ErrorIs(err, context.Canceled)
	}
}
