// Package exec converts between Jalali date-time strings and Gregorian
// timestamps, either one value at a time or in batches.
//
// [JalaliToGregorian] and [GregorianToJalali] are the scalar conversions.
// [ToGregorian] and [ToJalali] apply them to slices of nullable values the
// way a SQL engine evaluates a scalar function over a column: a nil input
// yields a nil output.
package exec

import (
	"time"

	"github.com/theory/sqljalali/jalali/calendar"
	"github.com/theory/sqljalali/jalali/parser"
	"github.com/theory/sqljalali/jalali/types"
)

// JalaliToGregorian parses src as a Jalali date or date-time and returns the
// corresponding Gregorian timestamp. If endOfDay is true the time of day is
// set to 23:59:59, whether or not src includes a time.
//
// Returns an error wrapping [parser.ErrFormat] when the date part of src
// does not have three fields, and [parser.ErrParse] when a field is not an
// integer. Field values are not range checked.
func JalaliToGregorian(src string, endOfDay bool) (*types.Timestamp, error) {
	dt, err := parser.Parse(src)
	if err != nil {
		//nolint:wrapcheck // parser errors are part of the API.
		return nil, err
	}
	return Compose(dt, endOfDay), nil
}

// GregorianToJalali returns the Jalali representation of the wall clock of
// t, ignoring its location. The time of day is omitted when t is midnight at
// microsecond precision.
func GregorianToJalali(t time.Time) string {
	return Decompose(t).String()
}

// Compose converts the Jalali fields of dt into a Gregorian timestamp. If
// endOfDay is true the time fields of dt are replaced with 23:59:59.
// Time fields outside their natural ranges carry into adjacent days.
func Compose(dt *parser.DateTime, endOfDay bool) *types.Timestamp {
	gy, gm, gd := calendar.JalaliToGregorian(dt.Year, dt.Month, dt.Day)
	date := types.NewCivilDate(gy, time.Month(gm), gd)

	if endOfDay {
		return date.At(types.EndOfDay())
	}

	return date.At(&types.Time{Time: time.Date(
		0, 1, 1,
		dt.Hour, dt.Minute, dt.Second, dt.Microsecond*int(time.Microsecond),
		time.UTC,
	)})
}

// Decompose converts the wall clock of t into Jalali fields. Nanoseconds
// are truncated to microseconds.
func Decompose(t time.Time) *parser.DateTime {
	jy, jm, jd := calendar.GregorianToJalali(t.Year(), int(t.Month()), t.Day())
	return &parser.DateTime{
		Year:        jy,
		Month:       jm,
		Day:         jd,
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Microsecond: t.Nanosecond() / int(time.Microsecond),
	}
}
