// Package jalali converts dates between the Jalali (Solar Hijri) calendar
// and the proleptic Gregorian calendar.
//
// Jalali values are strings of the form YYYY-MM-DD, optionally followed by
// a time of day as HH:MM or HH:MM:SS. Gregorian values are timezone-naive
// [types.Timestamp] values, the equivalent of SQL timestamp without time
// zone. The conversions are pure integer arithmetic based on the 33-year
// Jalali cycle, and are safe for concurrent use.
//
// The [github.com/theory/sqljalali/jalali/sqlite] package registers the
// conversions as SQL functions.
package jalali

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/theory/sqljalali/jalali/exec"
	"github.com/theory/sqljalali/jalali/parser"
	"github.com/theory/sqljalali/jalali/types"
)

// DateTime represents a Jalali date and time of day.
type DateTime struct {
	*parser.DateTime
}

var (
	// ErrJalali wraps parsing errors.
	ErrJalali = errors.New("jalali")

	// ErrScan wraps scanning errors.
	ErrScan = errors.New("scan")
)

// Parse parses src and returns the resulting DateTime. Returns an error on
// parse failure.
func Parse(src string) (*DateTime, error) {
	dt, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJalali, err)
	}
	return &DateTime{dt}, nil
}

// MustParse is like Parse but panics on parse failure.
func MustParse(src string) *DateTime {
	dt, err := parser.Parse(src)
	if err != nil {
		panic(err)
	}
	return &DateTime{dt}
}

// New creates and returns a new DateTime from dt.
func New(dt *parser.DateTime) *DateTime {
	return &DateTime{dt}
}

// FromGregorian returns the Jalali DateTime for the wall clock of t. The
// location of t is ignored and nanoseconds are truncated to microseconds.
func FromGregorian(t time.Time) *DateTime {
	return &DateTime{exec.Decompose(t)}
}

// ToGregorian converts the Jalali string src to a Gregorian timestamp. If
// endOfDay is true the time of day is 23:59:59 regardless of the time in
// src. Returns an error on parse failure.
func ToGregorian(src string, endOfDay bool) (*types.Timestamp, error) {
	ts, err := exec.JalaliToGregorian(src, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJalali, err)
	}
	return ts, nil
}

// ToJalali returns the canonical Jalali string for the wall clock of t.
func ToJalali(t time.Time) string {
	return exec.GregorianToJalali(t)
}

// String returns the canonical representation of dt: YYYY-MM-DD at
// midnight and YYYY-MM-DD HH:MM:SS otherwise.
func (dt *DateTime) String() string {
	return dt.DateTime.String()
}

// Gregorian returns the Gregorian timestamp for dt. If endOfDay is true the
// time of day is 23:59:59.
func (dt *DateTime) Gregorian(endOfDay bool) *types.Timestamp {
	return exec.Compose(dt.DateTime, endOfDay)
}

// Scan implements sql.Scanner so DateTimes can be read from databases
// transparently. Strings and []byte values are parsed as Jalali strings,
// while time.Time values are converted from Gregorian.
func (dt *DateTime) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		// if an empty DateTime comes from a table, we return a null DateTime
		if src == "" {
			return nil
		}
		val, err := parser.Parse(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScan, err)
		}
		*dt = DateTime{val}
	case []byte:
		// if an empty DateTime comes from a table, we return a null DateTime
		if len(src) == 0 {
			return nil
		}
		// Parse as a string.
		return dt.Scan(string(src))
	case time.Time:
		*dt = DateTime{exec.Decompose(src)}
	default:
		return fmt.Errorf("%w: unable to scan type %T into DateTime", ErrScan, src)
	}
	return nil
}

// Value implements driver.Valuer so that DateTimes can be written to
// databases transparently. DateTimes map to their canonical strings.
func (dt DateTime) Value() (driver.Value, error) {
	return dt.String(), nil
}

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) {
	return dt.MarshalBinary()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(data []byte) error {
	return dt.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (dt DateTime) MarshalBinary() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (dt *DateTime) UnmarshalBinary(data []byte) error {
	val, err := parser.Parse(string(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrScan, err)
	}
	*dt = DateTime{val}
	return nil
}

// MarshalJSON implements json.Marshaler. The DateTime is a JSON string in
// its canonical format.
func (dt DateTime) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // a string always marshals
	return json.Marshal(dt.String())
}

// UnmarshalJSON implements json.Unmarshaler. data must be a JSON string.
func (dt *DateTime) UnmarshalJSON(data []byte) error {
	var src string
	if err := json.Unmarshal(data, &src); err != nil {
		return fmt.Errorf("%w: %w", ErrScan, err)
	}
	return dt.UnmarshalBinary([]byte(src))
}
