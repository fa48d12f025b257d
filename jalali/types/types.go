// Package types provides the timezone-naive Gregorian date and time types
// that the Jalali conversions exchange with SQL engines.
//
// Every value keeps its wall clock in UTC, the way SQL date, time, and
// timestamp without time zone values behave. A [Timestamp] is a [Date] at
// a [Time] and splits back into the two.
package types

import (
	"errors"
	"time"
)

// ErrSQLType is wrapped by parse and JSON decoding errors.
var ErrSQLType = errors.New("type")

// DateTime is implemented by [Date], [Time], and [Timestamp].
type DateTime interface {
	// GoTime returns the wall clock as a UTC time.Time.
	GoTime() time.Time

	// String returns the ISO 8601 text of the value.
	String() string

	// SQLString returns the text representation exchanged with SQL
	// engines, at microsecond precision.
	SQLString() string
}
