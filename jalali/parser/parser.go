// Package parser parses Jalali date and date-time strings of the forms
// YYYY-MM-DD, YYYY-MM-DD HH:MM and YYYY-MM-DD HH:MM:SS into their integer
// fields, and formats those fields back into canonical Jalali strings.
//
// The parser is deliberately lenient about values: the year is a free-form
// integer, the other fields may have one or two digits (or more), and no
// range checks are done. It only rejects input whose date part does not have
// exactly three fields or whose fields are not integers.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFormat errors are returned when the date part of a Jalali string
	// does not have exactly three "-"-separated fields.
	ErrFormat = errors.New("format")

	// ErrParse errors are returned when a date or time field is not an
	// integer. They also wrap the underlying strconv error.
	ErrParse = errors.New("parse")
)

// DateTime holds the fields of a Jalali date and time of day.
type DateTime struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// Parse parses src into a DateTime. The date part is separated from the
// optional time part by a space; anything after a second space is ignored.
// A time part with fewer than two fields is ignored, and seconds are read
// only when the time part has exactly three fields.
func Parse(src string) (*DateTime, error) {
	parts := split(src, fieldSep)

	var date string
	if len(parts) > 0 {
		date = parts[0]
	}

	fields := split(date, dateSep)
	if len(fields) != 3 {
		return nil, fmt.Errorf(
			"%w: invalid Jalali date format %q. Expected format: YYYY-MM-DD",
			ErrFormat, src,
		)
	}

	l := &lexer{src: src}
	dt := &DateTime{
		Year:  l.int(fields[0], "year"),
		Month: l.int(fields[1], "month"),
		Day:   l.int(fields[2], "day"),
	}

	if len(parts) > 1 {
		if fields := split(parts[1], timeSep); len(fields) >= 2 {
			dt.Hour = l.int(fields[0], "hour")
			dt.Minute = l.int(fields[1], "minute")
			if len(fields) == 3 {
				dt.Second = l.int(fields[2], "second")
			}
		}
	}

	if l.err != nil {
		return nil, l.err
	}
	return dt, nil
}

// IsMidnight returns true if the time of day is exactly 00:00:00 with no
// sub-second component.
func (dt *DateTime) IsMidnight() bool {
	return dt.Hour == 0 && dt.Minute == 0 && dt.Second == 0 && dt.Microsecond == 0
}

// String returns the canonical representation of dt: YYYY-MM-DD when the
// time of day is midnight, and YYYY-MM-DD HH:MM:SS otherwise. Microseconds
// are never included.
func (dt *DateTime) String() string {
	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%04d-%02d-%02d", dt.Year, dt.Month, dt.Day)
	if !dt.IsMidnight() {
		fmt.Fprintf(buf, " %02d:%02d:%02d", dt.Hour, dt.Minute, dt.Second)
	}
	return buf.String()
}
