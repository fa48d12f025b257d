package types

import (
	"fmt"
	"time"
)

// layouts lists the layouts ParseTime tries, in order, and the type each
// produces. time.Parse accepts fractional seconds after a seconds field
// whether or not the layout includes them.
//
//nolint:gochecknoglobals
var layouts = []struct {
	layout string
	ctor   func(time.Time) DateTime
}{
	{"2006-01-02", func(t time.Time) DateTime { return NewDate(t) }},
	{"15:04:05", func(t time.Time) DateTime { return NewTime(t) }},
	{"15:04", func(t time.Time) DateTime { return NewTime(t) }},
	{"2006-01-02 15:04:05", func(t time.Time) DateTime { return NewTimestamp(t) }},
	{"2006-01-02T15:04:05", func(t time.Time) DateTime { return NewTimestamp(t) }},
	{"2006-01-02 15:04", func(t time.Time) DateTime { return NewTimestamp(t) }},
	{"2006-01-02T15:04", func(t time.Time) DateTime { return NewTimestamp(t) }},
}

// ParseTime parses src as a Gregorian date, time of day, or timestamp. It
// accepts timestamps with a space or a "T" between the date and time, with
// or without seconds. Time zones are not supported. Returns false if src
// matches none of the layouts.
func ParseTime(src string) (DateTime, bool) {
	for _, l := range layouts {
		if t, err := time.Parse(l.layout, src); err == nil {
			return l.ctor(t), true
		}
	}
	return nil, false
}

// ParseTimestamp parses src with [ParseTime] and returns it as a
// Timestamp. A date becomes midnight on that date. Returns an error if src
// cannot be parsed or has no date.
func ParseTimestamp(src string) (*Timestamp, error) {
	if val, ok := ParseTime(src); ok {
		switch val := val.(type) {
		case *Timestamp:
			return val, nil
		case *Date:
			return val.ToTimestamp(), nil
		}
	}

	return nil, fmt.Errorf(`%w: format is not recognized: "%v"`, ErrSQLType, src)
}
