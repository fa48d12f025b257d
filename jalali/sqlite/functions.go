package sqlite

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theory/sqljalali/jalali/exec"
	"github.com/theory/sqljalali/jalali/types"
	modernc "modernc.org/sqlite"
)

// ErrArgument errors are returned by the SQL functions for arguments of
// unsupported types.
var ErrArgument = errors.New("argument")

// jalaliToGregorian implements jalali_to_gregorian(text, boolean). The
// result is a timestamp in SQLite's text format.
func jalaliToGregorian(_ *modernc.FunctionContext, args []driver.Value) (driver.Value, error) {
	src, ok, err := textArg(args[0])
	if err != nil || !ok {
		return nil, err
	}

	endOfDay, ok, err := boolArg(args[1])
	if err != nil || !ok {
		return nil, err
	}

	ts, err := exec.JalaliToGregorian(src, endOfDay)
	if err != nil {
		//nolint:wrapcheck // parser errors are reported as is.
		return nil, err
	}
	return ts.SQLString(), nil
}

// gregorianToJalali implements gregorian_to_jalali(timestamp).
func gregorianToJalali(_ *modernc.FunctionContext, args []driver.Value) (driver.Value, error) {
	ts, ok, err := timestampArg(args[0])
	if err != nil || !ok {
		return nil, err
	}
	return exec.GregorianToJalali(ts), nil
}

// textArg returns the string value of arg. Returns false if arg is NULL.
func textArg(arg driver.Value) (string, bool, error) {
	switch arg := arg.(type) {
	case nil:
		return "", false, nil
	case string:
		return arg, true, nil
	case []byte:
		return string(arg), true, nil
	default:
		return "", false, fmt.Errorf("%w: expected text but got %v", ErrArgument, typeName(arg))
	}
}

// boolArg returns the boolean value of arg. SQLite stores booleans as
// integers, so any nonzero integer is true. Strings are parsed with
// strconv.ParseBool. Returns false if arg is NULL.
func boolArg(arg driver.Value) (bool, bool, error) {
	switch arg := arg.(type) {
	case nil:
		return false, false, nil
	case int64:
		return arg != 0, true, nil
	case bool:
		return arg, true, nil
	case string:
		b, err := strconv.ParseBool(arg)
		if err != nil {
			return false, false, fmt.Errorf("%w: invalid boolean %q", ErrArgument, arg)
		}
		return b, true, nil
	default:
		return false, false, fmt.Errorf("%w: expected boolean but got %v", ErrArgument, typeName(arg))
	}
}

// timestampArg returns the timestamp value of arg. Text is parsed as a date
// or timestamp, integers are Unix seconds, and time.Time values are used as
// is. Returns false if arg is NULL.
func timestampArg(arg driver.Value) (time.Time, bool, error) {
	switch arg := arg.(type) {
	case nil:
		return time.Time{}, false, nil
	case string:
		t, err := parseTimestamp(arg)
		if err != nil {
			return time.Time{}, false, err
		}
		return t, true, nil
	case []byte:
		return timestampArg(string(arg))
	case int64:
		return time.Unix(arg, 0).UTC(), true, nil
	case time.Time:
		return arg, true, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: expected timestamp but got %v", ErrArgument, typeName(arg))
	}
}

// zonedFormats are the formats the driver writes time.Time parameters in:
// its "sqlite" _time_format and the default time.Time.String format.
//
//nolint:gochecknoglobals
var zonedFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

// parseTimestamp parses src as a date or timestamp. Timestamps with a time
// zone offset, as bound by the driver for time.Time parameters, keep their
// wall clock.
func parseTimestamp(src string) (time.Time, error) {
	ts, err := types.ParseTimestamp(src)
	if err == nil {
		return ts.Time, nil
	}

	// Strip the monotonic clock reading from time.Time.String output.
	trimmed := src
	if i := strings.Index(trimmed, " m="); i > 0 {
		trimmed = trimmed[:i]
	}

	for _, format := range zonedFormats {
		if t, err := time.Parse(format, trimmed); err == nil {
			return t, nil
		}
	}

	//nolint:wrapcheck // types errors are reported as is.
	return time.Time{}, err
}

// typeName returns the SQL name of the type of a driver.Value.
func typeName(arg driver.Value) string {
	switch arg.(type) {
	case int64:
		return "integer"
	case float64:
		return "real"
	case []byte:
		return "blob"
	case string:
		return "text"
	default:
		return fmt.Sprintf("%T", arg)
	}
}
