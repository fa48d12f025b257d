package types

import "time"

const (
	// timeLayout formats Time values.
	timeLayout = "15:04:05.999999999"

	// sqlTimeLayout formats Time values for SQL engines.
	sqlTimeLayout = "15:04:05.999999"
)

// Time is a time of day without a date or time zone, like the SQL time
// type. The underlying time.Time falls on January 1 of year 0, UTC, unless
// built by [NewClock] from fields that overflow the day.
type Time struct {
	time.Time
}

// NewTime returns the Time of the wall clock of src.
func NewTime(src time.Time) *Time {
	hour, minute, second := src.Clock()
	return &Time{time.Date(0, 1, 1, hour, minute, second, src.Nanosecond(), time.UTC)}
}

// NewClock returns the Time hour:minute:second. Fields outside their ranges
// roll over as they do for time.Date, so 24:00:00 is midnight of the next
// day. [Date.At] carries the overflow into the date.
func NewClock(hour, minute, second int) *Time {
	return &Time{time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)}
}

// EndOfDay returns 23:59:59, the last whole second of a day.
func EndOfDay() *Time { return NewClock(23, 59, 59) }

// GoTime returns the underlying time.Time object.
func (t *Time) GoTime() time.Time { return t.Time }

// Microsecond returns the microsecond within the second, in the range
// [0, 999999].
func (t *Time) Microsecond() int {
	return t.Nanosecond() / int(time.Microsecond)
}

// IsMidnight returns true if t is 00:00:00 at microsecond precision.
func (t *Time) IsMidnight() bool {
	hour, minute, second := t.Clock()
	return hour == 0 && minute == 0 && second == 0 && t.Microsecond() == 0
}

// String formats t as HH:MM:SS with up to nine fractional digits.
func (t *Time) String() string { return t.Format(timeLayout) }

// SQLString formats t as HH:MM:SS with up to six fractional digits.
func (t *Time) SQLString() string { return t.Format(sqlTimeLayout) }

// Compare compares the time instant t with u. If t is before u, it returns
// -1; if t is after u, it returns +1; if they're the same, it returns 0.
func (t *Time) Compare(u time.Time) int {
	return t.Time.Compare(u)
}

// secondsPerDay is the number of seconds in a day.
const secondsPerDay = 24 * 60 * 60

// sinceMidnight returns the whole days and remaining seconds between
// midnight of January 1, year 0 and t. Fractional seconds are left out.
func (t *Time) sinceMidnight() (int, int64) {
	secs := t.Unix() - time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	days := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		days--
	}
	return int(days), secs - days*secondsPerDay
}

// MarshalJSON implements the json.Marshaler interface.
func (t *Time) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.Time, timeLayout), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. data must be a
// string formatted as HH:MM:SS with optional fractional seconds.
func (t *Time) UnmarshalJSON(data []byte) error {
	tim, err := unmarshalJSON(data, timeLayout)
	if err != nil {
		return err
	}
	*t = *NewTime(tim)
	return nil
}
