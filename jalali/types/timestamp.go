package types

import "time"

const (
	// timestampLayout formats Timestamp values as ISO 8601.
	timestampLayout = "2006-01-02T15:04:05.999999999"

	// SQLTimestampFormat is the layout of timestamps exchanged as text with
	// SQL engines. It is also the text form SQLite's date and time
	// functions produce.
	SQLTimestampFormat = "2006-01-02 15:04:05.999999"
)

// Timestamp is a date and time of day without a time zone, like the SQL
// timestamp without time zone type.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns the Timestamp of the wall clock of src. The
// location of src is discarded.
func NewTimestamp(src time.Time) *Timestamp {
	if src.Location() == time.UTC {
		return &Timestamp{src}
	}
	return NewDate(src).At(NewTime(src))
}

// GoTime returns the underlying time.Time object.
func (ts *Timestamp) GoTime() time.Time { return ts.Time }

// ToDate returns the date of ts.
func (ts *Timestamp) ToDate() *Date { return NewDate(ts.Time) }

// ToTime returns the time of day of ts.
func (ts *Timestamp) ToTime() *Time { return NewTime(ts.Time) }

// String formats ts as ISO 8601 with up to nine fractional digits.
func (ts *Timestamp) String() string { return ts.Format(timestampLayout) }

// SQLString formats ts with [SQLTimestampFormat].
func (ts *Timestamp) SQLString() string { return ts.Format(SQLTimestampFormat) }

// Compare compares the time instant ts with u. If ts is before u, it returns
// -1; if ts is after u, it returns +1; if they're the same, it returns 0.
func (ts *Timestamp) Compare(u time.Time) int {
	return ts.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface.
func (ts *Timestamp) MarshalJSON() ([]byte, error) {
	return marshalJSON(ts.Time, timestampLayout), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. data must be an
// ISO 8601 string without a time zone.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	t, err := unmarshalJSON(data, timestampLayout)
	if err != nil {
		return err
	}
	*ts = Timestamp{t}
	return nil
}
