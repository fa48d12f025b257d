package types

import "time"

// dateLayout formats Date values.
const dateLayout = "2006-01-02"

// Date is a day of the proleptic Gregorian calendar without a time of day,
// like the SQL date type. The underlying time.Time is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate returns the Date of the wall clock of src.
func NewDate(src time.Time) *Date {
	year, month, day := src.Date()
	return NewCivilDate(year, month, day)
}

// NewCivilDate returns the Date year-month-day. Months and days outside
// their ranges roll over as they do for time.Date.
func NewCivilDate(year int, month time.Month, day int) *Date {
	return &Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// GoTime returns the underlying time.Time object.
func (d *Date) GoTime() time.Time { return d.Time }

// String formats d as YYYY-MM-DD.
func (d *Date) String() string { return d.Format(dateLayout) }

// SQLString formats d as YYYY-MM-DD.
func (d *Date) SQLString() string { return d.String() }

// ToTimestamp returns midnight on d.
func (d *Date) ToTimestamp() *Timestamp { return &Timestamp{d.Time} }

// At returns the Timestamp of clock on d. Clocks of 24:00:00 or later
// land on the following days.
func (d *Date) At(clock *Time) *Timestamp {
	days, secs := clock.sinceMidnight()
	return &Timestamp{d.AddDate(0, 0, days).Add(
		time.Duration(secs)*time.Second + time.Duration(clock.Nanosecond()),
	)}
}

// Compare compares the time instant d with u. If d is before u, it returns
// -1; if d is after u, it returns +1; if they're the same, it returns 0.
func (d *Date) Compare(u time.Time) int {
	return d.Time.Compare(u)
}

// MarshalJSON implements the json.Marshaler interface.
func (d *Date) MarshalJSON() ([]byte, error) {
	return marshalJSON(d.Time, dateLayout), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. data must be a
// string formatted as YYYY-MM-DD.
func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := unmarshalJSON(data, dateLayout)
	if err != nil {
		return err
	}
	*d = *NewDate(t)
	return nil
}
