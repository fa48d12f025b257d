package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	// Each connection gets its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestIsIdentifier(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, name := range []string{
		"jalali_to_gregorian",
		"_private",
		"j2g",
		"تاریخ_شمسی",
		"Ñandú",
	} {
		a.True(IsIdentifier(name), name)
	}

	for _, name := range []string{
		"",
		"2g",
		"jalali-to-gregorian",
		"jalali to gregorian",
		"jalali.fn",
		"drop;table",
		"\xff",
	} {
		a.False(IsIdentifier(name), name)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	r.NoError(Register())
	r.NoError(Register())
	r.NoError(Register(WithNames(JalaliToGregorian, GregorianToJalali)))
	r.NoError(Register(WithNames("to_miladi", "to_shamsi")))
	r.NoError(Register(WithNames("to_miladi", "to_shamsi")))

	names := Functions()
	a.Subset(names, []string{GregorianToJalali, JalaliToGregorian, "to_miladi", "to_shamsi"})
	a.IsNonDecreasing(names)
}

func TestRegisterErrors(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	r.NoError(Register())

	for _, tc := range []struct {
		name string
		opt  Option
		err  string
	}{
		{
			name: "empty_name",
			opt:  WithNames("", "g2j"),
			err:  `register: invalid function name ""`,
		},
		{
			name: "invalid_name",
			opt:  WithNames("j2g", "g2j()"),
			err:  `register: invalid function name "g2j()"`,
		},
		{
			name: "duplicate_name",
			opt:  WithNames("same_fn", "same_fn"),
			err:  `register: duplicate function name "same_fn"`,
		},
		{
			name: "swapped_names",
			opt:  WithNames(GregorianToJalali, JalaliToGregorian),
			err:  `register: function "` + GregorianToJalali + `" already registered`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := Register(tc.opt)
			r.EqualError(err, tc.err)
			r.ErrorIs(err, ErrRegister)
		})
	}
}

func TestJalaliToGregorianSQL(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	for _, tc := range []struct {
		name     string
		src      any
		endOfDay any
		exp      sql.NullString
	}{
		{
			name:     "date",
			src:      "1400-01-01",
			endOfDay: false,
			exp:      sql.NullString{String: "2021-03-21 00:00:00", Valid: true},
		},
		{
			name:     "end_of_day",
			src:      "1400-01-01",
			endOfDay: true,
			exp:      sql.NullString{String: "2021-03-21 23:59:59", Valid: true},
		},
		{
			name:     "end_of_day_integer",
			src:      "1400-01-01 10:20:30",
			endOfDay: int64(1),
			exp:      sql.NullString{String: "2021-03-21 23:59:59", Valid: true},
		},
		{
			name:     "end_of_day_text",
			src:      "1400-01-01",
			endOfDay: "true",
			exp:      sql.NullString{String: "2021-03-21 23:59:59", Valid: true},
		},
		{
			name:     "date_time",
			src:      "1402-07-15 13:45:59",
			endOfDay: int64(0),
			exp:      sql.NullString{String: "2023-10-07 13:45:59", Valid: true},
		},
		{
			name:     "blob",
			src:      []byte("1403-12-30"),
			endOfDay: false,
			exp:      sql.NullString{String: "2025-03-20 00:00:00", Valid: true},
		},
		{
			name:     "null_date",
			src:      nil,
			endOfDay: false,
		},
		{
			name:     "null_end_of_day",
			src:      "1400-01-01",
			endOfDay: nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			var res sql.NullString
			err := db.QueryRow(
				"SELECT jalali_to_gregorian(?, ?)", tc.src, tc.endOfDay,
			).Scan(&res)
			r.NoError(err)
			a.Equal(tc.exp, res)
		})
	}
}

func TestGregorianToJalaliSQL(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	for _, tc := range []struct {
		name string
		src  any
		exp  sql.NullString
	}{
		{
			name: "date",
			src:  "2021-03-21",
			exp:  sql.NullString{String: "1400-01-01", Valid: true},
		},
		{
			name: "timestamp",
			src:  "2023-10-07 13:45:59",
			exp:  sql.NullString{String: "1402-07-15 13:45:59", Valid: true},
		},
		{
			name: "iso_timestamp",
			src:  "2023-10-07T13:45:59.5",
			exp:  sql.NullString{String: "1402-07-15 13:45:59", Valid: true},
		},
		{
			name: "unix_seconds",
			src:  int64(1616284800),
			exp:  sql.NullString{String: "1400-01-01", Valid: true},
		},
		{
			name: "unix_seconds_time",
			src:  int64(1696686359),
			exp:  sql.NullString{String: "1402-07-15 13:45:59", Valid: true},
		},
		{
			name: "time_parameter",
			src:  time.Date(2023, 10, 7, 13, 45, 59, 0, time.UTC),
			exp:  sql.NullString{String: "1402-07-15 13:45:59", Valid: true},
		},
		{
			name: "zoned_time_parameter",
			src:  time.Date(2021, 3, 21, 1, 30, 0, 0, time.FixedZone("IRST", 3*60*60+30*60)),
			exp:  sql.NullString{String: "1400-01-01 01:30:00", Valid: true},
		},
		{
			name: "null",
			src:  nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			var res sql.NullString
			err := db.QueryRow("SELECT gregorian_to_jalali(?)", tc.src).Scan(&res)
			r.NoError(err)
			a.Equal(tc.exp, res)
		})
	}
}

func TestSQLErrors(t *testing.T) {
	t.Parallel()
	db := openTestDB(t)

	for _, tc := range []struct {
		name  string
		query string
		err   string
	}{
		{
			name:  "format_error",
			query: "SELECT jalali_to_gregorian('1400-01', 0)",
			err:   `format: invalid Jalali date format "1400-01". Expected format: YYYY-MM-DD`,
		},
		{
			name:  "parse_error",
			query: "SELECT jalali_to_gregorian('1400-01-xx', 0)",
			err:   `parse: invalid day "xx"`,
		},
		{
			name:  "bad_end_of_day",
			query: "SELECT jalali_to_gregorian('1400-01-01', 'maybe')",
			err:   `argument: invalid boolean "maybe"`,
		},
		{
			name:  "integer_date",
			query: "SELECT jalali_to_gregorian(14000101, 0)",
			err:   "argument: expected text but got integer",
		},
		{
			name:  "real_end_of_day",
			query: "SELECT jalali_to_gregorian('1400-01-01', 0.5)",
			err:   "argument: expected boolean but got real",
		},
		{
			name:  "bad_timestamp",
			query: "SELECT gregorian_to_jalali('yesterday')",
			err:   `type: format is not recognized: "yesterday"`,
		},
		{
			name:  "time_only",
			query: "SELECT gregorian_to_jalali('10:30:00')",
			err:   `type: format is not recognized: "10:30:00"`,
		},
		{
			name:  "real_timestamp",
			query: "SELECT gregorian_to_jalali(2460000.5)",
			err:   "argument: expected timestamp but got real",
		},
		{
			name:  "wrong_arity",
			query: "SELECT gregorian_to_jalali('2021-03-21', 1)",
			err:   "wrong number of arguments",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var res sql.NullString
			err := db.QueryRow(tc.query).Scan(&res)
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func TestSQLRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `CREATE TABLE events (id INTEGER PRIMARY KEY, happened TEXT)`)
	r.NoError(err)
	_, err = db.ExecContext(
		ctx,
		`INSERT INTO events (happened) VALUES (?), (?), (?), (?)`,
		"1399-12-30 18:00", "1400-01-01", "1400-01-01 23:00:00", "1400-01-02",
	)
	r.NoError(err)

	// Select the events of Farvardin 1, 1400, inclusive.
	rows, err := db.QueryContext(ctx, `
		SELECT id, gregorian_to_jalali(jalali_to_gregorian(happened, false))
		  FROM events
		 WHERE jalali_to_gregorian(happened, false) >= jalali_to_gregorian('1400-01-01', false)
		   AND jalali_to_gregorian(happened, false) <= jalali_to_gregorian('1400-01-01', true)
		 ORDER BY id
	`)
	r.NoError(err)
	defer rows.Close()

	type event struct {
		id       int64
		happened string
	}
	var events []event
	for rows.Next() {
		var ev event
		r.NoError(rows.Scan(&ev.id, &ev.happened))
		events = append(events, ev)
	}
	r.NoError(rows.Err())
	a.Equal([]event{{2, "1400-01-01"}, {3, "1400-01-01 23:00:00"}}, events)
}

func TestCustomNames(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	db, err := Open(context.Background(), ":memory:", WithNames("miladi", "shamsi"))
	r.NoError(err)
	defer db.Close()

	var res string
	r.NoError(db.QueryRow("SELECT shamsi(miladi('1357-11-22', 0))").Scan(&res))
	a.Equal("1357-11-22", res)

	_, err = Open(context.Background(), ":memory:", WithNames("miladi", "bad name"))
	r.ErrorIs(err, ErrRegister)
}

func TestArguments(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	str, ok, err := textArg([]byte("x"))
	r.NoError(err)
	a.True(ok)
	a.Equal("x", str)

	_, ok, err = textArg(nil)
	r.NoError(err)
	a.False(ok)

	for _, tc := range []struct {
		arg any
		exp bool
	}{
		{int64(0), false},
		{int64(1), true},
		{int64(-1), true},
		{true, true},
		{false, false},
		{"1", true},
		{"f", false},
		{"TRUE", true},
	} {
		b, ok, err := boolArg(tc.arg)
		r.NoError(err, tc.arg)
		a.True(ok, tc.arg)
		a.Equal(tc.exp, b, tc.arg)
	}

	now := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	ts, ok, err := timestampArg(now)
	r.NoError(err)
	a.True(ok)
	a.Equal(now, ts)

	ts, ok, err = timestampArg(now.String())
	r.NoError(err)
	a.True(ok)
	a.True(now.Equal(ts))

	_, ok, err = timestampArg(nil)
	r.NoError(err)
	a.False(ok)

	_, _, err = timestampArg(1.5)
	r.ErrorIs(err, ErrArgument)
}
