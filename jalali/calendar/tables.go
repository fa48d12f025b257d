package calendar

// jalaliMonthDays holds the Jalali month lengths of a common year. Month 12
// has one more day in leap years.
//
//nolint:gochecknoglobals
var jalaliMonthDays = [12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}

// gregorianMonthDays returns the Gregorian month lengths for a leap year
// when leap is true and for a common year otherwise.
func gregorianMonthDays(leap bool) [12]int {
	feb := 28
	if leap {
		feb = 29
	}
	return [12]int{31, feb, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
}

// IsGregorianLeapYear reports whether year is a leap year in the proleptic
// Gregorian calendar.
func IsGregorianLeapYear(year int) bool {
	return year%400 == 0 || (year%100 != 0 && year%4 == 0)
}

// GregorianDaysInMonth returns the number of days in month of the
// Gregorian year. Returns 0 if month is not in 1..12.
func GregorianDaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return gregorianMonthDays(IsGregorianLeapYear(year))[month-1]
}

// IsJalaliLeapYear reports whether year is a leap year in the 33-year cycle
// arithmetic used by the conversions.
func IsJalaliLeapYear(year int) bool {
	return JalaliDayNumber(year+1, 1, 1)-JalaliDayNumber(year, 1, 1) == daysPerLeapYear
}

// JalaliDaysInMonth returns the number of days in month of the Jalali year.
// Returns 0 if month is not in 1..12.
func JalaliDaysInMonth(year, month int) int {
	switch {
	case month < 1 || month > 12:
		return 0
	case month == 12 && IsJalaliLeapYear(year):
		return jalaliMonthDays[11] + 1
	default:
		return jalaliMonthDays[month-1]
	}
}
