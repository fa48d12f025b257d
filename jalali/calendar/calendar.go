// Package calendar implements the day-number arithmetic used to convert
// dates between the Jalali (Persian) and the proleptic Gregorian calendars.
//
// Both calendars are mapped onto a DayNumber: Jalali day numbers count days
// from Jalali 979-01-01 and Gregorian day numbers count days from Gregorian
// 1600-01-01. The two epochs are exactly GregorianOffset days apart, so a
// conversion is a day count in one calendar, a shift, and a decomposition
// in the other.
//
// The Jalali arithmetic is the widely published 33-year cycle algorithm:
// every 33 years contain 8 leap years and 12053 days. All reductions use
// floored division. For dates on or after Jalali 979-01-01 (Gregorian
// 1600-03-20) that is identical to the published integer algorithm; for
// earlier dates it keeps the cycles aligned.
//
// None of the functions validate their input. Out-of-range months or days
// produce arithmetically derived dates rather than errors.
package calendar

// DayNumber counts days since a calendar epoch.
type DayNumber int64

const (
	// JalaliEpochYear is the Jalali year of Jalali day number 0.
	JalaliEpochYear = 979

	// GregorianEpochYear is the Gregorian year of Gregorian day number 0.
	GregorianEpochYear = 1600

	// GregorianOffset is the Gregorian day number of Jalali day number 0.
	GregorianOffset DayNumber = 79
)

// Cycle lengths in days.
const (
	daysPer400Years  = 146097
	daysPerCentury   = 36524
	daysPer4Years    = 1461
	daysPerYear      = 365
	daysPerLeapYear  = 366
	daysPer33Years   = 12053
	leapYearsPer33   = 8
	jalaliCycleYears = 33
)

// JalaliToGregorian converts the Jalali date jy-jm-jd to the Gregorian date
// gy-gm-gd.
func JalaliToGregorian(jy, jm, jd int) (gy, gm, gd int) {
	return GregorianFromDayNumber(JalaliDayNumber(jy, jm, jd) + GregorianOffset)
}

// GregorianToJalali converts the Gregorian date gy-gm-gd to the Jalali date
// jy-jm-jd.
func GregorianToJalali(gy, gm, gd int) (jy, jm, jd int) {
	return JalaliFromDayNumber(GregorianDayNumber(gy, gm, gd) - GregorianOffset)
}

// JalaliDayNumber returns the number of days between Jalali 979-01-01 and
// the Jalali date jy-jm-jd.
func JalaliDayNumber(jy, jm, jd int) DayNumber {
	y := DayNumber(jy - JalaliEpochYear)
	days := daysPerYear*y +
		floorDiv(y, jalaliCycleYears)*leapYearsPer33 +
		floorDiv(floorMod(y, jalaliCycleYears)+3, 4)

	// Month 12 is never summed for a valid month; months past 12 count as
	// 30 days.
	for m := 1; m < jm; m++ {
		if m <= 6 {
			days += 31
		} else {
			days += 30
		}
	}

	return days + DayNumber(jd-1)
}

// JalaliFromDayNumber returns the Jalali date for the Jalali day number
// days.
func JalaliFromDayNumber(days DayNumber) (jy, jm, jd int) {
	cycles := floorDiv(days, daysPer33Years)
	days = floorMod(days, daysPer33Years)

	year := JalaliEpochYear + jalaliCycleYears*cycles + 4*(days/daysPer4Years)
	days %= daysPer4Years

	// The first year of each 4-year block is the leap year.
	if days >= daysPerLeapYear {
		year += (days - 1) / daysPerYear
		days = (days - 1) % daysPerYear
	}

	// Whatever is left after month 11 belongs to month 12.
	month := 0
	for month < 11 && days >= DayNumber(jalaliMonthDays[month]) {
		days -= DayNumber(jalaliMonthDays[month])
		month++
	}

	return int(year), month + 1, int(days) + 1
}

// GregorianDayNumber returns the number of days between Gregorian
// 1600-01-01 and the Gregorian date gy-gm-gd.
func GregorianDayNumber(gy, gm, gd int) DayNumber {
	y := DayNumber(gy - GregorianEpochYear)
	days := daysPerYear*y +
		floorDiv(y+3, 4) -
		floorDiv(y+99, 100) +
		floorDiv(y+399, 400)

	table := gregorianMonthDays(IsGregorianLeapYear(gy))
	for m := 0; m < gm-1; m++ {
		days += DayNumber(table[m%12])
	}

	return days + DayNumber(gd-1)
}

// GregorianFromDayNumber returns the Gregorian date for the Gregorian day
// number days.
func GregorianFromDayNumber(days DayNumber) (gy, gm, gd int) {
	year := GregorianEpochYear + 400*floorDiv(days, daysPer400Years)
	days = floorMod(days, daysPer400Years)

	// The first year of each 400-year cycle is a leap year.
	leap := true
	if days >= daysPerCentury+1 {
		// Later centuries start with a common year.
		days--
		year += 100 * (days / daysPerCentury)
		days %= daysPerCentury
		if days >= daysPerYear {
			days++
		} else {
			leap = false
		}
	}

	year += 4 * (days / daysPer4Years)
	days %= daysPer4Years
	if days >= daysPerLeapYear {
		year += (days - 1) / daysPerYear
		days = (days - 1) % daysPerYear
		leap = false
	}

	table := gregorianMonthDays(leap)
	month := 0
	for month < 11 && days >= DayNumber(table[month]) {
		days -= DayNumber(table[month])
		month++
	}

	return int(year), month + 1, int(days) + 1
}

// floorDiv returns a/b rounded toward negative infinity. b must be positive.
func floorDiv(a, b DayNumber) DayNumber {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns the remainder of floorDiv(a, b), always in [0, b).
func floorMod(a, b DayNumber) DayNumber {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
