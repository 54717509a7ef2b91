package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// YearsOfService calculates the years of service at a given date
func YearsOfService(joinDate, atDate time.Time) float64 {
	serviceDuration := atDate.Sub(joinDate)
	return serviceDuration.Hours() / 24 / 365.25
}

// CompletedYearsOfService calculates fully completed years of service,
// discarding any partial year
func CompletedYearsOfService(joinDate, atDate time.Time) int {
	years := int(YearsOfService(joinDate, atDate))
	if years < 0 {
		return 0
	}
	return years
}

// ServiceYearsRoundedUp calculates years of service where a remaining
// fraction above six months counts as a full year. Retrenchment
// compensation is computed on this basis.
func ServiceYearsRoundedUp(joinDate, atDate time.Time) int {
	if atDate.Before(joinDate) {
		return 0
	}
	totalMonths := MonthsBetween(joinDate, atDate)
	years := totalMonths / 12
	if totalMonths%12 > 6 {
		years++
	}
	return years
}

// MonthsBetween calculates the number of whole months between two dates
func MonthsBetween(fromDate, toDate time.Time) int {
	if toDate.Before(fromDate) {
		return 0
	}
	months := (toDate.Year()-fromDate.Year())*12 + int(toDate.Month()) - int(fromDate.Month())
	if toDate.Day() < fromDate.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// DaysInMonth returns the number of calendar days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthBounds returns the first and last day of the given calendar month
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}

// ClipToMonth clips an employment window [start, end] to the given calendar
// month and returns the overlapping bounds plus the count of overlapping
// days. A zero end date means still employed. Zero days means no overlap.
func ClipToMonth(start, end time.Time, year int, month time.Month) (time.Time, time.Time, int) {
	first, last := MonthBounds(year, month)

	from := first
	if start.After(first) {
		from = start
	}
	to := last
	if !end.IsZero() && end.Before(last) {
		to = end
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, 0
	}
	days := int(to.Sub(from).Hours()/24) + 1
	return from, to, days
}
