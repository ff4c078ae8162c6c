package calendar

import "fmt"

// Calendar math uses a fixed non-leap 365-day year.
const DaysPerYear = 365

var daysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// DayOfYear converts a (month, day) pair to a day of year in [1, 365].
func DayOfYear(month, day int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month must be 1-12, got %d", ErrConfig, month)
	}
	if day < 1 || day > daysInMonth[month-1] {
		return 0, fmt.Errorf("%w: day must be 1-%d for month %d, got %d",
			ErrConfig, daysInMonth[month-1], month, day)
	}
	return daysBeforeMonth[month-1] + day, nil
}

// NormalizeDay maps any day index onto [1, 365] so calendars wrap for
// multi-year runs.
func NormalizeDay(dayOfYear int) int {
	d := (dayOfYear - 1) % DaysPerYear
	if d < 0 {
		d += DaysPerYear
	}
	return d + 1
}

// DateString renders a day of year as a "Mar 01" style label.
func DateString(dayOfYear int) string {
	d := NormalizeDay(dayOfYear)
	for m, days := range daysInMonth {
		if d <= days {
			return fmt.Sprintf("%s %02d", monthNames[m], d)
		}
		d -= days
	}
	return "Dec 31" // unreachable
}
