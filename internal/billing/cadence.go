// Package billing holds the recurring-obligation engine: calendar cadence
// math, unpaid-trainee evaluation and the recurring totals used by the
// financial report. Everything in this package is pure; persistence stays in
// the handlers.
package billing

import "time"

type Cadence string

const (
	Monthly Cadence = "monthly"
	Yearly  Cadence = "yearly"
)

func ParseCadence(s string) (Cadence, error) {
	switch Cadence(s) {
	case Monthly, Yearly:
		return Cadence(s), nil
	}
	return "", ErrInvalidCadence
}

// DateOnly strips the clock from t so all cadence math works on whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves d forward by n calendar months, clamping the day to the
// last valid day of the target month. Jan 31 + 1 month is Feb 28 (or Feb 29
// in a leap year), never Mar 3 like time.AddDate would give.
func AddMonths(d time.Time, n int) time.Time {
	d = DateOnly(d)
	year := d.Year()
	month := int(d.Month()) + n
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	day := d.Day()
	if max := daysInMonth(year, time.Month(month)); day > max {
		day = max
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func addYears(d time.Time, n int) time.Time {
	d = DateOnly(d)
	year := d.Year() + n
	day := d.Day()
	if max := daysInMonth(year, d.Month()); day > max {
		// Feb 29 anchors land on Feb 28 in non-leap years
		day = max
	}
	return time.Date(year, d.Month(), day, 0, 0, 0, 0, time.UTC)
}

// NextDueDate returns the date the next payment becomes due for an anchor
// (usually the last payment date) under the given cadence. graceDays shifts
// the yearly due date; monthly categories carry no grace in this system.
func NextDueDate(anchor time.Time, cadence Cadence, graceDays int) time.Time {
	switch cadence {
	case Monthly:
		return AddMonths(anchor, 1)
	case Yearly:
		return addYears(anchor, 1).AddDate(0, 0, graceDays)
	}
	// unreachable for parsed cadences
	return DateOnly(anchor)
}

// DaysUntil returns the signed day count from today to due: positive means
// not yet due, zero due today, negative overdue.
func DaysUntil(due, today time.Time) int {
	return int(DateOnly(due).Sub(DateOnly(today)).Hours() / 24)
}

// advance moves an anchor forward one cadence step. Steps are always taken
// from the original anchor (see PeriodsElapsed) so clamping never drifts.
func advance(anchor time.Time, cadence Cadence, steps int) time.Time {
	if cadence == Yearly {
		return addYears(anchor, steps)
	}
	return AddMonths(anchor, steps)
}

// PeriodsElapsed counts how many cadence boundaries of anchor fall inside
// [rangeStart, min(rangeEnd, notAfter)]. The anchor itself is the first
// boundary. notAfter (typically today) keeps future periods out of the count,
// which is what makes rent and salary totals stop at the current date.
func PeriodsElapsed(anchor time.Time, cadence Cadence, rangeStart, rangeEnd, notAfter time.Time) int {
	anchor = DateOnly(anchor)
	rangeStart = DateOnly(rangeStart)
	end := DateOnly(rangeEnd)
	if cutoff := DateOnly(notAfter); cutoff.Before(end) {
		end = cutoff
	}

	count := 0
	for step := 0; ; step++ {
		boundary := advance(anchor, cadence, step)
		if boundary.After(end) {
			break
		}
		if !boundary.Before(rangeStart) {
			count++
		}
	}
	return count
}
