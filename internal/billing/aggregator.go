package billing

import "time"

// ExpectedRecurringTotal is the amount a fixed schedule (rent, salary) has
// accrued inside [rangeStart, rangeEnd] as of today. It uses the same
// PeriodsElapsed as the due-date math so report figures can never disagree
// with obligation status.
func ExpectedRecurringTotal(anchor time.Time, amount float64, cadence Cadence, rangeStart, rangeEnd, today time.Time) float64 {
	return float64(PeriodsElapsed(anchor, cadence, rangeStart, rangeEnd, today)) * amount
}

// SalaryAnchor is one staff member's recurring salary schedule.
type SalaryAnchor struct {
	StaffID string
	Name    string
	Started time.Time
	Salary  float64
}

// SalaryLine is the per-staff slice of a financial report.
type SalaryLine struct {
	StaffID  string  `json:"staffId"`
	Name     string  `json:"name"`
	PayCount int     `json:"payCount"`
	Total    float64 `json:"total"`
}

// SalaryTotals computes per-staff salary accruals over a range. Staff with no
// elapsed pay period inside the range are omitted from the lines but the
// grand total always covers everyone.
func SalaryTotals(staff []SalaryAnchor, rangeStart, rangeEnd, today time.Time) ([]SalaryLine, float64) {
	lines := make([]SalaryLine, 0, len(staff))
	var total float64
	for _, s := range staff {
		count := PeriodsElapsed(s.Started, Monthly, rangeStart, rangeEnd, today)
		if count == 0 {
			continue
		}
		line := SalaryLine{
			StaffID:  s.StaffID,
			Name:     s.Name,
			PayCount: count,
			Total:    float64(count) * s.Salary,
		}
		total += line.Total
		lines = append(lines, line)
	}
	return lines, total
}

// RentTotals computes how many rent due dates elapsed in the range and the
// resulting amount. A zero anchor means the organization never set a rent
// schedule.
func RentTotals(anchor time.Time, amount float64, rangeStart, rangeEnd, today time.Time) (int, float64) {
	if anchor.IsZero() {
		return 0, 0
	}
	count := PeriodsElapsed(anchor, Monthly, rangeStart, rangeEnd, today)
	return count, float64(count) * amount
}
