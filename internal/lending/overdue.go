package lending

import "time"

// DaysLate returns the number of whole days between a loan's due date and the
// actual return time, when positive. A return before or exactly at the due
// date, or within the first 24 hours past it, counts as zero days late.
func DaysLate(due time.Time, returnedAt time.Time) int {
	if !returnedAt.After(due) {
		return 0
	}

	return int(returnedAt.Sub(due) / (24 * time.Hour))
}
