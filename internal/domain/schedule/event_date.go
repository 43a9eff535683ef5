package schedule

import "time"

// DefaultEventDate returns the second Sunday of July in now's year, at midnight in now's location.
// Pure function: the first Sunday on or after July 1, plus seven days.
func DefaultEventDate(now time.Time) time.Time {
	date := time.Date(now.Year(), time.July, 1, 0, 0, 0, 0, now.Location())
	for date.Weekday() != time.Sunday {
		date = date.AddDate(0, 0, 1)
	}
	return date.AddDate(0, 0, 7)
}
