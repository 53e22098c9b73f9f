package engine

import "time"

// reviewOffsets maps a 1-5 review rating to days until the next review.
var reviewOffsets = map[int]int{
	1: 1,
	2: 3,
	3: 7,
	4: 14,
	5: 21,
}

// NextReviewDate returns when a card should come up again. Callers validate
// the rating before calling; the 1-day fallback is defense in depth only.
func NextReviewDate(difficulty int, now time.Time) time.Time {
	days, ok := reviewOffsets[difficulty]
	if !ok {
		days = 1
	}
	return now.AddDate(0, 0, days)
}
