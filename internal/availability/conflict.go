// Package availability implements the interval conflict check used by the
// booking and quote-acceptance flows.
package availability

import "time"

// BlockingInterval is the occupied period of a rental whose status counts
// against availability (confirmed or active). Callers build these from the
// vehicle's blocking rentals; the check itself never queries storage.
type BlockingInterval struct {
	RentalID  string
	StartDate time.Time
	EndDate   time.Time
}

// Result reports whether a candidate interval conflicts and with which
// rentals, so callers can report "N conflicting reservations" without
// re-querying.
type Result struct {
	Conflict       bool
	ConflictingIDs []string
}

// Check reports whether the candidate interval [start, end] overlaps any
// blocking interval. Boundaries compare inclusively: an interval ending
// exactly when another begins conflicts, so same-day turnover is not
// allowed. Callers must have already rejected start >= end, and must gate
// vehicle isActive/isAvailable themselves.
func Check(start, end time.Time, blocking []BlockingInterval) Result {
	var res Result
	for _, b := range blocking {
		if overlaps(start, end, b.StartDate, b.EndDate) {
			res.Conflict = true
			res.ConflictingIDs = append(res.ConflictingIDs, b.RentalID)
		}
	}
	return res
}

// overlaps is the inclusive-boundary predicate: s1 <= e2 && s2 <= e1.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}
