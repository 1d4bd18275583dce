package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(n int) time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestCheck_NoBlockingIntervals(t *testing.T) {
	res := Check(day(0), day(2), nil)
	assert.False(t, res.Conflict)
	assert.Empty(t, res.ConflictingIDs)
}

func TestCheck_Overlap(t *testing.T) {
	blocking := []BlockingInterval{
		{RentalID: "r1", StartDate: day(5), EndDate: day(8)},
	}

	t.Run("Candidate inside existing", func(t *testing.T) {
		res := Check(day(6), day(7), blocking)
		assert.True(t, res.Conflict)
		assert.Equal(t, []string{"r1"}, res.ConflictingIDs)
	})

	t.Run("Candidate spans existing", func(t *testing.T) {
		res := Check(day(4), day(9), blocking)
		assert.True(t, res.Conflict)
	})

	t.Run("Candidate overlaps start", func(t *testing.T) {
		res := Check(day(3), day(6), blocking)
		assert.True(t, res.Conflict)
	})

	t.Run("Candidate overlaps end", func(t *testing.T) {
		res := Check(day(7), day(10), blocking)
		assert.True(t, res.Conflict)
	})

	t.Run("Disjoint after", func(t *testing.T) {
		res := Check(day(9), day(10), blocking)
		assert.False(t, res.Conflict)
		assert.Empty(t, res.ConflictingIDs)
	})

	t.Run("Disjoint before", func(t *testing.T) {
		res := Check(day(1), day(4), blocking)
		assert.False(t, res.Conflict)
	})
}

func TestCheck_TouchingBoundaryConflicts(t *testing.T) {
	blocking := []BlockingInterval{
		{RentalID: "r1", StartDate: day(5), EndDate: day(8)},
	}

	// Same-day turnover is disallowed: a candidate starting exactly when
	// an existing rental ends (and vice versa) conflicts.
	t.Run("Candidate starts at existing end", func(t *testing.T) {
		res := Check(day(8), day(10), blocking)
		assert.True(t, res.Conflict)
		assert.Equal(t, []string{"r1"}, res.ConflictingIDs)
	})

	t.Run("Candidate ends at existing start", func(t *testing.T) {
		res := Check(day(3), day(5), blocking)
		assert.True(t, res.Conflict)
	})
}

func TestCheck_MultipleConflicts(t *testing.T) {
	blocking := []BlockingInterval{
		{RentalID: "r1", StartDate: day(1), EndDate: day(3)},
		{RentalID: "r2", StartDate: day(10), EndDate: day(12)},
		{RentalID: "r3", StartDate: day(2), EndDate: day(6)},
	}

	res := Check(day(2), day(5), blocking)
	assert.True(t, res.Conflict)
	assert.Equal(t, []string{"r1", "r3"}, res.ConflictingIDs)
}
