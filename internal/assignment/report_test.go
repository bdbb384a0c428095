package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/piyuclean-api/internal/models"
)

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(models.MustParseDate(start), models.MustParseDate(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	r := mustRange(t, "2025-03-10", "2025-03-16")
	assert.Equal(t, 7, r.Days())

	_, err := NewDateRange(models.MustParseDate("2025-03-16"), models.MustParseDate("2025-03-10"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(models.MustParseDate("2024-01-01"), models.MustParseDate("2025-12-31"))
	assert.ErrorIs(t, err, ErrRangeTooLong)

	single := mustRange(t, "2025-03-10", "2025-03-10")
	assert.Equal(t, 1, single.Days())
}

func TestCurrentWeek(t *testing.T) {
	// 2025-03-12 is a Wednesday.
	r := CurrentWeek(models.MustParseDate("2025-03-12"))
	assert.Equal(t, "2025-03-10", r.Start.String())
	assert.Equal(t, "2025-03-16", r.End.String())

	// Sunday belongs to the week that started the Monday before.
	r = CurrentWeek(models.MustParseDate("2025-03-16"))
	assert.Equal(t, "2025-03-10", r.Start.String())
}

func TestWeeklySummary(t *testing.T) {
	ref := testReference()
	completed := newAssignment("A2", "2025-03-12", "R1", "CL1", "S1")
	completed.Status = models.AssignmentStatusCompleted
	overdue := newAssignment("A3", "2025-03-12", "R1", "CL2", "S2")
	overdue.Status = models.AssignmentStatusOverdue
	pending := newAssignment("A4", "2025-03-14", "R1", "CL1", "S3")
	pending.Status = models.AssignmentStatusPending
	outside := newAssignment("A5", "2025-03-20", "R1", "CL1", "S1")

	rows := Expand([]models.Assignment{
		newAssignment("A1", "2025-03-10", "R1", "CL1", "S1", "S2"),
		completed, overdue, pending, outside,
	}, ref)

	r := mustRange(t, "2025-03-10", "2025-03-16")
	buckets := WeeklySummary(rows, r)
	require.Len(t, buckets, 7)

	assert.Equal(t, "2025-03-10", buckets[0].Date.String())
	assert.Equal(t, 4, buckets[0].Assigned)
	assert.Equal(t, 0, buckets[1].Total())
	assert.Equal(t, 2, buckets[2].Completed)
	assert.Equal(t, 3, buckets[2].Overdue)
	assert.Equal(t, 2, buckets[4].Pending)
	assert.Equal(t, "2025-03-16", buckets[6].Date.String())

	total := 0
	for _, b := range buckets {
		assert.GreaterOrEqual(t, b.Assigned, 0)
		total += b.Total()
	}
	// Everything except the two rows of A5.
	assert.Equal(t, len(rows)-2, total)
}

func TestWeeklySummary_UnknownStatusCountsAsPending(t *testing.T) {
	rows := []ExpandedRow{{Date: models.MustParseDate("2025-03-10"), Status: "skipped"}}
	buckets := WeeklySummary(rows, mustRange(t, "2025-03-10", "2025-03-10"))
	require.Len(t, buckets, 1)
	assert.Equal(t, 1, buckets[0].Pending)
}

func TestStudentPerformance(t *testing.T) {
	ref := testReference()
	done := newAssignment("A1", "2025-03-10", "R1", "CL1", "S1", "S2")
	done.Status = models.AssignmentStatusCompleted
	late := newAssignment("A2", "2025-03-11", "R1", "CL1", "S2")
	late.Status = models.AssignmentStatusOverdue
	outOfRange := newAssignment("A3", "2025-04-01", "R1", "CL2", "S3")

	rows := Expand([]models.Assignment{done, late, outOfRange}, ref)
	r := mustRange(t, "2025-03-10", "2025-03-16")

	stats := StudentPerformance(rows, ref.Students, &r)
	require.Len(t, stats, 2, "students without rows in range are omitted")

	assert.Equal(t, "S1", stats[0].StudentID)
	assert.Equal(t, "2024001", stats[0].StudentCode)
	assert.Equal(t, "BSIT 1B", stats[0].ClassSection)
	assert.Equal(t, 2, stats[0].Assigned)
	assert.Equal(t, 2, stats[0].Completed)
	assert.InDelta(t, 1.0, stats[0].CompletionRate, 1e-9)

	assert.Equal(t, "S2", stats[1].StudentID)
	assert.Equal(t, 4, stats[1].Assigned)
	assert.Equal(t, 2, stats[1].Completed)
	assert.Equal(t, 2, stats[1].Overdue)
	assert.InDelta(t, 0.5, stats[1].CompletionRate, 1e-9)

	all := StudentPerformance(rows, ref.Students, nil)
	require.Len(t, all, 3)
	last := all[2]
	assert.Equal(t, "S3", last.StudentID)
	assert.Equal(t, 3, last.Assigned)
	assert.Zero(t, last.CompletionRate)

	for _, s := range all {
		assert.GreaterOrEqual(t, s.CompletionRate, 0.0)
		assert.LessOrEqual(t, s.CompletionRate, 1.0)
	}
}

func TestCompletionRate(t *testing.T) {
	assert.Zero(t, CompletionRate(0, 0))
	assert.Zero(t, CompletionRate(3, 0))
	assert.InDelta(t, 0.25, CompletionRate(1, 4), 1e-9)
}
