package assignment

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/yukikurage/piyuclean-api/internal/constants"
	"github.com/yukikurage/piyuclean-api/internal/models"
)

var (
	ErrInvalidRange = errors.New("start date must not be after end date")
	ErrRangeTooLong = fmt.Errorf("date range cannot exceed %d days", constants.MaxReportDays)
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start models.Date
	End   models.Date
}

// NewDateRange validates and builds an inclusive range.
func NewDateRange(start, end models.Date) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	r := DateRange{Start: start, End: end}
	if r.Days() > constants.MaxReportDays {
		return DateRange{}, ErrRangeTooLong
	}
	return r, nil
}

// CurrentWeek returns Monday through Sunday of the week containing today.
func CurrentWeek(today models.Date) DateRange {
	offset := (int(today.Weekday()) + 6) % 7
	start := today.AddDays(-offset)
	return DateRange{Start: start, End: start.AddDays(6)}
}

// Days is the number of days in the range, both ends included.
func (r DateRange) Days() int {
	return r.Start.DaysUntil(r.End) + 1
}

func (r DateRange) Contains(d models.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// DayBucket counts the expanded rows of one day by status.
type DayBucket struct {
	Date      models.Date
	Assigned  int
	Pending   int
	Completed int
	Overdue   int
}

// Total is the number of rows counted in the bucket.
func (b DayBucket) Total() int {
	return b.Assigned + b.Pending + b.Completed + b.Overdue
}

func (b *DayBucket) add(status models.AssignmentStatus) {
	switch status {
	case models.AssignmentStatusAssigned:
		b.Assigned++
	case models.AssignmentStatusCompleted:
		b.Completed++
	case models.AssignmentStatusOverdue:
		b.Overdue++
	default:
		// pending and anything unrecognised
		b.Pending++
	}
}

// WeeklySummary returns one bucket for every day of r, in order, with
// zero-filled days where no rows fall. Rows outside r are ignored.
func WeeklySummary(rows []ExpandedRow, r DateRange) []DayBucket {
	buckets := make([]DayBucket, r.Days())
	for i := range buckets {
		buckets[i].Date = r.Start.AddDays(i)
	}
	for _, row := range rows {
		if !r.Contains(row.Date) {
			continue
		}
		buckets[r.Start.DaysUntil(row.Date)].add(row.Status)
	}
	return buckets
}

// StudentStats is one student's line in the performance report.
type StudentStats struct {
	StudentID      string
	StudentCode    string
	Name           string
	ClassSection   string
	Assigned       int
	Completed      int
	Overdue        int
	CompletionRate float64
}

// StudentPerformance aggregates rows per student within r (all rows when r
// is nil). Students without rows in range are left out. Results are sorted
// by completion rate, then completed count, both descending, then by name.
func StudentPerformance(rows []ExpandedRow, students map[string]models.Student, r *DateRange) []StudentStats {
	byStudent := make(map[string]*StudentStats)
	for _, row := range rows {
		if r != nil && !r.Contains(row.Date) {
			continue
		}
		stats, ok := byStudent[row.StudentID]
		if !ok {
			stats = &StudentStats{StudentID: row.StudentID, Name: row.StudentName}
			if s, found := students[row.StudentID]; found {
				stats.StudentCode = s.StudentCode
				stats.ClassSection = s.ClassSection
			}
			byStudent[row.StudentID] = stats
		}
		stats.Assigned++
		switch row.Status {
		case models.AssignmentStatusCompleted:
			stats.Completed++
		case models.AssignmentStatusOverdue:
			stats.Overdue++
		}
	}

	out := make([]StudentStats, 0, len(byStudent))
	for _, stats := range byStudent {
		stats.CompletionRate = CompletionRate(stats.Completed, stats.Assigned)
		out = append(out, *stats)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CompletionRate != out[j].CompletionRate {
			return out[i].CompletionRate > out[j].CompletionRate
		}
		if out[i].Completed != out[j].Completed {
			return out[i].Completed > out[j].Completed
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out
}

// CompletionRate is completed/assigned, or 0 when nothing was assigned.
func CompletionRate(completed, assigned int) float64 {
	if assigned <= 0 {
		return 0
	}
	return float64(completed) / float64(assigned)
}

// Today returns the calendar day of now in loc.
func Today(now time.Time, loc *time.Location) models.Date {
	if loc == nil {
		loc = time.Local
	}
	return models.DateOf(now.In(loc))
}
