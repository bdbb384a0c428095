package services

import (
	"context"

	"github.com/yukikurage/piyuclean-api/internal/assignment"
	"github.com/yukikurage/piyuclean-api/internal/models"
)

var (
	ErrInvalidRange = assignment.ErrInvalidRange
	ErrRangeTooLong = assignment.ErrRangeTooLong
)

// ReportService aggregates expanded assignment rows into reports.
type ReportService struct {
	assignments *AssignmentService
}

// NewReportService creates a new ReportService.
func NewReportService(assignments *AssignmentService) *ReportService {
	return &ReportService{
		assignments: assignments,
	}
}

// WeeklySummary counts rows per day and status between start and end
// inclusive. Without bounds it covers Monday to Sunday of the current week.
func (s *ReportService) WeeklySummary(ctx context.Context, start, end *models.Date) (assignment.DateRange, []assignment.DayBucket, error) {
	var r assignment.DateRange
	if start == nil || end == nil {
		r = assignment.CurrentWeek(s.assignments.Today())
	} else {
		var err error
		if r, err = assignment.NewDateRange(*start, *end); err != nil {
			return assignment.DateRange{}, nil, err
		}
	}

	rows, _, err := s.assignments.expand(ctx, ListAssignmentsInput{From: &r.Start, To: &r.End})
	if err != nil {
		return assignment.DateRange{}, nil, err
	}
	return r, assignment.WeeklySummary(rows, r), nil
}

// StudentPerformance reports completion per student. Without bounds every
// date counts. The returned range is nil in that case.
func (s *ReportService) StudentPerformance(ctx context.Context, start, end *models.Date) (*assignment.DateRange, []assignment.StudentStats, error) {
	input := ListAssignmentsInput{}
	var r *assignment.DateRange
	if start != nil && end != nil {
		dr, err := assignment.NewDateRange(*start, *end)
		if err != nil {
			return nil, nil, err
		}
		r = &dr
		input.From = &dr.Start
		input.To = &dr.End
	}

	rows, ref, err := s.assignments.expand(ctx, input)
	if err != nil {
		return nil, nil, err
	}
	return r, assignment.StudentPerformance(rows, ref.Students, r), nil
}
