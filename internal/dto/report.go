package dto

import (
	"github.com/yukikurage/piyuclean-api/internal/assignment"
	"github.com/yukikurage/piyuclean-api/internal/models"
)

// DayBucketDTO counts the expanded rows of one day by status
type DayBucketDTO struct {
	Date      models.Date `json:"date"`
	Assigned  int         `json:"assigned"`
	Pending   int         `json:"pending"`
	Completed int         `json:"completed"`
	Overdue   int         `json:"overdue"`
	Total     int         `json:"total"`
}

// WeeklySummaryResponse is the body of the weekly summary report
type WeeklySummaryResponse struct {
	Start models.Date    `json:"start"`
	End   models.Date    `json:"end"`
	Days  []DayBucketDTO `json:"days"`
}

// StudentStatsDTO is one student's line of the performance report.
// CompletionRate is a fraction between 0 and 1.
type StudentStatsDTO struct {
	StudentID      string  `json:"studentId"`
	StudentCode    string  `json:"studentCode"`
	Name           string  `json:"name"`
	ClassSection   string  `json:"classSection"`
	Assigned       int     `json:"assigned"`
	Completed      int     `json:"completed"`
	Overdue        int     `json:"overdue"`
	CompletionRate float64 `json:"completionRate"`
}

// StudentPerformanceResponse is the body of the performance report. Start
// and End are omitted when the report covers every date.
type StudentPerformanceResponse struct {
	Start    *models.Date      `json:"start,omitempty"`
	End      *models.Date      `json:"end,omitempty"`
	Students []StudentStatsDTO `json:"students"`
}

func ToWeeklySummaryResponse(r assignment.DateRange, buckets []assignment.DayBucket) WeeklySummaryResponse {
	days := make([]DayBucketDTO, len(buckets))
	for i, b := range buckets {
		days[i] = DayBucketDTO{
			Date:      b.Date,
			Assigned:  b.Assigned,
			Pending:   b.Pending,
			Completed: b.Completed,
			Overdue:   b.Overdue,
			Total:     b.Total(),
		}
	}
	return WeeklySummaryResponse{Start: r.Start, End: r.End, Days: days}
}

func ToStudentPerformanceResponse(r *assignment.DateRange, stats []assignment.StudentStats) StudentPerformanceResponse {
	items := make([]StudentStatsDTO, len(stats))
	for i, s := range stats {
		items[i] = StudentStatsDTO{
			StudentID:      s.StudentID,
			StudentCode:    s.StudentCode,
			Name:           s.Name,
			ClassSection:   s.ClassSection,
			Assigned:       s.Assigned,
			Completed:      s.Completed,
			Overdue:        s.Overdue,
			CompletionRate: s.CompletionRate,
		}
	}

	resp := StudentPerformanceResponse{Students: items}
	if r != nil {
		start, end := r.Start, r.End
		resp.Start = &start
		resp.End = &end
	}
	return resp
}
