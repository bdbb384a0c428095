package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/piyuclean-api/internal/dto"
	apierrors "github.com/yukikurage/piyuclean-api/internal/errors"
	"github.com/yukikurage/piyuclean-api/internal/services"
	"github.com/yukikurage/piyuclean-api/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// WeeklySummary counts rows per day and status. Without start and end it
// covers the current Monday to Sunday.
func (h *ReportHandler) WeeklySummary(c *gin.Context) {
	start, end, err := utils.DateRangeQuery(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	r, buckets, err := h.reportService.WeeklySummary(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWeeklySummaryResponse(r, buckets))
}

// StudentPerformance reports completion per student. Without start and end
// every date counts.
func (h *ReportHandler) StudentPerformance(c *gin.Context) {
	start, end, err := utils.DateRangeQuery(c)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	r, stats, err := h.reportService.StudentPerformance(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentPerformanceResponse(r, stats))
}
