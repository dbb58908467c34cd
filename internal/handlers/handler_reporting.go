package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneytrack/money_tracker_app/internal/apperrors"
	portssvc "github.com/moneytrack/money_tracker_app/internal/core/ports/services"
	"github.com/moneytrack/money_tracker_app/internal/dto"
	"github.com/moneytrack/money_tracker_app/internal/middleware"
)

// reportingHandler handles the summary, statistics and chart read models.
type reportingHandler struct {
	summaryService   portssvc.SummaryService
	reportingService portssvc.ReportingService
	chartDefaultDays int
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(ss portssvc.SummaryService, rs portssvc.ReportingService, chartDefaultDays int) *reportingHandler {
	return &reportingHandler{
		summaryService:   ss,
		reportingService: rs,
		chartDefaultDays: chartDefaultDays,
	}
}

// registerReportingRoutes registers the read-model routes.
func registerReportingRoutes(rg *gin.RouterGroup, summaryService portssvc.SummaryService, reportingService portssvc.ReportingService, chartDefaultDays int) {
	h := newReportingHandler(summaryService, reportingService, chartDefaultDays)

	rg.GET("/summary", h.getSummary)

	statistics := rg.Group("/statistics")
	{
		statistics.GET("", h.getStatistics)
		statistics.GET("/chart", h.getChart)
	}

	// Short alias kept for clients that fetch the chart directly.
	rg.GET("/chart", h.getChart)
}

// getSummary godoc
// @Summary Get the net-worth summary
// @Description Retrieves total assets, total debt, net worth and the account snapshot
// @Tags reports
// @Produce json
// @Success 200 {object} dto.Response{data=dto.SummaryResponse}
// @Router /summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.summaryService.GetSummary(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to compute summary"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToSummaryResponse(summary)))
}

// getStatistics godoc
// @Summary Get expense statistics
// @Description Retrieves daily, weekly and monthly expense totals compared against the preceding period
// @Tags reports
// @Produce json
// @Success 200 {object} dto.Response{data=dto.StatisticsResponse}
// @Router /statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.reportingService.Statistics(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to compute statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to compute statistics"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToStatisticsResponse(snapshot)))
}

// getChart godoc
// @Summary Get the trailing expense chart
// @Description Retrieves daily expense totals for the trailing N days, oldest first, zero-filled
// @Tags reports
// @Produce json
// @Param days query int false "Number of trailing days" default(7)
// @Success 200 {object} dto.Response{data=[]dto.ChartPointResponse}
// @Failure 400 {object} dto.Response "Invalid days parameter"
// @Router /statistics/chart [get]
func (h *reportingHandler) getChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ChartParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for getChart", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters: "+err.Error()))
		return
	}

	days := params.Days
	if days == 0 {
		days = h.chartDefaultDays
	}

	points, err := h.reportingService.ChartSeries(c.Request.Context(), days, time.Now())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
			return
		}
		logger.Error("Failed to compute chart series", slog.String("error", err.Error()), slog.Int("days", days))
		c.JSON(http.StatusInternalServerError, dto.Fail("Failed to compute chart series"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToChartResponse(points)))
}
