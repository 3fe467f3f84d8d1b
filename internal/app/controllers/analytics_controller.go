package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/api/internal/app/services"
	"github.com/studytrack/api/internal/middleware"
	"github.com/studytrack/api/internal/pkg/helpers"
)

// AnalyticsController handles the enrichment and aggregation endpoints
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetEnrichedSessions retrieves sessions joined to student and subject names
// @Summary List enriched sessions
// @Tags analytics
// @Produce json
// @Param limit query int false "Row limit, clamped to [1,200]" default(50)
// @Success 200 {array} dto.EnrichedSessionResponse
// @Router /sessions-enriched [get]
func (c *AnalyticsController) GetEnrichedSessions(ctx *gin.Context) {
	limit := helpers.ParseLimitParam(ctx, services.EnrichedListDefault)

	rows, err := c.analyticsService.GetEnrichedSessions(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// GetTimeBySubject retrieves total study minutes grouped by subject
// @Summary Time by subject
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.SubjectTimeResponse
// @Router /analytics/time-by-subject [get]
func (c *AnalyticsController) GetTimeBySubject(ctx *gin.Context) {
	rows, err := c.analyticsService.GetTimeBySubject(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// GetTimeByPeriod retrieves total study minutes grouped by period
// @Summary Time by period
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.PeriodTimeResponse
// @Router /analytics/time-by-period [get]
func (c *AnalyticsController) GetTimeByPeriod(ctx *gin.Context) {
	rows, err := c.analyticsService.GetTimeByPeriod(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// GetDifficultyBySubject retrieves mean difficulty grouped by subject
// @Summary Difficulty by subject
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.SubjectDifficultyResponse
// @Router /analytics/difficulty-by-subject [get]
func (c *AnalyticsController) GetDifficultyBySubject(ctx *gin.Context) {
	rows, err := c.analyticsService.GetDifficultyBySubject(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// GetTimeByStudent retrieves total study minutes grouped by student
// @Summary Time by student
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.StudentTimeResponse
// @Router /analytics/time-by-student [get]
func (c *AnalyticsController) GetTimeByStudent(ctx *gin.Context) {
	rows, err := c.analyticsService.GetTimeByStudent(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}
