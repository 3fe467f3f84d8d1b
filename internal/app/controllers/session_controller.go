package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/app/services"
	"github.com/studytrack/api/internal/middleware"
	"github.com/studytrack/api/internal/pkg/helpers"
)

// SessionController handles session-related endpoints
type SessionController struct {
	sessionService services.SessionService
}

// NewSessionController creates a new SessionController
func NewSessionController(sessionService services.SessionService) *SessionController {
	return &SessionController{
		sessionService: sessionService,
	}
}

// CreateSession records a study session
// @Summary Record a study session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Session information"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ids or request data"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.sessionService.CreateSession(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// GetRecentSessions retrieves sessions newest first
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Param limit query int false "Row limit, clamped to [1,200]" default(100)
// @Success 200 {array} dto.SessionResponse
// @Router /sessions [get]
func (c *SessionController) GetRecentSessions(ctx *gin.Context) {
	limit := helpers.ParseLimitParam(ctx, services.SessionListDefault)

	sessions, err := c.sessionService.GetRecentSessions(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sessions)
}

// GetSessionByID retrieves a session by id
// @Summary Get session details
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (c *SessionController) GetSessionByID(ctx *gin.Context) {
	session, err := c.sessionService.GetSessionByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, session)
}

// DeleteSession deletes a session by id
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	if err := c.sessionService.DeleteSession(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{Deleted: true})
}
