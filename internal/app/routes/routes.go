package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/api/internal/app/controllers"
	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/db"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	sessionController *controllers.SessionController,
	analyticsController *controllers.AnalyticsController,
	store *db.Mongo,
) {
	// Service banner
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "StudyTrack API running"})
	})

	// Health check pings the store so "ok" means reachable end to end
	router.GET("/health", func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Store unreachable"),
			))
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Mongo: "connected"})
	})

	// Student routes
	students := router.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// Subject routes
	subjects := router.Group("/subjects")
	{
		subjects.POST("", subjectController.CreateSubject)
		subjects.GET("", subjectController.GetAllSubjects)
	}

	// Session routes
	sessions := router.Group("/sessions")
	{
		sessions.POST("", sessionController.CreateSession)
		sessions.GET("", sessionController.GetRecentSessions)
		sessions.GET("/:id", sessionController.GetSessionByID)
		sessions.DELETE("/:id", sessionController.DeleteSession)
	}

	// Enriched session list lives beside the raw one
	router.GET("/sessions-enriched", analyticsController.GetEnrichedSessions)

	// Analytics routes
	analytics := router.Group("/analytics")
	{
		analytics.GET("/time-by-subject", analyticsController.GetTimeBySubject)
		analytics.GET("/time-by-period", analyticsController.GetTimeByPeriod)
		analytics.GET("/difficulty-by-subject", analyticsController.GetDifficultyBySubject)
		analytics.GET("/time-by-student", analyticsController.GetTimeByStudent)
	}
}
