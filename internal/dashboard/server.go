package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studytrack/api/internal/app/models"
	"github.com/studytrack/api/internal/app/models/dto"
	"github.com/studytrack/api/internal/pkg/helpers"
	"github.com/studytrack/api/internal/pkg/logger"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Bar is one row of a rendered bar chart
type Bar struct {
	Label   string
	Display string
	Percent int
}

// viewData is everything the dashboard page template consumes
type viewData struct {
	Errors   []string
	Notice   string
	Filter   Filter
	Limit    int
	Sessions []dto.EnrichedSessionResponse
	Total    int

	Students []dto.StudentResponse
	Subjects []dto.SubjectResponse

	StudentOptions []string
	SubjectOptions []string
	TagOptions     []string

	TimeBySubject       []Bar
	TimeByPeriod        []Bar
	DifficultyBySubject []Bar
	TimeByStudent       []Bar

	Moods        []string
	Periods      []string
	SessionTypes []string
}

// Server renders the dashboard against a backend API client
type Server struct {
	client *Client
	tmpl   *template.Template
}

// NewServer creates a dashboard server
func NewServer(client *Client) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard templates: %w", err)
	}
	return &Server{client: client, tmpl: tmpl}, nil
}

// Routes registers the dashboard routes on a gin engine
func (s *Server) Routes(router *gin.Engine) {
	router.GET("/", s.renderDashboard)
	router.POST("/sessions", s.submitSession)
}

// renderDashboard fetches everything the page needs and applies the
// requested filters. Any fetch failure becomes an inline banner; the page
// itself always renders.
func (s *Server) renderDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	data := viewData{
		Filter: Filter{
			Student: c.Query("student"),
			Subject: c.Query("subject"),
			Tag:     c.Query("tag"),
			Query:   c.Query("q"),
		},
		Limit:        parseLimit(c.Query("limit")),
		Notice:       c.Query("notice"),
		Moods:        models.Moods(),
		Periods:      models.Periods(),
		SessionTypes: models.SessionTypes(),
	}

	sessions, err := s.client.EnrichedSessions(ctx, data.Limit)
	if err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("sessions: %v", err))
	}
	data.StudentOptions = StudentOptions(sessions)
	data.SubjectOptions = SubjectOptions(sessions)
	data.TagOptions = TagOptions(sessions)
	data.Sessions = Apply(sessions, data.Filter)
	data.Total = len(data.Sessions)

	if data.Students, err = s.client.Students(ctx); err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("students: %v", err))
	}
	if data.Subjects, err = s.client.Subjects(ctx); err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("subjects: %v", err))
	}

	if rows, err := s.client.TimeBySubject(ctx); err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("time by subject: %v", err))
	} else {
		data.TimeBySubject = minuteBars(len(rows), func(i int) (string, int) {
			return rows[i].Subject, rows[i].TotalMinutes
		})
	}
	if rows, err := s.client.TimeByPeriod(ctx); err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("time by period: %v", err))
	} else {
		data.TimeByPeriod = minuteBars(len(rows), func(i int) (string, int) {
			return rows[i].Period, rows[i].TotalMinutes
		})
	}
	if rows, err := s.client.DifficultyBySubject(ctx); err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("difficulty by subject: %v", err))
	} else {
		data.DifficultyBySubject = difficultyBars(rows)
	}
	if rows, err := s.client.TimeByStudent(ctx); err != nil {
		data.Errors = append(data.Errors, fmt.Sprintf("time by student: %v", err))
	} else {
		data.TimeByStudent = minuteBars(len(rows), func(i int) (string, int) {
			return rows[i].Student, rows[i].TotalMinutes
		})
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(c.Writer, "dashboard.tmpl", data); err != nil {
		logger.Error().Err(err).Msg("Failed to render dashboard template")
	}
}

// submitSession forwards the session-create form to the backend and
// redirects back with the outcome in the query string.
func (s *Server) submitSession(c *gin.Context) {
	req := &dto.CreateSessionRequest{
		StudentID: c.PostForm("studentId"),
		SubjectID: c.PostForm("subjectId"),
		Mood:      c.PostForm("mood"),
		Period:    c.PostForm("period"),
		Type:      c.PostForm("type"),
		Notes:     c.PostForm("notes"),
		Tags:      splitTags(c.PostForm("tags")),
	}

	if v, err := strconv.Atoi(c.PostForm("durationMin")); err == nil {
		req.DurationMin = v
	}
	if v, err := strconv.Atoi(c.PostForm("difficulty")); err == nil {
		req.Difficulty = v
	}
	if t, err := time.Parse("2006-01-02T15:04", c.PostForm("startedAt")); err == nil {
		req.StartedAt = t.UTC()
	}

	notice := "Session created"
	if _, err := s.client.CreateSession(c.Request.Context(), req); err != nil {
		notice = fmt.Sprintf("Create failed: %v", err)
	}

	c.Redirect(http.StatusSeeOther, "/?notice="+url.QueryEscape(notice))
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		limit = 50
	}
	return helpers.ClampLimit(limit, helpers.MinListLimit, helpers.MaxListLimit)
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := []string{}
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// minuteBars scales minute totals against the largest row
func minuteBars(n int, row func(i int) (string, int)) []Bar {
	max := 0
	for i := 0; i < n; i++ {
		if _, v := row(i); v > max {
			max = v
		}
	}

	bars := make([]Bar, 0, n)
	for i := 0; i < n; i++ {
		label, v := row(i)
		bars = append(bars, Bar{
			Label:   label,
			Display: fmt.Sprintf("%d min", v),
			Percent: percent(v, max),
		})
	}
	return bars
}

// difficultyBars scales averages against the 1-5 difficulty range
func difficultyBars(rows []dto.SubjectDifficultyResponse) []Bar {
	bars := make([]Bar, 0, len(rows))
	for _, r := range rows {
		bars = append(bars, Bar{
			Label:   r.Subject,
			Display: strconv.FormatFloat(r.AvgDifficulty, 'f', 2, 64),
			Percent: percent(int(r.AvgDifficulty*100), 500),
		})
	}
	return bars
}

func percent(v, max int) int {
	if max <= 0 {
		return 0
	}
	p := v * 100 / max
	if p < 2 && v > 0 {
		p = 2
	}
	return p
}
