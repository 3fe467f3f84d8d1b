package dto

import "time"

// CreateSessionRequest is the payload for recording a study session.
// The mood, period and sessiontype rules are registered in
// internal/pkg/validation. StudentID and SubjectID are checked for ObjectID
// syntax only; referential existence is not enforced.
type CreateSessionRequest struct {
	StudentID   string    `json:"studentId" binding:"required" example:"6724f1a2e7c9b5d4a3f2e1d0"`
	SubjectID   string    `json:"subjectId" binding:"required" example:"6724f1a2e7c9b5d4a3f2e1d1"`
	StartedAt   time.Time `json:"startedAt" binding:"required" example:"2025-11-02T09:30:00Z"`
	DurationMin int       `json:"durationMin" binding:"required,gte=1,lte=600" example:"45"`
	Difficulty  int       `json:"difficulty" binding:"required,gte=1,lte=5" example:"3"`
	Mood        string    `json:"mood" binding:"required,mood" example:"Motivé"`
	Period      string    `json:"period" binding:"required,period" example:"matin"`
	Type        string    `json:"type" binding:"required,sessiontype" example:"exercices"`
	Tags        []string  `json:"tags"`
	Notes       string    `json:"notes" example:"Révision chapitre 2"`
}

// SessionResponse is the wire representation of a stored session
type SessionResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	SubjectID   string    `json:"subjectId"`
	StartedAt   time.Time `json:"startedAt"`
	DurationMin int       `json:"durationMin"`
	Difficulty  int       `json:"difficulty"`
	Mood        string    `json:"mood"`
	Period      string    `json:"period"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	Notes       string    `json:"notes,omitempty"`
}

// EnrichedSessionResponse is a session row joined to its student and subject
// display names. Dangling references are replaced by placeholder labels
// instead of failing the row.
type EnrichedSessionResponse struct {
	ID          string    `json:"id"`
	Student     string    `json:"student"`
	Subject     string    `json:"subject"`
	StartedAt   time.Time `json:"startedAt"`
	DurationMin int       `json:"durationMin"`
	Difficulty  int       `json:"difficulty"`
	Mood        string    `json:"mood"`
	Period      string    `json:"period"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	Notes       string    `json:"notes,omitempty"`
}
