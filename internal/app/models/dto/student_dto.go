package dto

import "time"

// CreateStudentRequest is the payload for registering a student.
// School, timezone and role fall back to their defaults when omitted.
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2" example:"Yasmine"`
	LastName  string `json:"lastName" binding:"required,min=2" example:"Berrada"`
	Email     string `json:"email" binding:"required,email" example:"yasmine.berrada@emsi.ma"`
	Program   string `json:"program" binding:"required" example:"3IIR"`
	School    string `json:"school" example:"EMSI"`
	Timezone  string `json:"timezone" example:"Africa/Casablanca"`
}

// StudentResponse is the wire representation of a stored student
type StudentResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Program   string    `json:"program"`
	School    string    `json:"school"`
	Timezone  string    `json:"timezone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
