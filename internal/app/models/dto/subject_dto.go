package dto

// CreateSubjectRequest is the payload for creating a subject.
// Coefficient defaults to 2 when omitted.
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required,min=2" example:"Algèbre"`
	Program     string `json:"program" binding:"required,min=2" example:"CS"`
	Coefficient *int   `json:"coefficient" binding:"omitempty,gte=1,lte=10" example:"3"`
	Color       string `json:"color" example:"#4F8EF7"`
}

// SubjectResponse is the wire representation of a stored subject
type SubjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Program     string `json:"program"`
	Coefficient int    `json:"coefficient"`
	Color       string `json:"color,omitempty"`
}
