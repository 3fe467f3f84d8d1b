package dto

// HealthResponse is returned by the health endpoint after a store ping
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Mongo  string `json:"mongo" example:"connected"`
}

// DeleteResponse confirms a completed delete
type DeleteResponse struct {
	Deleted bool `json:"deleted" example:"true"`
}
