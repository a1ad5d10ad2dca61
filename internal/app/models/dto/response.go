package dto

// MessageResponse represents a plain confirmation, e.g. {"message":"Job removed"}
type MessageResponse struct {
	Message string `json:"message" example:"Job removed"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"postgres"`
}
