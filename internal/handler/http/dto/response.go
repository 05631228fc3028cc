package dto

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports whether the store is reachable.
type HealthResponse struct {
	Status string `json:"status"`
}
