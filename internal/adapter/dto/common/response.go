package common

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Code    string            `json:"code" example:"SESSION_NOT_FOUND"`
	Message string            `json:"message" example:"Session not found"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status      string            `json:"status" example:"ok"`
	Environment string            `json:"environment" example:"development"`
	Components  map[string]string `json:"components,omitempty"`
}
