package coaching

// CreateSessionRequest is the optional body of POST /sessions
type CreateSessionRequest struct {
	DisplayName string `json:"display_name" validate:"omitempty,max=120"`
}
