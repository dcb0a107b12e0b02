package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is a coaching session and its last verdict
type Session struct {
	ID           string            `json:"id"`
	DisplayName  string            `json:"display_name,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	LastResponse *CoachingResponse `json:"last_response,omitempty"`
}

// NewSession creates a session with an opaque id
func NewSession(displayName string) *Session {
	now := time.Now()
	return &Session{
		ID:          NewSessionID(),
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewSessionID returns a 32-character hex token
func NewSessionID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// SetLastResponse replaces the last verdict
func (s *Session) SetLastResponse(resp CoachingResponse) {
	clone := resp.Clone()
	s.LastResponse = &clone
	s.UpdatedAt = time.Now()
}
