package repositories

import (
	"context"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// SessionRepository is the session ledger: one evolving verdict per session id
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, session *entities.Session) error

	// FindByID returns entities.ErrSessionNotFound for unknown or expired ids
	FindByID(ctx context.Context, id string) (*entities.Session, error)

	// SetLastResponse replaces the session's last verdict and refreshes its expiry
	SetLastResponse(ctx context.Context, id string, resp entities.CoachingResponse) error
}
