package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// AnalysisRepository stores completed media analyses
type AnalysisRepository interface {
	Create(ctx context.Context, record *entities.AnalysisRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisRecord, error)
}
