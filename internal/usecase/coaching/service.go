package coaching

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

// Baseline score evaluated when a session is created
var BaselineScore = entities.CoachingScore{Confidence: 0.55, Anxiety: 0.45}

// Alert names logged when a verdict crosses a threshold
const (
	AlertLowConfidence = "low_confidence"
	AlertHighAnxiety   = "high_anxiety"
)

// AlertThresholds configures the coaching alerts
type AlertThresholds struct {
	LowConfidence float64
	HighAnxiety   float64
}

// Alerts returns the alerts raised by a score
func (a AlertThresholds) Alerts(score entities.CoachingScore) []string {
	var alerts []string
	if score.Confidence < a.LowConfidence {
		alerts = append(alerts, AlertLowConfidence)
	}
	if score.Anxiety >= a.HighAnxiety {
		alerts = append(alerts, AlertHighAnxiety)
	}
	return alerts
}

// Service runs the signal-to-coaching pipeline for sessions
type Service interface {
	CreateSession(ctx context.Context, displayName string) (*entities.CoachingResponse, error)
	Ingest(ctx context.Context, sessionID string, snapshot *entities.SignalSnapshot) (*entities.CoachingResponse, error)
	LastResponse(ctx context.Context, sessionID string) (*entities.CoachingResponse, error)
}

type coachingService struct {
	sessions repositories.SessionRepository
	engine   *RuleEngine
	fillers  *FillerExtractor
	enricher *Enricher
	alerts   AlertThresholds
	locks    *keyedMutex
	logger   *zap.Logger
}

// NewService wires the coaching pipeline
func NewService(
	sessions repositories.SessionRepository,
	engine *RuleEngine,
	fillers *FillerExtractor,
	enricher *Enricher,
	alerts AlertThresholds,
	logger *zap.Logger,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &coachingService{
		sessions: sessions,
		engine:   engine,
		fillers:  fillers,
		enricher: enricher,
		alerts:   alerts,
		locks:    newKeyedMutex(),
		logger:   logger,
	}
}

// CreateSession opens a session and records the baseline verdict
func (s *coachingService) CreateSession(ctx context.Context, displayName string) (*entities.CoachingResponse, error) {
	session := entities.NewSession(displayName)
	resp := s.engine.Evaluate(session.ID, BaselineScore, nil)
	session.SetLastResponse(resp)

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Info("🆕 Session created",
		zap.String("session_id", session.ID),
		zap.String("state", resp.State),
	)
	return &resp, nil
}

// Ingest scores a snapshot, classifies it, decorates and enriches the verdict and records it.
// Concurrent ingests for one session are serialized.
func (s *coachingService) Ingest(ctx context.Context, sessionID string, snapshot *entities.SignalSnapshot) (*entities.CoachingResponse, error) {
	unlock := s.locks.Lock(sessionID)
	defer unlock()

	if _, err := s.sessions.FindByID(ctx, sessionID); err != nil {
		return nil, s.mapSessionErr(sessionID, err)
	}

	score := ComputeScores(snapshot)
	lines := snapshot.TranscriptTexts()

	resp := s.engine.Evaluate(sessionID, score, snapshot.LatencyMS)
	resp.TranscriptHighlights = s.fillers.Extract(lines)

	result := s.enricher.Enrich(ctx, resp, lines)
	if result.GeneratorErr != nil {
		s.logger.Warn("⚠️ Coaching enrichment degraded",
			zap.String("session_id", sessionID),
			zap.Error(result.GeneratorErr),
		)
	}
	if result.AnxietyRaised {
		s.logger.Debug("Anxiety raised by transcript heuristic",
			zap.String("session_id", sessionID),
			zap.Float64("anxiety", result.Response.Scores.Anxiety),
			zap.Float64("mumble_score", result.MumbleScore),
		)
	}
	resp = result.Response

	for _, alert := range s.alerts.Alerts(resp.Scores) {
		s.logger.Warn("coaching.alert",
			zap.String("alert", alert),
			zap.String("session_id", sessionID),
			zap.String("state", resp.State),
			zap.Float64("confidence", resp.Scores.Confidence),
			zap.Float64("anxiety", resp.Scores.Anxiety),
		)
	}

	if err := s.sessions.SetLastResponse(ctx, sessionID, resp); err != nil {
		return nil, s.mapSessionErr(sessionID, err)
	}

	s.logger.Info("✅ Signals ingested",
		zap.String("session_id", sessionID),
		zap.String("state", resp.State),
		zap.Float64("confidence", resp.Scores.Confidence),
		zap.Float64("anxiety", resp.Scores.Anxiety),
		zap.Bool("tip_generated", result.TipReplaced),
	)
	return &resp, nil
}

// LastResponse returns the most recent verdict recorded for a session
func (s *coachingService) LastResponse(ctx context.Context, sessionID string) (*entities.CoachingResponse, error) {
	session, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, s.mapSessionErr(sessionID, err)
	}
	if session.LastResponse == nil {
		return nil, fmt.Errorf("%w: %s has no verdict yet", ucerrors.ErrNotFound, sessionID)
	}
	resp := session.LastResponse.Clone()
	return &resp, nil
}

func (s *coachingService) mapSessionErr(sessionID string, err error) error {
	if errors.Is(err, entities.ErrSessionNotFound) {
		return fmt.Errorf("%w: %s", ucerrors.ErrSessionNotFound, sessionID)
	}
	return fmt.Errorf("session %s: %w", sessionID, err)
}
