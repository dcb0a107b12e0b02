package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	"github.com/johnquangdev/interview-coach/internal/adapter/dto/coaching"
	"github.com/johnquangdev/interview-coach/internal/adapter/presenter"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	coachingUsecase "github.com/johnquangdev/interview-coach/internal/usecase/coaching"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

// Coaching handles live coaching session requests
type Coaching struct {
	service coachingUsecase.Service
	logger  *zap.Logger
}

// NewCoachingHandler creates a new coaching handler
func NewCoachingHandler(service coachingUsecase.Service, logger *zap.Logger) *Coaching {
	return &Coaching{service: service, logger: logger}
}

// CreateSession handles POST /sessions
// @Summary      Start a coaching session
// @Description  Creates a session and evaluates the baseline score
// @Tags         Coaching
// @Accept       json
// @Produce      json
// @Param        request  body      coaching.CreateSessionRequest  false  "Optional session details"
// @Success      200      {object}  coaching.CreateSessionResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /sessions [post]
func (h *Coaching) CreateSession(c echo.Context) error {
	var req coaching.CreateSessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.service.CreateSession(c.Request().Context(), req.DisplayName)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCreateSessionResponse(resp))
}

// Ingest handles POST /sessions/:id/ingest
// @Summary      Ingest a signal snapshot
// @Description  Scores the snapshot, selects the coaching state and returns the verdict
// @Tags         Coaching
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Session ID"
// @Param        request  body      entities.SignalSnapshot  true  "Reduced browser signals"
// @Success      200      {object}  entities.CoachingResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      404      {object}  common.ErrorResponse
// @Failure      422      {object}  common.ErrorResponse
// @Router       /sessions/{id}/ingest [post]
func (h *Coaching) Ingest(c echo.Context) error {
	sessionID := c.Param("id")

	var snapshot entities.SignalSnapshot
	if err := bindAndValidate(c, &snapshot); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp, err := h.service.Ingest(c.Request().Context(), sessionID, &snapshot)
	if err != nil {
		return HandleError(h.logger, c, sessionError(sessionID, err))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCoachingResponse(resp))
}

// GetSession handles GET /sessions/:id
// @Summary      Get the last verdict
// @Description  Returns the most recent coaching response of a session
// @Tags         Coaching
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  entities.CoachingResponse
// @Failure      404  {object}  common.ErrorResponse
// @Router       /sessions/{id} [get]
func (h *Coaching) GetSession(c echo.Context) error {
	sessionID := c.Param("id")

	resp, err := h.service.LastResponse(c.Request().Context(), sessionID)
	if err != nil {
		return HandleError(h.logger, c, sessionError(sessionID, err))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCoachingResponse(resp))
}

func sessionError(sessionID string, err error) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrSessionNotFound):
		return errors.ErrSessionNotFound(sessionID)
	case stdErrors.Is(err, usecaseErrors.ErrNotFound):
		return errors.ErrNotFound("Coaching response").WithDetail("session_id", sessionID)
	default:
		return errors.ErrInternal(err)
	}
}
