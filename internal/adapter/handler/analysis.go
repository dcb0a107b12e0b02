package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/errors"
	analysisDTO "github.com/johnquangdev/interview-coach/internal/adapter/dto/analysis"
	"github.com/johnquangdev/interview-coach/internal/adapter/presenter"
	analysisUsecase "github.com/johnquangdev/interview-coach/internal/usecase/analysis"
	usecaseErrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

const defaultUploadContentType = "video/webm"

// Analysis handles full-media interview analysis requests
type Analysis struct {
	service analysisUsecase.Service
	logger  *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service analysisUsecase.Service, logger *zap.Logger) *Analysis {
	return &Analysis{service: service, logger: logger}
}

// AnalyzeInterview handles POST /analyze-interview
// @Summary      Analyze an interview recording
// @Description  Uploads the recording, runs face detection and transcription concurrently and returns coaching advice. Sections a provider could not produce are null.
// @Tags         Analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Video or audio recording"
// @Success      200   {object}  analysis.AnalysisResponse
// @Failure      400   {object}  common.ErrorResponse
// @Failure      500   {object}  common.ErrorResponse  "Upload failed"
// @Failure      503   {object}  common.ErrorResponse  "Storage not configured"
// @Router       /analyze-interview [post]
func (h *Analysis) AnalyzeInterview(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("multipart field \"file\" is required"))
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	src, err := header.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload().WithDetail("reason", err.Error()))
	}
	defer src.Close()

	report, err := h.service.AnalyzeInterview(c.Request().Context(), analysisUsecase.MediaFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		return HandleError(h.logger, c, analysisError(err, contentType))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAnalysisResponse(report))
}

// AnalyzeStored handles POST /analyses
// @Summary      Analyze uploaded media
// @Description  Runs the analysis pipeline over an object uploaded through a presigned URL
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analysis.AnalyzeStoredRequest  true  "Stored object key"
// @Success      200      {object}  analysis.AnalysisResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      422      {object}  common.ErrorResponse
// @Failure      503      {object}  common.ErrorResponse
// @Router       /analyses [post]
func (h *Analysis) AnalyzeStored(c echo.Context) error {
	var req analysisDTO.AnalyzeStoredRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	report, err := h.service.AnalyzeStoredMedia(c.Request().Context(), req.FileKey)
	if err != nil {
		return HandleError(h.logger, c, analysisError(err, req.FileKey))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAnalysisResponse(report))
}

// CreateUploadURL handles POST /uploads
// @Summary      Get a presigned upload URL
// @Description  Issues a one-hour presigned PUT URL for direct client upload
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      analysis.UploadURLRequest  true  "Upload details"
// @Success      200      {object}  analysis.UploadURLResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      422      {object}  common.ErrorResponse
// @Failure      503      {object}  common.ErrorResponse
// @Router       /uploads [post]
func (h *Analysis) CreateUploadURL(c echo.Context) error {
	var req analysisDTO.UploadURLRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.ContentType == "" {
		req.ContentType = defaultUploadContentType
	}

	target, err := h.service.CreateUploadURL(c.Request().Context(), req.FileType, req.ContentType)
	if err != nil {
		return HandleError(h.logger, c, analysisError(err, req.ContentType))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToUploadURLResponse(target))
}

// GetAnalysis handles GET /analyses/:id
// @Summary      Get a stored analysis
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Analysis ID (UUID)"
// @Success      200  {object}  analysis.AnalysisResponse
// @Failure      404  {object}  common.ErrorResponse
// @Failure      503  {object}  common.ErrorResponse  "Analysis history disabled"
// @Router       /analyses/{id} [get]
func (h *Analysis) GetAnalysis(c echo.Context) error {
	id := c.Param("id")

	report, err := h.service.GetAnalysis(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, analysisError(err, id))
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAnalysisResponse(report))
}

// analysisError maps use case errors; ref is the content type, file key or analysis id involved
func analysisError(err error, ref string) error {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrUnsupportedMediaType):
		return errors.ErrUnsupportedMediaType(ref)
	case stdErrors.Is(err, usecaseErrors.ErrUploadFailed):
		return errors.ErrMediaUploadFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrStorageNotConfigured):
		return errors.ErrStorageDisabled()
	case stdErrors.Is(err, usecaseErrors.ErrAnalysisStoreDisabled):
		return errors.ErrDatabaseDisabled()
	case stdErrors.Is(err, usecaseErrors.ErrAnalysisNotFound):
		return errors.ErrAnalysisNotFound(ref)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrAnalysisFailed(err)
	}
}
