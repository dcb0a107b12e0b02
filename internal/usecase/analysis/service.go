package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/domain/repositories"
	"github.com/johnquangdev/interview-coach/internal/usecase/coaching"
	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
	"github.com/johnquangdev/interview-coach/pkg/jobcontext"
)

// FallbackTip is used when no text generator is configured
const FallbackTip = "Take a breath, answer with structured points, and keep your energy steady. Focus on one clear outcome in your next sentence."

// Advice used when the configured generator returns nothing or fails
const (
	EmptyCompletionTip    = "Practice makes perfect! Keep working on your interview skills."
	GeneratorFailureTip   = "Keep practicing your interview skills!"
	GeneratorFailureRetry = "Review your performance and try again"
)

// UploadURLExpiry is the lifetime of presigned upload URLs
const UploadURLExpiry = time.Hour

const (
	jobTypeMediaAnalysis = "media_analysis"
	promptTranscriptMax  = 500
	defaultAnxiety       = 0.5
)

// MediaFile is an interview recording received from a client
type MediaFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadTarget is a presigned location the client uploads media to
type UploadTarget struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	Bucket    string `json:"bucket"`
	ExpiresIn int    `json:"expires_in"`
}

// Options tunes the analysis pipeline
type Options struct {
	Poll    PollPolicy
	Timeout time.Duration
}

// Dependencies are the optional collaborators of the pipeline. A nil field disables that capability.
type Dependencies struct {
	Store       MediaStore
	Faces       FaceDetector
	Transcriber Transcriber
	Generator   TextGenerator
	Records     repositories.AnalysisRepository
	Fillers     *coaching.FillerExtractor
}

// Service runs full-media interview analysis
type Service interface {
	AnalyzeInterview(ctx context.Context, file MediaFile) (*entities.AnalysisReport, error)
	AnalyzeStoredMedia(ctx context.Context, fileKey string) (*entities.AnalysisReport, error)
	CreateUploadURL(ctx context.Context, fileType, contentType string) (*UploadTarget, error)
	GetAnalysis(ctx context.Context, id string) (*entities.AnalysisReport, error)
}

type analysisService struct {
	deps   Dependencies
	opts   Options
	logger *zap.Logger
}

// NewService builds the analysis pipeline
func NewService(deps Dependencies, opts Options, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Fillers == nil {
		deps.Fillers = coaching.NewFillerExtractor(coaching.DefaultFillerWords)
	}
	if opts.Poll.MaxAttempts <= 0 {
		opts.Poll = DefaultPollPolicy()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = jobcontext.DefaultTimeout
	}
	return &analysisService{deps: deps, opts: opts, logger: logger}
}

// AnalyzeInterview uploads the recording and analyzes it. Only upload failures are surfaced.
func (s *analysisService) AnalyzeInterview(ctx context.Context, file MediaFile) (*entities.AnalysisReport, error) {
	start := time.Now()
	if !IsMediaContentType(file.ContentType) {
		return nil, fmt.Errorf("%w: %q", ucerrors.ErrUnsupportedMediaType, file.ContentType)
	}
	if s.deps.Store == nil {
		return nil, ucerrors.ErrStorageNotConfigured
	}

	key := InterviewObjectKey(file.Filename)
	s.logger.Info("📤 Uploading interview media",
		zap.String("file_key", key),
		zap.String("content_type", file.ContentType),
		zap.Int64("size", file.Size),
	)
	if err := s.deps.Store.Upload(ctx, key, file.Body, file.Size, file.ContentType); err != nil {
		s.logger.Error("❌ Media upload failed", zap.String("file_key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ucerrors.ErrUploadFailed, err)
	}

	return s.analyze(ctx, key, start), nil
}

// AnalyzeStoredMedia analyzes an object that was uploaded through a presigned URL
func (s *analysisService) AnalyzeStoredMedia(ctx context.Context, fileKey string) (*entities.AnalysisReport, error) {
	if fileKey == "" {
		return nil, fmt.Errorf("%w: file_key is required", ucerrors.ErrInvalidInput)
	}
	if s.deps.Store == nil {
		return nil, ucerrors.ErrStorageNotConfigured
	}
	return s.analyze(ctx, fileKey, time.Now()), nil
}

// CreateUploadURL issues a presigned PUT URL for client-side upload
func (s *analysisService) CreateUploadURL(ctx context.Context, fileType, contentType string) (*UploadTarget, error) {
	if s.deps.Store == nil {
		return nil, ucerrors.ErrStorageNotConfigured
	}
	if contentType != "" && !IsMediaContentType(contentType) {
		return nil, fmt.Errorf("%w: %q", ucerrors.ErrUnsupportedMediaType, contentType)
	}

	key := UploadObjectKey(fileType)
	url, err := s.deps.Store.PresignedPutURL(ctx, key, UploadURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign upload %s: %w", key, err)
	}
	return &UploadTarget{
		UploadURL: url,
		FileKey:   key,
		Bucket:    s.deps.Store.Bucket(),
		ExpiresIn: int(UploadURLExpiry / time.Second),
	}, nil
}

// GetAnalysis loads a stored analysis by id
func (s *analysisService) GetAnalysis(ctx context.Context, id string) (*entities.AnalysisReport, error) {
	if s.deps.Records == nil {
		return nil, ucerrors.ErrAnalysisStoreDisabled
	}
	analysisID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ucerrors.ErrAnalysisNotFound, id)
	}
	record, err := s.deps.Records.FindByID(ctx, analysisID)
	if err != nil {
		if errors.Is(err, entities.ErrAnalysisNotFound) {
			return nil, fmt.Errorf("%w: %s", ucerrors.ErrAnalysisNotFound, id)
		}
		return nil, fmt.Errorf("find analysis %s: %w", id, err)
	}
	return record.Report(), nil
}

// analyze runs both perception channels under one job deadline and never fails;
// a channel that produced nothing yields a nil section.
func (s *analysisService) analyze(ctx context.Context, fileKey string, start time.Time) *entities.AnalysisReport {
	analysisID := uuid.New()
	jobCtx, cancel := jobcontext.JobBegin(ctx, analysisID, jobTypeMediaAnalysis, s.opts.Timeout)
	defer cancel()

	log := s.logger.With(zap.String("analysis_id", analysisID.String()), zap.String("file_key", fileKey))
	ext := FileExtension(fileKey)

	var (
		wg         sync.WaitGroup
		facial     *entities.FacialAnalysis
		transcript *entities.TranscriptAnalysis
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		facial = s.runFaceDetection(jobCtx, log, fileKey, ext)
	}()
	go func() {
		defer wg.Done()
		transcript = s.runTranscription(jobCtx, log, fileKey, ext)
	}()
	wg.Wait()

	report := &entities.AnalysisReport{
		ID:                 analysisID.String(),
		FileKey:            fileKey,
		Status:             entities.AnalysisStatusCompleted,
		FacialAnalysis:     facial,
		TranscriptAnalysis: transcript,
		CreatedAt:          time.Now().UTC(),
	}
	if transcript != nil {
		report.CoachingAdvice = s.buildAdvice(jobCtx, log, facial, transcript)
	}
	report.ProcessingTimeMS = float64(time.Since(start).Microseconds()) / 1000

	meta := jobcontext.GetJobMetadata(jobCtx)
	log.Info("✅ Analysis completed",
		zap.String("job_type", meta.JobType),
		zap.Duration("job_elapsed", jobcontext.Elapsed(jobCtx)),
		zap.Time("job_deadline", meta.Deadline),
		zap.Bool("facial", facial != nil),
		zap.Bool("transcript", transcript != nil),
		zap.Float64("processing_time_ms", report.ProcessingTimeMS),
	)

	s.persist(ctx, log, report)
	return report
}

func (s *analysisService) runFaceDetection(ctx context.Context, log *zap.Logger, fileKey, ext string) *entities.FacialAnalysis {
	if s.deps.Faces == nil {
		log.Debug("Face detection not configured")
		return nil
	}
	if !SupportsFaceDetection(ext) {
		log.Warn("⚠️ Face detection skipped", zap.Error(fmt.Errorf("%w: %s", ucerrors.ErrFormatNotSupported, ext)))
		return nil
	}

	jobID, err := s.deps.Faces.StartFaceDetection(ctx, s.deps.Store.Bucket(), fileKey)
	if err != nil {
		log.Error("❌ Failed to start face detection", zap.Error(err))
		return nil
	}
	log.Info("🎬 Face detection started", zap.String("job_id", jobID))

	result, err := pollUntilDone(ctx, s.opts.Poll, func(ctx context.Context) (*FaceDetectionResult, bool, error) {
		res, err := s.deps.Faces.GetFaceDetection(ctx, jobID)
		if err != nil {
			return nil, false, err
		}
		switch res.Status {
		case JobSucceeded:
			return res, true, nil
		case JobFailed:
			return nil, false, fmt.Errorf("%w: %s", ucerrors.ErrJobFailed, res.Message)
		default:
			return nil, false, nil
		}
	}, s.pollNotify(log, "face_detection", jobID))
	if err != nil {
		log.Warn("⚠️ Face detection produced no result", zap.String("job_id", jobID), zap.Error(err))
		return nil
	}

	facial := ReduceEmotions(result.Faces)
	if facial == nil {
		log.Warn("⚠️ No faces with emotion data detected", zap.String("job_id", jobID))
	}
	return facial
}

func (s *analysisService) runTranscription(ctx context.Context, log *zap.Logger, fileKey, ext string) *entities.TranscriptAnalysis {
	if s.deps.Transcriber == nil {
		log.Debug("Transcription not configured")
		return nil
	}
	if !SupportsTranscription(ext) {
		log.Warn("⚠️ Transcription skipped", zap.Error(fmt.Errorf("%w: %s", ucerrors.ErrFormatNotSupported, ext)))
		return nil
	}

	mediaURL, err := s.deps.Store.PresignedGetURL(ctx, fileKey, s.opts.Timeout)
	if err != nil {
		log.Error("❌ Failed to presign media for transcription", zap.Error(err))
		return nil
	}
	jobID, err := s.deps.Transcriber.StartTranscription(ctx, mediaURL)
	if err != nil {
		log.Error("❌ Failed to start transcription", zap.Error(err))
		return nil
	}
	log.Info("🎙️ Transcription started", zap.String("job_id", jobID))

	result, err := pollUntilDone(ctx, s.opts.Poll, func(ctx context.Context) (*TranscriptionResult, bool, error) {
		res, err := s.deps.Transcriber.GetTranscription(ctx, jobID)
		if err != nil {
			return nil, false, err
		}
		switch res.Status {
		case JobSucceeded:
			return res, true, nil
		case JobFailed:
			return nil, false, fmt.Errorf("%w: %s", ucerrors.ErrJobFailed, res.Message)
		default:
			return nil, false, nil
		}
	}, s.pollNotify(log, "transcription", jobID))
	if err != nil {
		log.Warn("⚠️ Transcription produced no result", zap.String("job_id", jobID), zap.Error(err))
		return nil
	}

	stats := s.deps.Fillers.AnalyzeTranscript(result.Text)
	segments := result.Segments
	if segments == nil {
		segments = []entities.TranscriptSegment{}
	}
	return &entities.TranscriptAnalysis{
		FullText:    result.Text,
		FillerRatio: stats.FillerRatio,
		FillerHits:  stats.FillerHits,
		MumbleScore: stats.MumbleScore,
		Segments:    segments,
	}
}

// pollNotify logs the first few polls and then every fifth
func (s *analysisService) pollNotify(log *zap.Logger, channel, jobID string) func(error, time.Duration) {
	attempt := 0
	return func(err error, next time.Duration) {
		attempt++
		if attempt <= 5 || attempt%5 == 0 {
			log.Info("⏳ Provider job pending",
				zap.String("channel", channel),
				zap.String("job_id", jobID),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", s.opts.Poll.MaxAttempts),
				zap.Duration("next_poll", next),
				zap.NamedError("status", err),
			)
		}
	}
}

func (s *analysisService) buildAdvice(ctx context.Context, log *zap.Logger, facial *entities.FacialAnalysis, transcript *entities.TranscriptAnalysis) *entities.CoachingAdvice {
	confidence := entities.Clamp01(1 - 0.5*transcript.MumbleScore)
	anxiety := defaultAnxiety
	if facial != nil {
		anxiety = facial.AnxietyHint
	}

	advice := &entities.CoachingAdvice{
		Tip:             FallbackTip,
		ConfidenceScore: confidence,
		AnxietyScore:    anxiety,
		Recommendations: recommendations(facial, transcript),
	}
	if s.deps.Generator == nil {
		return advice
	}

	text, err := s.deps.Generator.GenerateCoachingLine(ctx, buildAdvicePrompt(confidence, anxiety, transcript))
	switch {
	case err != nil:
		// A failed call discards the heuristic recommendations too
		log.Warn("⚠️ Coaching advice generation failed", zap.Error(err))
		advice.Tip = GeneratorFailureTip
		advice.Recommendations = []string{GeneratorFailureRetry}
	case strings.TrimSpace(text) == "":
		log.Warn("⚠️ Coaching advice generation failed", zap.Error(ucerrors.ErrEmptyCompletion))
		advice.Tip = EmptyCompletionTip
	default:
		advice.Tip = strings.TrimSpace(text)
	}
	return advice
}

func recommendations(facial *entities.FacialAnalysis, transcript *entities.TranscriptAnalysis) []string {
	recs := make([]string, 0, 3)
	if transcript.FillerRatio > 0.1 {
		recs = append(recs, "Reduce filler words")
	} else {
		recs = append(recs, "Good control of filler words")
	}
	if facial != nil && facial.Engagement < 0.6 {
		recs = append(recs, "Maintain eye contact")
	} else {
		recs = append(recs, "Good engagement")
	}
	if transcript.MumbleScore > 0.5 {
		recs = append(recs, "Speak more clearly")
	} else {
		recs = append(recs, "Clear speech")
	}
	return recs
}

func buildAdvicePrompt(confidence, anxiety float64, transcript *entities.TranscriptAnalysis) string {
	text := []rune(transcript.FullText)
	if len(text) > promptTranscriptMax {
		text = text[:promptTranscriptMax]
	}
	return fmt.Sprintf(
		"Interview Performance Analysis:\n"+
			"- Confidence Score: %.2f\n"+
			"- Anxiety Level: %.2f\n"+
			"- Filler Word Ratio: %.2f%%\n"+
			"- Transcript: %s\n\n"+
			"Provide specific coaching tips and recommendations.",
		confidence, anxiety, transcript.FillerRatio*100, string(text),
	)
}

func (s *analysisService) persist(ctx context.Context, log *zap.Logger, report *entities.AnalysisReport) {
	if s.deps.Records == nil {
		return
	}
	record, err := entities.NewAnalysisRecord(report)
	if err == nil {
		err = s.deps.Records.Create(context.WithoutCancel(ctx), record)
	}
	if err != nil {
		log.Warn("⚠️ Failed to store analysis", zap.Error(err))
	}
}
