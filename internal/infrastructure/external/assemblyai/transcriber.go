package assemblyai

import (
	"context"
	"fmt"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/usecase/analysis"
)

// Transcriber submits media URLs to AssemblyAI and maps transcripts to analysis results
type Transcriber struct {
	client *aai.Client
	logger *zap.Logger
}

// Option configures the underlying SDK client
type Option = aai.ClientOption

// WithBaseURL points the client at a different API host
func WithBaseURL(url string) Option {
	return aai.WithBaseURL(url)
}

// NewTranscriber creates a transcriber using the official SDK client
func NewTranscriber(apiKey string, logger *zap.Logger, opts ...Option) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]Option{aai.WithAPIKey(apiKey)}, opts...)
	return &Transcriber{
		client: aai.NewClientWithOptions(opts...),
		logger: logger,
	}
}

// StartTranscription submits the media URL and returns the transcript id
func (t *Transcriber) StartTranscription(ctx context.Context, mediaURL string) (string, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
		Punctuate:     aai.Bool(true),
		FormatText:    aai.Bool(true),
		Disfluencies:  aai.Bool(true),
	}
	transcript, err := t.client.Transcripts.SubmitFromURL(ctx, mediaURL, params)
	if err != nil {
		return "", fmt.Errorf("submit transcription: %w", err)
	}
	id := deref(transcript.ID)
	if id == "" {
		return "", fmt.Errorf("submit transcription: response carried no transcript id")
	}
	t.logger.Debug("Transcription submitted", zap.String("job_id", id))
	return id, nil
}

// GetTranscription fetches one status snapshot of a transcript
func (t *Transcriber) GetTranscription(ctx context.Context, jobID string) (*analysis.TranscriptionResult, error) {
	transcript, err := t.client.Transcripts.Get(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get transcription %s: %w", jobID, err)
	}
	return mapTranscript(transcript), nil
}

func mapTranscript(transcript aai.Transcript) *analysis.TranscriptionResult {
	switch transcript.Status {
	case aai.TranscriptStatusCompleted:
		return &analysis.TranscriptionResult{
			Status:   analysis.JobSucceeded,
			Text:     strings.TrimSpace(deref(transcript.Text)),
			Segments: segments(transcript.Utterances),
		}
	case aai.TranscriptStatusError:
		msg := deref(transcript.Error)
		if msg == "" {
			msg = "transcription failed"
		}
		return &analysis.TranscriptionResult{Status: analysis.JobFailed, Message: msg}
	default:
		return &analysis.TranscriptionResult{Status: analysis.JobInProgress, Message: string(transcript.Status)}
	}
}

func segments(utterances []aai.TranscriptUtterance) []entities.TranscriptSegment {
	out := make([]entities.TranscriptSegment, 0, len(utterances))
	for _, u := range utterances {
		out = append(out, entities.TranscriptSegment{
			Text:       deref(u.Text),
			StartTime:  float64(deref(u.Start)) / 1000,
			EndTime:    float64(deref(u.End)) / 1000,
			Confidence: deref(u.Confidence),
		})
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

var _ analysis.Transcriber = (*Transcriber)(nil)
