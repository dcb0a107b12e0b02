package analysis

import (
	"context"
	"io"
	"time"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// JobStatus is the normalized status of a provider job
type JobStatus string

const (
	JobInProgress JobStatus = "IN_PROGRESS"
	JobSucceeded  JobStatus = "SUCCEEDED"
	JobFailed     JobStatus = "FAILED"
)

// MediaStore holds uploaded interview media
type MediaStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignedPutURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Bucket() string
}

// FaceDetectionResult is one poll of a face detection job
type FaceDetectionResult struct {
	Status  JobStatus
	Faces   []entities.FaceObservation
	Message string
}

// FaceDetector runs asynchronous face detection on a stored video
type FaceDetector interface {
	StartFaceDetection(ctx context.Context, bucket, key string) (string, error)
	GetFaceDetection(ctx context.Context, jobID string) (*FaceDetectionResult, error)
}

// TranscriptionResult is one poll of a transcription job
type TranscriptionResult struct {
	Status   JobStatus
	Text     string
	Segments []entities.TranscriptSegment
	Message  string
}

// Transcriber runs asynchronous speech transcription on a media URL
type Transcriber interface {
	StartTranscription(ctx context.Context, mediaURL string) (string, error)
	GetTranscription(ctx context.Context, jobID string) (*TranscriptionResult, error)
}

// TextGenerator produces one coaching line for a prompt
type TextGenerator interface {
	GenerateCoachingLine(ctx context.Context, prompt string) (string, error)
}
