package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/usecase/analysis"
	"github.com/johnquangdev/interview-coach/pkg/config"
)

const pageSize int32 = 1000

// API is the subset of the Rekognition client used for video face detection
type API interface {
	StartFaceDetection(ctx context.Context, params *rekognition.StartFaceDetectionInput, optFns ...func(*rekognition.Options)) (*rekognition.StartFaceDetectionOutput, error)
	GetFaceDetection(ctx context.Context, params *rekognition.GetFaceDetectionInput, optFns ...func(*rekognition.Options)) (*rekognition.GetFaceDetectionOutput, error)
}

// Client runs Rekognition video face detection jobs
type Client struct {
	api    API
	logger *zap.Logger
}

// NewClient builds a Rekognition client with static credentials from storage config
func NewClient(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewClientWithAPI(rekognition.NewFromConfig(awsCfg), logger), nil
}

// NewClientWithAPI wraps an existing API implementation
func NewClientWithAPI(api API, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{api: api, logger: logger}
}

// StartFaceDetection starts a job over the stored video with all face attributes
func (c *Client) StartFaceDetection(ctx context.Context, bucket, key string) (string, error) {
	out, err := c.api.StartFaceDetection(ctx, &rekognition.StartFaceDetectionInput{
		Video: &types.Video{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
		FaceAttributes: types.FaceAttributesAll,
	})
	if err != nil {
		return "", fmt.Errorf("start face detection: %w", err)
	}
	jobID := aws.ToString(out.JobId)
	if jobID == "" {
		return "", fmt.Errorf("start face detection: response carried no job id")
	}
	return jobID, nil
}

// GetFaceDetection reads the job status, collecting every result page once it succeeded
func (c *Client) GetFaceDetection(ctx context.Context, jobID string) (*analysis.FaceDetectionResult, error) {
	input := &rekognition.GetFaceDetectionInput{
		JobId:      aws.String(jobID),
		MaxResults: aws.Int32(pageSize),
	}

	var faces []entities.FaceObservation
	for {
		out, err := c.api.GetFaceDetection(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("get face detection %s: %w", jobID, err)
		}

		switch out.JobStatus {
		case types.VideoJobStatusSucceeded:
		case types.VideoJobStatusFailed:
			return &analysis.FaceDetectionResult{
				Status:  analysis.JobFailed,
				Message: aws.ToString(out.StatusMessage),
			}, nil
		default:
			return &analysis.FaceDetectionResult{Status: analysis.JobInProgress}, nil
		}

		faces = append(faces, observations(out.Faces)...)
		if aws.ToString(out.NextToken) == "" {
			break
		}
		input.NextToken = out.NextToken
	}

	c.logger.Debug("Face detection results collected", zap.String("job_id", jobID), zap.Int("faces", len(faces)))
	return &analysis.FaceDetectionResult{Status: analysis.JobSucceeded, Faces: faces}, nil
}

func observations(detections []types.FaceDetection) []entities.FaceObservation {
	out := make([]entities.FaceObservation, 0, len(detections))
	for _, d := range detections {
		if d.Face == nil || len(d.Face.Emotions) == 0 {
			continue
		}
		emotions := make([]entities.EmotionSample, 0, len(d.Face.Emotions))
		for _, e := range d.Face.Emotions {
			emotions = append(emotions, entities.EmotionSample{
				Type:       entities.EmotionType(e.Type),
				Confidence: float64(aws.ToFloat32(e.Confidence)),
			})
		}
		out = append(out, entities.FaceObservation{
			TimestampMS: d.Timestamp,
			Emotions:    emotions,
		})
	}
	return out
}

var _ analysis.FaceDetector = (*Client)(nil)
