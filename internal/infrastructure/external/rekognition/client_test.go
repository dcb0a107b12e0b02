package rekognition

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	"github.com/johnquangdev/interview-coach/internal/usecase/analysis"
)

type fakeAPI struct {
	startInput *rekognition.StartFaceDetectionInput
	startErr   error
	pages      []*rekognition.GetFaceDetectionOutput
	tokens     []string
}

func (f *fakeAPI) StartFaceDetection(_ context.Context, in *rekognition.StartFaceDetectionInput, _ ...func(*rekognition.Options)) (*rekognition.StartFaceDetectionOutput, error) {
	f.startInput = in
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &rekognition.StartFaceDetectionOutput{JobId: aws.String("face-job-1")}, nil
}

func (f *fakeAPI) GetFaceDetection(_ context.Context, in *rekognition.GetFaceDetectionInput, _ ...func(*rekognition.Options)) (*rekognition.GetFaceDetectionOutput, error) {
	f.tokens = append(f.tokens, aws.ToString(in.NextToken))
	if len(f.pages) == 0 {
		return nil, errors.New("no more pages")
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func detection(ts int64, emotions map[types.EmotionName]float32) types.FaceDetection {
	var list []types.Emotion
	for name, conf := range emotions {
		list = append(list, types.Emotion{Type: name, Confidence: aws.Float32(conf)})
	}
	return types.FaceDetection{Timestamp: ts, Face: &types.FaceDetail{Emotions: list}}
}

func TestStartFaceDetection(t *testing.T) {
	api := &fakeAPI{}
	c := NewClientWithAPI(api, nil)

	id, err := c.StartFaceDetection(context.Background(), "interviews-bucket", "interviews/a.mp4")
	if err != nil || id != "face-job-1" {
		t.Fatalf("id=%q err=%v", id, err)
	}
	obj := api.startInput.Video.S3Object
	if aws.ToString(obj.Bucket) != "interviews-bucket" || aws.ToString(obj.Name) != "interviews/a.mp4" {
		t.Fatalf("s3 object=%+v", obj)
	}
	if api.startInput.FaceAttributes != types.FaceAttributesAll {
		t.Fatalf("face attributes=%v", api.startInput.FaceAttributes)
	}

	api.startErr = errors.New("AccessDeniedException")
	if _, err := c.StartFaceDetection(context.Background(), "b", "k"); err == nil {
		t.Fatal("expected start error")
	}
}

func TestGetFaceDetectionStatuses(t *testing.T) {
	api := &fakeAPI{pages: []*rekognition.GetFaceDetectionOutput{
		{JobStatus: types.VideoJobStatusInProgress},
		{JobStatus: types.VideoJobStatusFailed, StatusMessage: aws.String("unsupported codec")},
	}}
	c := NewClientWithAPI(api, nil)

	res, err := c.GetFaceDetection(context.Background(), "face-job-1")
	if err != nil || res.Status != analysis.JobInProgress {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	res, err = c.GetFaceDetection(context.Background(), "face-job-1")
	if err != nil || res.Status != analysis.JobFailed || res.Message != "unsupported codec" {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if _, err := c.GetFaceDetection(context.Background(), "face-job-1"); err == nil {
		t.Fatal("expected api error")
	}
}

func TestGetFaceDetectionCollectsPages(t *testing.T) {
	api := &fakeAPI{pages: []*rekognition.GetFaceDetectionOutput{
		{
			JobStatus: types.VideoJobStatusSucceeded,
			NextToken: aws.String("page-2"),
			Faces: []types.FaceDetection{
				detection(0, map[types.EmotionName]float32{types.EmotionNameHappy: 80, types.EmotionNameCalm: 20}),
				{Timestamp: 100},
			},
		},
		{
			JobStatus: types.VideoJobStatusSucceeded,
			Faces: []types.FaceDetection{
				detection(200, map[types.EmotionName]float32{types.EmotionNameFear: 30}),
			},
		},
	}}
	c := NewClientWithAPI(api, nil)

	res, err := c.GetFaceDetection(context.Background(), "face-job-1")
	if err != nil {
		t.Fatalf("GetFaceDetection: %v", err)
	}
	if res.Status != analysis.JobSucceeded || len(res.Faces) != 2 {
		t.Fatalf("res=%+v", res)
	}
	if len(api.tokens) != 2 || api.tokens[0] != "" || api.tokens[1] != "page-2" {
		t.Fatalf("page tokens=%q", api.tokens)
	}
	if res.Faces[1].TimestampMS != 200 || res.Faces[1].Emotions[0].Type != entities.EmotionFear || res.Faces[1].Emotions[0].Confidence != 30 {
		t.Fatalf("second face=%+v", res.Faces[1])
	}

	facial := analysis.ReduceEmotions(res.Faces)
	if facial == nil || facial.Emotions["happy"] != 80 {
		t.Fatalf("reduced=%+v", facial)
	}
}
