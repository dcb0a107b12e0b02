package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnalysisStatus is the status of a media analysis
type AnalysisStatus string

const (
	AnalysisStatusCompleted AnalysisStatus = "completed"
)

// EmotionType is an emotion label reported by face detection
type EmotionType string

const (
	EmotionHappy     EmotionType = "HAPPY"
	EmotionCalm      EmotionType = "CALM"
	EmotionFear      EmotionType = "FEAR"
	EmotionConfused  EmotionType = "CONFUSED"
	EmotionSad       EmotionType = "SAD"
	EmotionAngry     EmotionType = "ANGRY"
	EmotionSurprised EmotionType = "SURPRISED"
	EmotionDisgusted EmotionType = "DISGUSTED"
)

// EmotionSample is one emotion confidence (0-100) for one face in one frame
type EmotionSample struct {
	Type       EmotionType `json:"type"`
	Confidence float64     `json:"confidence"`
}

// FaceObservation is a detected face at a point in the video
type FaceObservation struct {
	TimestampMS int64           `json:"timestamp_ms"`
	Emotions    []EmotionSample `json:"emotions"`
}

// FacialAnalysis is the session-level reduction of face detection results
type FacialAnalysis struct {
	Engagement  float64            `json:"engagement"`
	Positivity  float64            `json:"positivity"`
	AnxietyHint float64            `json:"anxiety_hint"`
	Confidence  float64            `json:"confidence"`
	Emotions    map[string]float64 `json:"emotions"`
}

// TranscriptAnalysis is the lexical analysis of a full transcript
type TranscriptAnalysis struct {
	FullText    string              `json:"full_text"`
	FillerRatio float64             `json:"filler_ratio"`
	FillerHits  int                 `json:"filler_hits"`
	MumbleScore float64             `json:"mumble_score"`
	Segments    []TranscriptSegment `json:"segments"`
}

// CoachingAdvice is synthesized only when a transcript is available
type CoachingAdvice struct {
	Tip             string   `json:"tip"`
	ConfidenceScore float64  `json:"confidence_score"`
	AnxietyScore    float64  `json:"anxiety_score"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisReport is the result of analyzing one media file.
// Nil sections mean that channel produced no data.
type AnalysisReport struct {
	ID                 string              `json:"analysis_id"`
	FileKey            string              `json:"file_key"`
	Status             AnalysisStatus      `json:"status"`
	FacialAnalysis     *FacialAnalysis     `json:"facial_analysis"`
	TranscriptAnalysis *TranscriptAnalysis `json:"transcript_analysis"`
	CoachingAdvice     *CoachingAdvice     `json:"coaching_advice"`
	ProcessingTimeMS   float64             `json:"processing_time_ms"`
	CreatedAt          time.Time           `json:"created_at"`
}

// AnalysisRecord is the persisted form of an AnalysisReport
type AnalysisRecord struct {
	ID                 uuid.UUID                               `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FileKey            string                                  `json:"file_key" gorm:"type:text;not null;index"`
	Status             AnalysisStatus                          `json:"status" gorm:"type:varchar(50);not null"`
	FacialAnalysis     datatypes.JSONType[*FacialAnalysis]     `json:"facial_analysis" gorm:"type:jsonb"`
	TranscriptAnalysis datatypes.JSONType[*TranscriptAnalysis] `json:"transcript_analysis" gorm:"type:jsonb"`
	CoachingAdvice     datatypes.JSONType[*CoachingAdvice]     `json:"coaching_advice" gorm:"type:jsonb"`
	ProcessingTimeMS   float64                                 `json:"processing_time_ms"`
	CreatedAt          time.Time                               `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (AnalysisRecord) TableName() string {
	return "interview_analyses"
}

// NewAnalysisRecord converts a report for storage
func NewAnalysisRecord(report *AnalysisReport) (*AnalysisRecord, error) {
	id, err := uuid.Parse(report.ID)
	if err != nil {
		return nil, err
	}
	return &AnalysisRecord{
		ID:                 id,
		FileKey:            report.FileKey,
		Status:             report.Status,
		FacialAnalysis:     datatypes.NewJSONType(report.FacialAnalysis),
		TranscriptAnalysis: datatypes.NewJSONType(report.TranscriptAnalysis),
		CoachingAdvice:     datatypes.NewJSONType(report.CoachingAdvice),
		ProcessingTimeMS:   report.ProcessingTimeMS,
		CreatedAt:          report.CreatedAt,
	}, nil
}

// Report converts a stored record back to a report
func (r *AnalysisRecord) Report() *AnalysisReport {
	return &AnalysisReport{
		ID:                 r.ID.String(),
		FileKey:            r.FileKey,
		Status:             r.Status,
		FacialAnalysis:     r.FacialAnalysis.Data(),
		TranscriptAnalysis: r.TranscriptAnalysis.Data(),
		CoachingAdvice:     r.CoachingAdvice.Data(),
		ProcessingTimeMS:   r.ProcessingTimeMS,
		CreatedAt:          r.CreatedAt,
	}
}
