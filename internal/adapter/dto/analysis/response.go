package analysis

import "github.com/johnquangdev/interview-coach/internal/domain/entities"

// UploadURLResponse is a presigned upload location
type UploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileKey   string `json:"file_key"`
	Bucket    string `json:"bucket"`
	ExpiresIn int    `json:"expires_in"`
}

// AnalysisResponse is a media analysis report. Sections a provider could not produce are null.
type AnalysisResponse struct {
	AnalysisID         string                       `json:"analysis_id"`
	FileKey            string                       `json:"file_key"`
	Status             string                       `json:"status"`
	FacialAnalysis     *entities.FacialAnalysis     `json:"facial_analysis"`
	TranscriptAnalysis *entities.TranscriptAnalysis `json:"transcript_analysis"`
	CoachingAdvice     *entities.CoachingAdvice     `json:"coaching_advice"`
	ProcessingTimeMS   float64                      `json:"processing_time_ms"`
	CreatedAt          string                       `json:"created_at"`
}
