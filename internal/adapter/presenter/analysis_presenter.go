package presenter

import (
	"time"

	"github.com/johnquangdev/interview-coach/internal/adapter/dto/analysis"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	analysisUsecase "github.com/johnquangdev/interview-coach/internal/usecase/analysis"
)

// ToAnalysisResponse converts an analysis report to its wire form
func ToAnalysisResponse(report *entities.AnalysisReport) *analysis.AnalysisResponse {
	if report == nil {
		return nil
	}
	return &analysis.AnalysisResponse{
		AnalysisID:         report.ID,
		FileKey:            report.FileKey,
		Status:             string(report.Status),
		FacialAnalysis:     report.FacialAnalysis,
		TranscriptAnalysis: report.TranscriptAnalysis,
		CoachingAdvice:     report.CoachingAdvice,
		ProcessingTimeMS:   report.ProcessingTimeMS,
		CreatedAt:          report.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToUploadURLResponse converts a presigned upload target
func ToUploadURLResponse(target *analysisUsecase.UploadTarget) *analysis.UploadURLResponse {
	if target == nil {
		return nil
	}
	return &analysis.UploadURLResponse{
		UploadURL: target.UploadURL,
		FileKey:   target.FileKey,
		Bucket:    target.Bucket,
		ExpiresIn: target.ExpiresIn,
	}
}
