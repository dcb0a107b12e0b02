package presenter

import (
	"github.com/johnquangdev/interview-coach/internal/adapter/dto/coaching"
	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// ToCreateSessionResponse converts a baseline verdict to the session creation reply
func ToCreateSessionResponse(resp *entities.CoachingResponse) *coaching.CreateSessionResponse {
	if resp == nil {
		return nil
	}
	return &coaching.CreateSessionResponse{
		SessionID: resp.SessionID,
		State:     resp.State,
		Tip:       resp.Tip,
		Subtitle:  resp.Subtitle,
		TTSText:   resp.TTSText,
	}
}

// ToCoachingResponse guarantees a non-null highlights array on the wire
func ToCoachingResponse(resp *entities.CoachingResponse) *entities.CoachingResponse {
	if resp == nil {
		return nil
	}
	out := resp.Clone()
	if out.TranscriptHighlights == nil {
		out.TranscriptHighlights = []string{}
	}
	return &out
}
