package coaching

import (
	"math"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// Scoring weights. Changing any of them changes the scoring contract.
const (
	confidencePositivityWeight = 0.4
	confidenceEngagementWeight = 0.2
	confidenceFluencyWeight    = 0.2
	confidenceEnergyWeight     = 0.1
	confidenceSpeechWeight     = 0.1

	anxietyFillerWeight     = 0.35
	anxietyDisengageWeight  = 0.25
	anxietyPitchWeight      = 0.2
	anxietyLowEnergyWeight  = 0.1
	anxietySentimentWeight  = 0.1
	energyBoost             = 0.1
	pitchVarianceBaseline   = 0.5
	energyBaseline          = 0.5
	defaultSpeechConfidence = 0.7
)

// ComputeScores reduces a signal snapshot to confidence and anxiety, both in [0,1]
func ComputeScores(s *entities.SignalSnapshot) entities.CoachingScore {
	speechConfidence := defaultSpeechConfidence
	if s.SpeechConfidence != nil {
		speechConfidence = *s.SpeechConfidence
	}

	confidence := confidencePositivityWeight*s.Facial.Positivity +
		confidenceEngagementWeight*s.Facial.Engagement +
		confidenceFluencyWeight*(1-s.Voice.FillerRatio) +
		confidenceEnergyWeight*math.Min(s.Voice.Energy+energyBoost, 1) +
		confidenceSpeechWeight*speechConfidence

	anxiety := anxietyFillerWeight*s.Voice.FillerRatio +
		anxietyDisengageWeight*(1-s.Facial.Engagement) +
		anxietyPitchWeight*math.Max(s.Voice.PitchVariance-pitchVarianceBaseline, 0) +
		anxietyLowEnergyWeight*math.Max(energyBaseline-s.Voice.Energy, 0) +
		anxietySentimentWeight*sentimentPenalty(s.SentimentScore)

	return entities.NewCoachingScore(confidence, anxiety)
}

// sentimentPenalty is a step function over the sentiment score; absence counts as mildly neutral
func sentimentPenalty(score *float64) float64 {
	switch {
	case score == nil:
		return 0.05
	case *score >= 0.2:
		return 0
	case *score >= 0:
		return 0.05
	case *score >= -0.4:
		return 0.1
	default:
		return 0.15
	}
}
