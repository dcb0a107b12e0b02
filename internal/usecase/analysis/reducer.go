package analysis

import (
	"math"
	"strings"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

var reportedEmotions = []entities.EmotionType{
	entities.EmotionHappy,
	entities.EmotionCalm,
	entities.EmotionFear,
	entities.EmotionConfused,
	entities.EmotionSad,
	entities.EmotionAngry,
	entities.EmotionSurprised,
	entities.EmotionDisgusted,
}

// ReduceEmotions pools the emotion samples of every detected face and divides each
// emotion's summed confidence by the pooled sample count, then derives session-level
// scalars from those shares. It returns nil when no face carried emotion data.
func ReduceEmotions(faces []entities.FaceObservation) *entities.FacialAnalysis {
	sums := make(map[entities.EmotionType]float64)
	samples := 0
	for _, face := range faces {
		for _, e := range face.Emotions {
			sums[e.Type] += e.Confidence
			samples++
		}
	}
	if samples == 0 {
		return nil
	}

	avg := func(t entities.EmotionType) float64 {
		return sums[t] / float64(samples)
	}

	happy, calm := avg(entities.EmotionHappy), avg(entities.EmotionCalm)
	fear, confused := avg(entities.EmotionFear), avg(entities.EmotionConfused)
	sad, angry, disgusted := avg(entities.EmotionSad), avg(entities.EmotionAngry), avg(entities.EmotionDisgusted)
	surprised := avg(entities.EmotionSurprised)

	nervous := fear + confused
	negative := sad + angry + disgusted

	emotions := make(map[string]float64, len(reportedEmotions))
	for _, t := range reportedEmotions {
		emotions[strings.ToLower(string(t))] = round2(avg(t))
	}

	return &entities.FacialAnalysis{
		Engagement:  math.Min(1, (happy+calm+0.5*surprised)/200+0.3),
		Positivity:  entities.Clamp01((happy - 0.5*negative) / 100),
		AnxietyHint: math.Min(1, (nervous+0.3*negative)/100),
		Confidence:  entities.Clamp01((calm + 0.5*happy - 0.5*nervous) / 100),
		Emotions:    emotions,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
