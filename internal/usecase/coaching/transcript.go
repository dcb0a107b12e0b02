package coaching

import (
	"math"
	"strings"
)

const (
	mumbleFillerWeight = 0.5
	mumblePauseWeight  = 0.05
	longPauseMarker    = "..."
	tokenPunctuation   = ",.?!"
)

// TranscriptStats is the local lexical estimate of unclear speech
type TranscriptStats struct {
	FillerRatio float64 `json:"filler_ratio"`
	FillerHits  int     `json:"filler_hits"`
	MumbleScore float64 `json:"mumble_score"`
}

// AnalyzeTranscript counts whole-token filler words and long-pause markers in text.
// Multi-word fillers never match a single token.
func (f *FillerExtractor) AnalyzeTranscript(text string) TranscriptStats {
	tokens := strings.Fields(strings.ToLower(text))
	total := len(tokens)
	if total == 0 {
		total = 1
	}

	hits := 0
	for _, tok := range tokens {
		if _, ok := f.set[strings.Trim(tok, tokenPunctuation)]; ok {
			hits++
		}
	}
	ratio := float64(hits) / float64(total)
	pauses := strings.Count(text, longPauseMarker)

	return TranscriptStats{
		FillerRatio: ratio,
		FillerHits:  hits,
		MumbleScore: math.Min(1, mumbleFillerWeight*ratio+mumblePauseWeight*float64(pauses)),
	}
}
