package entities

// CoachingScore is the pair of bounded scalars every verdict is derived from
type CoachingScore struct {
	Confidence float64 `json:"confidence"`
	Anxiety    float64 `json:"anxiety"`
}

// NewCoachingScore clamps both values into [0,1]
func NewCoachingScore(confidence, anxiety float64) CoachingScore {
	return CoachingScore{
		Confidence: Clamp01(confidence),
		Anxiety:    Clamp01(anxiety),
	}
}

// Value returns the score field selected by m
func (s CoachingScore) Value(m Metric) float64 {
	switch m {
	case MetricConfidence:
		return s.Confidence
	case MetricAnxiety:
		return s.Anxiety
	default:
		return 0
	}
}

// WithAnxiety returns a copy with anxiety replaced and clamped
func (s CoachingScore) WithAnxiety(anxiety float64) CoachingScore {
	s.Anxiety = Clamp01(anxiety)
	return s
}

// CoachingResponse is the verdict returned to the live coaching UI
type CoachingResponse struct {
	SessionID            string        `json:"session_id"`
	State                string        `json:"state"`
	Scores               CoachingScore `json:"scores"`
	Subtitle             string        `json:"subtitle"`
	Tip                  string        `json:"tip"`
	TTSText              string        `json:"tts_text"`
	TranscriptHighlights []string      `json:"transcript_highlights"`
	LatencyMS            *float64      `json:"latency_ms,omitempty"`
}

// Clone returns a deep copy so callers can update fields without aliasing
func (r CoachingResponse) Clone() CoachingResponse {
	out := r
	if r.TranscriptHighlights != nil {
		out.TranscriptHighlights = append([]string(nil), r.TranscriptHighlights...)
	}
	if r.LatencyMS != nil {
		latency := *r.LatencyMS
		out.LatencyMS = &latency
	}
	return out
}

// Clamp01 bounds v into [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
