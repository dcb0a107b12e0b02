package entities

// FacialMetrics holds face-derived scalars reduced by the browser client
type FacialMetrics struct {
	Engagement       float64  `json:"engagement" validate:"gte=0,lte=1"`
	Positivity       float64  `json:"positivity" validate:"gte=0,lte=1"`
	Microexpressions []string `json:"microexpressions,omitempty"`
}

// VoiceMetrics holds voice-derived scalars reduced by the browser client
type VoiceMetrics struct {
	Loudness      float64 `json:"loudness" validate:"gte=0,lte=1"`
	PitchVariance float64 `json:"pitch_variance" validate:"gte=0,lte=1"`
	SpeechRateWPM float64 `json:"speech_rate_wpm" validate:"gt=0"`
	FillerRatio   float64 `json:"filler_ratio" validate:"gte=0,lte=1"`
	Energy        float64 `json:"energy" validate:"gte=0,lte=1"`
}

// TranscriptSegment is one recognized line of speech
type TranscriptSegment struct {
	Text       string  `json:"text"`
	StartTime  float64 `json:"start_time" validate:"gte=0"`
	EndTime    float64 `json:"end_time" validate:"gte=0"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// SignalSnapshot is one multi-modal sample sent by the client during a session.
// Optional fields are nil when the client did not measure them.
type SignalSnapshot struct {
	Facial           FacialMetrics       `json:"facial"`
	Voice            VoiceMetrics        `json:"voice"`
	Transcript       []TranscriptSegment `json:"transcript" validate:"dive"`
	SentimentScore   *float64            `json:"sentiment_score,omitempty" validate:"omitempty,gte=-1,lte=1"`
	SpeechConfidence *float64            `json:"speech_confidence,omitempty" validate:"omitempty,gte=0,lte=1"`
	LatencyMS        *float64            `json:"latency_ms,omitempty" validate:"omitempty,gte=0"`
}

// TranscriptTexts returns the transcript lines in order
func (s *SignalSnapshot) TranscriptTexts() []string {
	texts := make([]string, 0, len(s.Transcript))
	for _, seg := range s.Transcript {
		texts = append(texts, seg.Text)
	}
	return texts
}
