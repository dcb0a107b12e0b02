package config

// Snapshot is the configuration view exposed over HTTP. It carries no secrets.
type Snapshot struct {
	Environment            string   `json:"environment"`
	ExternalAPIsEnabled    bool     `json:"external_apis_enabled"`
	TextGenModel           string   `json:"textgen_model"`
	TextGenConfigured      bool     `json:"textgen_configured"`
	StorageConfigured      bool     `json:"storage_configured"`
	StorageBucket          string   `json:"storage_bucket,omitempty"`
	AWSRegion              string   `json:"aws_region,omitempty"`
	TranscriptionEnabled   bool     `json:"transcription_enabled"`
	CoachingRulesPath      string   `json:"coaching_rules_path"`
	FillerWords            []string `json:"filler_words"`
	LowConfidenceThreshold float64  `json:"low_confidence_threshold"`
	HighAnxietyThreshold   float64  `json:"high_anxiety_threshold"`
	SessionBackend         string   `json:"session_backend"`
	SessionTTLSeconds      int64    `json:"session_ttl_seconds"`
	AnalysisHistory        bool     `json:"analysis_history_enabled"`
	ErrorReporting         bool     `json:"error_reporting_enabled"`
}

// Snapshot returns the sanitized configuration
func (c *Config) Snapshot() Snapshot {
	return Snapshot{
		Environment:            c.Server.Environment,
		ExternalAPIsEnabled:    c.TextGen.EnableExternalAPIs,
		TextGenModel:           c.TextGen.Model,
		TextGenConfigured:      c.TextGen.APIKey != "",
		StorageConfigured:      c.StorageEnabled(),
		StorageBucket:          c.Storage.BucketName,
		AWSRegion:              c.Storage.Region,
		TranscriptionEnabled:   c.Transcription.APIKey != "",
		CoachingRulesPath:      c.Coaching.RulesPath,
		FillerWords:            append([]string(nil), c.Coaching.FillerWords...),
		LowConfidenceThreshold: c.Coaching.LowConfidenceThreshold,
		HighAnxietyThreshold:   c.Coaching.HighAnxietyThreshold,
		SessionBackend:         c.Session.Backend,
		SessionTTLSeconds:      int64(c.Session.TTL.Seconds()),
		AnalysisHistory:        c.Database.Enabled,
		ErrorReporting:         c.Monitoring.SentryDSN != "",
	}
}
