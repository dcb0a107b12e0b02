package coaching

// CreateSessionResponse carries the new session id and its baseline verdict
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
	Tip       string `json:"tip"`
	Subtitle  string `json:"subtitle"`
	TTSText   string `json:"tts_text"`
}
