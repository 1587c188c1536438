package server

// ChatRequest is one inbound chat turn. At most one image and one audio
// attachment may accompany the message text.
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`

	ImageBase64   string `json:"image_base64,omitempty"`
	ImageMIMEType string `json:"image_mime_type,omitempty"` // e.g. "image/png"

	AudioBase64   string `json:"audio_base64,omitempty"`
	AudioMIMEType string `json:"audio_mime_type,omitempty"` // e.g. "audio/wav"
}

// SessionState summarizes the committed session after a turn.
type SessionState struct {
	HistoryLength       int      `json:"history_length"`
	ActiveFlowStateKeys []string `json:"active_flow_state_keys"`
}

// ChatResponse is the reply to a chat turn.
type ChatResponse struct {
	BotResponse  string       `json:"bot_response"`
	SessionState SessionState `json:"session_state"`
}

// ErrorResponse is the body of a non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}
