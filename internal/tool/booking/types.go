package booking

// Tool result statuses consumed by the orchestrator's flow transitions.
const (
	StatusFlowInitiated     = "flow_initiated"
	StatusBookingIDReceived = "booking_id_received"
	StatusErrorValue        = "error"
)

// Prompts handed back to the model to guide the next user turn.
const (
	promptAskBookingID = "Please provide your booking ID."
	promptAskNewTime   = "What is the new date and time you'd like? (Please use YYYY-MM-DD HH:MM:SS format, e.g., 2025-12-31 14:30:00)"
)

// InitiateResult is the output of the flow-initiation tool.
type InitiateResult struct {
	Status           string `json:"status"`
	NextActionPrompt string `json:"next_action_prompt"`
}

// ProvideIDRequest carries the booking id supplied by the user.
type ProvideIDRequest struct {
	BookingID string `json:"booking_id" mapstructure:"booking_id"`
}

// ProvideIDResult is the output of the booking-id collection tool.
type ProvideIDResult struct {
	Status           string `json:"status"`
	BookingID        string `json:"booking_id,omitempty"`
	Message          string `json:"message,omitempty"`
	NextActionPrompt string `json:"next_action_prompt,omitempty"`
}

// ConfirmRequest carries the collected booking id and the new time in
// "YYYY-MM-DD HH:MM:SS" format.
type ConfirmRequest struct {
	BookingID string `json:"booking_id" mapstructure:"booking_id"`
	NewTime   string `json:"new_time" mapstructure:"new_time"`
}

// ChangeRequest is the wire payload sent to the downstream booking service.
type ChangeRequest struct {
	BookingID string `json:"booking_id"`
	NewTime   string `json:"new_time"`
}

// ChangeResponse is the downstream service's answer, returned verbatim as
// the confirm tool's result. Success=false covers both application-level
// rejections and (with a descriptive message) transport failures.
type ChangeResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}
