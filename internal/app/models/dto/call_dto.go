package dto

// CallStatusResponse reports the tracked state of a voice call.
type CallStatusResponse struct {
	SessionID string `json:"sessionId"`
	Status    string `json:"status"`
	Known     bool   `json:"known"`
}
