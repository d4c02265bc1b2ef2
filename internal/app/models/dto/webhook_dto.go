package dto

import (
	"encoding/json"
	"strings"
)

// Webhook event types sent by the voice service.
const (
	WebhookTypeFunctionCall = "function-call"
	WebhookTypeCallEnded    = "call-ended"
)

// WebhookRequest is the body the voice service posts to /api/vapi/webhook.
type WebhookRequest struct {
	Type    string          `json:"type"`
	Call    *WebhookCall    `json:"call"`
	Message *WebhookMessage `json:"message"`
}

// WebhookCall describes the call an event belongs to. The trailing fields
// are only filled in on call-ended.
type WebhookCall struct {
	ID                    string   `json:"id"`
	Transcript            string   `json:"transcript"`
	Duration              float64  `json:"duration"`
	CoursesDiscussed      []string `json:"coursesDiscussed"`
	ScholarshipCalculated bool     `json:"scholarshipCalculated"`
}

// WebhookMessage wraps the assistant's function call.
type WebhookMessage struct {
	Type         string        `json:"type,omitempty"`
	FunctionCall *FunctionCall `json:"function_call"`
}

// FunctionCall is a tool invocation by the assistant. Arguments arrive either
// as a JSON-encoded string or as an object; some senders use "parameters".
type FunctionCall struct {
	Name       string          `json:"name"`
	Arguments  json.RawMessage `json:"arguments"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// FunctionArguments are the arguments understood by the assistant functions.
type FunctionArguments struct {
	CourseName string `json:"courseName"`
	Category   string `json:"category"`
}

// DecodeArguments returns the call's arguments. Malformed input yields the
// zero value, which every function treats as "nothing found".
func (f *FunctionCall) DecodeArguments() FunctionArguments {
	var args FunctionArguments
	if f == nil {
		return args
	}
	raw := f.Arguments
	if len(raw) == 0 || string(raw) == "null" {
		raw = f.Parameters
	}
	if len(raw) == 0 {
		return args
	}

	// A JSON string holding the encoded object.
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = json.RawMessage(encoded)
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return FunctionArguments{}
	}
	args.CourseName = strings.TrimSpace(args.CourseName)
	args.Category = strings.TrimSpace(args.Category)
	return args
}

// WebhookResultResponse carries the sentence the assistant should speak.
type WebhookResultResponse struct {
	Result string `json:"result"`
}
