package dto

// AssistantConfig is the inline assistant definition the browser SDK starts a
// call with.
type AssistantConfig struct {
	PublicKey           string               `json:"publicKey"`
	AssistantID         string               `json:"assistantId,omitempty"`
	Name                string               `json:"name"`
	Model               AssistantModel       `json:"model"`
	Voice               AssistantVoice       `json:"voice"`
	FirstMessage        string               `json:"firstMessage"`
	ServerURL           string               `json:"serverUrl,omitempty"`
	RecordingEnabled    bool                 `json:"recordingEnabled"`
	EndCallFunction     bool                 `json:"endCallFunctionEnabled"`
	BackgroundDenoising bool                 `json:"backgroundDenoisingEnabled"`
	Functions           []FunctionDefinition `json:"functions"`
}

// AssistantModel selects the language model and its system prompt.
type AssistantModel struct {
	Provider    string             `json:"provider"`
	Model       string             `json:"model"`
	Temperature float64            `json:"temperature"`
	MaxTokens   int                `json:"maxTokens"`
	Messages    []AssistantMessage `json:"messages"`
}

// AssistantMessage is a seeded chat message, normally the system prompt.
type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantVoice selects the text-to-speech voice.
type AssistantVoice struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

// FunctionDefinition declares a function the assistant may call.
type FunctionDefinition struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  FunctionParameters `json:"parameters"`
}

// FunctionParameters is the JSON schema of a function's arguments.
type FunctionParameters struct {
	Type       string                       `json:"type"`
	Properties map[string]FunctionParameter `json:"properties"`
	Required   []string                     `json:"required"`
}

// FunctionParameter describes a single argument.
type FunctionParameter struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Enum        []string `json:"enum,omitempty"`
}
