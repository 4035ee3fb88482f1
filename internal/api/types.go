// Package api defines the public request and response types for the prompt
// agent's HTTP boundary. Handlers bind JSON onto these structs and the core
// agent returns them; nothing in here carries behavior.
package api

// Settings carries the caller-selected knobs for a request. All fields are
// optional; the agent substitutes defaults for anything left empty.
type Settings struct {
	// Mode selects between the one-shot pipeline and the multi-turn
	// guided interview. Recognized values: "direct" (default), "guided".
	Mode string `json:"mode,omitempty"`
	// Domain pins the subject-matter bucket. "auto" (default) lets the
	// analyzer detect it from the text.
	Domain string `json:"domain,omitempty"`
	// TargetAI names the downstream model family the optimized prompt is
	// formatted for, e.g. "ChatGPT (GPT-4)", "Claude", "Gemini".
	TargetAI string `json:"target_ai,omitempty"`
	// ExpertiseLevel is one of Beginner, Intermediate, Professional, Expert.
	ExpertiseLevel string `json:"expertise_level,omitempty"`
	// Language is the desired output language of the generated prompt.
	Language string `json:"language,omitempty"`
}

// MessageRequest is the body of POST /api/v1/chat.
type MessageRequest struct {
	UserInput   string   `json:"user_input" binding:"required"`
	FileContent string   `json:"file_content,omitempty"`
	FileType    string   `json:"file_type,omitempty"`
	// SessionID scopes guided-mode conversation state. Generated by the
	// server when empty and echoed back in the response metadata.
	SessionID string   `json:"session_id,omitempty"`
	Settings  Settings `json:"settings"`
}

// ThinkingStep is one entry of the transparency trail exposed to the caller.
type ThinkingStep struct {
	Step    string `json:"step"`
	Thought string `json:"thought"`
	Icon    string `json:"icon"`
}

// MessageResponse is the sole externally visible artifact of a processed
// message. It is assembled once by the agent and never mutated afterwards.
type MessageResponse struct {
	Response     string         `json:"response,omitempty"`
	ResponseType string         `json:"response_type"`
	Intent       string         `json:"intent"`
	Thinking     []ThinkingStep `json:"thinking"`

	// Present only for prompt-optimization results.
	OptimizedPrompt string `json:"optimized_prompt,omitempty"`
	TaskType        string `json:"task_type,omitempty"`

	QualityScore int            `json:"quality_score"`
	Domain       string         `json:"domain"`
	Suggestions  []string       `json:"suggestions"`
	Metadata     map[string]any `json:"metadata"`
}

// OptimizeRequest is the body of the legacy POST /api/v1/optimize endpoint.
type OptimizeRequest struct {
	UserInput   string   `json:"user_input" binding:"required"`
	FileContent string   `json:"file_content,omitempty"`
	FileType    string   `json:"file_type,omitempty"`
	Settings    Settings `json:"settings"`
}

// OptimizeResponse is the trimmed legacy response shape.
type OptimizeResponse struct {
	OptimizedPrompt string         `json:"optimized_prompt"`
	QualityScore    int            `json:"quality_score"`
	Domain          string         `json:"domain"`
	TaskType        string         `json:"task_type"`
	Suggestions     []string       `json:"suggestions"`
	Metadata        map[string]any `json:"metadata"`
}
