package templates

import "strings"

// TargetFamily identifies the family of the AI model a prompt is being
// shaped for. The display names accepted by ParseTarget are the ones the
// frontend sends; anything unrecognized maps to FamilyGPT4.
type TargetFamily int

const (
	FamilyGPT4 TargetFamily = iota
	FamilyGPT35
	FamilyClaude
	FamilyClaudeOpus
	FamilyGemini
	FamilyGeminiPro
	FamilyLlama
	FamilyMistral
	FamilyCopilot
)

var targetNames = map[string]TargetFamily{
	"ChatGPT (GPT-4)":   FamilyGPT4,
	"ChatGPT (GPT-3.5)": FamilyGPT35,
	"Claude":            FamilyClaude,
	"Claude (Opus)":     FamilyClaudeOpus,
	"Gemini":            FamilyGemini,
	"Gemini Pro":        FamilyGeminiPro,
	"Llama":             FamilyLlama,
	"Mistral":           FamilyMistral,
	"Copilot":           FamilyCopilot,
}

// ParseTarget maps a display name to its family, defaulting to GPT-4.
func ParseTarget(name string) TargetFamily {
	if family, ok := targetNames[name]; ok {
		return family
	}
	return FamilyGPT4
}

// Params carries everything Render needs besides the task type.
type Params struct {
	UserRequest    string
	Context        string
	Language       string // programming language for coding templates
	TargetAI       string // display name, e.g. "Claude (Opus)"
	ExpertiseLevel string // Beginner / Intermediate / Professional / Expert
	OutputLanguage string // natural language for the response, default English
}

// Render produces the full offline-optimized prompt: base template filled
// in, wrapped for the target family, adjusted for expertise, and tagged
// with a response-language instruction when not English.
func Render(taskType string, p Params) string {
	tmpl, ok := baseTemplates[taskType]
	if !ok {
		tmpl = baseTemplates["general_query"]
	}

	context := p.Context
	if context == "" {
		context = "No additional context provided."
	}
	language := capitalize(p.Language)

	content := strings.NewReplacer(
		"{user_request}", p.UserRequest,
		"{context}", context,
		"{language}", language,
	).Replace(tmpl)

	content = wrapForTarget(content, ParseTarget(p.TargetAI))
	content = adjustForExpertise(content, p.ExpertiseLevel)

	if p.OutputLanguage != "" && p.OutputLanguage != "English" {
		content += "\n\n**Important:** Respond entirely in " + p.OutputLanguage + "."
	}
	return content
}

// wrapForTarget applies the target family's framing. The switch is
// exhaustive over the defined families; ParseTarget guarantees the value is
// one of them.
func wrapForTarget(content string, family TargetFamily) string {
	switch family {
	case FamilyGPT4:
		return content + "\n\nPlease structure your response with clear headings and bullet points where appropriate."
	case FamilyGPT35:
		return content + "\n\nKeep your response focused and concise."
	case FamilyClaude:
		return "I'd like your help with the following task.\n\n" + content + "\n\nPlease think through this carefully and provide a thorough response."
	case FamilyClaudeOpus:
		return "I have a complex task that requires careful analysis.\n\n" + content + "\n\nPlease approach this systematically, considering multiple perspectives and edge cases."
	case FamilyGemini:
		return content + "\n\nProvide a comprehensive and well-organized response."
	case FamilyGeminiPro:
		return "Task:\n" + content + "\n\nPlease provide a detailed, professional-quality response with explanations where helpful."
	case FamilyLlama:
		return "[INST] " + content + " [/INST]"
	case FamilyMistral:
		return "<s>[INST] " + content + " [/INST]"
	case FamilyCopilot:
		return "// Task: " + content + "\n// Please provide working code with comments explaining the implementation."
	default:
		return content + "\n\nPlease structure your response with clear headings and bullet points where appropriate."
	}
}

type expertiseConfig struct {
	instruction string
	vocabulary  string
	assumptions string
	examples    string
	prefix      string
}

var expertiseConfigs = map[string]expertiseConfig{
	"Beginner": {
		instruction: "Explain in simple terms that a beginner can understand.",
		vocabulary:  "simple",
		assumptions: "Assume no prior knowledge.",
		examples:    "Include simple examples and analogies.",
		prefix:      "I'm new to this topic. ",
	},
	"Intermediate": {
		instruction: "Provide a balanced explanation suitable for someone with basic knowledge.",
		vocabulary:  "standard technical terms with brief explanations",
		assumptions: "Assume familiarity with basic concepts.",
		examples:    "Include practical examples.",
	},
	"Professional": {
		instruction: "Provide a professional-level response.",
		vocabulary:  "industry-standard terminology",
		assumptions: "Assume professional working knowledge.",
		examples:    "Include production-ready examples where applicable.",
	},
	"Expert": {
		instruction: "Provide an expert-level response with advanced insights.",
		vocabulary:  "advanced technical terminology",
		assumptions: "Assume deep expertise in the field.",
		examples:    "Focus on advanced patterns, optimizations, and trade-offs.",
		prefix:      "As an expert in this field, I need ",
	},
}

// adjustForExpertise appends a response-requirements block keyed to the
// expertise level, and prepends the level's opener unless the target
// wrapper already opens in first person.
func adjustForExpertise(content, expertise string) string {
	cfg, ok := expertiseConfigs[expertise]
	if !ok {
		cfg = expertiseConfigs["Professional"]
		expertise = "Professional"
	}

	var b strings.Builder
	b.WriteString("\n\n**Response Requirements:**")
	b.WriteString("\n- " + cfg.instruction)
	b.WriteString("\n- Use " + cfg.vocabulary)
	b.WriteString("\n- " + cfg.assumptions)

	switch expertise {
	case "Beginner":
		b.WriteString("\n- " + cfg.examples)
		b.WriteString("\n- Avoid jargon or explain it when necessary")
		b.WriteString("\n- Break down complex concepts into digestible parts")
	case "Expert":
		b.WriteString("\n- " + cfg.examples)
		b.WriteString("\n- Discuss performance implications and trade-offs")
		b.WriteString("\n- Include considerations for scale and edge cases")
	}

	if cfg.prefix != "" && !strings.HasPrefix(content, "I'd like") && !strings.HasPrefix(content, "I have") {
		content = cfg.prefix + content
	}
	return content + b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
