package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/arvind-rs/prompt-agent/internal/api"
)

const thinkingSystemPrompt = `You are the assistant's internal reasoning engine. Analyze the user's input and generate a concise thinking process.

Output exactly 4-5 short thinking steps in JSON array format. Each step should have:
- "step": A short title (2-3 words)
- "thought": Your actual analysis (1-2 sentences, be specific to THIS input)
- "icon": An appropriate emoji

Be genuinely analytical - don't use generic placeholder text. Actually analyze what the user wants.

Example format:
[
  {"step": "Understanding Request", "thought": "The user wants to build a REST API for user authentication with JWT tokens.", "icon": "🧠"},
  {"step": "Identifying Domain", "thought": "This is a backend development task involving security and web services.", "icon": "🎯"},
  {"step": "Complexity Assessment", "thought": "Medium complexity - requires knowledge of JWT, database integration, and security best practices.", "icon": "📊"},
  {"step": "Strategy Planning", "thought": "I'll create a prompt that covers token generation, validation, refresh logic, and secure storage.", "icon": "💡"},
  {"step": "Optimizing Output", "thought": "Structuring for ChatGPT with clear sections for implementation steps and code examples.", "icon": "✨"}
]

Return ONLY the JSON array, no other text.`

// generateThinking asks the provider for a per-request reasoning trail. The
// trail is cosmetic, so any failure degrades to the deterministic rule-based
// steps instead of surfacing an error.
func (a *Agent) generateThinking(ctx context.Context, userInput, contextText string, settings api.Settings, intent Intent) []api.ThinkingStep {
	userMessage := "User input: " + truncate(userInput, 500)
	if contextText != "" {
		userMessage += "\n\nAttached context: " + truncate(contextText, 300) + "..."
	}
	userMessage += fmt.Sprintf("\n\nSettings: Target AI=%s, Level=%s",
		orDefault(settings.TargetAI, "ChatGPT"), orDefault(settings.ExpertiseLevel, "Professional"))

	raw, err := a.generator.Generate(ctx, thinkingSystemPrompt, userMessage, 800)
	if err != nil {
		log.Printf("⚠️ Thinking generation failed, using rule-based fallback: %v", err)
		return a.fallbackThinking(userInput, contextText, settings, intent)
	}

	steps, err := parseThinkingJSON(raw)
	if err != nil {
		log.Printf("⚠️ Thinking response unparsable, using rule-based fallback: %v", err)
		return a.fallbackThinking(userInput, contextText, settings, intent)
	}
	return steps
}

// parseThinkingJSON tolerates markdown code fences around the JSON array,
// which models emit despite being told not to.
func parseThinkingJSON(raw string) ([]api.ThinkingStep, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		parts := strings.SplitN(text, "```", 3)
		if len(parts) >= 2 {
			text = parts[1]
		}
		text = strings.TrimPrefix(text, "json")
		text = strings.TrimSpace(text)
	}

	var steps []api.ThinkingStep
	if err := json.Unmarshal([]byte(text), &steps); err != nil {
		return nil, fmt.Errorf("decode thinking steps: %w", err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty thinking steps array")
	}
	return steps, nil
}

var intentDescriptions = map[Intent]string{
	IntentPromptOptimization: "User wants to create or optimize an AI prompt",
	IntentConversation:       "User wants to have a friendly conversation",
	IntentQuestion:           "User is asking a thoughtful question",
	IntentHybrid:             "Multifaceted request requiring comprehensive response",
}

func (a *Agent) fallbackThinking(userInput, contextText string, settings api.Settings, intent Intent) []api.ThinkingStep {
	steps := []api.ThinkingStep{
		{
			Step:    "Understanding",
			Thought: fmt.Sprintf("Analyzing: '%s'", ellipsize(userInput, 80)),
			Icon:    "🧠",
		},
	}

	desc, ok := intentDescriptions[intent]
	if !ok {
		desc = "Processing the request..."
	}
	steps = append(steps, api.ThinkingStep{Step: "Intent Analysis", Thought: desc, Icon: "🔍"})

	if intent == IntentPromptOptimization {
		domain := a.analyzer.detectDomain(userInput, contextText)
		steps = append(steps,
			api.ThinkingStep{
				Step:    "Domain Detection",
				Thought: "Identified domain: " + titleDomain(domain),
				Icon:    "🎯",
			},
			api.ThinkingStep{
				Step:    "Optimization",
				Thought: "Tailoring prompt structure for " + orDefault(settings.TargetAI, "ChatGPT (GPT-4)"),
				Icon:    "🤖",
			},
		)
	}

	return append(steps, api.ThinkingStep{Step: "Generating", Thought: "Crafting the optimal response...", Icon: "✨"})
}

// titleDomain turns "data_science" into "Data Science".
func titleDomain(domain string) string {
	words := strings.Split(domain, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func ellipsize(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
