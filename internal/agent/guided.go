package agent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/arvind-rs/prompt-agent/internal/api"
	"github.com/arvind-rs/prompt-agent/internal/session"
)

// guidedExpertFlow runs the interview mode: strictly one question per
// exchange, keyed by how many exchanges the session already holds, and no
// prompt generation until the user explicitly asks for it.
func (a *Agent) guidedExpertFlow(ctx context.Context, sessionID, userInput, contextText string, settings api.Settings, thinking []api.ThinkingStep, domain string) *api.MessageResponse {
	expertRole, ok := expertRoles[domain]
	if !ok {
		domain = DomainCoding
		expertRole = expertRoles[DomainCoding]
	}

	history, err := a.sessions.History(ctx, sessionID)
	if err != nil {
		log.Printf("❌ Guided flow: loading session %s failed: %v", sessionID, err)
		return &api.MessageResponse{
			Response:     "I'd love to help! What are you trying to build?",
			ResponseType: "guided",
			QualityScore: 50,
			Domain:       domain,
			Suggestions:  []string{},
			Thinking:     thinking,
			Intent:       string(IntentGuided),
			Metadata:     map[string]any{"error": err.Error(), "conversation_step": 1},
		}
	}

	conversationStep := len(history) / 2
	log.Printf("🧭 Guided mode: domain=%s step=%d history=%d", domain, conversationStep, len(history))

	if wantsGeneration(userInput) && conversationStep >= 2 {
		return a.generateFinalGuidedPrompt(ctx, sessionID, contextText, settings, thinking, domain, history)
	}

	userTurn := session.Turn{Role: session.RoleUser, Content: userInput, Timestamp: time.Now()}

	questions := guidedQuestions[domain]

	var message string
	switch {
	case conversationStep == 0:
		message = "Great! I'd love to help you with that. " + questions[0]
	case conversationStep < len(questions):
		message = "Got it! " + questions[conversationStep]
	default:
		message = "Perfect! I have all the information I need. Type **\"generate\"** and I'll create your optimized prompt!"
	}

	assistantTurn := session.Turn{Role: session.RoleAssistant, Content: message, Timestamp: time.Now()}
	if err := a.sessions.Append(ctx, sessionID, userTurn, assistantTurn); err != nil {
		log.Printf("⚠️ Guided flow: persisting session %s failed: %v", sessionID, err)
	}

	return &api.MessageResponse{
		Response:     message,
		ResponseType: "guided",
		QualityScore: 60 + conversationStep*10,
		Domain:       domain,
		Suggestions:  []string{},
		Thinking:     thinking,
		Intent:       string(IntentGuided),
		Metadata: map[string]any{
			"expert_role":       expertRole,
			"mode":              "guided",
			"conversation_step": conversationStep + 1,
			"ready_to_generate": conversationStep >= len(questions),
		},
	}
}

// wantsGeneration reports whether the user explicitly asked for the final
// prompt. Substring matching keeps multi-word triggers like "go ahead"
// working inside longer sentences.
func wantsGeneration(userInput string) bool {
	text := strings.ToLower(strings.TrimSpace(userInput))
	for _, trigger := range generateTriggers {
		if strings.Contains(text, trigger) {
			return true
		}
	}
	return false
}

// generateFinalGuidedPrompt summarizes the interview and asks the provider
// for the finished prompt, then clears the session so the next message
// starts a fresh interview.
func (a *Agent) generateFinalGuidedPrompt(ctx context.Context, sessionID, contextText string, settings api.Settings, thinking []api.ThinkingStep, domain string, history []session.Turn) *api.MessageResponse {
	recent := history
	if len(recent) > 12 {
		recent = recent[len(recent)-12:]
	}
	var lines []string
	for _, turn := range recent {
		speaker := "Expert"
		if turn.Role == session.RoleUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+turn.Content)
	}

	targetAI := orDefault(settings.TargetAI, "ChatGPT (GPT-4)")
	systemPrompt := fmt.Sprintf(`Based on the conversation below, generate an OPTIMIZED AI PROMPT.

CONVERSATION:
%s

TARGET AI: %s
DOMAIN: %s

Generate a comprehensive, well-structured prompt that incorporates all the information gathered.
The prompt should be ready to use directly in %s.
Output ONLY the prompt, no explanations.`, strings.Join(lines, "\n"), targetAI, titleDomain(domain), targetAI)

	optimized, err := a.generator.Generate(ctx, systemPrompt, "Generate the final optimized prompt now.", 2000)
	if err != nil {
		log.Printf("❌ Guided final prompt generation failed: %v", err)
		return a.optimizePrompt(ctx, "Generate a prompt based on our conversation", contextText, settings, thinking)
	}
	log.Printf("✅ Generated final prompt from guided session (%d chars)", len(optimized))

	if err := a.sessions.Clear(ctx, sessionID); err != nil {
		log.Printf("⚠️ Clearing guided session %s failed: %v", sessionID, err)
	}

	return &api.MessageResponse{
		OptimizedPrompt: optimized,
		Response:        fmt.Sprintf("Based on our conversation, I've crafted an optimized prompt for **%s**. This prompt incorporates all the details we discussed.", targetAI),
		ResponseType:    "prompt_optimization",
		QualityScore:    92,
		Domain:          domain,
		Suggestions: []string{
			"Copy the prompt and use it directly",
			"You can refine specific sections if needed",
			"Start a new guided session for another prompt",
		},
		Thinking: thinking,
		Intent:   string(IntentGuided),
		Metadata: map[string]any{
			"mode":           "guided",
			"generated_from": "conversation",
			"exchanges":      len(history) / 2,
		},
	}
}
