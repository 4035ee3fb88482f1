// Package agent implements the message-processing core: intent
// classification, input analysis, the response strategies, and the guided
// interview flow. The HTTP layer hands it a request and gets back a fully
// assembled response; nothing in here knows about transport.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/arvind-rs/prompt-agent/internal/api"
	"github.com/arvind-rs/prompt-agent/internal/cache"
	"github.com/arvind-rs/prompt-agent/internal/llm"
	"github.com/arvind-rs/prompt-agent/internal/session"
	"github.com/arvind-rs/prompt-agent/internal/templates"
)

// ErrEmptyInput is returned when the message contains no usable text.
var ErrEmptyInput = errors.New("user input is empty")

// Agent routes each message through thinking generation, intent
// classification, and the matching response strategy.
type Agent struct {
	generator  llm.TextGenerator
	sessions   session.Store
	prompts    *cache.ResponseCache
	analyzer   *Analyzer
	classifier *Classifier
}

// New wires an Agent. prompts may be nil to run without response caching.
func New(generator llm.TextGenerator, sessions session.Store, prompts *cache.ResponseCache) *Agent {
	return &Agent{
		generator:  generator,
		sessions:   sessions,
		prompts:    prompts,
		analyzer:   NewAnalyzer(),
		classifier: NewClassifier(),
	}
}

// ProcessMessage is the main entry point. It validates the input, builds the
// thinking trail, classifies intent, and dispatches to a strategy. Strategy
// failures are reported inside the response rather than as errors; the error
// return covers input validation only.
func (a *Agent) ProcessMessage(ctx context.Context, req *api.MessageRequest) (*api.MessageResponse, error) {
	userInput := strings.TrimSpace(req.UserInput)
	if userInput == "" {
		return nil, ErrEmptyInput
	}

	contextText := req.FileContent
	settings := req.Settings

	intent := a.classifier.Classify(userInput, contextText)
	thinking := a.generateThinking(ctx, userInput, contextText, settings, intent)

	if settings.Mode == "guided" {
		domain := orDefault(settings.Domain, DomainCoding)
		return a.guidedExpertFlow(ctx, req.SessionID, userInput, contextText, settings, thinking, domain), nil
	}

	var resp *api.MessageResponse
	switch intent {
	case IntentPromptOptimization:
		resp = a.optimizePrompt(ctx, userInput, contextText, settings, thinking)
	case IntentQuestion:
		resp = a.answerQuestion(ctx, userInput, thinking)
	case IntentHybrid:
		resp = a.smartResponse(ctx, userInput, contextText, settings, thinking)
	default:
		resp = a.haveConversation(ctx, userInput, thinking)
	}
	resp.Intent = string(intent)
	return resp, nil
}

// Optimize serves the legacy direct endpoint: it skips the intent cascade
// and thinking trail and runs the optimizer alone.
func (a *Agent) Optimize(ctx context.Context, req *api.OptimizeRequest) (*api.OptimizeResponse, error) {
	userInput := strings.TrimSpace(req.UserInput)
	if userInput == "" {
		return nil, ErrEmptyInput
	}

	resp := a.optimizePrompt(ctx, userInput, req.FileContent, req.Settings, nil)
	return &api.OptimizeResponse{
		OptimizedPrompt: resp.OptimizedPrompt,
		QualityScore:    resp.QualityScore,
		Domain:          resp.Domain,
		TaskType:        resp.TaskType,
		Suggestions:     resp.Suggestions,
		Metadata:        resp.Metadata,
	}, nil
}

const conversationSystemPrompt = `You are a friendly and intelligent AI assistant. You enjoy natural conversations with humans.

GUIDELINES:
- For simple greetings (hi, hello, hey, good morning): Keep it brief and warm (1-2 sentences)
- For actual questions or conversation: Respond naturally and thoughtfully
- Be personable, warm, and engaging like a good friend
- DON'T list your capabilities unless specifically asked "what can you do?"
- DON'T say things like "I'm here to help with X, Y, Z..." in greetings
- Match the user's energy and tone

You can discuss any topic - life, philosophy, ideas, jokes, or just chat casually. Be genuine and conversational.`

// haveConversation handles casual chat. A provider failure is surfaced to
// the caller as an error-typed response, never papered over with canned
// text, so a misconfigured API key is visible immediately.
func (a *Agent) haveConversation(ctx context.Context, userInput string, thinking []api.ThinkingStep) *api.MessageResponse {
	message, err := a.generator.Generate(ctx, conversationSystemPrompt, userInput, 500)
	if err != nil {
		log.Printf("❌ Conversation generation failed: %v", err)
		kind := errorKindName(err)
		return &api.MessageResponse{
			Response:     fmt.Sprintf("I encountered an error connecting to my AI brain: %s. Please check the API configuration.", kind),
			ResponseType: "error",
			QualityScore: 0,
			Domain:       "error",
			Suggestions:  []string{"Check API key configuration", "Restart the backend server"},
			Thinking:     thinking,
			Metadata:     map[string]any{"error": err.Error(), "error_type": kind},
		}
	}

	return &api.MessageResponse{
		Response:     message,
		ResponseType: "conversation",
		QualityScore: 85,
		Domain:       "conversation",
		Suggestions:  []string{},
		Thinking:     thinking,
		Metadata:     map[string]any{"mood": "friendly"},
	}
}

const wisdomSystemPrompt = `You are a wise and thoughtful AI assistant.
Answer with wisdom, empathy, and insight.
Be genuine and thoughtful - draw from philosophy, psychology, and human experience.
Don't be preachy, just be real and helpful.
Provide a thoughtful, genuine response that could actually help or enlighten someone.
Keep it conversational but meaningful. Around 2-4 paragraphs.`

// answerQuestion handles life and philosophy questions. This strategy keeps
// a gentle canned fallback since a reflective non-answer is still a valid
// reply to an open question.
func (a *Agent) answerQuestion(ctx context.Context, userInput string, thinking []api.ThinkingStep) *api.MessageResponse {
	message, err := a.generator.Generate(ctx, wisdomSystemPrompt, userInput, 2048)
	if err != nil {
		log.Printf("⚠️ Wisdom generation failed: %v", err)
		return &api.MessageResponse{
			Response:     "That's a profound question. While I'd love to share my thoughts, let me reflect on it. What draws you to ask this?",
			ResponseType: "wisdom",
			QualityScore: 75,
			Domain:       "life_wisdom",
			Suggestions:  []string{"Tell me more about what's on your mind"},
			Thinking:     thinking,
			Metadata:     map[string]any{"error": err.Error()},
		}
	}

	return &api.MessageResponse{
		Response:     message,
		ResponseType: "wisdom",
		QualityScore: 90,
		Domain:       "life_wisdom",
		Suggestions: []string{
			"Feel free to explore this topic further",
			"I'm happy to discuss more deeply",
			"What aspects resonate with you?",
		},
		Thinking: thinking,
		Metadata: map[string]any{"topic": "life_wisdom", "depth": "thoughtful"},
	}
}

const smartSystemPrompt = `You are an intelligent AI assistant that helps users in the most appropriate way.
Analyze what the user needs and respond appropriately:
- If they need help with a task, guide them
- If they're asking for information, provide it
- If they want to create an AI prompt, help them formulate it
- If they just want to chat, be conversational
Respond naturally and helpfully. Be concise but thorough.`

// smartResponse is the hybrid strategy: answer naturally, and when the
// input carries a task verb, also run the optimizer and attach its prompt.
func (a *Agent) smartResponse(ctx context.Context, userInput, contextText string, settings api.Settings, thinking []api.ThinkingStep) *api.MessageResponse {
	userMessage := userInput
	if contextText != "" {
		userMessage += "\n\nAdditional context: " + truncate(contextText, 500)
	}

	message, err := a.generator.Generate(ctx, smartSystemPrompt, userMessage, 2048)
	if err != nil {
		log.Printf("⚠️ Smart response failed, falling back to optimization: %v", err)
		return a.optimizePrompt(ctx, userInput, contextText, settings, thinking)
	}

	lower := strings.ToLower(userInput)
	for _, kw := range taskVerbKeywords {
		if strings.Contains(lower, kw) {
			result := a.optimizePrompt(ctx, userInput, contextText, settings, thinking)
			result.Response = message
			result.ResponseType = "hybrid"
			return result
		}
	}

	return &api.MessageResponse{
		Response:     message,
		ResponseType: "smart",
		QualityScore: 85,
		Domain:       DomainGeneral,
		Suggestions: []string{
			"I can help optimize this into an AI prompt",
			"Feel free to ask follow-up questions",
			"Would you like me to elaborate?",
		},
		Thinking: thinking,
		Metadata: map[string]any{"approach": "intelligent_hybrid"},
	}
}

const optimizeSystemPromptFormat = `You are an expert AI prompt engineer. Your task is to transform user ideas into highly optimized, powerful prompts.

TARGET AI MODEL: %s
EXPERTISE LEVEL: %s
OUTPUT LANGUAGE: %s

Your job is to:
1. Understand what the user wants to achieve
2. Create a comprehensive, well-structured prompt optimized for %[1]s
3. Include clear instructions, context, constraints, and expected output format
4. Tailor vocabulary and complexity for %[2]s level
5. Apply prompt engineering best practices (chain-of-thought, few-shot examples if helpful, clear delimiters)

IMPORTANT: Output ONLY the optimized prompt itself. Do not include explanations, meta-commentary, or notes about the prompt. The output should be ready to copy-paste directly into %[1]s.

For %[1]s, consider these best practices:
- ChatGPT: Use markdown formatting, system/user role separation, be explicit
- Claude: Leverage long context, use XML tags for structure, be nuanced
- Gemini: Use clear sections, conversational but professional
- Llama/Mistral: Use instruction format with [INST] tags
- Copilot: Code-focused with clear comments`

// optimizePrompt is the core strategy: analyze, generate through the
// provider, score, and suggest. A provider failure degrades to the offline
// template engine so optimization always produces a prompt.
func (a *Agent) optimizePrompt(ctx context.Context, userInput, contextText string, settings api.Settings, thinking []api.ThinkingStep) *api.MessageResponse {
	analysis := a.analyzer.Analyze(userInput, contextText, orDefault(settings.Domain, "auto"))

	targetAI := orDefault(settings.TargetAI, "ChatGPT (GPT-4)")
	expertise := orDefault(settings.ExpertiseLevel, "Professional")
	outputLanguage := orDefault(settings.Language, "English")

	cacheKey := cache.Key(strings.Join([]string{userInput, contextText, targetAI, expertise, outputLanguage}, "\x1f"))
	if cached, ok := a.prompts.Get(ctx, cacheKey); ok {
		qualityScore := scorePrompt(cached, analysis)
		return &api.MessageResponse{
			OptimizedPrompt: cached,
			Response:        optimizationSummary(targetAI, expertise),
			ResponseType:    "prompt_optimization",
			QualityScore:    qualityScore,
			Domain:          analysis.Domain,
			TaskType:        analysis.TaskType,
			Suggestions:     heuristicSuggestions(analysis, qualityScore),
			Thinking:        thinking,
			Metadata:        optimizationMetadata(analysis, targetAI, expertise, true, map[string]any{"cached": true}),
		}
	}

	systemPrompt := fmt.Sprintf(optimizeSystemPromptFormat, targetAI, expertise, outputLanguage)
	userMessage := "Transform this into an optimized AI prompt:\n\n" + userInput
	if contextText != "" {
		userMessage += "\n\nAdditional context/file content:\n" + truncate(contextText, 2000)
	}

	log.Printf("🚀 Optimizing prompt for target=%s expertise=%s", targetAI, expertise)
	optimized, err := a.generator.Generate(ctx, systemPrompt, userMessage, 4096)
	if err != nil {
		log.Printf("❌ Provider optimization failed, using templates: %v", err)
		return a.templateFallback(userInput, contextText, settings, thinking, analysis, err)
	}
	log.Printf("✅ Generated optimized prompt (%d chars)", len(optimized))

	a.prompts.Set(ctx, cacheKey, optimized)

	qualityScore := scorePrompt(optimized, analysis)
	suggestions := a.generateSuggestions(ctx, userInput, optimized, analysis)

	return &api.MessageResponse{
		OptimizedPrompt: optimized,
		Response:        optimizationSummary(targetAI, expertise),
		ResponseType:    "prompt_optimization",
		QualityScore:    qualityScore,
		Domain:          analysis.Domain,
		TaskType:        analysis.TaskType,
		Suggestions:     suggestions,
		Thinking:        thinking,
		Metadata:        optimizationMetadata(analysis, targetAI, expertise, true, nil),
	}
}

// templateFallback renders the deterministic offline prompt when the
// provider is unavailable.
func (a *Agent) templateFallback(userInput, contextText string, settings api.Settings, thinking []api.ThinkingStep, analysis AnalysisResult, cause error) *api.MessageResponse {
	targetAI := orDefault(settings.TargetAI, "ChatGPT (GPT-4)")
	expertise := orDefault(settings.ExpertiseLevel, "Professional")

	optimized := templates.Render(analysis.TaskType, templates.Params{
		UserRequest:    userInput,
		Context:        contextText,
		Language:       analysis.DetectedLanguage,
		TargetAI:       targetAI,
		ExpertiseLevel: expertise,
		OutputLanguage: orDefault(settings.Language, "English"),
	})

	qualityScore := scorePrompt(optimized, analysis)

	return &api.MessageResponse{
		OptimizedPrompt: optimized,
		Response: fmt.Sprintf("I've created a prompt for **%s** using templates (AI optimization unavailable: %s). Please check the API configuration.",
			targetAI, errorKindName(cause)),
		ResponseType: "prompt_optimization",
		QualityScore: qualityScore,
		Domain:       analysis.Domain,
		TaskType:     analysis.TaskType,
		Suggestions:  heuristicSuggestions(analysis, qualityScore),
		Thinking:     thinking,
		Metadata:     optimizationMetadata(analysis, targetAI, expertise, false, map[string]any{"error": cause.Error()}),
	}
}

const suggestionsSystemPrompt = `You are a prompt engineering expert. Generate 3 brief, actionable suggestions for how the user could further improve their prompt or get better results. Each suggestion should be one concise sentence. Return only the 3 suggestions, one per line, no numbering or bullets.`

// generateSuggestions asks the provider for improvement tips; a failure
// falls back to the deterministic heuristics.
func (a *Agent) generateSuggestions(ctx context.Context, originalInput, optimizedPrompt string, analysis AnalysisResult) []string {
	userMessage := fmt.Sprintf("Original request: %s\n\nOptimized prompt: %s", originalInput, truncate(optimizedPrompt, 1000))

	raw, err := a.generator.Generate(ctx, suggestionsSystemPrompt, userMessage, 500)
	if err != nil {
		log.Printf("⚠️ Suggestions generation failed: %v", err)
		return heuristicSuggestions(analysis, 80)
	}

	var suggestions []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			suggestions = append(suggestions, line)
		}
	}
	if len(suggestions) == 0 {
		return heuristicSuggestions(analysis, 80)
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}

func optimizationSummary(targetAI, expertise string) string {
	return fmt.Sprintf("I've analyzed your request and created an optimized prompt specifically designed for **%s** at **%s** level. The prompt incorporates best practices for prompt engineering including clear structure, appropriate context, and explicit output expectations.", targetAI, expertise)
}

func optimizationMetadata(analysis AnalysisResult, targetAI, expertise string, aiOptimized bool, extra map[string]any) map[string]any {
	metadata := map[string]any{
		"complexity":        analysis.Complexity,
		"confidence":        analysis.Confidence,
		"key_topics":        analysis.KeyTopics,
		"detected_language": analysis.DetectedLanguage,
		"target_ai":         targetAI,
		"expertise_level":   expertise,
		"ai_optimized":      aiOptimized,
	}
	for k, v := range extra {
		metadata[k] = v
	}
	return metadata
}

// errorKindName names a failure for user-facing error text without leaking
// provider internals.
func errorKindName(err error) string {
	var pe *llm.ProviderError
	if errors.As(err, &pe) {
		return fmt.Sprintf("%s %s error", pe.Provider, pe.Kind)
	}
	if errors.Is(err, llm.ErrProviderUnavailable) {
		return "provider unavailable"
	}
	return "unexpected error"
}
