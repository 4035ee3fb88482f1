package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-rs/prompt-agent/internal/api"
	"github.com/arvind-rs/prompt-agent/internal/llm"
	"github.com/arvind-rs/prompt-agent/internal/session"
)

// stubGenerator routes on the system prompt so one stub can serve thinking,
// conversation, and optimization calls in a single ProcessMessage run.
type stubGenerator struct {
	generate func(systemPrompt, userMessage string, maxTokens int) (string, error)
	calls    []string
}

func (s *stubGenerator) Generate(_ context.Context, systemPrompt, userMessage string, maxTokens int) (string, error) {
	s.calls = append(s.calls, systemPrompt)
	return s.generate(systemPrompt, userMessage, maxTokens)
}

var _ llm.TextGenerator = (*stubGenerator)(nil)

const stubThinkingJSON = `[{"step": "Understanding", "thought": "ok", "icon": "🧠"}]`

// answerByPrompt returns canned text per strategy and valid JSON for the
// thinking call.
func answerByPrompt(answer string) func(string, string, int) (string, error) {
	return func(systemPrompt, _ string, _ int) (string, error) {
		if strings.Contains(systemPrompt, "internal reasoning engine") {
			return stubThinkingJSON, nil
		}
		return answer, nil
	}
}

func newTestAgent(gen *stubGenerator) *Agent {
	return New(gen, session.NewMemoryStore(time.Hour), nil)
}

func TestProcessMessage_EmptyInputRejected(t *testing.T) {
	a := newTestAgent(&stubGenerator{generate: answerByPrompt("x")})

	_, err := a.ProcessMessage(context.Background(), &api.MessageRequest{UserInput: "   "})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestProcessMessage_Conversation(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("Hey! Nice to hear from you.")}
	a := newTestAgent(gen)

	resp, err := a.ProcessMessage(context.Background(), &api.MessageRequest{UserInput: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "conversation", resp.ResponseType)
	assert.Equal(t, string(IntentConversation), resp.Intent)
	assert.Equal(t, 85, resp.QualityScore)
	assert.Equal(t, "Hey! Nice to hear from you.", resp.Response)
	assert.Empty(t, resp.Suggestions)
	assert.NotEmpty(t, resp.Thinking)
}

func TestProcessMessage_ConversationFailureIsErrorTyped(t *testing.T) {
	gen := &stubGenerator{generate: func(systemPrompt, _ string, _ int) (string, error) {
		if strings.Contains(systemPrompt, "internal reasoning engine") {
			return stubThinkingJSON, nil
		}
		return "", &llm.ProviderError{Provider: "anthropic", Kind: llm.KindAuth, Err: assert.AnError}
	}}
	a := newTestAgent(gen)

	resp, err := a.ProcessMessage(context.Background(), &api.MessageRequest{UserInput: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "error", resp.ResponseType)
	assert.Equal(t, 0, resp.QualityScore)
	assert.Contains(t, resp.Response, "anthropic auth error")
	assert.Contains(t, resp.Suggestions, "Check API key configuration")
}

func TestProcessMessage_WisdomQuestion(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("Meaning grows from what you give attention to.")}
	a := newTestAgent(gen)

	resp, err := a.ProcessMessage(context.Background(), &api.MessageRequest{UserInput: "what is the meaning of life"})
	require.NoError(t, err)

	assert.Equal(t, "wisdom", resp.ResponseType)
	assert.Equal(t, string(IntentQuestion), resp.Intent)
	assert.Equal(t, 90, resp.QualityScore)
	assert.Equal(t, "life_wisdom", resp.Domain)
	assert.Len(t, resp.Suggestions, 3)
}

func TestProcessMessage_WisdomFallbackOnFailure(t *testing.T) {
	gen := &stubGenerator{generate: func(systemPrompt, _ string, _ int) (string, error) {
		if strings.Contains(systemPrompt, "internal reasoning engine") {
			return stubThinkingJSON, nil
		}
		return "", llm.ErrProviderUnavailable
	}}
	a := newTestAgent(gen)

	resp, err := a.ProcessMessage(context.Background(), &api.MessageRequest{UserInput: "what is the meaning of life"})
	require.NoError(t, err)

	assert.Equal(t, "wisdom", resp.ResponseType)
	assert.Equal(t, 75, resp.QualityScore)
	assert.Contains(t, resp.Response, "profound question")
}

func TestProcessMessage_Optimization(t *testing.T) {
	optimized := "**Task:** Build the thing\n**Requirements:**\n**Output Format:**\n**Context:** x"
	gen := &stubGenerator{generate: func(systemPrompt, _ string, _ int) (string, error) {
		switch {
		case strings.Contains(systemPrompt, "internal reasoning engine"):
			return stubThinkingJSON, nil
		case strings.Contains(systemPrompt, "prompt engineering expert"):
			return "tip one\ntip two\ntip three\ntip four", nil
		default:
			return optimized, nil
		}
	}}
	a := newTestAgent(gen)

	resp, err := a.ProcessMessage(context.Background(), &api.MessageRequest{
		UserInput: "Write a Python function to reverse a linked list, optimize the prompt for me",
	})
	require.NoError(t, err)

	assert.Equal(t, "prompt_optimization", resp.ResponseType)
	assert.Equal(t, string(IntentPromptOptimization), resp.Intent)
	assert.Equal(t, optimized, resp.OptimizedPrompt)
	assert.Equal(t, DomainCoding, resp.Domain)
	assert.Equal(t, "code_generation", resp.TaskType)
	assert.GreaterOrEqual(t, resp.QualityScore, 0)
	assert.LessOrEqual(t, resp.QualityScore, 100)
	assert.Len(t, resp.Suggestions, 3)
	assert.Equal(t, true, resp.Metadata["ai_optimized"])
	assert.Equal(t, "python", resp.Metadata["detected_language"])
}

func TestProcessMessage_OptimizationTemplateFallback(t *testing.T) {
	gen := &stubGenerator{generate: func(systemPrompt, _ string, _ int) (string, error) {
		if strings.Contains(systemPrompt, "internal reasoning engine") {
			return stubThinkingJSON, nil
		}
		return "", &llm.ProviderError{Provider: "gemini", Kind: llm.KindQuota, Err: assert.AnError}
	}}
	a := newTestAgent(gen)

	resp, err := a.ProcessMessage(context.Background(), &api.MessageRequest{
		UserInput: "create a prompt to debug my python script error",
		Settings:  api.Settings{TargetAI: "Claude", ExpertiseLevel: "Beginner"},
	})
	require.NoError(t, err)

	assert.Equal(t, "prompt_optimization", resp.ResponseType)
	assert.NotEmpty(t, resp.OptimizedPrompt)
	assert.Contains(t, resp.OptimizedPrompt, "**Task:**")
	assert.Contains(t, resp.Response, "AI optimization unavailable")
	assert.Equal(t, false, resp.Metadata["ai_optimized"])
	assert.LessOrEqual(t, len(resp.Suggestions), 3)
}

func TestProcessMessage_HybridAttachesOptimizedPrompt(t *testing.T) {
	gen := &stubGenerator{generate: func(systemPrompt, _ string, _ int) (string, error) {
		switch {
		case strings.Contains(systemPrompt, "internal reasoning engine"):
			return stubThinkingJSON, nil
		case strings.Contains(systemPrompt, "prompt engineering expert"):
			return "tip", nil
		case strings.Contains(systemPrompt, "most appropriate way"):
			return "Here's how I'd approach it.", nil
		default:
			return "**Task:** optimized", nil
		}
	}}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)

	resp := a.smartResponse(context.Background(), "help me build a parser", "", api.Settings{}, nil)

	assert.Equal(t, "hybrid", resp.ResponseType)
	assert.Equal(t, "Here's how I'd approach it.", resp.Response)
	assert.Equal(t, "**Task:** optimized", resp.OptimizedPrompt)
}

func TestProcessMessage_SmartWithoutTaskVerbStaysSmart(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("General thoughts.")}
	a := newTestAgent(gen)

	resp := a.smartResponse(context.Background(), "summarize your view on testing", "", api.Settings{}, nil)

	assert.Equal(t, "smart", resp.ResponseType)
	assert.Empty(t, resp.OptimizedPrompt)
	assert.Len(t, resp.Suggestions, 3)
}

func TestOptimize_LegacyEndpointShape(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("**Task:** legacy optimized prompt with plenty of words to score")}
	a := newTestAgent(gen)

	resp, err := a.Optimize(context.Background(), &api.OptimizeRequest{
		UserInput: "write an api endpoint in python",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OptimizedPrompt)
	assert.NotEmpty(t, resp.Domain)
	assert.NotEmpty(t, resp.TaskType)
	assert.LessOrEqual(t, len(resp.Suggestions), 3)

	_, err = a.Optimize(context.Background(), &api.OptimizeRequest{UserInput: " "})
	assert.ErrorIs(t, err, ErrEmptyInput)
}
