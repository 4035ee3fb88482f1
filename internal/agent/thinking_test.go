package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-rs/prompt-agent/internal/api"
	"github.com/arvind-rs/prompt-agent/internal/session"
)

func TestParseThinkingJSON_PlainArray(t *testing.T) {
	steps, err := parseThinkingJSON(`[{"step": "A", "thought": "B", "icon": "C"}]`)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "A", steps[0].Step)
	assert.Equal(t, "B", steps[0].Thought)
}

func TestParseThinkingJSON_StripsMarkdownFence(t *testing.T) {
	raw := "```json\n[{\"step\": \"A\", \"thought\": \"B\", \"icon\": \"C\"}]\n```"
	steps, err := parseThinkingJSON(raw)
	require.NoError(t, err)
	assert.Len(t, steps, 1)

	raw = "```\n[{\"step\": \"A\", \"thought\": \"B\", \"icon\": \"C\"}]\n```"
	steps, err = parseThinkingJSON(raw)
	require.NoError(t, err)
	assert.Len(t, steps, 1)
}

func TestParseThinkingJSON_RejectsGarbage(t *testing.T) {
	_, err := parseThinkingJSON("sorry, I can't do JSON today")
	assert.Error(t, err)

	_, err = parseThinkingJSON("[]")
	assert.Error(t, err)
}

// notJSONGenerator returns unparsable text for every call, including the
// thinking call, so generateThinking degrades to the rule-based fallback.
func notJSONGenerator() func(string, string, int) (string, error) {
	return func(string, string, int) (string, error) {
		return "not json", nil
	}
}

func TestFallbackThinking_OptimizationGetsDomainSteps(t *testing.T) {
	gen := &stubGenerator{generate: notJSONGenerator()}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)

	steps := a.generateThinking(context.Background(), "write a python function", "", api.Settings{}, IntentPromptOptimization)

	require.GreaterOrEqual(t, len(steps), 4)
	assert.Equal(t, "Understanding", steps[0].Step)
	assert.Equal(t, "Intent Analysis", steps[1].Step)
	assert.Equal(t, "Domain Detection", steps[2].Step)
	assert.Contains(t, steps[2].Thought, "Coding")
	assert.Equal(t, "Generating", steps[len(steps)-1].Step)
}

func TestFallbackThinking_ConversationIsShort(t *testing.T) {
	gen := &stubGenerator{generate: notJSONGenerator()}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)

	steps := a.generateThinking(context.Background(), "hi", "", api.Settings{}, IntentConversation)

	assert.Len(t, steps, 3)
	assert.Contains(t, steps[1].Thought, "friendly conversation")
}

func TestFallbackThinking_TruncatesLongInput(t *testing.T) {
	gen := &stubGenerator{generate: notJSONGenerator()}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)

	long := ""
	for i := 0; i < 40; i++ {
		long += "chatter "
	}
	steps := a.generateThinking(context.Background(), long, "", api.Settings{}, IntentConversation)
	assert.Contains(t, steps[0].Thought, "...")
}
