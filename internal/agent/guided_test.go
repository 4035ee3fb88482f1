package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvind-rs/prompt-agent/internal/api"
	"github.com/arvind-rs/prompt-agent/internal/session"
)

func guidedRequest(sessionID, input string) *api.MessageRequest {
	return &api.MessageRequest{
		UserInput: input,
		SessionID: sessionID,
		Settings:  api.Settings{Mode: "guided", Domain: DomainCoding},
	}
}

func TestGuidedFlow_WalksQuestionsOneAtATime(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("unused")}
	sessions := session.NewMemoryStore(time.Hour)
	a := New(gen, sessions, nil)
	ctx := context.Background()

	inputs := []string{
		"I want to build something",
		"Python with FastAPI",
		"a REST service for bookings",
		"must handle 1000 rps",
	}
	for step, input := range inputs {
		resp, err := a.ProcessMessage(ctx, guidedRequest("sess-1", input))
		require.NoError(t, err)

		assert.Equal(t, "guided", resp.ResponseType)
		assert.Equal(t, string(IntentGuided), resp.Intent)
		assert.Equal(t, 60+step*10, resp.QualityScore)
		assert.Equal(t, step+1, resp.Metadata["conversation_step"])
		assert.Equal(t, false, resp.Metadata["ready_to_generate"])
		assert.Contains(t, resp.Response, guidedQuestions[DomainCoding][step])
		assert.Equal(t, "Senior Software Architect & Coding Expert", resp.Metadata["expert_role"])
	}

	// All scripted questions asked; the next exchange invites generation.
	resp, err := a.ProcessMessage(ctx, guidedRequest("sess-1", "code with comments please"))
	require.NoError(t, err)
	assert.Contains(t, resp.Response, `Type **"generate"**`)
	assert.Equal(t, true, resp.Metadata["ready_to_generate"])
}

func TestGuidedFlow_GenerateProducesPromptAndClearsSession(t *testing.T) {
	finalPrompt := "You are a senior Python engineer. Build a FastAPI bookings service..."
	gen := &stubGenerator{generate: func(systemPrompt, _ string, _ int) (string, error) {
		if strings.Contains(systemPrompt, "internal reasoning engine") {
			return stubThinkingJSON, nil
		}
		return finalPrompt, nil
	}}
	sessions := session.NewMemoryStore(time.Hour)
	a := New(gen, sessions, nil)
	ctx := context.Background()

	for _, input := range []string{"build me an api", "Python", "bookings service"} {
		_, err := a.ProcessMessage(ctx, guidedRequest("sess-2", input))
		require.NoError(t, err)
	}

	resp, err := a.ProcessMessage(ctx, guidedRequest("sess-2", "generate"))
	require.NoError(t, err)

	assert.Equal(t, "prompt_optimization", resp.ResponseType)
	assert.Equal(t, finalPrompt, resp.OptimizedPrompt)
	assert.Equal(t, 92, resp.QualityScore)
	assert.Equal(t, "conversation", resp.Metadata["generated_from"])
	assert.Len(t, resp.Suggestions, 3)

	// History was cleared: the next message starts the interview over.
	resp, err = a.ProcessMessage(ctx, guidedRequest("sess-2", "another idea"))
	require.NoError(t, err)
	assert.Equal(t, "guided", resp.ResponseType)
	assert.Equal(t, 1, resp.Metadata["conversation_step"])
	assert.Contains(t, resp.Response, "Great! I'd love to help you with that.")
}

func TestGuidedFlow_GenerateTooEarlyKeepsInterviewing(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("unused")}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)
	ctx := context.Background()

	// "generate" on the very first message: fewer than two exchanges, so
	// the interview continues instead of producing a prompt.
	resp, err := a.ProcessMessage(ctx, guidedRequest("sess-3", "generate"))
	require.NoError(t, err)

	assert.Equal(t, "guided", resp.ResponseType)
	assert.Empty(t, resp.OptimizedPrompt)
}

func TestGuidedFlow_SessionsAreIsolated(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("unused")}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)
	ctx := context.Background()

	_, err := a.ProcessMessage(ctx, guidedRequest("alice", "build an api"))
	require.NoError(t, err)
	_, err = a.ProcessMessage(ctx, guidedRequest("alice", "Python"))
	require.NoError(t, err)

	// A different session id starts at step one regardless of alice's state.
	resp, err := a.ProcessMessage(ctx, guidedRequest("bob", "build a scraper"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Metadata["conversation_step"])
}

func TestGuidedFlow_UnknownDomainFallsBackToCoding(t *testing.T) {
	gen := &stubGenerator{generate: answerByPrompt("unused")}
	a := New(gen, session.NewMemoryStore(time.Hour), nil)

	req := &api.MessageRequest{
		UserInput: "help me",
		SessionID: "sess-4",
		Settings:  api.Settings{Mode: "guided", Domain: "underwater-basketweaving"},
	}
	resp, err := a.ProcessMessage(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, resp.Response, guidedQuestions[DomainCoding][0])
}

func TestWantsGeneration(t *testing.T) {
	assert.True(t, wantsGeneration("generate"))
	assert.True(t, wantsGeneration("ok go ahead"))
	assert.True(t, wantsGeneration("please generate it now"))
	assert.False(t, wantsGeneration("what about the schema?"))
}
