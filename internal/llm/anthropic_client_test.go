package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicClient_RequiresAPIKey(t *testing.T) {
	_, err := NewAnthropicClient("", "claude-sonnet-4-20250514")
	assert.Error(t, err)

	client, err := NewAnthropicClient("sk-test", "claude-sonnet-4-20250514")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestParseAnthropicResponse(t *testing.T) {
	body := []byte(`{"content": [{"type": "text", "text": "Hello "}, {"type": "text", "text": "world"}]}`)
	text, err := parseAnthropicResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", text)
}

func TestParseAnthropicResponse_SkipsNonTextBlocks(t *testing.T) {
	body := []byte(`{"content": [{"type": "tool_use"}, {"type": "text", "text": "only this"}]}`)
	text, err := parseAnthropicResponse(body)
	require.NoError(t, err)
	assert.Equal(t, "only this", text)
}

func TestParseAnthropicResponse_Errors(t *testing.T) {
	_, err := parseAnthropicResponse([]byte(`{"content": []}`))
	require.Error(t, err)
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, KindBadResp, pe.Kind)

	_, err = parseAnthropicResponse([]byte(`not json`))
	assert.Error(t, err)
}

func TestClassifyStatus(t *testing.T) {
	assert.Equal(t, KindAuth, classifyStatus(401))
	assert.Equal(t, KindAuth, classifyStatus(403))
	assert.Equal(t, KindQuota, classifyStatus(429))
	assert.Equal(t, KindNetwork, classifyStatus(500))
	assert.Equal(t, KindNetwork, classifyStatus(503))
}

func TestProviderError_Unwrap(t *testing.T) {
	inner := assert.AnError
	err := &ProviderError{Provider: "anthropic", Kind: KindNetwork, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "anthropic provider error (network)")
}
