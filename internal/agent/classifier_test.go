package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Greetings(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{"hi", "Hello there!", "hey, quick thing", "good morning"} {
		assert.Equal(t, IntentConversation, c.Classify(input, ""), "input: %s", input)
	}
}

func TestClassifier_GreetingBeatsPromptKeyword(t *testing.T) {
	c := NewClassifier()

	// The cascade is ordered: a greeting prefix wins even when the message
	// also carries an optimization keyword.
	assert.Equal(t, IntentConversation, c.Classify("hi, can you optimize my prompt?", ""))
}

func TestClassifier_CasualPatterns(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{"thanks a lot", "ok sounds good", "lol that was funny", "tell me a joke"} {
		assert.Equal(t, IntentConversation, c.Classify(input, ""), "input: %s", input)
	}
}

func TestClassifier_LifeQuestions(t *testing.T) {
	c := NewClassifier()

	for _, input := range []string{
		"what is the meaning of life",
		"who are you",
		"i feel lost these days",
		"how should i deal with stress",
	} {
		assert.Equal(t, IntentQuestion, c.Classify(input, ""), "input: %s", input)
	}
}

func TestClassifier_PromptKeywordWins(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, IntentPromptOptimization, c.Classify("optimize my request for better results please", ""))
	assert.Equal(t, IntentPromptOptimization, c.Classify("turn this idea into an ai prompt", ""))
}

func TestClassifier_TwoTechSignals(t *testing.T) {
	c := NewClassifier()

	// One tech keyword alone in a short message is conversation; two flip
	// to optimization.
	assert.Equal(t, IntentConversation, c.Classify("my database is slow", ""))
	assert.Equal(t, IntentPromptOptimization, c.Classify("my database query script is slow", ""))
}

func TestClassifier_AttachmentImpliesOptimization(t *testing.T) {
	c := NewClassifier()

	assert.Equal(t, IntentConversation, c.Classify("take a look at my notes", ""))
	assert.Equal(t, IntentPromptOptimization, c.Classify("take a look at my notes", "attached file content"))
}

func TestClassifier_LongAmbiguousDefaultsToConversation(t *testing.T) {
	c := NewClassifier()

	long := "yesterday we went hiking near the lake and the weather turned so quickly that everyone ended up soaked before lunch even started"
	assert.Equal(t, IntentConversation, c.Classify(long, ""))
}

func TestClassifier_Deterministic(t *testing.T) {
	c := NewClassifier()

	for i := 0; i < 10; i++ {
		assert.Equal(t, IntentPromptOptimization, c.Classify("write a prompt for code review", ""))
	}
}
