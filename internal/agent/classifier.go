package agent

import "strings"

// Intent is the classifier's verdict on what the user wants.
type Intent string

const (
	IntentConversation       Intent = "conversation"
	IntentQuestion           Intent = "question"
	IntentPromptOptimization Intent = "prompt_optimization"
	IntentHybrid             Intent = "hybrid"
	IntentGuided             Intent = "guided"
)

// Classifier routes raw input to a response strategy through a strictly
// ordered rule cascade. The rule ORDER is the contract: greetings beat
// casual patterns beat life questions beat keyword scoring beat the length
// heuristic. First match wins.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify runs the cascade. contextText is attached file content; its mere
// presence implies optimization intent once the pattern rules have passed.
func (c *Classifier) Classify(userInput, contextText string) Intent {
	text := strings.ToLower(strings.TrimSpace(userInput))

	// Rule 1: greetings.
	for _, g := range greetings {
		if text == g || strings.HasPrefix(text, g) {
			return IntentConversation
		}
	}

	// Rule 2: casual chatter.
	for _, pattern := range casualPatterns {
		if pattern.MatchString(text) {
			return IntentConversation
		}
	}

	// Rule 3: life/philosophy questions.
	for _, pattern := range lifePatterns {
		if pattern.MatchString(text) {
			return IntentQuestion
		}
	}

	// Rule 4: keyword scoring.
	promptScore := 0
	for _, kw := range promptKeywords {
		if strings.Contains(text, kw) {
			promptScore++
		}
	}
	techScore := 0
	for _, kw := range techKeywords {
		if strings.Contains(text, kw) {
			techScore++
		}
	}

	// Rule 5: any explicit prompt-related signal.
	if promptScore >= 1 {
		return IntentPromptOptimization
	}
	// Rule 6: clearly technical with multiple signals.
	if techScore >= 2 {
		return IntentPromptOptimization
	}
	// Rule 7: an attachment implies optimization intent.
	if contextText != "" {
		return IntentPromptOptimization
	}
	// Rule 8: short messages without tech signal are conversation.
	if len(strings.Fields(text)) < 15 && techScore == 0 {
		return IntentConversation
	}

	// Ambiguous input defaults to conversation rather than hybrid; the
	// hybrid strategy stays reachable through explicit intent values.
	return IntentConversation
}
