// Package llm contains the text-generation provider clients the agent calls
// out to, behind a single interface, along with the typed error taxonomy the
// response strategies branch on.
package llm

import "context"

// TextGenerator is the universal interface every provider client implements.
// The agent core only ever sees this contract; provider specifics (auth, wire
// format, retries) stay inside each client.
type TextGenerator interface {
	// Generate performs a blocking generation call. systemPrompt sets the
	// persona/instructions, userMessage is the turn content. maxTokens
	// caps the output; values <= 0 fall back to the client default.
	Generate(ctx context.Context, systemPrompt, userMessage string, maxTokens int) (string, error)
}
