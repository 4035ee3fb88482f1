package llm

import "time"

// This file centralizes constants shared across the provider clients
// to avoid redeclaration errors.
const (
	defaultTimeout    = 60 * time.Second
	defaultMaxTokens  = 4096
	maxRetries        = 3
	initialRetryDelay = 2 * time.Second
)
