package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a provider failure so strategies can decide between
// retrying, degrading to templates, or surfacing the error to the caller.
type ErrorKind string

const (
	KindAuth    ErrorKind = "auth"
	KindQuota   ErrorKind = "quota"
	KindNetwork ErrorKind = "network"
	KindBadResp ErrorKind = "bad_response"
)

// ErrProviderUnavailable marks a service outage (5xx after retries are
// exhausted). Handlers map it to a 503-equivalent.
var ErrProviderUnavailable = errors.New("text generation provider unavailable")

// ProviderError wraps any failure from a generation call with its provider
// name and classification. It is retryable only for KindNetwork.
type ProviderError struct {
	Provider string
	Kind     ErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// classifyStatus maps an HTTP status code to an error kind.
func classifyStatus(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status == 429:
		return KindQuota
	default:
		return KindNetwork
	}
}
