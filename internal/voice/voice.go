// Package voice transcribes uploaded audio into text for the chat pipeline.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnrecognized means the service processed the audio but heard nothing
// usable in it.
var ErrUnrecognized = errors.New("speech not recognized")

// ErrServiceUnavailable means the transcription backend could not be
// reached or rejected the request.
var ErrServiceUnavailable = errors.New("transcription service unavailable")

// Transcriber converts audio bytes into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, contentType string) (string, error)
}

const (
	googleSpeechURL = "http://www.google.com/speech-api/v2/recognize"
	defaultTimeout  = 30 * time.Second
)

// GoogleTranscriber uses the free Google Speech API v2 endpoint. Audio must
// be WAV or FLAC; the sample rate is declared in the content type.
type GoogleTranscriber struct {
	apiKey     string
	language   string
	httpClient *http.Client
}

func NewGoogleTranscriber(apiKey, language string) *GoogleTranscriber {
	if language == "" {
		language = "en-US"
	}
	return &GoogleTranscriber{
		apiKey:     apiKey,
		language:   language,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type speechAlternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

type speechResult struct {
	Alternative []speechAlternative `json:"alternative"`
	Final       bool                `json:"final"`
}

type speechResponse struct {
	Result []speechResult `json:"result"`
}

// Transcribe posts the audio and returns the top transcript. The service
// streams one JSON object per line; the first non-empty result wins.
func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, contentType string) (string, error) {
	if len(audio) == 0 {
		return "", ErrUnrecognized
	}
	if contentType == "" {
		contentType = "audio/l16; rate=16000"
	}

	endpoint := fmt.Sprintf("%s?client=chromium&lang=%s&key=%s",
		googleSpeechURL, url.QueryEscape(t.language), url.QueryEscape(t.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("creating transcription request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrServiceUnavailable, err)
	}

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var parsed speechResponse
		if err := json.Unmarshal([]byte(line), &parsed); err != nil {
			continue
		}
		for _, result := range parsed.Result {
			for _, alt := range result.Alternative {
				if transcript := strings.TrimSpace(alt.Transcript); transcript != "" {
					return transcript, nil
				}
			}
		}
	}
	return "", ErrUnrecognized
}
