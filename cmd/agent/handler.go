package main

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arvind-rs/prompt-agent/internal/agent"
	"github.com/arvind-rs/prompt-agent/internal/api"
	"github.com/arvind-rs/prompt-agent/internal/extract"
	"github.com/arvind-rs/prompt-agent/internal/session"
	"github.com/arvind-rs/prompt-agent/internal/store"
	"github.com/arvind-rs/prompt-agent/internal/voice"
)

// maxUploadBytes bounds file and audio uploads.
const maxUploadBytes = 10 << 20

type AgentHandler struct {
	agent       *agent.Agent
	sessions    session.Store
	history     *store.Repository
	transcriber voice.Transcriber
	config      *AppConfig
}

func NewAgentHandler(a *agent.Agent, sessions session.Store, history *store.Repository, transcriber voice.Transcriber, config *AppConfig) *AgentHandler {
	return &AgentHandler{
		agent:       a,
		sessions:    sessions,
		history:     history,
		transcriber: transcriber,
		config:      config,
	}
}

// HandleChat is the main conversational endpoint.
func (h *AgentHandler) HandleChat(c *gin.Context) {
	startTime := time.Now()
	var req api.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.applyDefaults(&req.Settings)
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	log.Printf("--- New Message (Session: %s, Mode: %s, Input: '%.30s...') ---",
		req.SessionID, req.Settings.Mode, req.UserInput)

	resp, err := h.agent.ProcessMessage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, agent.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_input must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if resp.Metadata == nil {
		resp.Metadata = map[string]any{}
	}
	resp.Metadata["session_id"] = req.SessionID
	resp.Metadata["latency_ms"] = time.Since(startTime).Milliseconds()

	h.persistOptimization(c, req.UserInput, resp)

	c.JSON(http.StatusOK, resp)
}

// HandleOptimize is the legacy direct-optimization endpoint: no intent
// cascade, straight to the optimizer.
func (h *AgentHandler) HandleOptimize(c *gin.Context) {
	var req api.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	h.applyDefaults(&req.Settings)

	resp, err := h.agent.Optimize(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, agent.ErrEmptyInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_input must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.history != nil {
		if _, err := h.history.CreateSession(c.Request.Context(), resp.Domain, resp.TaskType, req.UserInput, resp.QualityScore, resp.OptimizedPrompt); err != nil {
			log.Printf("⚠️ Persisting optimization failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleFileExtract accepts a multipart upload and returns its extracted
// context text.
func (h *AgentHandler) HandleFileExtract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required: " + err.Error()})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opening upload: " + err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reading upload: " + err.Error()})
		return
	}

	content, category := extract.Extract(data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	c.JSON(http.StatusOK, gin.H{
		"filename":  fileHeader.Filename,
		"category":  category,
		"content":   content,
		"size":      fileHeader.Size,
		"extracted": true,
	})
}

// HandleVoiceTranscribe accepts an audio upload and returns its transcript.
func (h *AgentHandler) HandleVoiceTranscribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio field is required: " + err.Error()})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "audio exceeds 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "opening upload: " + err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reading upload: " + err.Error()})
		return
	}

	transcript, err := h.transcriber.Transcribe(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	switch {
	case errors.Is(err, voice.ErrUnrecognized):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not recognize any speech in the audio", "success": false})
	case errors.Is(err, voice.ErrServiceUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error(), "success": false})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "success": false})
	default:
		c.JSON(http.StatusOK, gin.H{"transcription": transcript, "success": true})
	}
}

type sessionResetRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// HandleSessionReset clears a guided session's history.
func (h *AgentHandler) HandleSessionReset(c *gin.Context) {
	var req sessionResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.sessions.Clear(c.Request.Context(), req.SessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset", "session_id": req.SessionID})
}

// HandleRecentPrompts lists recently persisted optimization sessions.
func (h *AgentHandler) HandleRecentPrompts(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusOK, gin.H{"sessions": []any{}})
		return
	}

	limit := h.config.Agent.History.RecentLimit
	if limit <= 0 {
		limit = 20
	}
	sessions, err := h.history.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// HandleHealth reports liveness and build info.
func (h *AgentHandler) HandleHealth(c *gin.Context) {
	info := GetBuildInfo()
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"version":    info.Version,
		"commit":     info.GitCommit,
		"go_version": info.GoVersion,
	})
}

// applyDefaults fills empty settings from config.yaml.
func (h *AgentHandler) applyDefaults(s *api.Settings) {
	defaults := h.config.Agent.Defaults
	if s.TargetAI == "" {
		s.TargetAI = defaults.TargetAI
	}
	if s.ExpertiseLevel == "" {
		s.ExpertiseLevel = defaults.ExpertiseLevel
	}
	if s.Language == "" {
		s.Language = defaults.Language
	}
}

// persistOptimization saves optimization results best-effort; failures are
// logged, never surfaced to the caller.
func (h *AgentHandler) persistOptimization(c *gin.Context, rawPrompt string, resp *api.MessageResponse) {
	if h.history == nil || resp.OptimizedPrompt == "" {
		return
	}
	if _, err := h.history.CreateSession(c.Request.Context(), resp.Domain, resp.TaskType, rawPrompt, resp.QualityScore, resp.OptimizedPrompt); err != nil {
		log.Printf("⚠️ Persisting optimization failed: %v", err)
	}
}
