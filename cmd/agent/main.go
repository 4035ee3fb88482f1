package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/arvind-rs/prompt-agent/internal/agent"
	"github.com/arvind-rs/prompt-agent/internal/cache"
	"github.com/arvind-rs/prompt-agent/internal/llm"
	"github.com/arvind-rs/prompt-agent/internal/session"
	"github.com/arvind-rs/prompt-agent/internal/store"
	"github.com/arvind-rs/prompt-agent/internal/voice"
)

// main is the composition root: it loads configuration, initializes all
// services, injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Prompt Agent | Version: %s | Commit: %s", buildInfo.Version, buildInfo.GitCommit)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	generator, err := initializeGenerator(cfg)
	if err != nil {
		log.Fatalf("❌ FATAL: %v", err)
	}

	sessions, prompts := initializeRedis(cfg)

	db, err := store.OpenDB(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("❌ FATAL: Could not open database: %v", err)
	}
	defer db.Close()
	history := store.NewRepository(db)
	log.Printf("✅ SQLite ready at %s.", cfg.SQLitePath)

	transcriber := voice.NewGoogleTranscriber(cfg.SpeechAPIKey, cfg.SpeechLanguage)

	promptAgent := agent.New(generator, sessions, prompts)
	handler := NewAgentHandler(promptAgent, sessions, history, transcriber, cfg)
	log.Println("✅ All services initialized.")

	// 3. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()
	engine.GET("/health", handler.HandleHealth)
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/chat", handler.HandleChat)
		v1.POST("/optimize", handler.HandleOptimize)
		v1.POST("/files/extract", handler.HandleFileExtract)
		v1.POST("/voice/transcribe", handler.HandleVoiceTranscribe)
		v1.POST("/session/reset", handler.HandleSessionReset)
		v1.GET("/prompts/recent", handler.HandleRecentPrompts)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeGenerator creates the configured provider client.
func initializeGenerator(cfg *AppConfig) (llm.TextGenerator, error) {
	switch cfg.Provider {
	case "anthropic":
		client, err := llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.ClaudeModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Anthropic client: %w", err)
		}
		log.Printf("✅ Anthropic provider initialized (model: %s).", cfg.ClaudeModel)
		return client, nil
	case "gemini":
		client, err := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		log.Printf("✅ Gemini provider initialized (model: %s).", cfg.GeminiModel)
		return client, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// initializeRedis wires the session store and prompt cache. Without a
// configured Redis address the service degrades to in-process sessions and
// no response caching.
func initializeRedis(cfg *AppConfig) (session.Store, *cache.ResponseCache) {
	if cfg.RedisAddr == "" {
		log.Println("⚠️ REDIS_ADDR not set; using in-memory sessions and no prompt cache.")
		return session.NewMemoryStore(cfg.Agent.SessionTTL()), nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("❌ FATAL: Could not connect to Redis: %v", err)
	}
	log.Printf("✅ Redis connected at %s.", cfg.RedisAddr)
	return session.NewRedisStore(rdb, cfg.Agent.SessionTTL()), cache.New(rdb, cfg.Agent.CacheTTL())
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Prompt agent is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
