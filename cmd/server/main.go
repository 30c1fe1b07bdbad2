package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"symptom-checker/internal/config"
	"symptom-checker/internal/core"
	"symptom-checker/internal/db"
	httpserver "symptom-checker/internal/http"
	"symptom-checker/internal/llm"
)

func main() {
	cfg := config.New()

	// Verify the store connection up front.  An empty URI yields a
	// disabled store and the service runs without persistence.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	store, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	if store.Enabled() {
		log.Infof("mongodb connected: db=%s", cfg.MongoDB)
	}

	llmClient := llm.NewOpenAIClient(llm.Config{
		APIKey:  cfg.LLMAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
		Timeout: cfg.LLMTimeout,
	})
	analysis := core.NewAnalysisService(llmClient)
	srv := httpserver.NewServer(store, analysis)

	router := gin.New()
	router.Use(gin.Recovery(), httpserver.RequestLogger(), httpserver.CORS())
	srv.Register(router)

	addr := ":" + cfg.Port
	log.Infof("listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
