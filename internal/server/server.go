package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/worldcrafter/lorecheck/internal/config"
	"github.com/worldcrafter/lorecheck/internal/core/checks"
	"github.com/worldcrafter/lorecheck/internal/core/model"
	"github.com/worldcrafter/lorecheck/internal/core/oracle"
	"github.com/worldcrafter/lorecheck/internal/core/suggest"
	"github.com/worldcrafter/lorecheck/internal/llm"
)

type Server struct {
	Checker   *checks.Checker
	Suggester *suggest.Suggester
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg := config.LoadOrDefault(cfgPath)
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid oracle configuration: %v", err)
	}

	llmClient, embedderClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	var suggester *suggest.Suggester
	if embedderClient != nil {
		suggester = suggest.NewSuggester(embedderClient, llm.NewSimpleLLMReranker(llmClient))
	}

	return &Server{
		Checker:   checks.NewChecker(oracle.New(llmClient), cfg.Checks),
		Suggester: suggester,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/check", s.Check)
	r.POST("/suggest", s.Suggest)
	r.GET("/healthz", s.Health)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Check runs the full consistency pipeline over the snapshot in the request
// body and returns the report plus the automation pass/fail signal.
func (s *Server) Check(c *gin.Context) {
	var snap model.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report := s.Checker.Run(c.Request.Context(), &snap)

	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"passed": report.Passed(),
	})
}

type SuggestRequest struct {
	Entities      []model.Entity       `json:"entities"`
	Relationships []model.Relationship `json:"relationships"`
	Limit         int                  `json:"limit"`
}

func (s *Server) Suggest(c *gin.Context) {
	if s.Suggester == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Configured provider does not support embeddings"})
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	snap := &model.Snapshot{Entities: req.Entities, Relationships: req.Relationships}
	suggestions, err := s.Suggester.Suggest(c.Request.Context(), snap, req.Limit)
	if err != nil {
		log.Printf("Failed to suggest relationships: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to suggest relationships"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
