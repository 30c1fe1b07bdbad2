package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"symptom-checker/internal/core"
	"symptom-checker/internal/db"
	"symptom-checker/internal/llm"
	"symptom-checker/pkg"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	storeDisabledMessage = "history store not configured"
)

// HistoryStore is the slice of the persistence layer the handlers use.
// db.HistoryStore satisfies it; tests substitute in-memory fakes.
type HistoryStore interface {
	Enabled() bool
	Insert(ctx context.Context, input pkg.SymptomInput, result pkg.Analysis) (string, error)
	List(ctx context.Context, limit, skip int) (int64, []pkg.HistoryItem, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Server bundles together the dependencies required by the HTTP
// handlers.
type Server struct {
	Store    HistoryStore
	Analysis *core.AnalysisService
}

// NewServer constructs a Server.
func NewServer(store HistoryStore, analysis *core.AnalysisService) *Server {
	return &Server{Store: store, Analysis: analysis}
}

// Register wires the API routes onto the given engine.
func (s *Server) Register(router *gin.Engine) {
	router.POST("/api/analyze", s.handleAnalyze)
	router.GET("/api/history", s.handleListHistory)
	router.DELETE("/api/history/:id", s.handleDeleteHistory)
	router.GET("/health", s.handleHealth)
}

// handleAnalyze validates the input, runs the analysis pipeline, and
// best-effort persists the exchange.  Persistence failures are logged
// and never surfaced: the analysis succeeds regardless.
func (s *Server) handleAnalyze(ctx *gin.Context) {
	var in pkg.SymptomInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	result, err := s.Analysis.Analyze(ctx.Request.Context(), &in)
	if err != nil {
		s.analyzeError(ctx, err)
		return
	}

	if _, err := s.Store.Insert(ctx.Request.Context(), in, *result); err != nil && !errors.Is(err, db.ErrDisabled) {
		log.WithError(err).Warn("failed to save history record")
	}

	ctx.JSON(http.StatusOK, result)
}

// analyzeError maps the pipeline's error taxonomy onto status codes.
// Upstream and parse failures deliberately return short opaque details
// so provider internals never leak to clients.
func (s *Server) analyzeError(ctx *gin.Context, err error) {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": verr.Error()})
		return
	}
	var merr *core.MalformedResponseError
	if errors.As(err, &merr) {
		log.WithError(err).Error("model returned unparseable JSON")
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "Bad JSON from AI."})
		return
	}
	var uerr *llm.UpstreamError
	if errors.As(err, &uerr) {
		log.WithError(err).Error("completion request failed")
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "AI request failed."})
		return
	}
	log.WithError(err).Error("analyze failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
}

// handleListHistory returns stored exchanges newest first.  limit is
// clamped to [1, 100] with a default of 20, skip to >= 0.
func (s *Server) handleListHistory(ctx *gin.Context) {
	limit := intQuery(ctx, "limit", defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	skip := intQuery(ctx, "skip", 0)
	if skip < 0 {
		skip = 0
	}

	if !s.Store.Enabled() {
		ctx.JSON(http.StatusOK, gin.H{
			"count":   0,
			"items":   []pkg.HistoryItem{},
			"message": storeDisabledMessage,
		})
		return
	}

	total, items, err := s.Store.List(ctx.Request.Context(), limit, skip)
	if err != nil {
		log.WithError(err).Error("failed to list history")
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to list history"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"count": total, "items": items})
}

// handleDeleteHistory removes one record by identifier.  Malformed
// identifiers and missing records both report deleted=false; only the
// former carries an error detail.
func (s *Server) handleDeleteHistory(ctx *gin.Context) {
	deleted, err := s.Store.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrDisabled) {
			ctx.JSON(http.StatusOK, gin.H{"deleted": false})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"deleted": false, "error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (s *Server) handleHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// intQuery reads an integer query parameter, falling back to def when
// absent or unparseable.
func intQuery(ctx *gin.Context, name string, def int) int {
	raw := ctx.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
