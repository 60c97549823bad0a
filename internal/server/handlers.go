package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/abhisek/biascheck/internal/store"
	"github.com/gin-gonic/gin"
)

// maxListLimit caps how many entries a single list request may return.
const maxListLimit = 500

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type createEntryRequest struct {
	Text string `json:"text"`
}

// EntryHandler serves the entry endpoints.
type EntryHandler struct {
	repo store.EntryRepo
}

func NewEntryHandler(repo store.EntryRepo) *EntryHandler {
	return &EntryHandler{repo: repo}
}

// CreateEntry stores a free-text entry.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := h.repo.Create(c.Request.Context(), req.Text)
	switch {
	case errors.Is(err, store.ErrEmptyText), errors.Is(err, store.ErrTextTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("create entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entry"})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// ListEntries returns stored entries, newest first.
func (h *EntryHandler) ListEntries(c *gin.Context) {
	opts := store.QueryOpts{}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and " + strconv.Itoa(maxListLimit)})
			return
		}
		opts.Limit = n
	}

	entries, err := h.repo.List(c.Request.Context(), opts)
	if err != nil {
		log.Printf("list entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries"})
		return
	}
	if entries == nil {
		entries = []store.Entry{}
	}

	c.JSON(http.StatusOK, entries)
}

// HealthHandler reports database availability.
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}
