package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trendfeed/internal/source"
	"trendfeed/internal/subject"
)

// Handler serves the JSON API.
type Handler struct {
	registry *subject.Registry
	feeds    Feeds
}

// Stories handles GET /api/stories?topic=<slug>.
func (h *Handler) Stories(c *gin.Context) {
	topic := c.Query("topic")
	if _, ok := h.registry.BySlug(topic); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic"})
		return
	}
	stories, err := h.feeds.Stories(c.Request.Context(), topic)
	if err != nil {
		if errors.Is(err, source.ErrInvalidSubject) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid topic"})
			return
		}
		slog.Error("api: fetch stories failed", "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stories"})
		return
	}
	c.JSON(http.StatusOK, stories)
}

// Counts handles GET /api/counts. Failed lookups report 0.
func (h *Handler) Counts(c *gin.Context) {
	c.JSON(http.StatusOK, h.feeds.Counts(c.Request.Context()))
}

type subjectResponse struct {
	subject.Subject
	Level subject.Level `json:"level"`
}

// Subjects handles GET /api/subjects.
func (h *Handler) Subjects(c *gin.Context) {
	list := h.registry.List()
	out := make([]subjectResponse, 0, len(list))
	for _, s := range list {
		out = append(out, subjectResponse{Subject: s, Level: s.Level()})
	}
	c.JSON(http.StatusOK, out)
}

// Feed handles GET /api/feed/:slug?page=N. A missing or malformed page means page 1.
func (h *Handler) Feed(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	v, err := h.feeds.View(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		if errors.Is(err, source.ErrInvalidSubject) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		slog.Error("api: build feed failed", "slug", c.Param("slug"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build feed"})
		return
	}
	c.JSON(http.StatusOK, v)
}
