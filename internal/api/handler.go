// Package api implements the HTTP surface of the listing service.
//
// Routes:
//
//	GET  /api/health  → liveness
//	GET  /api/jobs    → every job, newest first
//	POST /api/seed    → reset the jobs table to the fixture set
package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"jobmate/listing-service/internal/model"
)

// Client-facing error messages. Underlying causes are logged, never returned.
const (
	msgListFailed = "Internal server error"
	msgSeedFailed = "Failed to seed database"
	msgNotFound   = "not found"
)

// JobService is the business layer the handlers delegate to.
type JobService interface {
	ListJobs(ctx context.Context) ([]model.JobView, error)
	Seed(ctx context.Context) (int, error)
}

// Handler holds shared dependencies.
type Handler struct {
	svc JobService
	log *logrus.Entry
}

// NewHandler returns a configured Handler.
func NewHandler(svc JobService, log *logrus.Entry) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts the /api routes on r.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/api")
	g.GET("/health", h.health)
	g.GET("/jobs", h.listJobs)
	g.POST("/seed", h.seed)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listJobs(c *gin.Context) {
	views, err := h.svc.ListJobs(c.Request.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("Error fetching jobs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgListFailed})
		return
	}

	h.log.WithField("count", len(views)).Info("Jobs fetched successfully")
	c.JSON(http.StatusOK, views)
}

func (h *Handler) seed(c *gin.Context) {
	n, err := h.svc.Seed(c.Request.Context())
	if err != nil {
		h.log.WithField("error", err.Error()).Error("Error seeding database")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgSeedFailed})
		return
	}

	h.log.WithField("count", n).Info("Database seeded successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully", "count": n})
}
