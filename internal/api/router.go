package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine: panic recovery, access logging, CORS for
// every origin, the /api routes and a JSON 404.
func NewRouter(h *Handler, log *logrus.Entry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(AccessLog(log))
	r.Use(cors.Default())

	h.RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
	})
	return r
}

// AccessLog writes one entry per request once the handler chain returns.
func AccessLog(log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}
