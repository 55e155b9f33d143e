// Package server exposes the tracking and analytics services over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wheeltrack/internal/analytics"
	"wheeltrack/internal/catalog"
	"wheeltrack/internal/fault"
	"wheeltrack/internal/plan"
	"wheeltrack/internal/progress"
	"wheeltrack/internal/tracker"
)

// Server wires the service layer into a gin router.
type Server struct {
	log         *zap.Logger
	router      *gin.Engine
	catalog     *catalog.Catalog
	tracker     *tracker.Tracker
	progress    *progress.Service
	engine      *analytics.Engine
	plans       *plan.Generator
	recommender plan.Recommender
}

// Deps carries the service-layer dependencies of a Server.
type Deps struct {
	Log         *zap.Logger
	Catalog     *catalog.Catalog
	Tracker     *tracker.Tracker
	Progress    *progress.Service
	Engine      *analytics.Engine
	Plans       *plan.Generator
	Recommender plan.Recommender
}

// New builds a Server and registers its routes.
func New(d Deps) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		log:         d.Log,
		router:      gin.New(),
		catalog:     d.Catalog,
		tracker:     d.Tracker,
		progress:    d.Progress,
		engine:      d.Engine,
		plans:       d.Plans,
		recommender: d.Recommender,
	}
	s.router.Use(s.requestLogger(), gin.Recovery())
	s.routes()
	return s
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine { return s.router }

// Run serves HTTP on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return s.router.Run(addr)
}

func (s *Server) routes() {
	r := s.router

	r.GET("/healthz", s.handleHealth)

	r.POST("/user/:user_id/create", s.handleCreateUser)
	r.GET("/user/:user_id/progress", s.handleUserProgress)
	r.POST("/user/:user_id/skill/:skill_id/start-attempt", s.handleStartAttempt)
	r.GET("/user/:user_id/skill/:skill_id/stats", s.handleUserSkillStats)
	r.GET("/user/:user_id/common-errors", s.handleCommonErrors)
	r.GET("/user/:user_id/weak-steps", s.handleWeakSteps)
	r.GET("/user/:user_id/recommended-skills", s.handleRecommendedSkills)
	r.POST("/user/:user_id/generate-plan", s.handleGeneratePlan)
	r.POST("/user/:user_id/clear-progress", s.handleClearProgress)

	r.POST("/attempt/:attempt_id/record-input", s.handleRecordInput)
	r.POST("/attempt/:attempt_id/record-error", s.handleRecordError)
	r.POST("/attempt/:attempt_id/record-telemetry", s.handleRecordTelemetry)
	r.POST("/attempt/:attempt_id/complete", s.handleComplete)

	r.GET("/analytics/global-errors", s.handleGlobalErrors)
	r.GET("/analytics/skill/:skill_id/errors", s.handleSkillErrors)

	r.GET("/skills/:skill_id/steps", s.handleSkillSteps)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

// fail maps a service error to a status code and a JSON error body.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case fault.IsNotFound(err):
		status, msg = http.StatusNotFound, err.Error()
	case fault.IsInvalidState(err):
		status, msg = http.StatusConflict, err.Error()
	case fault.IsValidation(err):
		status, msg = http.StatusBadRequest, err.Error()
	default:
		s.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg, "kind": kindOf(err)})
}

func kindOf(err error) string {
	switch {
	case fault.IsNotFound(err):
		return fault.KindNotFound.String()
	case fault.IsInvalidState(err):
		return fault.KindInvalidState.String()
	case fault.IsValidation(err):
		return fault.KindValidation.String()
	default:
		return "internal"
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "skills": s.catalog.Len()})
}
