package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wheeltrack/internal/taxonomy"
	"wheeltrack/internal/tracker"
)

func (s *Server) handleCreateUser(c *gin.Context) {
	u, err := s.progress.CreateUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":       u.UserID,
		"current_phase": u.CurrentPhase,
		"created_at":    u.CreatedAt,
	})
}

func (s *Server) handleUserProgress(c *gin.Context) {
	p, err := s.progress.Progress(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleStartAttempt(c *gin.Context) {
	a, err := s.tracker.StartAttempt(c.Request.Context(), c.Param("user_id"), c.Param("skill_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	resp := gin.H{
		"attempt_id": a.AttemptID,
		"user_id":    a.UserID,
		"skill_id":   a.SkillID,
		"status":     a.Status,
		"start_time": a.StartTime,
	}
	if sk := s.catalog.ByID(a.SkillID); sk != nil {
		resp["steps"] = sk.Steps
	}
	c.JSON(http.StatusOK, resp)
}

type recordInputRequest struct {
	StepNumber    int    `json:"step_number" binding:"required"`
	ExpectedInput string `json:"expected_input"`
	ActualInput   string `json:"actual_input"`
}

func (s *Server) handleRecordInput(c *gin.Context) {
	var req recordInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
		return
	}
	correct, err := s.tracker.RecordInput(c.Request.Context(),
		c.Param("attempt_id"), req.StepNumber, req.ExpectedInput, req.ActualInput)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true, "correct": correct})
}

type recordErrorRequest struct {
	StepNumber     int    `json:"step_number" binding:"required"`
	ErrorType      string `json:"error_type" binding:"required"`
	ExpectedAction string `json:"expected_action"`
	ActualAction   string `json:"actual_action"`
}

func (s *Server) handleRecordError(c *gin.Context) {
	var req recordErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
		return
	}
	err := s.tracker.RecordError(c.Request.Context(), c.Param("attempt_id"),
		req.StepNumber, req.ErrorType, req.ExpectedAction, req.ActualAction)
	if err != nil {
		s.fail(c, err)
		return
	}
	resp := gin.H{"recorded": true}
	if et := taxonomy.Lookup(req.ErrorType); et != nil {
		resp["severity"] = et.Severity
	}
	c.JSON(http.StatusOK, resp)
}

type recordTelemetryRequest struct {
	StepNumber     int     `json:"step_number" binding:"required"`
	ExpectedAction string  `json:"expected_action"`
	ActualAction   string  `json:"actual_action"`
	Success        bool    `json:"success"`
	HoldDurationMs int64   `json:"hold_duration_ms"`
	PeakForce      float64 `json:"peak_force"`
	DistanceM      float64 `json:"distance_m"`
	AssistUsed     bool    `json:"assist_used"`
}

func (s *Server) handleRecordTelemetry(c *gin.Context) {
	var req recordTelemetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
		return
	}
	err := s.tracker.RecordTelemetry(c.Request.Context(), c.Param("attempt_id"), tracker.Telemetry{
		StepNumber:     req.StepNumber,
		ExpectedAction: req.ExpectedAction,
		ActualAction:   req.ActualAction,
		Success:        req.Success,
		HoldDurationMs: req.HoldDurationMs,
		PeakForce:      req.PeakForce,
		DistanceM:      req.DistanceM,
		AssistUsed:     req.AssistUsed,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true})
}

type completeRequest struct {
	Success *bool `json:"success" binding:"required"`
}

func (s *Server) handleComplete(c *gin.Context) {
	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation"})
		return
	}
	a, err := s.tracker.Complete(c.Request.Context(), c.Param("attempt_id"), *req.Success)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"attempt_id": a.AttemptID,
		"status":     a.Status,
		"success":    *a.Success,
		"end_time":   a.EndTime,
	})
}

func (s *Server) handleUserSkillStats(c *gin.Context) {
	stats, err := s.progress.SkillStats(c.Request.Context(), c.Param("user_id"), c.Param("skill_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleCommonErrors(c *gin.Context) {
	errs, err := s.progress.CommonErrors(c.Request.Context(), c.Param("user_id"), c.Query("skill_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": c.Param("user_id"), "common_errors": errs})
}

func (s *Server) handleWeakSteps(c *gin.Context) {
	weak, err := s.progress.WeakSteps(c.Request.Context(), c.Param("user_id"), c.Query("skill_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": c.Param("user_id"), "weak_steps": weak})
}

func (s *Server) handleRecommendedSkills(c *gin.Context) {
	ctx := c.Request.Context()
	prog, err := s.progress.Progress(ctx, c.Param("user_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	rec, err := s.recommender.Recommend(ctx, prog)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":            prog.UserID,
		"current_phase":      prog.CurrentPhase,
		"recommended_skills": rec.RecommendedSkills,
		"focus_skills":       rec.FocusSkills,
	})
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	p, err := s.plans.Generate(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleClearProgress(c *gin.Context) {
	userID := c.Param("user_id")
	if err := s.progress.ClearProgress(c.Request.Context(), userID); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true, "user_id": userID})
}

func (s *Server) handleGlobalErrors(c *gin.Context) {
	stats, err := s.engine.Global(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleSkillErrors(c *gin.Context) {
	stats, err := s.engine.SkillStats(c.Request.Context(), c.Param("skill_id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleSkillSteps(c *gin.Context) {
	sk := s.catalog.ByID(c.Param("skill_id"))
	if sk == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "skill " + c.Param("skill_id") + " not found",
			"kind":  "not_found",
		})
		return
	}
	c.JSON(http.StatusOK, sk)
}
