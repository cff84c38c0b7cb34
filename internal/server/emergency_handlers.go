package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"frontline/internal/classifier"
	"frontline/internal/pipeline"
	"frontline/internal/status"
	"frontline/internal/triage"
)

type triageRequest struct {
	Symptoms        string                  `json:"symptoms"`
	Citizen         *triage.RiskProfile     `json:"citizen,omitempty"`
	HistoricalCases []triage.HistoricalCase `json:"historical_cases,omitempty"`
}

// processEmergencyHandler godoc
// @Summary Process an emergency report
// @Description Runs the full workflow: parsing, triage, service matching, booking, follow-up, and autonomous actions. The case is persisted and counted in the equity window.
// @Tags emergency
// @Accept json
// @Produce json
// @Param request body pipeline.Request true "Emergency report"
// @Success 200 {object} pipeline.CaseContext
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/emergency [post]
func (s *Server) processEmergencyHandler(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Report) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report is required"})
		return
	}

	cc, err := s.pipeline.Process(c.Request.Context(), req, s.checker.Status())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process emergency report"})
		return
	}

	c.JSON(http.StatusOK, cc)
}

// classifyHandler godoc
// @Summary Classify an emergency report
// @Description Runs the parsing stage only: category, priority, extracted location, citizen data, and confidence. Nothing is persisted.
// @Tags emergency
// @Accept json
// @Produce json
// @Param request body pipeline.Request true "Emergency report"
// @Success 200 {object} classifier.Result
// @Failure 400 {object} map[string]string
// @Router /api/emergency/classify [post]
func (s *Server) classifyHandler(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Report) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report is required"})
		return
	}

	c.JSON(http.StatusOK, classifier.Parse(req.Report, req.GPS))
}

// triageHandler godoc
// @Summary Triage symptoms
// @Description Runs the triage stage only. Enhanced mode blends the historical pattern signal with the citizen risk profile; degraded mode falls back to the rule-based keyword lookup. A historical_cases override in the body replaces the stored corpus.
// @Tags emergency
// @Accept json
// @Produce json
// @Param request body triageRequest true "Symptoms plus optional citizen profile and historical override"
// @Success 200 {object} triage.Assessment
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/emergency/triage [post]
func (s *Server) triageHandler(c *gin.Context) {
	var req triageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Symptoms) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptoms is required"})
		return
	}

	if s.checker.Status().Mode != status.ModeEnhanced {
		c.JSON(http.StatusOK, triage.Degraded(req.Symptoms))
		return
	}

	cases := req.HistoricalCases
	if cases == nil {
		records, err := s.db.ListHistorical(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load historical requests"})
			return
		}
		for _, record := range records {
			cases = append(cases, triage.HistoricalCase{
				Symptoms: record.Symptoms,
				Priority: classifier.Priority(record.Priority),
			})
		}
	}

	profile := triage.RiskProfile{}
	if req.Citizen != nil {
		profile = *req.Citizen
	}

	c.JSON(http.StatusOK, triage.Enhanced(req.Symptoms, profile, cases))
}
