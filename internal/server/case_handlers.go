package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"frontline/internal/database"
)

// listCasesHandler godoc
// @Summary List processed cases
// @Description Returns persisted case records, newest first, filtered by emergency type, priority, and date (YYYY-MM-DD).
// @Tags cases
// @Produce json
// @Param type query string false "Emergency type filter"
// @Param priority query string false "Priority filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Success 200 {array} database.CaseRecord
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/cases [get]
func (s *Server) listCasesHandler(c *gin.Context) {
	filters := database.CaseFilters{
		EmergencyType: c.Query("type"),
		Priority:      c.Query("priority"),
		Date:          c.Query("date"),
	}

	records, err := s.db.ListCases(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, database.ErrInvalidDateFilter) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query cases"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// equitySummaryHandler godoc
// @Summary Summarize demand
// @Description Returns the sliding 24-hour demand window: totals by location, emergency type, and priority.
// @Tags equity
// @Produce json
// @Success 200 {object} equity.Summary
// @Router /api/equity/summary [get]
func (s *Server) equitySummaryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.tracker.Summarize())
}
