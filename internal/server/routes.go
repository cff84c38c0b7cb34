package server

import (
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"frontline/cmd/web"
	_ "frontline/docs"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"}, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Enable cookies/auth
	}))

	r.GET("/", s.HelloWorldHandler)

	r.GET("/health", s.healthHandler)
	r.POST("/api/emergency", s.processEmergencyHandler)
	r.POST("/api/emergency/classify", s.classifyHandler)
	r.POST("/api/emergency/triage", s.triageHandler)
	r.GET("/api/cases", s.listCasesHandler)
	r.GET("/api/equity/summary", s.equitySummaryHandler)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/web", func(c *gin.Context) {
		web.DashboardHandler(c.Writer, c.Request)
	})

	return r
}

func (s *Server) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Frontline emergency response service"

	c.JSON(http.StatusOK, resp)
}

// healthHandler godoc
// @Summary Health check
// @Description Returns database health details plus the current system mode.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *Server) healthHandler(c *gin.Context) {
	stats := s.db.Health()

	sys := s.checker.Status()
	stats["system_mode"] = sys.Mode
	stats["internet_available"] = strconv.FormatBool(sys.InternetAvailable)

	c.JSON(http.StatusOK, stats)
}
