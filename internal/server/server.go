package server

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"frontline/internal/actions"
	"frontline/internal/booking"
	"frontline/internal/database"
	"frontline/internal/equity"
	"frontline/internal/followup"
	"frontline/internal/pipeline"
	"frontline/internal/status"
)

type Server struct {
	port int

	db       database.Service
	checker  *status.Checker
	pipeline *pipeline.Pipeline
	tracker  *equity.Tracker
}

func NewServer() *http.Server {
	port := resolvePort()

	db := database.New()
	tracker := equity.NewTracker(time.Now)
	NewServer := &Server{
		port: port,

		db:      db,
		checker: status.NewChecker(),
		tracker: tracker,
		pipeline: pipeline.New(
			db,
			booking.NewScheduler(time.Now, rand.New(rand.NewSource(time.Now().UnixNano()))),
			followup.NewPlanner(time.Now),
			actions.NewExecutor(time.Now),
			tracker,
		),
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}

func resolvePort() int {
	value := os.Getenv("PORT")
	if value == "" {
		return 18730
	}

	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 {
		return 18730
	}

	return port
}
