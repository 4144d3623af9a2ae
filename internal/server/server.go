// Package server provides the HTTP JSON API for the campaign engine. It is
// the caller boundary for presentation layers: it submits campaign requests,
// returns the strategy/score/assets triple, and carries no business logic of
// its own.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nexflow/campaign-engine/internal/pipeline"
)

// Runner executes one campaign request end to end.
type Runner interface {
	Run(ctx context.Context, req pipeline.CampaignRequest) (*pipeline.Result, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	runner     Runner
	validator  *validator.Validate
	closeFn    func()
}

// Config holds server configuration
type Config struct {
	Port int
	// Close releases collaborator resources (LLM client, vector store pool)
	// on shutdown.
	Close func()
}

// New creates a new server instance over a campaign pipeline
func New(runner Runner, cfg Config) *Server {
	s := &Server{
		runner:    runner,
		validator: validator.New(),
		closeFn:   cfg.Close,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /campaigns", s.handleGenerateCampaign)
	mux.HandleFunc("GET /personas", s.handleListPersonas)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // Long timeout for multi-attempt generation
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until interrupted
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.closeFn != nil {
		s.closeFn()
	}
	log.Println("Server stopped")
	return nil
}

// Handler returns the server's HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}
