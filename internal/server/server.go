// Package server provides the HTTP REST API for the placement suite.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/suhan648/placementpro/internal/config"
	"github.com/suhan648/placementpro/internal/db"
	"github.com/suhan648/placementpro/internal/mailer"
	"github.com/suhan648/placementpro/internal/placement"
	"github.com/suhan648/placementpro/internal/server/middleware"
	"github.com/suhan648/placementpro/internal/server/ratelimit"
)

// defaultNotifyConcurrency bounds how many announcement mails go out at once.
const defaultNotifyConcurrency = 8

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	logger      *zap.Logger
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	applications *placement.ApplicationService
	interviews   *placement.InterviewService
	bookings     *placement.BookingService
	dispatcher   *placement.Dispatcher
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	Logger      *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Schema setup is idempotent, so every start runs it
	if err := database.Migrate(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &Server{
		db:     database,
		logger: logger,
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Initialize placement services. The *db.DB satisfies each service's
	// store interface directly.
	s.applications = placement.NewApplicationService(database)
	s.interviews = placement.NewInterviewService(database, database, logger)
	s.bookings = placement.NewBookingService(database)

	// Drive announcements go over SMTP when configured, otherwise to the log.
	mailConfig, err := config.NewMailConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create mail config: %w", err)
	}
	var notifier placement.Notifier
	if mailConfig.Enabled() {
		notifier = mailer.NewSMTP(*mailConfig)
	} else {
		logger.Info("SMTP_HOST not set, drive announcements will only be logged")
		notifier = mailer.NewLog(logger)
	}
	s.dispatcher = placement.NewDispatcher(notifier, defaultNotifyConcurrency, logger)

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)

	// Student endpoints
	mux.Handle("GET /students/me", s.requireRole("student", s.handleGetMyProfile))
	mux.Handle("PUT /students/me", s.requireRole("student", s.handleUpdateMyProfile))
	mux.Handle("GET /students/me/dashboard", s.requireRole("student", s.handleStudentDashboard))
	mux.Handle("GET /students/me/drives", s.requireRole("student", s.handleStudentDrives))
	mux.Handle("POST /students/me/applications/{drive_id}", s.requireRole("student", s.handleApply))
	mux.Handle("GET /students/me/applications", s.requireRole("student", s.handleMyApplications))
	mux.Handle("GET /students/me/resume", s.requireRole("student", s.handleResumeExport))

	// Admin drive endpoints
	mux.Handle("POST /admin/drives", s.requireRole("admin", s.handleCreateDrive))
	mux.Handle("GET /admin/drives", s.requireRole("admin", s.handleListDrives))
	mux.Handle("DELETE /admin/drives/{id}", s.requireRole("admin", s.handleDeleteDrive))
	mux.Handle("PATCH /admin/drives/{id}/status", s.requireRole("admin", s.handleUpdateDriveStatus))
	mux.Handle("GET /admin/drives/{id}/eligible", s.requireRole("admin", s.handleEligibleStudents))
	mux.Handle("POST /admin/drives/{id}/notify", s.requireRole("admin", s.handleNotifyDrive))

	// Admin interview schedule endpoints
	mux.Handle("POST /admin/interviews", s.requireRole("admin", s.handleScheduleInterview))
	mux.Handle("GET /admin/interviews", s.requireRole("admin", s.handleListInterviews))
	mux.Handle("DELETE /admin/interviews/{id}", s.requireRole("admin", s.handleDeleteInterview))

	// Admin application endpoints
	mux.Handle("GET /admin/applications", s.requireRole("admin", s.handleListApplications))
	mux.Handle("PATCH /admin/applications/{id}/status", s.requireRole("admin", s.handleUpdateApplicationStatus))

	// Admin analytics endpoint
	mux.Handle("GET /admin/analytics", s.requireRole("admin", s.handleAnalytics))

	// Admin FAQ endpoints
	mux.Handle("POST /admin/faqs", s.requireRole("admin", s.handleCreateFAQ))
	mux.Handle("GET /admin/faqs", s.requireRole("admin", s.handleListFAQs))
	mux.Handle("PATCH /admin/faqs/{id}", s.requireRole("admin", s.handleUpdateFAQ))
	mux.Handle("DELETE /admin/faqs/{id}", s.requireRole("admin", s.handleDeleteFAQ))

	// Alumni endpoints. Referral listing is open to any signed-in user so
	// students can browse openings.
	mux.Handle("GET /alumni/me/dashboard", s.requireRole("alumni", s.handleAlumniDashboard))
	mux.Handle("PUT /alumni/me", s.requireRole("alumni", s.handleUpdateAlumniProfile))
	mux.Handle("POST /alumni/referrals", s.requireRole("alumni", s.handleCreateReferral))
	mux.Handle("GET /alumni/referrals", s.requireAuth(s.handleListReferrals))
	mux.Handle("DELETE /alumni/referrals/{id}", s.requireRole("alumni", s.handleDeleteReferral))
	mux.Handle("POST /alumni/mentorship", s.requireRole("alumni", s.handleCreateSlot))
	mux.Handle("GET /alumni/mentorship", s.requireRole("alumni", s.handleMySlots))
	mux.Handle("DELETE /alumni/mentorship/{id}", s.requireRole("alumni", s.handleDeleteSlot))

	// Mentorship booking (student side)
	mux.Handle("GET /mentorship/available", s.requireRole("student", s.handleOpenSlots))
	mux.Handle("POST /mentorship/{slot_id}/claim", s.requireRole("student", s.handleClaimSlot))

	// Market insight endpoints
	mux.Handle("GET /market/roles", s.requireAuth(s.handleMarketRoles))
	mux.Handle("POST /market/skill-gap", s.requireRole("student", s.handleSkillGap))

	// Chatbot endpoint
	mux.Handle("POST /chatbot/ask", s.requireAuth(s.handleChat))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Notify fan-out holds the response while mails go out
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	s.logger.Info("server stopped")
	return nil
}

// requireAuth wraps a handler with JWT validation. The user ID and role land
// on the request context.
func (s *Server) requireAuth(h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(h)
}

// requireRole wraps a handler with JWT validation plus a role check.
func (s *Server) requireRole(role string, h http.HandlerFunc) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(middleware.RequireRole(role)(h))
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			// Return 429 Too Many Requests
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRegister handles user registration requests.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Register(w, r)
}

// handleLogin handles user login requests.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.authHandler.Login(w, r)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; a deployment behind a trusted
// proxy would read X-Forwarded-For instead.
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining),
		zap.Time("reset", info.ResetTime))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
