// Package server is the thin HTTP shell over the conversational core: routes,
// request/response schemas, CORS, rate limiting, and the admin endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shrey-c/resume-chatbot/internal/auth"
	errx "github.com/shrey-c/resume-chatbot/internal/core/error"
	"github.com/shrey-c/resume-chatbot/internal/resume"
	logx "github.com/shrey-c/resume-chatbot/pkg/logger"
)

// Config describes the listen address and browser-facing settings.
type Config struct {
	Host           string `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port           string `envconfig:"SERVER_PORT" default:"8000"`
	AllowedOrigins string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8000,http://127.0.0.1:8000"`
	StaticDir      string `envconfig:"STATIC_DIR" default:"static"`
	UploadDir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Bot is the server's view of the conversational core.
type Bot interface {
	Chat(ctx context.Context, message string) string
	CheckHealth(ctx context.Context) bool
}

// Importer parses an uploaded resume PDF into the structured record.
type Importer interface {
	ParseResume(ctx context.Context, path string) (resume.Resume, error)
}

// Reloader invalidates the cached chatbot context after a resume update.
type Reloader interface {
	Reload()
}

// Server wires the handlers to their collaborators.
type Server struct {
	cfg       Config
	bot       Bot
	store     *resume.Store
	authn     *auth.Authenticator
	importer  Importer
	reloader  Reloader
	limiter   *RateLimiter
	modelName string
}

// New builds the server.
func New(cfg Config, bot Bot, store *resume.Store, authn *auth.Authenticator, importer Importer, reloader Reloader, limiter *RateLimiter, modelName string) *Server {
	return &Server{
		cfg:       cfg,
		bot:       bot,
		store:     store,
		authn:     authn,
		importer:  importer,
		reloader:  reloader,
		limiter:   limiter,
		modelName: modelName,
	}
}

// Handler assembles the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(cors(strings.Split(s.cfg.AllowedOrigins, ",")))

	r.Get("/", s.servePage("index.html"))
	r.Get("/admin", s.servePage("admin.html"))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/resume", s.handleResume)
		r.Post("/chat", s.handleChat)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.handleLogin)
			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Get("/verify", s.handleVerify)
				r.Post("/upload-resume", s.handleUpload)
			})
		})
	})

	return r
}

// ================ Schemas ================

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type healthResponse struct {
	Status         string `json:"status"`
	ModelAvailable bool   `json:"model_available"`
	Model          string `json:"model"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// ================ Handlers ================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:         "healthy",
		ModelAvailable: s.bot.CheckHealth(r.Context()),
		Model:          s.modelName,
	})
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Current())
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ok, retryAfter := s.limiter.Allow(r.Context(), clientIP(r))
	if !ok {
		w.Header().Set("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
		writeError(w, errx.New(nil, http.StatusTooManyRequests, errx.RateLimitedMessage))
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errx.BadRequest(err, "invalid request body"))
		return
	}

	// Boundary validation; the core repeats this check defensively.
	if _, err := resume.ValidateChatMessage(req.Message); err != nil {
		writeError(w, errx.BadRequest(err, errx.InvalidMessage))
		return
	}

	if !s.bot.CheckHealth(r.Context()) {
		writeError(w, errx.Unavailable(nil, errx.ModelUnavailableMessage))
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Response: s.bot.Chat(r.Context(), req.Message)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errx.BadRequest(err, "invalid request body"))
		return
	}

	token, err := s.authn.Login(req.Username, req.Password)
	if err != nil {
		logx.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
		writeError(w, errx.Unauthorized(err))
		return
	}

	logx.Info().Str("username", req.Username).Msg("Admin login successful")
	writeJSON(w, http.StatusOK, token)
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"username":      adminFrom(r),
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errx.BadRequest(err, "missing file upload"))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, errx.BadRequest(nil, "only PDF files are allowed"))
		return
	}

	path, err := s.saveUpload(file, header.Filename, adminFrom(r))
	if err != nil {
		logx.Error().Err(err).Msg("Resume upload save failed")
		writeError(w, err)
		return
	}

	parsed, err := s.importer.ParseResume(r.Context(), path)
	if err != nil {
		logx.Error().Err(err).Msg("Resume import failed")
		writeError(w, errx.BadRequest(err, "failed to process resume"))
		return
	}

	if err := s.store.Update(parsed); err != nil {
		writeError(w, errx.BadRequest(err, "imported resume failed validation"))
		return
	}
	s.reloader.Reload()

	logx.Info().Str("name", parsed.Name).Msg("Resume imported and context reloaded")
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Resume uploaded and processed successfully",
		"resume": map[string]any{
			"name":             parsed.Name,
			"experience_count": len(parsed.Experience),
			"education_count":  len(parsed.Education),
			"skills_count":     len(parsed.Skills),
			"projects_count":   len(parsed.Projects),
		},
	})
}

func (s *Server) saveUpload(file io.Reader, filename, admin string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(s.cfg.UploadDir, fmt.Sprintf("resume_%s_%s", admin, filepath.Base(filename)))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return path, nil
}

func (s *Server) servePage(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(s.cfg.StaticDir, name))
	}
}

// ================ Admin auth ================

type contextKey string

const adminKey contextKey = "admin"

// requireAdmin verifies the bearer token and stores the admin username on the
// request context.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, errx.Unauthorized(errors.New("missing bearer token")))
			return
		}
		username, err := s.authn.VerifyToken(token)
		if err != nil {
			writeError(w, errx.Unauthorized(err))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey, username)))
	})
}

func adminFrom(r *http.Request) string {
	if v, ok := r.Context().Value(adminKey).(string); ok {
		return v
	}
	return ""
}

// ================ Responses ================

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logx.Error().Err(err).Msg("Response encode failed")
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errx.StatusOf(err), errorResponse{Detail: errx.MessageOf(err)})
}
