// Package preview exposes the compiler over HTTP for the edit-preview loop:
// an editing surface posts configuration snapshots and renders the returned
// document in a sandboxed viewer, queries the recommended image size for its
// crop hint, and triggers test sends of the compiled campaign.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/promokit/promokit/pkg/compiler"
	"github.com/promokit/promokit/pkg/email"
	"github.com/promokit/promokit/pkg/geometry"
	"github.com/promokit/promokit/pkg/httpserver"
	"github.com/promokit/promokit/pkg/logger"
)

// Service wires the compiler and a campaign sender behind a chi router.
type Service struct {
	log    *slog.Logger
	sender email.Sender
}

// New creates the preview service. The sender may be an Outbox in
// development or a PostmarkSender in production.
func New(log *slog.Logger, sender email.Sender) *Service {
	return &Service{log: log, sender: sender}
}

// Router builds the HTTP surface.
func (s *Service) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(context.Background(), s.log))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/compile", s.handleCompile)
		r.Get("/image-size", s.handleImageSize)
		r.Post("/send", s.handleSend)
	})
	return r
}

// handleCompile turns a JSON configuration snapshot into the compiled HTML
// document. `?escape=1` enables the HTML-escaping boundary for untrusted
// configurations.
func (s *Service) handleCompile(w http.ResponseWriter, r *http.Request) {
	cfg, ok := s.decodeConfig(w, r)
	if !ok {
		return
	}

	doc := compiler.Compile(cfg, s.compileOptions(r)...)
	s.requestLog(r).DebugContext(r.Context(), "compiled campaign document",
		logger.Template(string(cfg.Template)),
		slog.Int("products", len(cfg.Products)),
		slog.Int("bytes", len(doc)),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// imageSizeResponse is the editor-facing crop hint. Width repeats the raw
// pixel value so clients don't have to parse the display string.
type imageSizeResponse struct {
	Template string `json:"template"`
	Width    int    `json:"width"`
	Hint     string `json:"hint"`
}

// handleImageSize answers the "recommended image cut" query with the same
// geometry the compiler uses, so the hint can never drift from the output.
func (s *Service) handleImageSize(w http.ResponseWriter, r *http.Request) {
	tpl := geometry.Template(r.URL.Query().Get("template"))
	size := geometry.SizeTier(r.URL.Query().Get("size"))

	width, err := strconv.Atoi(r.URL.Query().Get("width"))
	if err != nil || width <= 0 {
		s.writeError(w, r, http.StatusBadRequest, errors.New("width must be a positive integer"))
		return
	}

	s.writeJSON(w, http.StatusOK, imageSizeResponse{
		Template: string(tpl),
		Width:    geometry.ImageWidth(tpl, width, size),
		Hint:     geometry.RecommendedCut(tpl, width, size),
	})
}

// sendRequest compiles and delivers a campaign in one call.
type sendRequest struct {
	To       string          `json:"to"`
	Subject  string          `json:"subject"`
	Campaign string          `json:"campaign,omitempty"`
	Config   compiler.Config `json:"config"`
}

func (s *Service) handleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.Join(compiler.ErrParseConfig, err))
		return
	}

	params := email.SendParams{
		To:       req.To,
		Subject:  req.Subject,
		HTML:     compiler.Compile(req.Config, s.compileOptions(r)...),
		Campaign: req.Campaign,
	}
	if err := s.sender.Send(r.Context(), params); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, email.ErrInvalidParams) {
			status = http.StatusBadRequest
		}
		s.writeError(w, r, status, err)
		return
	}

	s.requestLog(r).InfoContext(r.Context(), "campaign sent",
		logger.Campaign(req.Campaign),
		logger.Template(string(req.Config.Template)),
	)
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

func (s *Service) decodeConfig(w http.ResponseWriter, r *http.Request) (compiler.Config, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.Join(compiler.ErrParseConfig, err))
		return compiler.Config{}, false
	}
	cfg, err := compiler.ParseJSON(body)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return compiler.Config{}, false
	}
	return cfg, true
}

func (s *Service) compileOptions(r *http.Request) []compiler.Option {
	if r.URL.Query().Get("escape") == "1" {
		return []compiler.Option{compiler.WithEscaping()}
	}
	return nil
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.requestLog(r).WarnContext(r.Context(), "request failed",
		slog.Int("status", status),
		logger.Error(err),
	)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// requestLog binds the chi request ID to the service logger so every line
// emitted while handling one request can be correlated.
func (s *Service) requestLog(r *http.Request) *slog.Logger {
	return s.log.With(logger.RequestID(middleware.GetReqID(r.Context())))
}
