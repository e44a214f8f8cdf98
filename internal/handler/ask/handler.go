package ask

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
	"github.com/danendrashafi/ai-portfolio/backend/pkg/utils"
)

const rootMessage = "AI Portfolio Backend berjalan. Gunakan endpoint /ask untuk bertanya."

// Asker is the part of the ask service the HTTP surface needs.
type Asker interface {
	Ask(ctx context.Context, question string) (askService.Result, error)
	AskMock(ctx context.Context, question string) (askService.Result, error)
}

// Handler serves the question endpoints.
type Handler struct {
	svc    Asker
	logger *zap.Logger
}

// New creates the ask handler.
func New(svc Asker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger.Named("http")}
}

// RegisterRoutes registers the root, /ask and /ask-mock routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleRoot)
	r.Post("/ask", h.handleAsk)
	r.Post("/ask-mock", h.handleAskMock)
}

// Question is required but may be empty; "" is answered as a general
// question.
type questionRequest struct {
	Question *string `json:"question"`
}

type answerResponse struct {
	Response string `json:"response"`
}

func (h *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.svc.Ask)
}

func (h *Handler) handleAskMock(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, h.svc.AskMock)
}

func (h *Handler) answer(w http.ResponseWriter, r *http.Request, fn func(context.Context, string) (askService.Result, error)) {
	var payload questionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Question == nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := fn(r.Context(), *payload.Question)
	if err != nil {
		status, message := StatusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("answering failed", zap.String("path", r.URL.Path), zap.Error(err))
		}
		utils.RespondError(w, status, message)
		return
	}

	w.Header().Set("X-Answer-Source", string(result.Source))
	w.Header().Set("X-Answer-Category", string(result.Category))
	utils.RespondJSON(w, http.StatusOK, answerResponse{Response: result.Response})
}

// StatusFor maps an ask error to its HTTP status and detail message. Only
// the fallback core can fail, so every error is a 500.
func StatusFor(err error) (int, string) {
	return http.StatusInternalServerError, "Terjadi kesalahan: " + err.Error()
}
