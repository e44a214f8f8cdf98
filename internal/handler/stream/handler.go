package stream

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	askHandler "github.com/danendrashafi/ai-portfolio/backend/internal/handler/ask"
	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
	"github.com/danendrashafi/ai-portfolio/backend/pkg/utils"
)

// Asker answers a question, forwarding LLM chunks as they arrive.
type Asker interface {
	AskStream(ctx context.Context, question string, onDelta func(string)) (askService.Result, error)
}

// Handler streams answers via Server-Sent Events.
type Handler struct {
	svc    Asker
	logger *zap.Logger
}

// New creates a new stream handler.
func New(svc Asker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{svc: svc, logger: logger.Named("http")}
}

// RegisterRoutes registers GET /ask/stream.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ask/stream", h.handleStream)
}

// StreamResponse is the payload of every event. The final "message" event
// carries the complete answer; when the LLM fails midway it holds the
// fallback answer and replaces any deltas already sent.
type StreamResponse struct {
	Event    string `json:"event"`
	StreamID string `json:"streamId"`
	Content  string `json:"content,omitempty"`
	Source   string `json:"source,omitempty"`
	Category string `json:"category,omitempty"`
	Finished bool   `json:"finished,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("question") {
		utils.RespondError(w, http.StatusBadRequest, "question query parameter is required")
		return
	}

	question := query.Get("question")

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	utils.SetupSSEHeaders(w)
	w.WriteHeader(http.StatusOK)

	streamID := uuid.NewString()
	logger := h.logger.With(zap.String("stream_id", streamID))
	send := func(resp StreamResponse) {
		resp.StreamID = streamID
		if err := utils.SendSSEEvent(w, flusher, resp.Event, resp); err != nil {
			logger.Debug("sse write failed", zap.String("event", resp.Event), zap.Error(err))
		}
	}

	send(StreamResponse{Event: "start"})

	result, err := h.svc.AskStream(r.Context(), question, func(delta string) {
		send(StreamResponse{Event: "delta", Content: delta})
	})
	if err != nil {
		_, message := askHandler.StatusFor(err)
		logger.Error("stream answering failed", zap.Error(err))
		send(StreamResponse{Event: "error", Error: message})
		return
	}

	send(StreamResponse{
		Event:    "message",
		Content:  result.Response,
		Source:   string(result.Source),
		Category: string(result.Category),
	})
	send(StreamResponse{Event: "end", Finished: true})

	logger.Info("stream completed", zap.String("source", string(result.Source)))
}
