package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	askHandler "github.com/danendrashafi/ai-portfolio/backend/internal/handler/ask"
	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
)

// Asker is the part of the ask service the socket needs.
type Asker interface {
	AskStream(ctx context.Context, question string, onDelta func(string)) (askService.Result, error)
	AskMock(ctx context.Context, question string) (askService.Result, error)
}

// Handler answers questions over a WebSocket connection.
type Handler struct {
	svc      Asker
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

// New creates the WebSocket handler.
func New(svc Asker, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		svc:    svc,
		logger: logger.Named("ws"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes registers GET /ws/ask.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/ask", h.handleWebSocket)
}

type inboundMessage struct {
	Type     string `json:"type"`
	Question string `json:"question"`
	Mock     bool   `json:"mock"`
}

type outgoingMessage struct {
	Type         string      `json:"type"`
	ConnectionID string      `json:"connectionId"`
	Data         interface{} `json:"data,omitempty"`
	Timestamp    int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	logger := h.logger.With(zap.String("connection_id", connID))
	logger.Info("connection opened")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	go pingLoop(ctx, conn)

	send := func(kind string, data interface{}) {
		conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		msg := outgoingMessage{Type: kind, ConnectionID: connID, Data: data, Timestamp: time.Now().Unix()}
		if err := conn.WriteJSON(msg); err != nil {
			logger.Debug("write failed", zap.String("type", kind), zap.Error(err))
		}
	}

	send("connected", nil)

	for {
		var msg inboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("read error", zap.Error(err))
			}
			logger.Info("connection closed")
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		switch msg.Type {
		case "ping":
			send("pong", nil)
		case "ask", "":
			h.answer(ctx, logger, msg, send)
		default:
			send("error", map[string]string{"message": "unknown message type: " + msg.Type})
		}
	}
}

func (h *Handler) answer(ctx context.Context, logger *zap.Logger, msg inboundMessage, send func(string, interface{})) {
	var (
		result askService.Result
		err    error
	)
	if msg.Mock {
		result, err = h.svc.AskMock(ctx, msg.Question)
	} else {
		result, err = h.svc.AskStream(ctx, msg.Question, func(delta string) {
			send("delta", map[string]string{"content": delta})
		})
	}
	if err != nil {
		_, message := askHandler.StatusFor(err)
		logger.Error("answering failed", zap.Error(err))
		send("error", map[string]string{"message": message})
		return
	}

	send("result", result)
}

func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// WriteControl may run concurrently with the reply writer.
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}
