package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
)

type scriptedAsker struct{}

func (scriptedAsker) AskStream(_ context.Context, question string, onDelta func(string)) (askService.Result, error) {
	onDelta("Halo ")
	onDelta("juga")
	return askService.Result{Response: "Halo juga", Source: askService.SourceLLM, Category: "greeting"}, nil
}

func (scriptedAsker) AskMock(_ context.Context, question string) (askService.Result, error) {
	return askService.Result{Response: "mock: " + question, Source: askService.SourceFallback, Category: "general"}, nil
}

type received struct {
	Type         string                 `json:"type"`
	ConnectionID string                 `json:"connectionId"`
	Data         map[string]interface{} `json:"data"`
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	r := chi.NewRouter()
	New(scriptedAsker{}, nil).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/ask"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial err: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func read(t *testing.T, conn *websocket.Conn) received {
	t.Helper()
	var msg received
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read err: %v", err)
	}
	return msg
}

func TestWebSocketAsk(t *testing.T) {
	conn := dial(t)

	hello := read(t, conn)
	if hello.Type != "connected" || hello.ConnectionID == "" {
		t.Fatalf("unexpected greeting: %+v", hello)
	}

	if err := conn.WriteJSON(map[string]any{"type": "ask", "question": "halo"}); err != nil {
		t.Fatalf("write err: %v", err)
	}

	for _, want := range []string{"delta", "delta"} {
		if msg := read(t, conn); msg.Type != want {
			t.Fatalf("expected %s, got %+v", want, msg)
		}
	}
	result := read(t, conn)
	if result.Type != "result" || result.Data["response"] != "Halo juga" || result.Data["source"] != "llm" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.ConnectionID != hello.ConnectionID {
		t.Fatalf("connection id changed")
	}
}

func TestWebSocketMockAndErrors(t *testing.T) {
	conn := dial(t)
	read(t, conn)

	conn.WriteJSON(map[string]any{"type": "ask", "question": "apa?", "mock": true})
	if msg := read(t, conn); msg.Type != "result" || msg.Data["response"] != "mock: apa?" {
		t.Fatalf("unexpected mock result: %+v", msg)
	}

	conn.WriteJSON(map[string]any{"type": "ask", "question": "  ", "mock": true})
	if msg := read(t, conn); msg.Type != "result" || msg.Data["category"] != "general" {
		t.Fatalf("blank question not answered: %+v", msg)
	}

	conn.WriteJSON(map[string]any{"type": "dance"})
	if msg := read(t, conn); msg.Type != "error" {
		t.Fatalf("expected error for unknown type, got %+v", msg)
	}

	conn.WriteJSON(map[string]any{"type": "ping"})
	if msg := read(t, conn); msg.Type != "pong" {
		t.Fatalf("expected pong, got %+v", msg)
	}
}
