package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/fallback"
)

type scriptedAsker struct {
	deltas []string
	result askService.Result
	err    error
}

func (s scriptedAsker) AskStream(_ context.Context, _ string, onDelta func(string)) (askService.Result, error) {
	for _, d := range s.deltas {
		onDelta(d)
	}
	return s.result, s.err
}

func setupRouter(svc Asker) *chi.Mux {
	r := chi.NewRouter()
	New(svc, nil).RegisterRoutes(r)
	return r
}

func readEvents(t *testing.T, body string) []StreamResponse {
	t.Helper()
	var events []StreamResponse
	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev StreamResponse
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev); err != nil {
			t.Fatalf("bad event %q: %v", line, err)
		}
		events = append(events, ev)
	}
	return events
}

func get(r http.Handler, question string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ask/stream?question="+url.QueryEscape(question), nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestStreamLLMAnswer(t *testing.T) {
	r := setupRouter(scriptedAsker{
		deltas: []string{"Halo ", "dunia"},
		result: askService.Result{Response: "Halo dunia", Source: askService.SourceLLM, Category: "greeting"},
	})

	resp := get(r, "halo")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("unexpected content type %q", ct)
	}

	events := readEvents(t, resp.Body.String())
	var kinds []string
	for _, ev := range events {
		kinds = append(kinds, ev.Event)
	}
	want := "start,delta,delta,message,end"
	if got := strings.Join(kinds, ","); got != want {
		t.Fatalf("events %s, want %s", got, want)
	}
	if events[3].Content != "Halo dunia" || events[3].Source != "llm" {
		t.Fatalf("unexpected message event: %+v", events[3])
	}
	if events[0].StreamID == "" || events[0].StreamID != events[4].StreamID {
		t.Fatalf("stream id not stable: %+v", events)
	}
}

func TestStreamFallbackIsOneMessage(t *testing.T) {
	r := setupRouter(scriptedAsker{
		result: askService.Result{Response: "Jawaban cadangan.", Source: askService.SourceFallback, Category: "hobbies"},
	})

	events := readEvents(t, get(r, "Apa hobimu?").Body.String())
	if len(events) != 3 || events[1].Event != "message" || events[1].Source != "fallback" {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestStreamInternalError(t *testing.T) {
	r := setupRouter(scriptedAsker{err: &fallback.InternalError{Category: "projects", Err: errors.New("missing key")}})

	events := readEvents(t, get(r, "proyek").Body.String())
	last := events[len(events)-1]
	if last.Event != "error" || !strings.HasPrefix(last.Error, "Terjadi kesalahan: ") {
		t.Fatalf("unexpected last event: %+v", last)
	}
}

func TestStreamRequiresQuestionParam(t *testing.T) {
	r := setupRouter(scriptedAsker{})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ask/stream", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	if resp := get(r, "  "); resp.Code != http.StatusOK {
		t.Fatalf("blank question: expected 200, got %d", resp.Code)
	}
}
