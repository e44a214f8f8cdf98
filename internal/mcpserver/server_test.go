package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
	askService "github.com/danendrashafi/ai-portfolio/backend/internal/service/ask"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/fallback"
)

type stubAsker struct {
	mockCalls int
	err       error
}

func (s *stubAsker) Ask(_ context.Context, q string) (askService.Result, error) {
	return askService.Result{Response: "llm: " + q, Source: askService.SourceLLM}, s.err
}

func (s *stubAsker) AskMock(_ context.Context, q string) (askService.Result, error) {
	s.mockCalls++
	return askService.Result{Response: "mock: " + q, Source: askService.SourceFallback}, s.err
}

func makeCallToolRequest(args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "ask_portfolio",
			Arguments: args,
		},
	}
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func TestAskPortfolio(t *testing.T) {
	asker := &stubAsker{}
	handler := askPortfolio(Deps{Asker: asker, Profile: profile.MustDefault()})

	result, err := handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": "halo"}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "llm: halo", textOf(t, result))

	result, err = handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": "halo", "mock": true}))
	require.NoError(t, err)
	assert.Equal(t, "mock: halo", textOf(t, result))
	assert.Equal(t, 1, asker.mockCalls)
}

func TestAskPortfolioLogger(t *testing.T) {
	// Zero Deps.Logger must not panic.
	handler := askPortfolio(Deps{Asker: &stubAsker{}, Profile: profile.MustDefault()})
	require.NotPanics(t, func() {
		_, _ = handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": "halo"}))
	})

	core, logs := observer.New(zap.InfoLevel)
	handler = askPortfolio(Deps{Asker: &stubAsker{}, Profile: profile.MustDefault(), Logger: zap.New(core)})
	_, err := handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": "halo"}))
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("tool call answered").Len())
	assert.Equal(t, "llm", logs.All()[0].ContextMap()["source"])
}

func TestAskPortfolioErrors(t *testing.T) {
	handler := askPortfolio(Deps{Asker: &stubAsker{}, Profile: profile.MustDefault()})
	result, err := handler(context.Background(), makeCallToolRequest(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	failing := &stubAsker{err: &fallback.InternalError{Category: "projects", Err: errors.New("missing key")}}
	handler = askPortfolio(Deps{Asker: failing, Profile: profile.MustDefault()})
	result, err = handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": "proyek"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(textOf(t, result), "Terjadi kesalahan: "))
}

func TestAskPortfolioWithFallbackCore(t *testing.T) {
	composer, err := fallback.NewComposer(profile.MustDefault(), fallback.WithRand(fallback.NewSeeded(5)))
	require.NoError(t, err)
	handler := askPortfolio(Deps{Asker: askService.NewService(nil, composer, nil), Profile: profile.MustDefault()})

	result, err := handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": "Siapa pacarmu?"}))
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(textOf(t, result)), "pacar")

	result, err = handler(context.Background(), makeCallToolRequest(map[string]interface{}{"question": ""}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.NotEmpty(t, textOf(t, result))
}

func TestProfileSummaryResource(t *testing.T) {
	p := profile.MustDefault()
	handler := profileSummary(Deps{Profile: p})

	contents, err := handler(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: summaryURI},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, summaryURI, tc.URI)

	var got profile.Summary
	require.NoError(t, json.Unmarshal([]byte(tc.Text), &got))
	assert.Equal(t, p.Name, got.Name)
}

func TestNewServer(t *testing.T) {
	s := NewServer(Deps{Asker: &stubAsker{}, Profile: profile.MustDefault()})
	require.NotNil(t, s)
}
