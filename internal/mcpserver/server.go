// Package mcpserver exposes the portfolio assistant as an MCP server so that
// desktop agents can ask about the profile over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	handlerAsk "github.com/danendrashafi/ai-portfolio/backend/internal/handler/ask"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
)

const (
	serverName    = "portfolio"
	serverVersion = "1.0.0"
	summaryURI    = "profile://summary"
)

// Deps holds what the MCP tools need.
type Deps struct {
	Asker   handlerAsk.Asker
	Profile *profile.Profile
	Logger  *zap.Logger
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// NewServer creates an MCP server with the portfolio tool and resource.
func NewServer(deps Deps) *server.MCPServer {
	deps.Logger = deps.logger().Named("mcp")

	s := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions(fmt.Sprintf("Answers questions about %s's portfolio in Indonesian.", deps.Profile.Name)),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask_portfolio",
			mcp.WithDescription("Ask a question about the portfolio owner. Personal topics are politely deflected."),
			mcp.WithString("question", mcp.Description("The question, preferably in Indonesian"), mcp.Required()),
			mcp.WithBoolean("mock", mcp.Description("Answer from the rule-based core without calling the LLM")),
		),
		askPortfolio(deps),
	)

	s.AddResource(
		mcp.NewResource(
			summaryURI,
			"Profile Summary",
			mcp.WithResourceDescription("Public profile summary as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		profileSummary(deps),
	)

	return s
}

// ServeStdio runs s until ctx is done or stdin closes.
func ServeStdio(ctx context.Context, s *server.MCPServer, stdin io.Reader, stdout io.Writer) error {
	return server.NewStdioServer(s).Listen(ctx, stdin, stdout)
}

func askPortfolio(deps Deps) server.ToolHandlerFunc {
	logger := deps.logger()
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := req.RequireString("question")
		if err != nil {
			return mcp.NewToolResultError("question is required"), nil
		}

		ask := deps.Asker.Ask
		if req.GetBool("mock", false) {
			ask = deps.Asker.AskMock
		}

		result, err := ask(ctx, question)
		if err != nil {
			_, message := handlerAsk.StatusFor(err)
			logger.Warn("tool call failed", zap.Error(err))
			return mcp.NewToolResultError(message), nil
		}

		logger.Info("tool call answered",
			zap.String("source", string(result.Source)),
			zap.String("category", string(result.Category)))
		return mcp.NewToolResultText(result.Response), nil
	}
}

func profileSummary(deps Deps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Profile.Summary())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}
