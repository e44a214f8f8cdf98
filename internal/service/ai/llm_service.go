package ai

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/danendrashafi/ai-portfolio/backend/internal/config"
	"github.com/danendrashafi/ai-portfolio/backend/internal/model/profile"
)

// Service answers questions about the profile through an LLM chain.
type Service struct {
	chain  compose.Runnable[map[string]any, *schema.Message]
	prompt *ProfilePrompt
	cfg    config.AIConfig
	logger *zap.Logger
}

// NewService builds the chat model from cfg. It returns ErrNotConfigured
// when no API key is set.
func NewService(ctx context.Context, p *profile.Profile, cfg config.AIConfig, logger *zap.Logger) (*Service, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return NewServiceWithModel(ctx, chatModel, p, cfg, logger)
}

// NewServiceWithModel wires an existing chat model into the prompt chain.
func NewServiceWithModel(ctx context.Context, chatModel model.BaseChatModel, p *profile.Profile, cfg config.AIConfig, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// {system} and {prompt} are the only variables; the profile JSON inside
	// the prompt value is not parsed as a template.
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{prompt}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chain:  runnable,
		prompt: NewProfilePrompt(p),
		cfg:    cfg,
		logger: logger.Named("ai"),
	}, nil
}

// StreamingEnabled reports whether streaming surfaces should use Stream.
func (s *Service) StreamingEnabled() bool {
	return s != nil && s.cfg.StreamResponse
}

// Generate returns the model's answer to question. A nil Service reports
// ErrNotConfigured; every provider failure is an *UpstreamError.
func (s *Service) Generate(ctx context.Context, question string) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	response, err := s.chain.Invoke(ctx, s.buildChainInput(question))
	if err != nil {
		return "", s.upstream(ctx, "generate", err)
	}

	content := ""
	if response != nil {
		content = strings.TrimSpace(response.Content)
	}
	if content == "" {
		return "", &UpstreamError{Op: "generate", Err: errEmptyCompletion}
	}

	s.logger.Info("generated answer",
		zap.Int("length", len(content)),
		zap.Duration("elapsed", time.Since(started)))
	return content, nil
}

// Stream generates the answer chunk by chunk, calling onDelta for every
// non-empty chunk, and returns the concatenated answer. Chunks already
// delivered are not retracted when the stream later fails.
func (s *Service) Stream(ctx context.Context, question string, onDelta func(string)) (string, error) {
	if s == nil {
		return "", ErrNotConfigured
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stream, err := s.chain.Stream(ctx, s.buildChainInput(question))
	if err != nil {
		return "", s.upstream(ctx, "stream", err)
	}
	defer stream.Close()

	chunks := make([]*schema.Message, 0, 16)
	for {
		chunk, recvErr := stream.Recv()
		if errors.Is(recvErr, io.EOF) {
			break
		}
		if recvErr != nil {
			return "", s.upstream(ctx, "stream", recvErr)
		}
		if chunk == nil {
			continue
		}

		chunks = append(chunks, chunk)
		if chunk.Content != "" && onDelta != nil {
			onDelta(chunk.Content)
		}
	}

	if len(chunks) == 0 {
		return "", &UpstreamError{Op: "stream", Err: errEmptyCompletion}
	}

	response, err := schema.ConcatMessages(chunks)
	if err != nil {
		return "", &UpstreamError{Op: "stream", Err: err}
	}

	content := strings.TrimSpace(response.Content)
	if content == "" {
		return "", &UpstreamError{Op: "stream", Err: errEmptyCompletion}
	}
	return content, nil
}

func (s *Service) buildChainInput(question string) map[string]any {
	return map[string]any{
		"system": s.prompt.System(),
		"prompt": s.prompt.User(question),
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

func (s *Service) upstream(ctx context.Context, op string, err error) error {
	return &UpstreamError{
		Op:      op,
		Timeout: errors.Is(ctx.Err(), context.DeadlineExceeded),
		Err:     err,
	}
}
