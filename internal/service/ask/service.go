package ask

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/danendrashafi/ai-portfolio/backend/internal/analysis/category"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/ai"
	"github.com/danendrashafi/ai-portfolio/backend/internal/service/fallback"
)

// Source names the path that produced an answer.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Result is one answered question.
type Result struct {
	Response string            `json:"response"`
	Source   Source            `json:"source"`
	Category category.Category `json:"category"`
}

// Generator is the LLM side of the service. *ai.Service implements it.
type Generator interface {
	Generate(ctx context.Context, question string) (string, error)
	Stream(ctx context.Context, question string, onDelta func(string)) (string, error)
	StreamingEnabled() bool
}

// Service answers from the LLM when it can and from the fallback core
// otherwise.
type Service struct {
	llm      Generator
	composer *fallback.Composer
	logger   *zap.Logger
}

// NewService wires the two answering paths. llm may be nil, in which case
// every answer comes from the fallback core.
func NewService(llm Generator, composer *fallback.Composer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{llm: llm, composer: composer, logger: logger.Named("ask")}
}

// Ask tries the LLM first. Every string is a valid question; blank input is
// answered like any other and lands in the general category. Any LLM failure is logged and answered by the
// fallback core; only a fallback *InternalError is returned.
func (s *Service) Ask(ctx context.Context, question string) (Result, error) {
	if s.llm == nil {
		return s.fallback(question, ai.ErrNotConfigured)
	}

	started := time.Now()
	answer, err := s.llm.Generate(ctx, question)
	if err != nil {
		return s.fallback(question, err)
	}

	s.logger.Info("answered by llm", zap.Duration("elapsed", time.Since(started)))
	return Result{Response: answer, Source: SourceLLM, Category: category.Classify(question)}, nil
}

// AskMock answers from the fallback core without contacting the LLM.
func (s *Service) AskMock(_ context.Context, question string) (Result, error) {
	return s.compose(question)
}

// AskStream behaves like Ask but forwards LLM chunks to onDelta as they
// arrive when streaming is enabled. A fallback answer is never chunked.
func (s *Service) AskStream(ctx context.Context, question string, onDelta func(string)) (Result, error) {
	if s.llm == nil || !s.llm.StreamingEnabled() {
		return s.Ask(ctx, question)
	}

	answer, err := s.llm.Stream(ctx, question, onDelta)
	if err != nil {
		return s.fallback(question, err)
	}
	return Result{Response: answer, Source: SourceLLM, Category: category.Classify(question)}, nil
}

func (s *Service) fallback(question string, cause error) (Result, error) {
	var upstream *ai.UpstreamError
	switch {
	case errors.Is(cause, ai.ErrNotConfigured):
		s.logger.Warn("llm not configured, using fallback")
	case errors.As(cause, &upstream):
		s.logger.Warn("llm failed, using fallback",
			zap.String("op", upstream.Op),
			zap.Bool("timeout", upstream.Timeout),
			zap.Error(upstream.Err))
	default:
		s.logger.Warn("llm failed, using fallback", zap.Error(cause))
	}
	return s.compose(question)
}

func (s *Service) compose(question string) (Result, error) {
	answer, err := s.composer.Respond(question)
	if err != nil {
		s.logger.Error("fallback composition failed",
			zap.String("category", string(answer.Category)),
			zap.Error(err))
		return Result{}, err
	}
	return Result{Response: answer.Text, Source: SourceFallback, Category: answer.Category}, nil
}
