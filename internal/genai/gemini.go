package genai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/config"
	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiClient implements domain.ContentGenerator against the Gemini API
// through langchaingo. Constructed once at startup and injected; there is
// no package-global model client.
type GeminiClient struct {
	llm     *googleai.GoogleAI
	timeout time.Duration
}

// NewGeminiClient creates the generation-model client.
func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		llm:     llm,
		timeout: cfg.Timeout,
	}, nil
}

// GenerateContent performs the single synchronous model call: text in,
// text out. It is never retried; a caller-side timeout is the only
// cancellation mechanism and surfaces as an upstream timeout.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	response, err := llms.GenerateFromSinglePrompt(callCtx, c.llm, prompt, llms.WithTemperature(0.1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("Generation model request timed out",
				zap.Duration("timeout", c.timeout),
				zap.Error(err))
			return "", domain.NewUpstreamTimeoutError(err)
		}
		l.Error("Generation model call failed", zap.Error(err))
		return "", domain.NewUpstreamFormatError("The generation model call failed", err)
	}

	l.Debug("Generation model call completed",
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_length", len(response)))
	return response, nil
}

var _ domain.ContentGenerator = (*GeminiClient)(nil)
