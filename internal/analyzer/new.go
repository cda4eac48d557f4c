package analyzer

import (
	"context"
	"errors"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
)

var (
	// ErrMissingCredential means OPENAI_API_KEY is not set in the environment.
	ErrMissingCredential = errors.New("OPENAI_API_KEY environment variable is not set")

	// ErrAnalysisFailed wraps a non-recoverable model-call failure.
	ErrAnalysisFailed = errors.New("analysis failed")
)

// completer is the minimal chat-completion surface the analyzer needs; tests
// substitute a fake.
type completer interface {
	complete(ctx context.Context, system, user string, temperature float32) (string, error)
}

type implAnalyzer struct {
	cfg    *config.Config
	logger logger.Logger
	client completer
	apiKey string
}

// New creates an Analyzer backed by the OpenAI API. The credential is
// resolved from the process environment; its absence is surfaced on the
// first call, before any network traffic.
func New(cfg *config.Config, log logger.Logger) Analyzer {
	a := &implAnalyzer{
		cfg:    cfg,
		logger: log,
		apiKey: os.Getenv("OPENAI_API_KEY"),
	}
	if a.apiKey != "" {
		a.client = newOpenAICompleter(a.apiKey, cfg.OpenAI.Model, time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second)
	}
	return a
}

type openaiCompleter struct {
	cli     *openai.Client
	model   string
	timeout time.Duration
}

func newOpenAICompleter(apiKey, model string, timeout time.Duration) *openaiCompleter {
	return &openaiCompleter{
		cli:     openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (c *openaiCompleter) complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
