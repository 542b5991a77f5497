// Package openaicls implements ports.Classifier against an
// OpenAI-compatible chat completion API. One request per call, no retry;
// transport failures surface as errors and the caller decides what a
// failed classification means for the file.
package openaicls

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"ordina/internal/config"
	"ordina/internal/domain"
	"ordina/internal/ports"
)

// Classifier implements ports.Classifier.
type Classifier struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

var _ ports.Classifier = (*Classifier)(nil)

// New creates a classifier from configuration. BaseURL overrides the
// endpoint for non-OpenAI providers.
func New(cfg config.ClassifierConfig) *Classifier {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &Classifier{
		api:     openai.NewClientWithConfig(apiCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// ClassifyByTitle picks a candidate folder from the file name alone.
func (c *Classifier) ClassifyByTitle(ctx context.Context, name string, profiles []domain.FolderProfile) (ports.Decision, error) {
	if len(profiles) == 0 {
		return ports.Unresolved, nil
	}
	answer, err := c.complete(ctx, buildTitlePrompt(name, profiles), 10)
	if err != nil {
		return ports.Unresolved, err
	}
	return parseLabel(answer), nil
}

// ClassifyByContent picks a candidate folder from the file name plus
// extracted text. The text must already be truncated by the caller.
func (c *Classifier) ClassifyByContent(ctx context.Context, name, text string, profiles []domain.FolderProfile) (ports.Decision, error) {
	if len(profiles) == 0 {
		return ports.Unresolved, nil
	}
	answer, err := c.complete(ctx, buildContentPrompt(name, text, profiles), 20)
	if err != nil {
		return ports.Unresolved, err
	}
	return parseLabel(answer), nil
}

func (c *Classifier) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("classifier api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("classifier returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// parseLabel converts the raw model answer into a tagged Decision. The
// "NONE" sentinel stops here and never travels deeper into the pipeline.
func parseLabel(raw string) ports.Decision {
	label := strings.TrimSpace(raw)
	if i := strings.IndexByte(label, '\n'); i >= 0 {
		label = strings.TrimSpace(label[:i])
	}
	label = strings.Trim(label, "\"'`")
	if label == "" || strings.EqualFold(label, "NONE") {
		return ports.Unresolved
	}
	return ports.Decision{Label: label, Resolved: true}
}
