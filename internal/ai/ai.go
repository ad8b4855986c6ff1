// Package ai provides an optional LLM-backed polarity scorer. It satisfies
// sentiment.Analyzer and degrades to the local lexicon on any provider
// failure, so the pipeline never depends on a remote call succeeding.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/config"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
)

const scorePrompt = `Rate the overall sentiment of this news text as a single polarity number between -1.0 (strongly negative) and 1.0 (strongly positive). 0.0 is neutral.

Text: %s

Respond with ONLY the number, nothing else.`

// provider issues one scoring call against a remote model.
type provider interface {
	score(ctx context.Context, text string) (float64, error)
}

// Remote scores text with a configured LLM provider. Errors and unparseable
// replies fall back to the local analyzer silently.
type Remote struct {
	provider provider
	fallback sentiment.Analyzer
	timeout  time.Duration
}

// New creates a Remote scorer from the given AI config.
func New(cfg *config.AIConfig, apiKey string) (*Remote, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("AI not configured")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	var p provider
	switch cfg.Provider {
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		p = &claudeProvider{apiKey: apiKey, model: model, client: client}
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		p = &openaiProvider{apiKey: apiKey, model: model, client: client}
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: claude, openai)", cfg.Provider)
	}

	return &Remote{
		provider: p,
		fallback: sentiment.NewLexicon(),
		timeout:  15 * time.Second,
	}, nil
}

func (r *Remote) Score(text string) float64 {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	p, err := r.provider.score(ctx, text)
	if err != nil {
		return r.fallback.Score(text)
	}
	return p
}

// parsePolarity extracts the first numeric token from a model reply and
// clamps it to [-1, 1].
func parsePolarity(reply string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(reply))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty reply")
	}
	tok := strings.Trim(fields[0], "\"'`,;:")
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("non-numeric reply %q", reply)
	}
	if v < -1.0 {
		v = -1.0
	}
	if v > 1.0 {
		v = 1.0
	}
	return v, nil
}

// --- Claude provider ---

type claudeProvider struct {
	apiKey string
	model  string
	client *http.Client
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *claudeProvider) score(ctx context.Context, text string) (float64, error) {
	body, _ := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: 16,
		Messages:  []claudeMessage{{Role: "user", Content: fmt.Sprintf(scorePrompt, text)}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("claude API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("claude API %d: %s", resp.StatusCode, string(b))
	}

	var cr claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return 0, err
	}
	if len(cr.Content) == 0 {
		return 0, fmt.Errorf("empty claude response")
	}
	return parsePolarity(cr.Content[0].Text)
}

// --- OpenAI provider ---

type openaiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

type openaiRequest struct {
	Model    string          `json:"model"`
	Messages []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiProvider) score(ctx context.Context, text string) (float64, error) {
	body, _ := json.Marshal(openaiRequest{
		Model:    o.model,
		Messages: []openaiMessage{{Role: "user", Content: fmt.Sprintf(scorePrompt, text)}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("openai API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, fmt.Errorf("openai API %d: %s", resp.StatusCode, string(b))
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return 0, err
	}
	if len(or.Choices) == 0 {
		return 0, fmt.Errorf("empty openai response")
	}
	return parsePolarity(or.Choices[0].Message.Content)
}
