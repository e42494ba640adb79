package story

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	einoollama "github.com/cloudwego/eino-ext/components/model/ollama"
	"github.com/cloudwego/eino/components/model"
)

// ErrModelUnavailable indicates the Ollama backend could not serve the
// request (connection failure, non-2xx status, or a reverse proxy answering
// with plain text).
type ErrModelUnavailable struct {
	Provider string
	Body     string
	Cause    error
}

func (e *ErrModelUnavailable) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Cause)
	}
	return fmt.Sprintf("%s unavailable: %s", e.Provider, e.Body)
}

func (e *ErrModelUnavailable) Unwrap() error {
	return e.Cause
}

// NewChatModel creates an Ollama chat model from the config.
func NewChatModel(ctx context.Context, cfg *Config) (model.ToolCallingChatModel, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	modelConfig := &einoollama.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: timeout,
	}

	opts := &einoollama.Options{
		Temperature: cfg.Temperature,
	}
	if cfg.MaxTokens > 0 {
		opts.NumPredict = cfg.MaxTokens
	}
	modelConfig.Options = opts

	// Inject a validating transport to detect non-JSON responses (e.g. a
	// reverse proxy answering "no available server").
	modelConfig.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: &ollamaTransport{inner: http.DefaultTransport, provider: "ollama"},
	}

	return einoollama.NewChatModel(ctx, modelConfig)
}

// ollamaTransport wraps an http.RoundTripper to turn transport failures and
// non-JSON responses into structured errors.
type ollamaTransport struct {
	inner    http.RoundTripper
	provider string
}

func (t *ollamaTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		return nil, &ErrModelUnavailable{Provider: t.provider, Cause: err}
	}

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, &ErrModelUnavailable{
			Provider: t.provider,
			Body:     strings.TrimSpace(string(body)),
		}
	}

	// Ollama sends application/x-ndjson for streaming, application/json
	// otherwise. Anything else did not come from Ollama.
	ct := resp.Header.Get("Content-Type")
	if ct != "" && !strings.Contains(ct, "json") && !strings.Contains(ct, "ndjson") {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, &ErrModelUnavailable{
			Provider: t.provider,
			Body:     strings.TrimSpace(string(body)),
		}
	}

	return resp, nil
}
