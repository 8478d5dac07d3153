package output

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/parrotlabs/parley/core"
)

// WebhookOptions configures a webhook sink.
type WebhookOptions struct {
	// Client is the HTTP client used for delivery. Defaults to a client with
	// a 10 second timeout.
	Client *http.Client
}

// Webhook POSTs the serialized winning response ({"text", "confidence"}) to
// a callback URL as JSON.
type Webhook struct {
	url    string
	client *http.Client
}

var _ core.OutputSink = (*Webhook)(nil)

// NewWebhook creates a webhook sink for the given callback URL.
func NewWebhook(url string, optFns ...func(o *WebhookOptions)) *Webhook {
	opts := WebhookOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Webhook{url: url, client: opts.Client}
}

// Name implements core.OutputSink.
func (w *Webhook) Name() string { return "webhook" }

// Handle implements core.OutputSink.
func (w *Webhook) Handle(ctx context.Context, response core.Response) error {
	body, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook endpoint returned %s", resp.Status)
	}
	return nil
}
