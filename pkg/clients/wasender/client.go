package wasender

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/arifsetiawan/motocare/internal/config"
)

// Client exposes the messaging gateway operation used by the dispatcher.
type Client interface {
	SendMessage(ctx context.Context, req SendMessageRequest) error
}

// SendMessageRequest represents one outbound reminder message.
type SendMessageRequest struct {
	Receiver string
	Text     string
}

// UpstreamError is returned when the gateway answers with a non-200 status.
// Body carries the upstream response text verbatim for the caller to surface.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("gateway rejected message: status=%d, body=%s", e.StatusCode, e.Body)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	cfg config.NotifConfig
}

// NewClient builds a gateway client using the provided configuration values.
func NewClient(cfg config.NotifConfig) *APIClient {
	return &APIClient{cfg: cfg}
}

// SendURL returns the endpoint the client posts to. The configured base URL
// is concatenated with the send path verbatim, so NOTIF_BASE_URL must carry
// its own trailing slash.
func (c *APIClient) SendURL() string {
	return c.cfg.BaseURL + "api/send-message"
}

// SendMessage posts one reminder to the gateway. A fresh transport client is
// built per call with an explicit timeout; nothing is kept alive between
// sends.
func (c *APIClient) SendMessage(ctx context.Context, req SendMessageRequest) error {
	payload := map[string]any{
		"apikey":   c.cfg.APIKey,
		"receiver": req.Receiver,
		"mtype":    "image",
		"text":     req.Text,
		"url":      c.cfg.ImageURL,
	}

	httpClient := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(time.Duration(c.cfg.TimeoutSeconds) * time.Second)

	resp, err := httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.SendURL())
	if err != nil {
		return fmt.Errorf("send reminder message: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return nil
}
