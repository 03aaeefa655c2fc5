package wasender

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifsetiawan/motocare/internal/config"
)

func gatewayConfig(baseURL string) config.NotifConfig {
	return config.NotifConfig{
		APIKey:         "secret",
		BaseURL:        baseURL,
		ImageURL:       "https://cdn.example.com/promo.jpeg",
		TimeoutSeconds: 5,
	}
}

func TestSendMessagePostsExpectedPayload(t *testing.T) {
	var got map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/send-message", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := NewClient(gatewayConfig(ts.URL + "/"))
	err := client.SendMessage(context.Background(), SendMessageRequest{Receiver: "+62812345678", Text: "halo"})

	require.NoError(t, err)
	assert.Equal(t, "secret", got["apikey"])
	assert.Equal(t, "+62812345678", got["receiver"])
	assert.Equal(t, "image", got["mtype"])
	assert.Equal(t, "halo", got["text"])
	assert.Equal(t, "https://cdn.example.com/promo.jpeg", got["url"])
}

// The send endpoint is built by plain concatenation; the base URL has to
// supply its own trailing slash. This pins the contract down so nobody
// "fixes" it by inserting a separator and breaks existing deployments.
func TestSendURLIsLiteralConcatenation(t *testing.T) {
	withSlash := NewClient(gatewayConfig("https://gateway.example.com/"))
	assert.Equal(t, "https://gateway.example.com/api/send-message", withSlash.SendURL())

	withoutSlash := NewClient(gatewayConfig("https://gateway.example.com"))
	assert.Equal(t, "https://gateway.example.comapi/send-message", withoutSlash.SendURL())
}

func TestSendMessageUpstreamRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("gateway busy"))
	}))
	defer ts.Close()

	client := NewClient(gatewayConfig(ts.URL + "/"))
	err := client.SendMessage(context.Background(), SendMessageRequest{Receiver: "+62812345678", Text: "halo"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	assert.Equal(t, "gateway busy", upstream.Body)
}

func TestSendMessageTransportFault(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := ts.URL + "/"
	ts.Close()

	client := NewClient(gatewayConfig(baseURL))
	err := client.SendMessage(context.Background(), SendMessageRequest{Receiver: "+62812345678", Text: "halo"})

	require.Error(t, err)
	var upstream *UpstreamError
	assert.False(t, errors.As(err, &upstream), "transport faults must not masquerade as upstream rejections")
}
