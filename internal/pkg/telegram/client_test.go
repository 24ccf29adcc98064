package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		Token:   "test-token",
		BaseURL: server.URL,
	})

	err := client.SendText(context.Background(), "423781265", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "423781265", gotBody["chat_id"])
	assert.Equal(t, "hello", gotBody["text"])
}

func TestSendText_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Token: "test-token", BaseURL: server.URL})

	err := client.SendText(context.Background(), "423781265", "hello")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.Code)
	assert.Contains(t, apiErr.Description, "blocked")
}

func TestGetMe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getMe", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"username":"praktika_bot"}}`))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{Token: "test-token", BaseURL: server.URL})
	assert.NoError(t, client.GetMe(context.Background()))
}

func TestClientDefaults(t *testing.T) {
	client := NewClient(ClientConfig{Token: "t"})
	assert.Equal(t, "https://api.telegram.org", client.config.BaseURL)
	assert.NotZero(t, client.config.Timeout)
}
