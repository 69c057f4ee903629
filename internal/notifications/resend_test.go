package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResendClientSendSuccess(t *testing.T) {
	var received Email
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		authHeader = r.Header.Get("Authorization")

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendResult{ID: "email_123"})
	}))
	defer server.Close()

	client := NewResendClient(ClientConfig{APIKey: "re_test_key", BaseURL: server.URL})

	result, err := client.Send(context.Background(), &Email{
		From:    "Bookceleb <booking@bookceleb.com>",
		To:      []string{"oluwaladen@gmail.com"},
		Cc:      []string{"requester@example.com"},
		Subject: "New Booking Request from Jordan Smith",
		HTML:    "<h2>New Booking Request Details</h2>",
	})

	assert.NoError(t, err)
	assert.Equal(t, "email_123", result.ID)
	assert.Equal(t, "Bearer re_test_key", authHeader)
	assert.Equal(t, "Bookceleb <booking@bookceleb.com>", received.From)
	assert.Equal(t, []string{"oluwaladen@gmail.com"}, received.To)
	assert.Equal(t, []string{"requester@example.com"}, received.Cc)
}

func TestResendClientSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(ProviderError{
			StatusCode: 422,
			Name:       "validation_error",
			Message:    "Invalid `to` field",
		})
	}))
	defer server.Close()

	client := NewResendClient(ClientConfig{APIKey: "re_test_key", BaseURL: server.URL})

	result, err := client.Send(context.Background(), &Email{To: []string{"bad"}})

	assert.Nil(t, result)
	var providerErr *ProviderError
	assert.ErrorAs(t, err, &providerErr)
	assert.Equal(t, 422, providerErr.StatusCode)
	assert.Equal(t, "Invalid `to` field", providerErr.Message)
}

func TestResendClientSingleAttempt(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewResendClient(ClientConfig{APIKey: "re_test_key", BaseURL: server.URL})

	_, err := client.Send(context.Background(), &Email{})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
