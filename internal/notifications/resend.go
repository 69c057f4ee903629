package notifications

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Email is one outbound message for the transactional email provider.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Cc      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendResult carries the provider acknowledgment for a successful send.
type SendResult struct {
	ID string `json:"id"`
}

// ProviderError is a structured error returned by the email provider.
type ProviderError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("email provider error (status %d)", e.StatusCode)
}

// Client sends emails through the Resend REST API. Exactly one attempt per
// call; retrying is the caller's decision (and nothing here retries).
type Client interface {
	Send(ctx context.Context, email *Email) (*SendResult, error)
}

type resendClient struct {
	http *resty.Client
}

// ClientConfig holds Resend API connection settings
type ClientConfig struct {
	APIKey  string
	BaseURL string
}

func NewResendClient(cfg ClientConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetRetryCount(0)

	return &resendClient{http: client}
}

func (c *resendClient) Send(ctx context.Context, email *Email) (*SendResult, error) {
	var result SendResult
	var apiErr ProviderError

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(email).
		SetResult(&result).
		SetError(&apiErr).
		Post("/emails")
	if err != nil {
		return nil, fmt.Errorf("email send failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode()
		}
		return nil, &apiErr
	}

	return &result, nil
}
