package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// SMSConfig holds the gateway credentials. All three credential fields
// must be present before a send is attempted.
type SMSConfig struct {
	APIURL     string
	SenderID   string
	AccountID  string
	AuthToken  string
	AdminPhone string
}

// Complete reports whether the credentials required to talk to the
// gateway are all configured.
func (c SMSConfig) Complete() bool {
	return c.SenderID != "" && c.AccountID != "" && c.AuthToken != ""
}

// SMSClient sends text messages through an HTTP SMS gateway.
type SMSClient struct {
	cfg    SMSConfig
	client *http.Client
}

// NewSMSClient creates a gateway client from the given config.
func NewSMSClient(cfg SMSConfig) *SMSClient {
	return &SMSClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send delivers body to the given phone number and returns the
// gateway-assigned message id. The configured sender id is used as the
// from address.
func (c *SMSClient) Send(ctx context.Context, to, body string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.cfg.SenderID)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.cfg.AccountID, c.cfg.AuthToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var result struct {
		MessageID string `json:"message_id"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode gateway response: %w", err)
	}

	return result.MessageID, nil
}
