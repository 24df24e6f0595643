package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rtu-canteen/canteen-api/internal/notification"
	"github.com/rtu-canteen/canteen-api/internal/repository"
)

var ErrNoRecipient = errors.New("no recipient phone number configured")

// SMSSender sends a text message and returns the gateway message id.
type SMSSender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// SummaryResult is the outcome of a summary notification attempt. The
// preview is always populated, including when sending was skipped or
// failed, so callers can inspect what was (or would have been) sent.
type SummaryResult struct {
	Sent      bool   `json:"sent"`
	Preview   string `json:"preview"`
	MessageID string `json:"message_id,omitempty"`
}

// NotificationService renders and delivers order summaries over SMS.
type NotificationService struct {
	repo   repository.OrderRepository
	sender SMSSender
	cfg    notification.SMSConfig
}

// NewNotificationService creates a notification service. sender may be
// nil when the gateway is not configured.
func NewNotificationService(repo repository.OrderRepository, sender SMSSender, cfg notification.SMSConfig) *NotificationService {
	return &NotificationService{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
	}
}

// SendSummary formats a summary of recent orders and sends it to the
// given phone number, falling back to the configured admin phone when
// to is empty. With incomplete gateway credentials no send is
// attempted and the preview is returned with Sent=false. On transport
// failure the preview is returned alongside the error.
func (s *NotificationService) SendSummary(ctx context.Context, to string) (*SummaryResult, error) {
	orders, err := s.repo.ListRecent(ctx, notification.DefaultMaxShown)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	preview := notification.FormatSummary(orders, notification.DefaultMaxShown)

	if !s.cfg.Complete() || s.sender == nil {
		return &SummaryResult{Sent: false, Preview: preview}, nil
	}

	if to == "" {
		to = s.cfg.AdminPhone
	}
	if to == "" {
		return &SummaryResult{Sent: false, Preview: preview}, ErrNoRecipient
	}

	messageID, err := s.sender.Send(ctx, to, preview)
	if err != nil {
		return &SummaryResult{Sent: false, Preview: preview}, fmt.Errorf("failed to send summary: %w", err)
	}

	return &SummaryResult{Sent: true, Preview: preview, MessageID: messageID}, nil
}
