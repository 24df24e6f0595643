package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rtu-canteen/canteen-api/internal/notification"
	"github.com/rtu-canteen/canteen-api/internal/repository"
	"github.com/rtu-canteen/canteen-api/internal/service"
	"github.com/rtu-canteen/canteen-api/pkg/logger"
)

type stubSender struct {
	err error
}

func (s *stubSender) Send(ctx context.Context, to, body string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "msg-42", nil
}

func newNotificationHandler(sender service.SMSSender, cfg notification.SMSConfig) *NotificationHandler {
	repo := repository.NewInMemoryOrderRepository()
	svc := service.NewNotificationService(repo, sender, cfg)
	return NewNotificationHandler(svc, logger.New("error"))
}

func TestNotificationHandler_SendSummary(t *testing.T) {
	completeCfg := notification.SMSConfig{
		SenderID:   "CANTEEN",
		AccountID:  "acc",
		AuthToken:  "tok",
		AdminPhone: "+910000000000",
	}

	tests := []struct {
		name           string
		sender         service.SMSSender
		cfg            notification.SMSConfig
		body           string
		expectedStatus int
		wantSent       bool
	}{
		{
			name:           "sent to explicit recipient",
			sender:         &stubSender{},
			cfg:            completeCfg,
			body:           `{"to": "+911234567890"}`,
			expectedStatus: http.StatusOK,
			wantSent:       true,
		},
		{
			name:           "empty body falls back to admin phone",
			sender:         &stubSender{},
			cfg:            completeCfg,
			body:           "",
			expectedStatus: http.StatusOK,
			wantSent:       true,
		},
		{
			name:           "missing credentials degrade to preview",
			sender:         nil,
			cfg:            notification.SMSConfig{},
			body:           "",
			expectedStatus: http.StatusOK,
			wantSent:       false,
		},
		{
			name:           "transport failure returns preview with gateway status",
			sender:         &stubSender{err: errors.New("gateway down")},
			cfg:            completeCfg,
			body:           "",
			expectedStatus: http.StatusBadGateway,
			wantSent:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newNotificationHandler(tt.sender, tt.cfg)

			req := httptest.NewRequest(http.MethodPost, "/api/notifications/summary",
				bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			handler.SendSummary(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			var result service.SummaryResult
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if result.Sent != tt.wantSent {
				t.Errorf("sent = %v, want %v", result.Sent, tt.wantSent)
			}
			if result.Preview == "" {
				t.Error("preview is empty")
			}
		})
	}
}
