package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rtu-canteen/canteen-api/internal/models"
	"github.com/rtu-canteen/canteen-api/internal/notification"
	"github.com/rtu-canteen/canteen-api/internal/repository"
)

type fakeSender struct {
	lastTo   string
	lastBody string
	err      error
}

func (f *fakeSender) Send(ctx context.Context, to, body string) (string, error) {
	f.lastTo = to
	f.lastBody = body
	if f.err != nil {
		return "", f.err
	}
	return "msg-1", nil
}

func seededRepo(t *testing.T) *repository.InMemoryOrderRepository {
	t.Helper()
	repo := repository.NewInMemoryOrderRepository()
	err := repo.Create(context.Background(), &models.Order{
		ID:           "o1",
		CustomerName: "Ravi",
		Items:        []models.OrderItem{{Name: "Tea", Quantity: 2}},
		Total:        20.0,
		Status:       models.StatusPlaced,
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return repo
}

func TestNotificationService_SendSummary(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(seededRepo(t), sender, notification.SMSConfig{
		SenderID:   "CANTEEN",
		AccountID:  "acc",
		AuthToken:  "tok",
		AdminPhone: "+910000000000",
	})

	result, err := svc.SendSummary(context.Background(), "+911234567890")
	if err != nil {
		t.Fatalf("SendSummary() unexpected error = %v", err)
	}

	if !result.Sent {
		t.Error("SendSummary() sent = false, want true")
	}
	if result.MessageID != "msg-1" {
		t.Errorf("message id = %q, want %q", result.MessageID, "msg-1")
	}
	if sender.lastTo != "+911234567890" {
		t.Errorf("sent to %q, want explicit recipient", sender.lastTo)
	}
	if !strings.Contains(sender.lastBody, "Ravi") {
		t.Errorf("body = %q, want order summary", sender.lastBody)
	}
}

func TestNotificationService_SendSummaryDefaultsToAdminPhone(t *testing.T) {
	sender := &fakeSender{}
	svc := NewNotificationService(seededRepo(t), sender, notification.SMSConfig{
		SenderID:   "CANTEEN",
		AccountID:  "acc",
		AuthToken:  "tok",
		AdminPhone: "+910000000000",
	})

	if _, err := svc.SendSummary(context.Background(), ""); err != nil {
		t.Fatalf("SendSummary() unexpected error = %v", err)
	}
	if sender.lastTo != "+910000000000" {
		t.Errorf("sent to %q, want admin phone fallback", sender.lastTo)
	}
}

func TestNotificationService_SendSummaryConfigMissing(t *testing.T) {
	// Incomplete credentials degrade gracefully: no send, preview back.
	sender := &fakeSender{}
	svc := NewNotificationService(seededRepo(t), sender, notification.SMSConfig{})

	result, err := svc.SendSummary(context.Background(), "+911234567890")
	if err != nil {
		t.Fatalf("SendSummary() unexpected error = %v", err)
	}

	if result.Sent {
		t.Error("SendSummary() sent = true, want false with missing config")
	}
	if result.Preview == "" {
		t.Error("SendSummary() preview is empty")
	}
	if sender.lastTo != "" {
		t.Error("SendSummary() attempted a send with missing config")
	}
}

func TestNotificationService_SendSummaryTransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("gateway down")}
	svc := NewNotificationService(seededRepo(t), sender, notification.SMSConfig{
		SenderID:  "CANTEEN",
		AccountID: "acc",
		AuthToken: "tok",
	})

	result, err := svc.SendSummary(context.Background(), "+911234567890")
	if err == nil {
		t.Fatal("SendSummary() expected error on transport failure")
	}

	// The preview survives the failure for diagnostics.
	if result == nil || result.Preview == "" {
		t.Error("SendSummary() should return the preview alongside the error")
	}
	if result.Sent {
		t.Error("SendSummary() sent = true, want false")
	}
}
