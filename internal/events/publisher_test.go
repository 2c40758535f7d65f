package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestEventJSON(t *testing.T) {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	body, err := json.Marshal(Event{Type: PurchaseCreated, PurchaseID: 7, UserID: 3, OccurredAt: at})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"type":"purchase.created","purchaseId":7,"userId":3,"occurredAt":"2025-06-01T10:00:00Z"}`
	if string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestNopPublisher(t *testing.T) {
	if err := (NopPublisher{}).Publish(context.Background(), Event{Type: PurchaseDeleted}); err != nil {
		t.Errorf("NopPublisher.Publish = %v", err)
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_ = r.Publish(context.Background(), Event{Type: PurchaseCreated, PurchaseID: 1})
	_ = r.Publish(context.Background(), Event{Type: PurchaseUpdated, PurchaseID: 1})

	got := r.Events()
	if len(got) != 2 || got[1].Type != PurchaseUpdated {
		t.Fatalf("events = %+v", got)
	}

	r.Err = errors.New("broker down")
	if err := r.Publish(context.Background(), Event{}); err == nil {
		t.Error("expected configured error")
	}
	if len(r.Events()) != 2 {
		t.Error("failed publish must not be recorded")
	}
}
