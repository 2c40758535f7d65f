// internal/service/purchases.go
package service

import (
	"context"
	"log/slog"
	"purchase-tracker/internal/domain"
	"purchase-tracker/internal/events"
	"purchase-tracker/internal/storage"
	"time"
)

// PurchaseService работает с покупкой как с единым агрегатом:
// расходы и оплаты пишутся только вместе с ней.
type PurchaseService struct {
	store     storage.PurchaseStorage
	publisher events.Publisher
	now       func() time.Time
}

func NewPurchaseService(store storage.PurchaseStorage, publisher events.Publisher) *PurchaseService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &PurchaseService{store: store, publisher: publisher, now: time.Now}
}

func (s *PurchaseService) GetAll(ctx context.Context) ([]domain.Purchase, error) {
	return s.store.ListPurchases(ctx)
}

func (s *PurchaseService) GetOne(ctx context.Context, id int) (*domain.Purchase, error) {
	return s.store.FindPurchase(ctx, id)
}

func (s *PurchaseService) Create(ctx context.Context, in domain.PurchaseCreate) (*domain.Purchase, error) {
	p, err := s.store.CreatePurchase(ctx, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.PurchaseCreated, p.ID, p.UserID)
	return p, nil
}

func (s *PurchaseService) Update(ctx context.Context, id int, in domain.PurchaseUpdate) (*domain.Purchase, error) {
	p, err := s.store.UpdatePurchase(ctx, id, in)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.PurchaseUpdated, p.ID, p.UserID)
	return p, nil
}

func (s *PurchaseService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.store.DeletePurchase(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	s.publish(ctx, events.PurchaseDeleted, id, 0)
	return true, nil
}

// Ошибка брокера не должна ломать уже закоммиченную запись.
func (s *PurchaseService) publish(ctx context.Context, eventType string, purchaseID, userID int) {
	err := s.publisher.Publish(ctx, events.Event{
		Type:       eventType,
		PurchaseID: purchaseID,
		UserID:     userID,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		slog.Warn("Failed to publish event", "type", eventType, "purchase_id", purchaseID, "error", err)
	}
}
