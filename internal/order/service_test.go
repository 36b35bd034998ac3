package order

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/mailer"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/tasks"
)

func init() {
	log.SetOutput(io.Discard)
}

type stubOrderRepo struct {
	mu      sync.Mutex
	created *Order
	failNew bool

	paymentOrderID  string
	paymentClientID string
	payment         PaymentFields
}

func (s *stubOrderRepo) Create(ctx context.Context, o *Order) error {
	if s.failNew {
		return errors.New("db down")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *o
	s.created = &cp
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	return nil, ErrNotFound
}

func (s *stubOrderRepo) ListByClient(ctx context.Context, clientID string) ([]Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) UpdatePayment(ctx context.Context, orderID, clientID string, f PaymentFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentOrderID = orderID
	s.paymentClientID = clientID
	s.payment = f
	return nil
}

type recordedEffects struct {
	mu            sync.Mutex
	clearedClient string
	touchedClient string
	adjustments   map[string]int
	mailedTo      string
	mailSubject   string
}

func (r *recordedEffects) Clear(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearedClient = clientID
	return nil
}

func (r *recordedEffects) TouchPurchase(ctx context.Context, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touchedClient = clientID
	return nil
}

func (r *recordedEffects) AdjustStock(ctx context.Context, productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.adjustments == nil {
		r.adjustments = map[string]int{}
	}
	r.adjustments[productID] += qty
	return nil
}

func (r *recordedEffects) Send(ctx context.Context, m mailer.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mailedTo = m.To
	r.mailSubject = m.Subject
	return nil
}

func checkoutFixture() CheckoutRequest {
	return CheckoutRequest{
		ClientID:    "client-1",
		Email:       "buyer@example.com",
		OrderStatus: StatusPending,
		Products: []LineItem{
			{ProductID: "tea-1", Name: "Assam Gold", Quantity: 2, Price: "250.00"},
			{ProductID: "tea-2", Name: "Green Blend", Quantity: 1, Price: "180.00"},
		},
		OrderTotal: "680.00",
		ShippingAddress: ShippingAddress{
			Name: "A Buyer", Number: "9999999999", Street: "12 Hill Rd",
			City: "Guwahati", State: "Assam", PinCode: "781001", Type: "Home",
		},
		PaymentMethod: PaymentUPI,
		Amount:        "680.00",
		TransactionID: "txn-42",
		UPIID:         "buyer@upi",
		CardNumber:    "4111111111111111", // must be dropped for UPI
	}
}

func TestPlace_PersistsThenRunsSideEffects(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	fx := &recordedEffects{}
	queue := tasks.New(2, 16)

	svc := NewService(repo, fx, fx, fx, fx, queue, "shop@example.com")
	orderID, err := svc.Place(context.Background(), checkoutFixture())
	if err != nil {
		t.Fatalf("Place: %v", err)
	}
	queue.Close() // drain the background tasks

	if repo.created == nil {
		t.Fatal("order was not persisted")
	}
	if repo.created.ID != orderID {
		t.Errorf("returned id %q != persisted id %q", orderID, repo.created.ID)
	}
	if len(repo.created.ExpectedDelivery) != 4 {
		t.Errorf("schedule milestones=%d, expected 4", len(repo.created.ExpectedDelivery))
	}
	if repo.created.UPIID != "buyer@upi" {
		t.Errorf("upi id=%q, expected buyer@upi", repo.created.UPIID)
	}
	if repo.created.CardNumber != "" {
		t.Errorf("card number kept on a UPI order: %q", repo.created.CardNumber)
	}

	if fx.clearedClient != "client-1" {
		t.Errorf("cart cleared for %q, expected client-1", fx.clearedClient)
	}
	if fx.touchedClient != "client-1" {
		t.Errorf("activity touched for %q, expected client-1", fx.touchedClient)
	}
	if fx.adjustments["tea-1"] != 2 || fx.adjustments["tea-2"] != 1 {
		t.Errorf("stock adjustments=%v, expected tea-1:2 tea-2:1", fx.adjustments)
	}
	if fx.mailedTo != "buyer@example.com" {
		t.Errorf("confirmation mailed to %q", fx.mailedTo)
	}
}

func TestPlace_PersistFailureSkipsSideEffects(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{failNew: true}
	fx := &recordedEffects{}
	queue := tasks.New(2, 16)

	svc := NewService(repo, fx, fx, fx, fx, queue, "shop@example.com")
	if _, err := svc.Place(context.Background(), checkoutFixture()); err == nil {
		t.Fatal("expected error when persistence fails")
	}
	queue.Close()

	if fx.clearedClient != "" || fx.touchedClient != "" || len(fx.adjustments) != 0 || fx.mailedTo != "" {
		t.Errorf("side effects ran despite failed persist: %+v", fx)
	}
}

func TestUpdatePayment_FieldExclusivity(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	queue := tasks.New(1, 1)
	defer queue.Close()
	svc := NewService(repo, &recordedEffects{}, &recordedEffects{}, &recordedEffects{}, &recordedEffects{}, queue, "shop@example.com")

	err := svc.UpdatePayment(context.Background(), PaymentUpdateRequest{
		OrderID:        "order-1",
		ClientID:       "client-1",
		OrderStatus:    StatusProcessing,
		PaymentMethod:  PaymentCard,
		UPIID:          "stale@upi",
		CardNumber:     "4111111111111111",
		CardExpiryDate: "12/27",
		CVV:            "123",
	})
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}

	if repo.paymentOrderID != "order-1" || repo.paymentClientID != "client-1" {
		t.Errorf("matched on %q/%q, expected order-1/client-1", repo.paymentOrderID, repo.paymentClientID)
	}
	if repo.payment.CardNumber != "4111111111111111" || repo.payment.CardCVV != "123" {
		t.Errorf("card fields not applied: %+v", repo.payment)
	}
	if repo.payment.UPIID != "" {
		t.Errorf("upi id kept on a CARD payment: %q", repo.payment.UPIID)
	}
}
