package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/mailer"
	"github.com/VivekVaishnanai07/tea-of-assam-backend/internal/tasks"
)

// CartClearer empties a client's cart after checkout.
type CartClearer interface {
	Clear(ctx context.Context, clientID string) error
}

// ActivityToucher records that a client just purchased.
type ActivityToucher interface {
	TouchPurchase(ctx context.Context, clientID string) error
}

// StockAdjuster moves qty units from stock to sales for one product.
type StockAdjuster interface {
	AdjustStock(ctx context.Context, productID string, qty int) error
}

// Service orchestrates order placement. Persisting the order is the only
// step that can fail the request; everything after runs as background
// tasks whose failures land in the task log, not in the response.
type Service struct {
	repo     Repository
	carts    CartClearer
	activity ActivityToucher
	stock    StockAdjuster
	mail     mailer.Mailer
	queue    *tasks.Queue
	mailFrom string
	now      func() time.Time
}

func NewService(repo Repository, carts CartClearer, activity ActivityToucher,
	stock StockAdjuster, mail mailer.Mailer, queue *tasks.Queue, mailFrom string) *Service {
	return &Service{
		repo:     repo,
		carts:    carts,
		activity: activity,
		stock:    stock,
		mail:     mail,
		queue:    queue,
		mailFrom: mailFrom,
		now:      time.Now,
	}
}

// Place persists the order and returns its id. Side effects (cart clear,
// activity upsert, inventory adjustment, confirmation e-mail) are queued
// after the persist succeeds and are best effort.
func (s *Service) Place(ctx context.Context, req CheckoutRequest) (string, error) {
	placedAt := s.now()

	o := &Order{
		ID:               uuid.NewString(),
		ClientID:         req.ClientID,
		Email:            req.Email,
		OrderDate:        placedAt,
		OrderStatus:      req.OrderStatus,
		Products:         req.Products,
		OrderTotal:       req.OrderTotal,
		ShippingAddress:  req.ShippingAddress,
		ShippingMethod:   req.ShippingMethod,
		TrackingNumber:   req.TrackingNumber,
		ShippingStatus:   req.ShippingStatus,
		ExpectedDelivery: Schedule(placedAt, req.ShippingAddress.Type),
		PaymentMethod:    req.PaymentMethod,
		Amount:           req.Amount,
		TransactionID:    req.TransactionID,
	}
	if o.OrderStatus == "" {
		o.OrderStatus = StatusPending
	}
	applyPaymentFields(o, req.PaymentMethod, req.UPIID, req.CardNumber, req.CardExpiryDate, req.CVV)

	if err := s.repo.Create(ctx, o); err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}

	clientID := o.ClientID
	s.queue.Submit("clear-cart", func(ctx context.Context) error {
		return s.carts.Clear(ctx, clientID)
	})
	s.queue.Submit("touch-purchase", func(ctx context.Context) error {
		return s.activity.TouchPurchase(ctx, clientID)
	})
	for _, it := range o.Products {
		productID, qty := it.ProductID, it.Quantity
		s.queue.Submit("adjust-stock", func(ctx context.Context) error {
			return s.stock.AdjustStock(ctx, productID, qty)
		})
	}

	body, err := ConfirmationBody(o)
	if err != nil {
		// A broken template must not undo a placed order.
		return o.ID, nil
	}
	msg := mailer.Message{
		From:    s.mailFrom,
		To:      o.Email,
		Subject: "Order Confirmation - Tea of Assam",
		HTML:    body,
	}
	s.queue.Submit("confirmation-mail", func(ctx context.Context) error {
		return s.mail.Send(ctx, msg)
	})

	return o.ID, nil
}

// UpdatePayment replaces the payment fields of the order matched by both
// orderId and clientId.
func (s *Service) UpdatePayment(ctx context.Context, req PaymentUpdateRequest) error {
	f := PaymentFields{
		OrderStatus:   req.OrderStatus,
		PaymentMethod: req.PaymentMethod,
	}
	switch req.PaymentMethod {
	case PaymentUPI:
		f.UPIID = req.UPIID
	case PaymentCard:
		f.CardNumber = req.CardNumber
		f.CardExpiryDate = req.CardExpiryDate
		f.CardCVV = req.CVV
	}
	if f.OrderStatus == "" {
		f.OrderStatus = StatusProcessing
	}
	return s.repo.UpdatePayment(ctx, req.OrderID, req.ClientID, f)
}

// applyPaymentFields keeps only the detail set matching the chosen method.
func applyPaymentFields(o *Order, method, upiID, cardNumber, cardExpiry, cvv string) {
	switch method {
	case PaymentUPI:
		o.UPIID = upiID
	case PaymentCard:
		o.CardNumber = cardNumber
		o.CardExpiryDate = cardExpiry
		o.CardCVV = cvv
	}
}
