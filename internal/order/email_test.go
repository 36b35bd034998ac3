package order

import (
	"strings"
	"testing"
	"time"
)

func TestConfirmationBody(t *testing.T) {
	t.Parallel()

	o := &Order{
		ID:          "order-1",
		OrderDate:   time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC),
		OrderStatus: StatusPending,
		Products: []LineItem{
			{ProductID: "tea-1", Name: "Assam Gold", Quantity: 2, Price: "250.00"},
		},
		ShippingAddress: ShippingAddress{
			Name: "A Buyer", Number: "9999999999", Street: "12 Hill Rd",
			City: "Guwahati", State: "Assam", PinCode: "781001",
		},
		ExpectedDelivery: Schedule(time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC), "Home"),
		PaymentMethod:    PaymentUPI,
		Amount:           "500.00",
		TransactionID:    "txn-42",
	}

	body, err := ConfirmationBody(o)
	if err != nil {
		t.Fatalf("ConfirmationBody: %v", err)
	}
	for _, want := range []string{
		"order-1", "Assam Gold", "781001",
		"Order Confirmed", "Mon, 2nd Jun", "txn-42",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}
