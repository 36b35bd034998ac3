package order

import "time"

// Order statuses as stored in order_status.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// Payment method tags.
const (
	PaymentUPI  = "UPI"
	PaymentCard = "CARD"
	PaymentCOD  = "COD"
)

// Order is a persisted checkout transaction. order_date, products and
// shipping_address are immutable after creation; status and payment
// fields are replaced later by the payment-confirmation step.
type Order struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	Email           string          `json:"email"`
	OrderDate       time.Time       `json:"order_date"`
	OrderStatus     string          `json:"order_status"`
	Products        []LineItem      `json:"products"`
	// Totals are strings to avoid rounding errors (NUMERIC in Postgres)
	OrderTotal      string          `json:"order_total"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	ShippingMethod  string          `json:"shipping_method"`
	TrackingNumber  string          `json:"tracking_number"`
	ShippingStatus  string          `json:"shipping_status"`
	// Computed once at placement, never recomputed.
	ExpectedDelivery []Milestone `json:"expected_delivery_date"`

	PaymentMethod string `json:"payment_method"`
	Amount        string `json:"amount"`
	TransactionID string `json:"transaction_id"`

	// Exactly one of the following sets is populated, matching
	// PaymentMethod.
	UPIID          string `json:"upi_id,omitempty"`
	CardNumber     string `json:"card_number,omitempty"`
	CardExpiryDate string `json:"card_expiry_date,omitempty"`
	CardCVV        string `json:"card_cvv,omitempty"`
}

// LineItem snapshots name and price at checkout time, decoupled from
// later catalog changes.
type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

type ShippingAddress struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pinCode"`
	Locality string `json:"locality"`
	Type     string `json:"type"`
}
