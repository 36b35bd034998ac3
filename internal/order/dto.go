package order

// CheckoutRequest is the place-order payload. Field names mirror what the
// storefront sends.
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	ClientID        string          `json:"clientId"`
	Email           string          `json:"email"`
	OrderStatus     string          `json:"orderStatus"`
	Products        []LineItem      `json:"products"`
	OrderTotal      string          `json:"orderTotal"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	ShippingMethod  string          `json:"shippingMethod"`
	TrackingNumber  string          `json:"trackingNumber"`
	ShippingStatus  string          `json:"shippingStatus"`
	PaymentMethod   string          `json:"paymentMethod"`
	Amount          string          `json:"amount"`
	TransactionID   string          `json:"transaction_id"`

	// Method-specific fields; only the set matching paymentMethod is kept.
	UPIID          string `json:"upiId"`
	CardNumber     string `json:"cardNumber"`
	CardExpiryDate string `json:"cardExpiryDate"`
	CVV            string `json:"cvv"`
}

// PaymentUpdateRequest is the order-payment payload.
// swagger:model PaymentUpdateRequest
type PaymentUpdateRequest struct {
	OrderID       string `json:"orderId"`
	ClientID      string `json:"clientId"`
	OrderStatus   string `json:"orderStatus"`
	PaymentMethod string `json:"paymentMethod"`

	UPIID          string `json:"upiId"`
	CardNumber     string `json:"cardNumber"`
	CardExpiryDate string `json:"cardExpiryDate"`
	CVV            string `json:"cvv"`
}
