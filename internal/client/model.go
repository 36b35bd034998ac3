package client

import "time"

type Client struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Gender       string    `json:"gender,omitempty"`
	MobileNumber string    `json:"mobileNumber,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`

	DeliveryAddresses []DeliveryAddress `json:"deliveryAddresses,omitempty"`
}

// DeliveryAddress is one saved shipping destination. Type distinguishes
// the delivery context ("Home" vs "Work") and drives the weekend-skip
// policy of the order schedule.
type DeliveryAddress struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	PinCode  string `json:"pinCode"`
	Locality string `json:"locality"`
	Type     string `json:"type"`
}
