package dto

import "time"

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ShippingSource selects exactly one shipping destination: a saved address
// reference or a freshly entered payload.
type ShippingSource struct {
	SavedAddressID string          `json:"saved_address_id,omitempty"`
	NewAddress     *AddressPayload `json:"new_address,omitempty"`
}

type AddressPayload struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type CheckoutRequest struct {
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Shipping ShippingSource `json:"shipping"`
}

type CheckoutResponse struct {
	OrderNumber      string `json:"order_number"`
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
}

type CreateAddressRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

type OrderSummary struct {
	OrderNumber   string    `json:"order_number"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	TotalAmount   int64     `json:"total_amount"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

type OrderItemView struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Currency  string `json:"currency"`
	Color     string `json:"color,omitempty"`
	Size      string `json:"size,omitempty"`
}

type OrderDetail struct {
	OrderSummary
	Email string          `json:"email"`
	Items []OrderItemView `json:"items"`
}
