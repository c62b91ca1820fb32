package model

import "time"

// Order status values.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status values.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type Product struct {
	ID          string `gorm:"primaryKey;size:64;not null"` // product sku
	Name        string `gorm:"size:128;not null"`
	Description string `gorm:"size:512"`
	Price       int64  `gorm:"not null"` // minor currency units
	Currency    string `gorm:"size:8;not null"`
	ImageKey    string `gorm:"size:256"` // object storage key, dereferenced by the frontend
	Colors      string `gorm:"size:256"` // comma separated
	Sizes       string `gorm:"size:128"` // comma separated
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Address struct {
	ID         string `gorm:"primaryKey;size:64;not null"`
	UserID     string `gorm:"size:64;index;not null"`
	FirstName  string `gorm:"size:64;not null"`
	LastName   string `gorm:"size:64;not null"`
	Phone      string `gorm:"size:32"`
	Street     string `gorm:"size:256;not null"`
	City       string `gorm:"size:128;not null"`
	State      string `gorm:"size:128;not null"`
	PostalCode string `gorm:"size:32"`
	Country    string `gorm:"size:64"`
	CreatedAt  time.Time
}

type Order struct {
	ID            uint   `gorm:"primaryKey"`
	OrderNumber   string `gorm:"size:64;uniqueIndex;not null"` // human-readable, doubles as the payment reference
	UserID        string `gorm:"size:64;index"`
	Email         string `gorm:"size:128;not null"`
	Phone         string `gorm:"size:32"`
	Status        string `gorm:"size:32;index;not null"` // pending, processing, shipped, delivered, cancelled
	PaymentStatus string `gorm:"size:32;index;not null"` // pending, paid, failed
	TotalAmount   int64  `gorm:"not null"`               // minor currency units
	Currency      string `gorm:"size:8;not null"`

	// Shipping destination: either a saved address reference or an inlined
	// payload, never both.
	AddressID     string `gorm:"size:64"`
	ShipFirstName string `gorm:"size:64"`
	ShipLastName  string `gorm:"size:64"`
	ShipStreet    string `gorm:"size:256"`
	ShipCity      string `gorm:"size:128"`
	ShipState     string `gorm:"size:128"`
	ShipPostal    string `gorm:"size:32"`
	ShipCountry   string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.id
	OrderID uint `gorm:"index;not null"`
	// FK → product.id
	ProductID string `gorm:"index;not null"`
	Name      string `gorm:"size:128;not null"`
	Quantity  int    `gorm:"not null"`
	UnitPrice int64  `gorm:"not null"` // price at time of order, not re-fetched
	Currency  string `gorm:"size:8;not null"`
	Color     string `gorm:"size:32"`
	Size      string `gorm:"size:16"`

	CreatedAt time.Time
}
