package schema

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Role values for User.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Fulfillment statuses for Order.
const (
	FulfillmentPending   = "PENDING"
	FulfillmentConfirmed = "CONFIRMED"
	FulfillmentShipped   = "SHIPPED"
	FulfillmentDelivered = "DELIVERED"
	FulfillmentCancelled = "CANCELLED"
)

// Payment statuses for Order.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentFailed   = "FAILED"
	PaymentRefunded = "REFUNDED"
)

// Moderation statuses for Review.
const (
	ReviewPending  = "PENDING"
	ReviewApproved = "APPROVED"
	ReviewRejected = "REJECTED"
)

// User is an account provisioned externally; orders and reviews
// reference it through a nullable foreign key (guest checkouts carry
// no user).
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName  string    `gorm:"size:120" json:"full_name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Role      string    `gorm:"size:16;not null;default:customer" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a catalog item. Mutated by inventory/admin operations
// outside this repository; read by catalog browsing.
type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"size:160;not null" json:"name"`
	Slug        string          `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null" json:"stock"`
	IsAvailable bool            `gorm:"not null;default:true" json:"is_available"`
	IsFeatured  bool            `gorm:"not null;default:false" json:"is_featured"`
	Category    string          `gorm:"size:80;index" json:"category"`
	ImageURL    string          `gorm:"size:512" json:"image_url"`
	Nutrition   json.RawMessage `gorm:"type:jsonb" json:"nutrition,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Order snapshots customer contact and address fields at checkout.
// It is created once; afterwards only status and notes fields mutate.
// Invariant at creation: TotalAmount = Subtotal + Tax + DeliveryFee
// (enforced on OrderInsert by a struct-level validator rule).
type Order struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	UserID       *string         `gorm:"size:36;index" json:"user_id,omitempty"` // nil for guest checkout
	CustomerName string          `gorm:"size:120;not null" json:"customer_name"`
	Email        string          `gorm:"size:255;not null" json:"email"`
	Phone        string          `gorm:"size:20;not null" json:"phone"`
	AddressLine  string          `gorm:"size:255;not null" json:"address_line"`
	City         string          `gorm:"size:80;not null" json:"city"`
	State        string          `gorm:"size:80;not null" json:"state"`
	Pincode      string          `gorm:"size:10;not null" json:"pincode"`
	Items        json.RawMessage `gorm:"type:jsonb;not null" json:"items"`
	Subtotal     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	Tax          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"tax"`
	DeliveryFee  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"delivery_fee"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	FulfillmentStatus string `gorm:"size:16;index;not null;default:PENDING" json:"fulfillment_status"`
	PaymentStatus     string `gorm:"size:16;index;not null;default:PENDING" json:"payment_status"`
	Notes             string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Review is a rating/text record tied to a product and optionally a
// user, moderated through Status.
type Review struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ProductID string    `gorm:"size:36;index;not null" json:"product_id"`
	UserID    *string   `gorm:"size:36;index" json:"user_id,omitempty"`
	Rating    int       `gorm:"not null" json:"rating"`
	Text      string    `gorm:"type:text" json:"text"`
	Status    string    `gorm:"size:16;index;not null;default:PENDING" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnalyticsEvent is an append-only telemetry record.
type AnalyticsEvent struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	EventType string          `gorm:"size:80;index;not null" json:"event_type"`
	EventData json.RawMessage `gorm:"type:jsonb" json:"event_data,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
