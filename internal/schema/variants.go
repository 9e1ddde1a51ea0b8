package schema

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Insert/update variants per entity. Insert variants carry the fields
// a caller must or may supply at creation; update variants use pointer
// fields so absent means "leave unchanged".

type UserInsert struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
}

type UserUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=customer admin"`
}

type ProductInsert struct {
	Name        string          `json:"name" validate:"required"`
	Slug        string          `json:"slug" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	IsAvailable bool            `json:"is_available"`
	IsFeatured  bool            `json:"is_featured"`
	Category    string          `json:"category,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Nutrition   json.RawMessage `json:"nutrition,omitempty"`
}

type ProductUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsAvailable *bool            `json:"is_available,omitempty"`
	IsFeatured  *bool            `json:"is_featured,omitempty"`
	Category    *string          `json:"category,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty"`
	Nutrition   json.RawMessage  `json:"nutrition,omitempty"`
}

// OrderInsert is validated with a struct-level rule ensuring
// TotalAmount = Subtotal + Tax + DeliveryFee. See validation.New.
type OrderInsert struct {
	UserID       *string         `json:"user_id,omitempty"`
	CustomerName string          `json:"customer_name" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
	Phone        string          `json:"phone" validate:"required"`
	AddressLine  string          `json:"address_line" validate:"required"`
	City         string          `json:"city" validate:"required"`
	State        string          `json:"state" validate:"required"`
	Pincode      string          `json:"pincode" validate:"required"`
	Items        json.RawMessage `json:"items" validate:"required"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
}

// OrderUpdate mutates only status and notes fields; everything else in
// an order is immutable after creation.
type OrderUpdate struct {
	FulfillmentStatus *string `json:"fulfillment_status,omitempty" validate:"omitempty,oneof=PENDING CONFIRMED SHIPPED DELIVERED CANCELLED"`
	PaymentStatus     *string `json:"payment_status,omitempty" validate:"omitempty,oneof=PENDING PAID FAILED REFUNDED"`
	Notes             *string `json:"notes,omitempty"`
}

type ReviewInsert struct {
	ProductID string  `json:"product_id" validate:"required"`
	UserID    *string `json:"user_id,omitempty"`
	Rating    int     `json:"rating" validate:"required,min=1,max=5"`
	Text      string  `json:"text,omitempty"`
}

type ReviewUpdate struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	Text   *string `json:"text,omitempty"`
}

type AnalyticsEventInsert struct {
	EventType string          `json:"event_type" validate:"required"`
	EventData json.RawMessage `json:"event_data,omitempty"`
}
