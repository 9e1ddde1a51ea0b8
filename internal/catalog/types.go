package catalog

import "time"

// Product is a development fixture record. It carries denormalized
// display fields (Rating, SoldCount) that a live system would derive;
// it is UI test data, never a schema reference.
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	OriginalPrice float64           `json:"original_price,omitempty"`
	Category      string            `json:"category"`
	ImageURL      string            `json:"image_url"`
	Rating        float64           `json:"rating"`
	SoldCount     int               `json:"sold_count"`
	Stock         int               `json:"stock"`
	IsAvailable   bool              `json:"is_available"`
	IsFeatured    bool              `json:"is_featured"`
	Nutrition     map[string]string `json:"nutrition,omitempty"`
}

// Review is a fixture review record.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Author    string `json:"author"`
	Rating    int    `json:"rating"`
	Text      string `json:"text"`
	Status    string `json:"status"`
}

// BlogPost is a fixture blog record.
type BlogPost struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
}

// Filter selects products. Every set field is an independent
// predicate; all supplied predicates must hold (strict conjunction).
// A nil/empty field imposes no constraint.
type Filter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Search   string
}
