package catalog

import (
	"context"
	"strings"
	"time"
)

// Lookup keys for Store.Product.
const (
	ByID   = "id"
	BySlug = "slug"
)

// DefaultDelay is the simulated network latency used by FetchAfter
// when the caller supplies none.
const DefaultDelay = 300 * time.Millisecond

// Store serves immutable fixture records in place of a live data
// source during development. Records are injected at construction and
// never mutated, so concurrent reads need no synchronization.
type Store struct {
	products []Product
	reviews  []Review
	posts    []BlogPost
}

// NewStore returns a Store over the given records.
func NewStore(products []Product, reviews []Review, posts []BlogPost) *Store {
	return &Store{
		products: products,
		reviews:  reviews,
		posts:    posts,
	}
}

// Product looks up a product by id or slug. A miss returns ok=false,
// never an error.
func (s *Store) Product(identifier, by string) (Product, bool) {
	for _, p := range s.products {
		switch by {
		case BySlug:
			if p.Slug == identifier {
				return p, true
			}
		default:
			if p.ID == identifier {
				return p, true
			}
		}
	}
	return Product{}, false
}

// Products returns every fixture product in source order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Featured returns the products flagged as featured, preserving source
// order.
func (s *Store) Featured() []Product {
	var out []Product
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// Filtered returns the products satisfying ALL supplied filters. The
// predicates are evaluated together per item in a single pass; a
// search term combines with category/price filters rather than
// overriding them.
func (s *Store) Filtered(f Filter) []Product {
	search := strings.ToLower(f.Search)

	var out []Product
	for _, p := range s.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Reviews returns the fixture reviews for a product in source order.
func (s *Store) Reviews(productID string) []Review {
	var out []Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// BlogPosts returns every fixture blog post in source order.
func (s *Store) BlogPosts() []BlogPost {
	out := make([]BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// BlogPost looks up a post by slug; a miss returns ok=false.
func (s *Store) BlogPost(slug string) (BlogPost, bool) {
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return BlogPost{}, false
}

// FetchAfter runs fn after a simulated network delay, purely for UI
// development realism. d <= 0 selects DefaultDelay. The delay is
// cancellable through ctx.
func FetchAfter[T any](ctx context.Context, d time.Duration, fn func() T) (T, error) {
	if d <= 0 {
		d = DefaultDelay
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-t.C:
		return fn(), nil
	}
}
