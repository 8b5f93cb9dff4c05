package fakestore

import (
	"fmt"
	"strings"
)

// Product is a catalog entry as returned by the store API. The server
// assigns IDs; they are never set client-side.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// Rating is the optional aggregate review score attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Draft holds the client-supplied fields of a product, used as the request
// body for create and update calls.
type Draft struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// Validate checks the invariants every draft must satisfy before it is
// submitted: a non-blank title and a positive price.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if d.Price <= 0 {
		return fmt.Errorf("price must be positive, got %v", d.Price)
	}
	return nil
}

// DraftOf extracts the editable fields from an existing product, used to
// pre-fill the edit form.
func DraftOf(p Product) Draft {
	return Draft{
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
}
