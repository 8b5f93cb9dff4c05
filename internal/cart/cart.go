package cart

import (
	"sync"

	"github.com/abiro/shopfront/internal/fakestore"
)

// Line pairs a product snapshot with the quantity in the cart. The product
// is captured by value at the time of the first add.
type Line struct {
	Product  fakestore.Product
	Quantity int
}

// Cart holds the session's shopping cart: an ordered set of lines with at
// most one line per product ID. It is entirely client-side and has no
// relation to the remote catalog.
type Cart struct {
	mu    sync.RWMutex
	lines []Line
}

// Add puts one unit of the product in the cart: an existing line is
// incremented, otherwise a new line is appended at the end.
func (c *Cart) Add(p fakestore.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove takes one unit of the identified product out of the cart; the
// line disappears when its quantity reaches zero. Unknown IDs are a no-op.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if c.lines[i].Quantity > 1 {
			c.lines[i].Quantity--
			return
		}
		c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
		return
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.lines) == 0 {
		return nil
	}
	dup := make([]Line, len(c.lines))
	copy(dup, c.lines)
	return dup
}

// TotalItems reports the sum of all line quantities.
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}
