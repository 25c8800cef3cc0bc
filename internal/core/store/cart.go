package store

import (
	"sync"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
)

// CartLine is one catalog item with a chosen quantity.
type CartLine struct {
	Item     domain.GroceryItem
	Quantity int
}

// Cart is the purely local pre-checkout basket. It never talks to the
// server; Checkout on the order store consumes its snapshot.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of item in the cart, bumping the quantity when the item
// is already present.
func (c *Cart) Add(item domain.GroceryItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
}

// SetQuantity pins an item's quantity; zero or negative removes the line.
func (c *Cart) SetQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].Item.ID == id {
			c.lines[i].Quantity = quantity
		}
	}
}

func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.lines[:0]
	for _, l := range c.lines {
		if l.Item.ID != id {
			kept = append(kept, l)
		}
	}
	c.lines = kept
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.mu.Unlock()
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the cart's monetary total.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.lines {
		total += l.Item.Price * float64(l.Quantity)
	}
	return total
}

// Count is the number of units across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// OrderInput renders the cart as a checkout payload for the order store.
func (c *Cart) OrderInput(roomNumber, userID string) ports.CreateOrderInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	input := ports.CreateOrderInput{
		RoomNumber: roomNumber,
		UserID:     userID,
		Items:      make([]ports.OrderLineInput, 0, len(c.lines)),
	}
	for _, l := range c.lines {
		lineTotal := l.Item.Price * float64(l.Quantity)
		input.Items = append(input.Items, ports.OrderLineInput{
			Name:     l.Item.Name,
			Quantity: l.Quantity,
			Price:    l.Item.Price,
			Total:    lineTotal,
		})
		input.Total += lineTotal
	}
	return input
}
