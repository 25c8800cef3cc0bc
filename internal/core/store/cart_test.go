package store

import (
	"testing"

	"github.com/workerhousing/housing-client/internal/core/domain"
)

func groceryItem(id, name string, price float64) domain.GroceryItem {
	g := domain.GroceryItem{Name: name, Price: price}
	g.ID = id
	return g
}

func TestCartAdd_BumpsExistingLine(t *testing.T) {
	c := NewCart()
	rice := groceryItem("GRC-1", "Rice 5kg", 12)
	oil := groceryItem("GRC-2", "Cooking Oil", 6.5)

	c.Add(rice)
	c.Add(oil)
	c.Add(rice)

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("re-adding must bump, not duplicate: %+v", lines)
	}
	if lines[0].Quantity != 2 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %+v", lines)
	}
	if c.Count() != 3 {
		t.Fatalf("count = %d", c.Count())
	}
	if c.Total() != 2*12+6.5 {
		t.Fatalf("total = %v", c.Total())
	}
}

func TestCartSetQuantity(t *testing.T) {
	c := NewCart()
	c.Add(groceryItem("GRC-1", "Rice 5kg", 12))

	c.SetQuantity("GRC-1", 5)
	if c.Count() != 5 {
		t.Fatalf("count = %d", c.Count())
	}

	c.SetQuantity("GRC-1", 0)
	if len(c.Lines()) != 0 {
		t.Fatal("zero quantity must remove the line")
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	c := NewCart()
	c.Add(groceryItem("GRC-1", "Rice 5kg", 12))
	c.Add(groceryItem("GRC-2", "Cooking Oil", 6.5))

	c.Remove("GRC-1")
	if lines := c.Lines(); len(lines) != 1 || lines[0].Item.ID != "GRC-2" {
		t.Fatalf("remove must drop only the addressed line: %+v", lines)
	}

	c.Clear()
	if c.Count() != 0 || c.Total() != 0 {
		t.Fatal("clear must empty the cart")
	}
}

func TestCartOrderInput(t *testing.T) {
	c := NewCart()
	c.Add(groceryItem("GRC-1", "Rice 5kg", 12))
	c.Add(groceryItem("GRC-1", "Rice 5kg", 12))
	c.Add(groceryItem("GRC-2", "Cooking Oil", 6.5))

	input := c.OrderInput("204", "USR-1")

	if input.RoomNumber != "204" || input.UserID != "USR-1" {
		t.Fatalf("addressing not carried: %+v", input)
	}
	if len(input.Items) != 2 {
		t.Fatalf("line count = %d", len(input.Items))
	}
	if input.Items[0].Quantity != 2 || input.Items[0].Total != 24 {
		t.Fatalf("line totals wrong: %+v", input.Items[0])
	}
	if input.Total != 30.5 {
		t.Fatalf("order total = %v", input.Total)
	}
	if err := checkInput(input); err != nil {
		t.Fatalf("rendered input must validate: %v", err)
	}
}
