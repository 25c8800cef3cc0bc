package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
)

func newOrderFixture() (*GroceryOrderStore, *stubTransport) {
	tx := newStubTransport()
	return NewGroceryOrderStore(tx, zerolog.Nop()), tx
}

func TestGroceryOrderFetch_BareArray(t *testing.T) {
	s, tx := newOrderFixture()
	// The orders endpoint historically returns a bare JSON array.
	tx.reply("GET", "/grocery/orders", `[
		{"_id":"ORD-1","roomNumber":"204","total":18.5,"status":"pending"},
		{"id":"ORD-2","roomNumber":"310","total":6,"status":"delivered"}
	]`)

	items, err := s.Fetch(context.Background(), ports.ListParams{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "ORD-1" {
		t.Fatalf("bare array not decoded: %+v", items)
	}
}

func TestGroceryOrderCreate_Prepends(t *testing.T) {
	s, tx := newOrderFixture()
	tx.reply("GET", "/grocery/orders", `[{"_id":"ORD-1","total":18.5,"status":"pending"}]`)
	if _, err := s.Fetch(context.Background(), ports.ListParams{}); err != nil {
		t.Fatalf("seed fetch error: %v", err)
	}
	tx.reply("POST", "/grocery/orders", `{"data":{"id":"ORD-2","roomNumber":"204","total":9,"status":"pending"}}`)

	created, err := s.Create(context.Background(), ports.CreateOrderInput{
		RoomNumber: "204",
		Items:      []ports.OrderLineInput{{Name: "Tea", Quantity: 3, Price: 3, Total: 9}},
		Total:      9,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	items := s.Items()
	if len(items) != 2 || items[0].ID != created.ID {
		t.Fatalf("confirmed order must be prepended, got %+v", items)
	}
}

func TestGroceryOrderCreate_RejectsEmptyCart(t *testing.T) {
	s, tx := newOrderFixture()

	_, err := s.Create(context.Background(), ports.CreateOrderInput{
		RoomNumber: "204",
		Total:      9,
	})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if tx.callCount("POST", "/grocery/orders") != 0 {
		t.Fatal("empty cart must not reach the transport")
	}
}

func TestGroceryOrderUpdateStatus(t *testing.T) {
	s, tx := newOrderFixture()
	tx.reply("GET", "/grocery/orders", `[{"_id":"ORD-1","status":"pending"},{"_id":"ORD-2","status":"pending"}]`)
	if _, err := s.Fetch(context.Background(), ports.ListParams{}); err != nil {
		t.Fatalf("seed fetch error: %v", err)
	}
	tx.reply("PUT", "/grocery/orders/ORD-2/status", `{"data":{"_id":"ORD-2","status":"delivered"}}`)

	if _, err := s.UpdateStatus(context.Background(), "ORD-2", "delivered"); err != nil {
		t.Fatalf("update status error: %v", err)
	}

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("entry count must not change, got %d", len(items))
	}
	if items[1].Status != "delivered" || items[0].Status != "pending" {
		t.Fatalf("only the addressed order changes: %+v", items)
	}
	if body, ok := tx.lastBody("PUT", "/grocery/orders/ORD-2/status").(map[string]any); !ok || body["status"] != "delivered" {
		t.Fatalf("unexpected request body %+v", tx.lastBody("PUT", "/grocery/orders/ORD-2/status"))
	}
}
