package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
)

func TestUserFetch(t *testing.T) {
	tx := newStubTransport()
	s := NewUserStore(tx, zerolog.Nop())
	tx.reply("GET", "/users", `{"data":[
		{"_id":"USR-1","username":"resident1","name":"Arun Kumar","type":"resident","roomNumber":"204"},
		{"id":"USR-2","username":"admin1","type":"admin"}
	]}`)

	items, err := s.Fetch(context.Background(), ports.ListParams{})
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(items) != 2 || items[0].ID != "USR-1" {
		t.Fatalf("users not decoded: %+v", items)
	}
	if items[0].IsStaff() || !items[1].IsStaff() {
		t.Fatalf("role classification wrong: %+v", items)
	}
}

func TestUserFetch_Forbidden(t *testing.T) {
	tx := newStubTransport()
	s := NewUserStore(tx, zerolog.Nop())
	tx.reply("GET", "/users", `{"data":[{"_id":"USR-1"}]}`)
	if _, err := s.Fetch(context.Background(), ports.ListParams{}); err != nil {
		t.Fatalf("seed fetch error: %v", err)
	}

	tx.failWith("GET", "/users", domain.ErrUnauthorized)
	_, err := s.Fetch(context.Background(), ports.ListParams{})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if len(s.Items()) != 0 {
		t.Fatal("failed fetch must empty the store")
	}
	if !errors.Is(s.Err(), domain.ErrUnauthorized) {
		t.Fatalf("store must record the error, got %v", s.Err())
	}
}

func TestPDFService(t *testing.T) {
	tx := newStubTransport()
	s := NewPDFService(tx, zerolog.Nop())
	tx.reply("POST", "/pdf/invoice/INV-001", `{"data":{"pdfUrl":"https://files.example.com/INV-001.pdf"}}`)

	url, err := s.InvoicePDF(context.Background(), "INV-001")
	if err != nil {
		t.Fatalf("invoice pdf error: %v", err)
	}
	if url != "https://files.example.com/INV-001.pdf" {
		t.Fatalf("url = %q", url)
	}

	tx.reply("POST", "/pdf/order/ORD-1", `{"message":"ok"}`)
	if _, err := s.OrderReceipt(context.Background(), "ORD-1"); err == nil {
		t.Fatal("missing pdfUrl must be an error")
	}
}
