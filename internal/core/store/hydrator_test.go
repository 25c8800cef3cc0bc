package store

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
)

type fixture struct {
	tx          *stubTransport
	maintenance *MaintenanceStore
	invoices    *InvoiceStore
	items       *GroceryItemStore
	orders      *GroceryOrderStore
	users       *UserStore
	hydrator    *Hydrator
}

func newFixture() *fixture {
	tx := newStubTransport()
	log := zerolog.Nop()
	f := &fixture{
		tx:          tx,
		maintenance: NewMaintenanceStore(tx, log),
		invoices:    NewInvoiceStore(tx, log),
		items:       NewGroceryItemStore(tx, log),
		orders:      NewGroceryOrderStore(tx, log),
		users:       NewUserStore(tx, log),
	}
	f.hydrator = NewHydrator(f.maintenance, f.invoices, f.items, f.orders, f.users, log)
	return f
}

func (f *fixture) replyAll() {
	f.tx.reply("GET", "/maintenance", `{"data":[{"_id":"MNT-1","status":"pending"}]}`)
	f.tx.reply("GET", "/invoices", `{"invoices":[{"_id":"INV-001","status":"pending"}]}`)
	f.tx.reply("GET", "/grocery/items", `{"data":{"items":[{"id":"GRC-1","name":"Rice 5kg"}]}}`)
	f.tx.reply("GET", "/grocery/orders", `[{"_id":"ORD-1","status":"pending"}]`)
	f.tx.reply("GET", "/users", `{"data":[{"_id":"USR-1","username":"resident1"}]}`)
}

func TestHydratorFetchAll(t *testing.T) {
	f := newFixture()
	f.replyAll()

	f.hydrator.FetchAll(context.Background())

	if n := len(f.maintenance.Items()); n != 1 {
		t.Errorf("maintenance: got %d items", n)
	}
	if n := len(f.invoices.Items()); n != 1 {
		t.Errorf("invoices: got %d items", n)
	}
	if n := len(f.items.Items()); n != 1 {
		t.Errorf("grocery items: got %d items", n)
	}
	if n := len(f.orders.Items()); n != 1 {
		t.Errorf("grocery orders: got %d items", n)
	}
	if n := len(f.users.Items()); n != 1 {
		t.Errorf("users: got %d items", n)
	}
	if f.hydrator.Loading() {
		t.Error("loading must be false after settle")
	}
}

func TestHydratorFetchAll_PartialFailure(t *testing.T) {
	f := newFixture()
	f.replyAll()
	f.tx.failWith("GET", "/invoices", domain.ErrNetwork)
	f.tx.failWith("GET", "/users", &domain.ServerError{Status: 500, Message: "boom"})

	// Settles without error even when some resources fail.
	f.hydrator.FetchAll(context.Background())

	if f.invoices.Err() == nil || len(f.invoices.Items()) != 0 {
		t.Errorf("failed invoices fetch must empty the store and record the error: err=%v items=%d",
			f.invoices.Err(), len(f.invoices.Items()))
	}
	if f.users.Err() == nil || len(f.users.Items()) != 0 {
		t.Errorf("failed users fetch must empty the store and record the error: err=%v items=%d",
			f.users.Err(), len(f.users.Items()))
	}
	if f.maintenance.Err() != nil || len(f.maintenance.Items()) != 1 {
		t.Errorf("healthy resources must be unaffected: err=%v items=%d",
			f.maintenance.Err(), len(f.maintenance.Items()))
	}
	if f.items.Err() != nil || f.orders.Err() != nil {
		t.Errorf("healthy resources must be unaffected: items err=%v orders err=%v",
			f.items.Err(), f.orders.Err())
	}
}

// panicTransport blows up on one path to simulate a fetch dying outside its
// own error path.
type panicTransport struct {
	*stubTransport
	panicPath string
}

func (p *panicTransport) Get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	if path == p.panicPath {
		panic("corrupted response buffer")
	}
	return p.stubTransport.Get(ctx, path, query)
}

func TestHydratorFetchAll_RecoversPanickingFetch(t *testing.T) {
	tx := newStubTransport()
	ptx := &panicTransport{stubTransport: tx, panicPath: "/maintenance"}
	log := zerolog.Nop()
	f := &fixture{
		tx:          tx,
		maintenance: NewMaintenanceStore(ptx, log),
		invoices:    NewInvoiceStore(ptx, log),
		items:       NewGroceryItemStore(ptx, log),
		orders:      NewGroceryOrderStore(ptx, log),
		users:       NewUserStore(ptx, log),
	}
	f.hydrator = NewHydrator(f.maintenance, f.invoices, f.items, f.orders, f.users, log)
	f.replyAll()

	// Settles instead of crashing the process.
	f.hydrator.FetchAll(context.Background())

	err := f.hydrator.LastError()
	if err == nil || !strings.Contains(err.Error(), "maintenance") {
		t.Fatalf("recovered panic must be recorded with its resource, got %v", err)
	}
	if len(f.invoices.Items()) != 1 || len(f.users.Items()) != 1 {
		t.Fatal("the other resources must still hydrate")
	}
	if f.hydrator.Loading() {
		t.Error("loading must be false after settle")
	}

	f.hydrator.Reset()
	if f.hydrator.LastError() != nil {
		t.Fatal("reset must clear the recorded error")
	}
}

func TestHydratorReset(t *testing.T) {
	f := newFixture()
	f.replyAll()
	f.hydrator.FetchAll(context.Background())

	f.hydrator.Reset()

	if len(f.maintenance.Items()) != 0 || len(f.invoices.Items()) != 0 ||
		len(f.items.Items()) != 0 || len(f.orders.Items()) != 0 || len(f.users.Items()) != 0 {
		t.Error("reset must empty every store")
	}
}
