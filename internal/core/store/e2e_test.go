package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/apitest"
	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/core/store"
	"github.com/workerhousing/housing-client/internal/infrastructure/api"
	"github.com/workerhousing/housing-client/internal/infrastructure/tokenstore"
)

type env struct {
	backend  *apitest.Server
	client   *api.Client
	tokens   *tokenstore.FileStore
	maint    *store.MaintenanceStore
	invoices *store.InvoiceStore
	items    *store.GroceryItemStore
	orders   *store.GroceryOrderStore
	users    *store.UserStore
	session  *store.Session
}

func newEnv(t *testing.T) *env {
	t.Helper()
	backend := apitest.New()
	t.Cleanup(backend.Close)

	log := zerolog.Nop()
	tokens := tokenstore.New(filepath.Join(t.TempDir(), "token"))
	client := api.New(api.Options{
		BaseURL: backend.URL,
		Tokens:  tokens,
		Logger:  log,
	})

	e := &env{
		backend:  backend,
		client:   client,
		tokens:   tokens,
		maint:    store.NewMaintenanceStore(client, log),
		invoices: store.NewInvoiceStore(client, log),
		items:    store.NewGroceryItemStore(client, log),
		orders:   store.NewGroceryOrderStore(client, log),
		users:    store.NewUserStore(client, log),
	}
	hydrator := store.NewHydrator(e.maint, e.invoices, e.items, e.orders, e.users, log)
	e.session = store.NewSession(client, tokens, hydrator, log)
	return e
}

func TestLoginHydratePayFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	user, err := e.session.Login(ctx, "resident1", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "resident1" {
		t.Fatalf("unexpected user %+v", user)
	}
	if e.session.State() != store.StateReady {
		t.Fatalf("session state = %q", e.session.State())
	}

	// Every resource hydrated despite each endpoint using a different
	// envelope shape.
	if len(e.maint.Items()) != 1 || len(e.invoices.Items()) != 2 ||
		len(e.items.Items()) != 2 || len(e.orders.Items()) != 1 || len(e.users.Items()) != 2 {
		t.Fatalf("hydration incomplete: maint=%d invoices=%d items=%d orders=%d users=%d",
			len(e.maint.Items()), len(e.invoices.Items()), len(e.items.Items()),
			len(e.orders.Items()), len(e.users.Items()))
	}

	// Legacy invoices carry Mongo _id and no room; both are normalised.
	inv := e.invoices.Items()[0]
	if inv.ID != "INV-001" || inv.RoomNumber != "204" {
		t.Fatalf("invoice not normalised: %+v", inv)
	}

	// The backend transitions the status but swallows the proof; the store
	// merges it back locally.
	paid, err := e.invoices.MarkPaid(ctx, "INV-001", &ports.PaymentProofInput{
		Image: "upi-receipt.jpg",
		Notes: "paid via UPI",
	})
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != domain.InvoicePaid {
		t.Fatalf("status = %q", paid.Status)
	}
	if paid.PaymentProof == nil || paid.PaymentProof.Image != "upi-receipt.jpg" {
		t.Fatalf("proof not merged: %+v", paid.PaymentProof)
	}
	stored := e.invoices.Items()[0]
	if stored.Status != domain.InvoicePaid || stored.PaymentProof == nil {
		t.Fatalf("stored invoice must carry the merge: %+v", stored)
	}
}

func TestPartialHydration(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.backend.Fail("invoices")

	if _, err := e.session.Login(ctx, "resident1", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Hydration settles even when one resource is down.
	if e.session.State() != store.StateReady {
		t.Fatalf("session state = %q", e.session.State())
	}
	if e.invoices.Err() == nil || len(e.invoices.Items()) != 0 {
		t.Fatalf("failing resource must record its error: err=%v items=%d",
			e.invoices.Err(), len(e.invoices.Items()))
	}
	if e.maint.Err() != nil || len(e.maint.Items()) != 1 {
		t.Fatalf("healthy resources must hydrate: err=%v items=%d",
			e.maint.Err(), len(e.maint.Items()))
	}
}

func TestCheckoutFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.session.Login(ctx, "resident1", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	cart := store.NewCart()
	catalog := e.items.Items()
	cart.Add(catalog[0])
	cart.Add(catalog[0])
	cart.Add(catalog[1])

	order, err := e.orders.Create(ctx, cart.OrderInput("204", e.session.Current().ID))
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if order.Total != cart.Total() {
		t.Fatalf("order total %v, cart total %v", order.Total, cart.Total())
	}
	if e.orders.Items()[0].ID != order.ID {
		t.Fatal("confirmed order must be prepended")
	}
}

func TestLogoutThenReloginStartsEmpty(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if _, err := e.session.Login(ctx, "resident1", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	e.session.Logout(ctx)

	if e.session.State() != store.StateUnauthenticated || e.tokens.Token() != "" {
		t.Fatalf("logout incomplete: state=%q token=%q", e.session.State(), e.tokens.Token())
	}
	if len(e.invoices.Items()) != 0 {
		t.Fatal("stores must be empty after logout")
	}

	if _, err := e.session.Login(ctx, "resident1", "password123"); err != nil {
		t.Fatalf("re-login: %v", err)
	}
	if e.session.State() != store.StateReady || len(e.invoices.Items()) != 2 {
		t.Fatalf("re-login must re-hydrate: state=%q invoices=%d",
			e.session.State(), len(e.invoices.Items()))
	}
}
