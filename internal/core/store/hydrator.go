package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/metrics"
)

// Hydrator refreshes all five resource stores from the server in one pass.
// Fetches run concurrently with independent-failure semantics: one
// resource's failure never cancels or blocks the others, and a partial
// dashboard is preferable to a fully blocked one. This is the only place
// per-call errors are deliberately not surfaced; callers observe failures
// through each store's own Err().
type Hydrator struct {
	maintenance *MaintenanceStore
	invoices    *InvoiceStore
	items       *GroceryItemStore
	orders      *GroceryOrderStore
	users       *UserStore
	log         zerolog.Logger

	mu      sync.Mutex
	loading bool
	lastErr error
}

func NewHydrator(
	maintenance *MaintenanceStore,
	invoices *InvoiceStore,
	items *GroceryItemStore,
	orders *GroceryOrderStore,
	users *UserStore,
	log zerolog.Logger,
) *Hydrator {
	return &Hydrator{
		maintenance: maintenance,
		invoices:    invoices,
		items:       items,
		orders:      orders,
		users:       users,
		log:         log,
	}
}

// Loading reports whether a fetch-all pass is in flight.
func (h *Hydrator) Loading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loading
}

// LastError returns the most recent panic recovered during a fetch-all pass,
// or nil. Ordinary fetch failures live on each store's Err; this only ever
// holds something a store's own error path could not catch.
func (h *Hydrator) LastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}

// FetchAll fans out the five resource fetches and waits for all of them to
// settle. It never returns an error and never propagates a panic; a panicking
// fetch is recorded in LastError while the remaining resources finish.
func (h *Hydrator) FetchAll(ctx context.Context) {
	h.mu.Lock()
	h.loading = true
	h.lastErr = nil
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		h.loading = false
		h.mu.Unlock()
	}()

	fetches := []struct {
		resource string
		fn       func(context.Context) error
	}{
		{"maintenance", func(ctx context.Context) error {
			_, err := h.maintenance.Fetch(ctx, ports.ListParams{})
			return err
		}},
		{"invoices", func(ctx context.Context) error {
			_, err := h.invoices.Fetch(ctx, ports.ListParams{})
			return err
		}},
		{"grocery_items", func(ctx context.Context) error {
			_, err := h.items.Fetch(ctx, ports.ListParams{})
			return err
		}},
		{"grocery_orders", func(ctx context.Context) error {
			_, err := h.orders.Fetch(ctx, ports.ListParams{})
			return err
		}},
		{"users", func(ctx context.Context) error {
			_, err := h.users.Fetch(ctx, ports.ListParams{})
			return err
		}},
	}

	var wg sync.WaitGroup
	for _, f := range fetches {
		wg.Add(1)
		go func(resource string, fn func(context.Context) error) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					err := fmt.Errorf("%s fetch panicked: %v", resource, r)
					h.mu.Lock()
					h.lastErr = err
					h.mu.Unlock()
					metrics.HydrationFetchesTotal.WithLabelValues(resource, "rejected").Inc()
					h.log.Error().Err(err).Str("resource", resource).Msg("hydration fetch panicked")
				}
			}()
			if err := fn(ctx); err != nil {
				metrics.HydrationFetchesTotal.WithLabelValues(resource, "rejected").Inc()
				h.log.Warn().Err(err).Str("resource", resource).Msg("hydration fetch failed")
				return
			}
			metrics.HydrationFetchesTotal.WithLabelValues(resource, "fulfilled").Inc()
		}(f.resource, f.fn)
	}
	wg.Wait()

	h.log.Info().Msg("hydration pass settled")
}

// Reset returns every store to its empty initial state.
func (h *Hydrator) Reset() {
	h.mu.Lock()
	h.lastErr = nil
	h.mu.Unlock()
	h.maintenance.Reset()
	h.invoices.Reset()
	h.items.Reset()
	h.orders.Reset()
	h.users.Reset()
}
