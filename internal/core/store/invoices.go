package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/infrastructure/api"
	"github.com/workerhousing/housing-client/internal/payload"
)

var invoiceKeys = []string{"invoices"}

// InvoiceStore owns the local invoice collection. Invoices are created
// server-side; the client only reads them and marks them paid.
type InvoiceStore struct {
	col *collection[domain.Invoice]
	tx  ports.Transport
	log zerolog.Logger

	// now is swapped out in tests to pin the payment-proof timestamp.
	now func() time.Time
}

func NewInvoiceStore(tx ports.Transport, log zerolog.Logger) *InvoiceStore {
	return &InvoiceStore{
		col: newCollection(func(i *domain.Invoice) string { return i.ID }),
		tx:  tx,
		log: log,
		now: time.Now,
	}
}

func (s *InvoiceStore) Items() []domain.Invoice { return s.col.Items() }
func (s *InvoiceStore) Err() error              { return s.col.Err() }
func (s *InvoiceStore) Loading() bool           { return s.col.Loading() }
func (s *InvoiceStore) Reset()                  { s.col.reset() }

// Fetch replaces the collection with the server's current list. Older
// backends key invoices by userId without a room number, so the room is
// backfilled from userId when absent.
func (s *InvoiceStore) Fetch(ctx context.Context, params ports.ListParams) ([]domain.Invoice, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	body, err := s.tx.Get(ctx, api.PathInvoices, params.Query())
	if err != nil {
		s.col.fail(err)
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}

	items := payload.DecodeList[domain.Invoice](body, invoiceKeys...)
	for i := range items {
		if items[i].RoomNumber == "" {
			items[i].RoomNumber = items[i].UserID
		}
	}
	s.col.replaceAll(items)
	s.log.Debug().Int("count", len(items)).Msg("invoices fetched")
	return items, nil
}

// MarkPaid transitions an invoice to paid. When the caller supplies payment
// proof and the server does not echo it back, the proof is merged into the
// returned invoice locally before storing, stamped with the submission time.
func (s *InvoiceStore) MarkPaid(ctx context.Context, id string, proof *ports.PaymentProofInput) (*domain.Invoice, error) {
	if proof != nil {
		if err := checkInput(*proof); err != nil {
			return nil, fmt.Errorf("update invoice status: %w", err)
		}
	}

	body, err := s.tx.Put(ctx, api.InvoiceStatusPath(id), map[string]any{
		"status": domain.InvoicePaid,
	})
	if err != nil {
		return nil, fmt.Errorf("update invoice status: %w", err)
	}

	updated := payload.DecodeItem[domain.Invoice](body)
	if updated == nil {
		return nil, fmt.Errorf("update invoice status: %w", &domain.ServerError{Message: "server returned no invoice"})
	}

	if proof != nil && updated.PaymentProof == nil {
		updated.PaymentProof = &domain.PaymentProof{
			Image: proof.Image,
			Notes: proof.Notes,
			Date:  s.now().UTC().Format(time.RFC3339),
		}
	}

	if !s.col.replaceByID(id, *updated) {
		s.log.Debug().Str("id", id).Msg("no local invoice matched, update not reflected in collection")
	}
	s.log.Info().Str("id", id).Msg("invoice marked paid")
	return updated, nil
}
