package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/workerhousing/housing-client/internal/core/domain"
	"github.com/workerhousing/housing-client/internal/core/ports"
	"github.com/workerhousing/housing-client/internal/infrastructure/api"
	"github.com/workerhousing/housing-client/internal/payload"
)

var groceryOrderKeys = []string{"groceryOrders", "orders"}

// GroceryOrderStore owns resident grocery orders. Residents create them at
// checkout; staff mutate their status.
type GroceryOrderStore struct {
	col *collection[domain.GroceryOrder]
	tx  ports.Transport
	log zerolog.Logger
}

func NewGroceryOrderStore(tx ports.Transport, log zerolog.Logger) *GroceryOrderStore {
	return &GroceryOrderStore{
		col: newCollection(func(o *domain.GroceryOrder) string { return o.ID }),
		tx:  tx,
		log: log,
	}
}

func (s *GroceryOrderStore) Items() []domain.GroceryOrder { return s.col.Items() }
func (s *GroceryOrderStore) Err() error                   { return s.col.Err() }
func (s *GroceryOrderStore) Loading() bool                { return s.col.Loading() }
func (s *GroceryOrderStore) Reset()                       { s.col.reset() }

func (s *GroceryOrderStore) Fetch(ctx context.Context, params ports.ListParams) ([]domain.GroceryOrder, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	body, err := s.tx.Get(ctx, api.PathOrders, params.Query())
	if err != nil {
		s.col.fail(err)
		return nil, fmt.Errorf("fetch grocery orders: %w", err)
	}

	items := payload.DecodeList[domain.GroceryOrder](body, groceryOrderKeys...)
	s.col.replaceAll(items)
	s.log.Debug().Int("count", len(items)).Msg("grocery orders fetched")
	return items, nil
}

// Create submits a checkout and prepends the confirmed order.
func (s *GroceryOrderStore) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.GroceryOrder, error) {
	if err := checkInput(input); err != nil {
		return nil, fmt.Errorf("create grocery order: %w", err)
	}

	body, err := s.tx.Post(ctx, api.PathOrders, input)
	if err != nil {
		return nil, fmt.Errorf("create grocery order: %w", err)
	}

	created := payload.DecodeItem[domain.GroceryOrder](body)
	if created == nil {
		return nil, fmt.Errorf("create grocery order: %w", &domain.ServerError{Message: "server returned no order"})
	}

	s.col.prepend(*created)
	s.log.Info().Str("id", created.ID).Float64("total", created.Total).Msg("grocery order created")
	return created, nil
}

func (s *GroceryOrderStore) UpdateStatus(ctx context.Context, id, status string) (*domain.GroceryOrder, error) {
	body, err := s.tx.Put(ctx, api.OrderStatusPath(id), map[string]any{"status": status})
	if err != nil {
		return nil, fmt.Errorf("update grocery order status: %w", err)
	}

	updated := payload.DecodeItem[domain.GroceryOrder](body)
	if updated == nil {
		return nil, fmt.Errorf("update grocery order status: %w", &domain.ServerError{Message: "server returned no order"})
	}

	if !s.col.replaceByID(id, *updated) {
		s.log.Debug().Str("id", id).Msg("no local order matched, update not reflected in collection")
	}
	s.log.Info().Str("id", id).Str("status", status).Msg("grocery order status updated")
	return updated, nil
}
