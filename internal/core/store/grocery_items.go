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

var groceryItemKeys = []string{"groceryItems", "items"}

// GroceryItemStore owns the grocery catalog, the one fully CRUD-managed
// resource (admin only).
type GroceryItemStore struct {
	col *collection[domain.GroceryItem]
	tx  ports.Transport
	log zerolog.Logger
}

func NewGroceryItemStore(tx ports.Transport, log zerolog.Logger) *GroceryItemStore {
	return &GroceryItemStore{
		col: newCollection(func(g *domain.GroceryItem) string { return g.ID }),
		tx:  tx,
		log: log,
	}
}

func (s *GroceryItemStore) Items() []domain.GroceryItem { return s.col.Items() }
func (s *GroceryItemStore) Err() error                  { return s.col.Err() }
func (s *GroceryItemStore) Loading() bool               { return s.col.Loading() }
func (s *GroceryItemStore) Reset()                      { s.col.reset() }

func (s *GroceryItemStore) Fetch(ctx context.Context, params ports.ListParams) ([]domain.GroceryItem, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	body, err := s.tx.Get(ctx, api.PathGroceries, params.Query())
	if err != nil {
		s.col.fail(err)
		return nil, fmt.Errorf("fetch grocery items: %w", err)
	}

	items := payload.DecodeList[domain.GroceryItem](body, groceryItemKeys...)
	s.col.replaceAll(items)
	s.log.Debug().Int("count", len(items)).Msg("grocery items fetched")
	return items, nil
}

func (s *GroceryItemStore) Create(ctx context.Context, input ports.CreateGroceryItemInput) (*domain.GroceryItem, error) {
	if err := checkInput(input); err != nil {
		return nil, fmt.Errorf("create grocery item: %w", err)
	}

	body, err := s.tx.Post(ctx, api.PathGroceries, input)
	if err != nil {
		return nil, fmt.Errorf("create grocery item: %w", err)
	}

	created := payload.DecodeItem[domain.GroceryItem](body)
	if created == nil {
		return nil, fmt.Errorf("create grocery item: %w", &domain.ServerError{Message: "server returned no item"})
	}

	s.col.prepend(*created)
	s.log.Info().Str("id", created.ID).Str("name", created.Name).Msg("grocery item created")
	return created, nil
}

func (s *GroceryItemStore) Update(ctx context.Context, id string, input ports.UpdateGroceryItemInput) (*domain.GroceryItem, error) {
	if err := checkInput(input); err != nil {
		return nil, fmt.Errorf("update grocery item: %w", err)
	}

	body, err := s.tx.Put(ctx, api.GroceryItemPath(id), input)
	if err != nil {
		return nil, fmt.Errorf("update grocery item: %w", err)
	}

	updated := payload.DecodeItem[domain.GroceryItem](body)
	if updated == nil {
		return nil, fmt.Errorf("update grocery item: %w", &domain.ServerError{Message: "server returned no item"})
	}

	if !s.col.replaceByID(id, *updated) {
		s.log.Debug().Str("id", id).Msg("no local item matched, update not reflected in collection")
	}
	return updated, nil
}

// UpdateStock adjusts only the stock counter (staff restocking flow).
func (s *GroceryItemStore) UpdateStock(ctx context.Context, id string, stock int) (*domain.GroceryItem, error) {
	if stock < 0 {
		return nil, fmt.Errorf("update grocery stock: %w", &domain.ValidationError{Fields: map[string]string{"stock": "must be at least 0"}})
	}

	body, err := s.tx.Put(ctx, api.GroceryStockPath(id), map[string]any{"stock": stock})
	if err != nil {
		return nil, fmt.Errorf("update grocery stock: %w", err)
	}

	updated := payload.DecodeItem[domain.GroceryItem](body)
	if updated == nil {
		return nil, fmt.Errorf("update grocery stock: %w", &domain.ServerError{Message: "server returned no item"})
	}

	if !s.col.replaceByID(id, *updated) {
		s.log.Debug().Str("id", id).Msg("no local item matched, update not reflected in collection")
	}
	return updated, nil
}

func (s *GroceryItemStore) Delete(ctx context.Context, id string) error {
	if _, err := s.tx.Delete(ctx, api.GroceryItemPath(id)); err != nil {
		return fmt.Errorf("delete grocery item: %w", err)
	}
	s.col.removeByID(id)
	s.log.Info().Str("id", id).Msg("grocery item deleted")
	return nil
}
