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

// maintenanceKeys are the envelope keys this resource has been observed
// under, in priority order.
var maintenanceKeys = []string{"maintenanceRequests", "requests"}

// MaintenanceStore owns the local maintenance-request collection.
type MaintenanceStore struct {
	col *collection[domain.MaintenanceRequest]
	tx  ports.Transport
	log zerolog.Logger
}

func NewMaintenanceStore(tx ports.Transport, log zerolog.Logger) *MaintenanceStore {
	return &MaintenanceStore{
		col: newCollection(func(m *domain.MaintenanceRequest) string { return m.ID }),
		tx:  tx,
		log: log,
	}
}

func (s *MaintenanceStore) Items() []domain.MaintenanceRequest { return s.col.Items() }
func (s *MaintenanceStore) Err() error                         { return s.col.Err() }
func (s *MaintenanceStore) Loading() bool                      { return s.col.Loading() }
func (s *MaintenanceStore) Reset()                             { s.col.reset() }

// Fetch replaces the collection with the server's current list. On failure
// the collection is emptied, the error recorded, and a labeled error
// returned for the caller's retry UI.
func (s *MaintenanceStore) Fetch(ctx context.Context, params ports.ListParams) ([]domain.MaintenanceRequest, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	body, err := s.tx.Get(ctx, api.PathMaint, params.Query())
	if err != nil {
		s.col.fail(err)
		return nil, fmt.Errorf("fetch maintenance requests: %w", err)
	}

	items := payload.DecodeList[domain.MaintenanceRequest](body, maintenanceKeys...)
	s.col.replaceAll(items)
	s.log.Debug().Int("count", len(items)).Msg("maintenance requests fetched")
	return items, nil
}

// Create submits a new request and prepends it once the server confirms.
func (s *MaintenanceStore) Create(ctx context.Context, input ports.CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	if err := checkInput(input); err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	body, err := s.tx.Post(ctx, api.PathMaint, input)
	if err != nil {
		return nil, fmt.Errorf("create maintenance request: %w", err)
	}

	created := payload.DecodeItem[domain.MaintenanceRequest](body)
	if created == nil {
		return nil, fmt.Errorf("create maintenance request: %w", &domain.ServerError{Message: "server returned no request"})
	}

	s.col.prepend(*created)
	s.log.Info().Str("id", created.ID).Str("room", created.RoomNumber).Msg("maintenance request created")
	return created, nil
}

// UpdateStatus transitions a request and replaces the matching local entry
// with the server's version.
func (s *MaintenanceStore) UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus, note string) (*domain.MaintenanceRequest, error) {
	// Reject transitions the server would refuse anyway, when the current
	// state is known locally.
	if current, ok := s.col.find(id); ok && !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("update maintenance status: %s to %s: %w", current.Status, status, domain.ErrInvalidTransition)
	}

	body, err := s.tx.Put(ctx, api.MaintenanceStatusPath(id), map[string]any{
		"status": status,
		"note":   note,
	})
	if err != nil {
		return nil, fmt.Errorf("update maintenance status: %w", err)
	}

	updated := payload.DecodeItem[domain.MaintenanceRequest](body)
	if updated == nil {
		return nil, fmt.Errorf("update maintenance status: %w", &domain.ServerError{Message: "server returned no request"})
	}

	if !s.col.replaceByID(id, *updated) {
		s.log.Debug().Str("id", id).Msg("no local request matched, update not reflected in collection")
	}
	s.log.Info().Str("id", id).Str("status", string(status)).Msg("maintenance status updated")
	return updated, nil
}
