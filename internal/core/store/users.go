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

var userKeys = []string{"users"}

// UserStore owns the application user list used by the admin management
// screens. It is the single source of truth for users: the session reads
// from here rather than keeping a parallel copy.
type UserStore struct {
	col *collection[domain.User]
	tx  ports.Transport
	log zerolog.Logger
}

func NewUserStore(tx ports.Transport, log zerolog.Logger) *UserStore {
	return &UserStore{
		col: newCollection(func(u *domain.User) string { return u.ID }),
		tx:  tx,
		log: log,
	}
}

func (s *UserStore) Items() []domain.User { return s.col.Items() }
func (s *UserStore) Err() error           { return s.col.Err() }
func (s *UserStore) Loading() bool        { return s.col.Loading() }
func (s *UserStore) Reset()               { s.col.reset() }

func (s *UserStore) Fetch(ctx context.Context, params ports.ListParams) ([]domain.User, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	body, err := s.tx.Get(ctx, api.PathUsers, params.Query())
	if err != nil {
		s.col.fail(err)
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	items := payload.DecodeList[domain.User](body, userKeys...)
	s.col.replaceAll(items)
	s.log.Debug().Int("count", len(items)).Msg("users fetched")
	return items, nil
}
