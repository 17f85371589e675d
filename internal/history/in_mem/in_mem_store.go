package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]history.Record
	order       []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]history.Record),
	}
}

func (s *Store) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.storage[record.ID] = record
	slog.Debug("Saved calculation to in-memory history", "id", record.ID, "expression", record.Expression)

	return record.ID, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid page", err)
	}

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	offset := page.Offset()
	items := make([]history.Record, 0, min(page.Size, total))
	if offset >= total {
		return pagination.NewOffsetResult(items, int64(total), page.Page, page.Size), nil
	}

	// newest first: walk the insertion order backwards
	for i := total - 1 - offset; i >= 0 && len(items) < page.Size; i-- {
		items = append(items, s.storage[s.order[i]])
	}

	return pagination.NewOffsetResult(items, int64(total), page.Page, page.Size), nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*history.Record, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	record, ok := s.storage[id]
	if !ok {
		return nil, apperr.NewNotFound("calculation", id.String())
	}
	return &record, nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	return true
}

func (s *Store) Close() {}
