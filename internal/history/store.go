package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

type Storer interface {
	Save(ctx context.Context, record Record) (uuid.UUID, error)
}

// Reader lists records newest first.
type Reader interface {
	List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[Record], error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
}

type Store interface {
	Storer
	Reader
	Healthy(ctx context.Context) bool
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported history store type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}
