package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

const selectColumns = `id, expression, postfix, result, error, error_kind, source, created_at`

type Store struct {
	pool *ConnectionPool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO calculations (id, expression, postfix, result, error, error_kind, source, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.pool.conn.QueryRow(
		ctx,
		cmd,
		record.ID,
		record.Expression,
		record.Postfix,
		record.Result,
		record.Error,
		record.ErrorKind,
		string(record.Source),
		record.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert calculation: %w", err)
	}

	return id, nil
}

func (s *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid page", err)
	}

	var total int64
	if err := s.pool.conn.QueryRow(ctx, `SELECT count(*) FROM calculations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count calculations: %w", err)
	}

	query := `SELECT ` + selectColumns + `
        FROM calculations
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2`

	rows, err := s.pool.conn.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanRecord)
	if err != nil {
		return nil, fmt.Errorf("failed to scan calculations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*history.Record, error) {
	rows, err := s.pool.conn.Query(ctx, `SELECT `+selectColumns+` FROM calculations WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculation: %w", err)
	}

	record, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NewNotFound("calculation", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan calculation: %w", err)
	}
	return &record, nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	return NewHealthChecker(s.pool).Healthy(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}

func scanRecord(row pgx.CollectableRow) (history.Record, error) {
	var r history.Record
	var source string
	err := row.Scan(&r.ID, &r.Expression, &r.Postfix, &r.Result, &r.Error, &r.ErrorKind, &source, &r.CreatedAt)
	r.Source = history.Source(source)
	r.CreatedAt = r.CreatedAt.UTC()
	return r, err
}
