package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
	"github.com/DjordjeVuckovic/rpn-calc/internal/history"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/pagination"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	store := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := store.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return store, nil
}

func (e *Store) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	doc := toDocument(record)

	res, err := e.client.Index(e.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index calculation: %w", err)
	}

	slog.Debug("calculation indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return record.ID, nil
}

func (e *Store) List(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	if err := page.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid page", err)
	}

	sortOrderDesc := sortorder.Desc
	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(page.Offset()).
		Size(page.Size).
		TrackTotalHits(true).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch history query failed", "error", err, "page", page.Page)
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	items := make([]history.Record, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		rec, err := doc.toRecord()
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return pagination.NewOffsetResult(items, total, page.Page, page.Size), nil
}

func (e *Store) Get(ctx context.Context, id uuid.UUID) (*history.Record, error) {
	res, err := e.client.Get(e.indexName, id.String()).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calculation: %w", err)
	}
	if !res.Found {
		return nil, apperr.NewNotFound("calculation", id.String())
	}

	var doc Document
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	rec, err := doc.toRecord()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (e *Store) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}

func (e *Store) Close() {}

func (e *Store) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	expression := types.NewTextProperty()
	expression.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": expression,
			"postfix":    types.NewKeywordProperty(),
			"result":     types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"error_kind": types.NewKeywordProperty(),
			"source":     types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", e.indexName)
	return nil
}
