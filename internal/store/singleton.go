package store

import (
	"context"
	"fmt"
	"time"

	"lumiere/internal/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KeyedRepository handles singleton-per-key rows (page headings, content
// sections, mission/vision copy, settings). A missing row is a normal empty
// state, not an error.
type KeyedRepository[T any, P row[T]] struct {
	pool      *pgxpool.Pool
	table     string
	keyColumn string
	columns   []string
}

func NewKeyedRepository[T any, P row[T]](pool *pgxpool.Pool, table, keyColumn string) *KeyedRepository[T, P] {
	var zero T
	return &KeyedRepository[T, P]{
		pool:      pool,
		table:     table,
		keyColumn: keyColumn,
		columns:   utils.StructTagValues(zero),
	}
}

// ByKey returns nil without error when no row exists for the key.
func (r *KeyedRepository[T, P]) ByKey(ctx context.Context, key string) (*T, error) {
	query, args, err := psql().Select(r.columns...).From(r.table).
		Where(sq.Eq{r.keyColumn: key}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s fetch query: %w", r.table, err)
	}

	var item = new(T)
	err = pgxscan.Get(ctx, r.pool, item, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch %s row for %q: %w", r.table, key, err)
	}

	return item, nil
}

func (r *KeyedRepository[T, P]) All(ctx context.Context) ([]*T, error) {
	query, args, err := psql().Select(r.columns...).From(r.table).
		OrderBy(r.keyColumn + " ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s list query: %w", r.table, err)
	}

	var items = make([]*T, 0)
	err = pgxscan.Select(ctx, r.pool, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}

	return items, nil
}

// Upsert inserts the row or overwrites the existing row for its key. The id
// and created_at columns survive a conflict.
func (r *KeyedRepository[T, P]) Upsert(ctx context.Context, item P) error {
	now := time.Now()
	meta := item.RowMeta()
	if meta.ID == "" {
		meta.ID = utils.NanoID()
		meta.CreatedAt = now
	}
	meta.UpdatedAt = now

	itemMap := utils.StructToMap(item)

	updateMap := make(map[string]any)
	for k, v := range itemMap {
		if k != "id" && k != "created_at" && k != r.keyColumn {
			updateMap[k] = v
		}
	}

	query, args, err := psql().
		Insert(r.table).
		SetMap(itemMap).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", r.keyColumn, buildUpdateClause(updateMap))).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate %s upsert query: %w", r.table, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to upsert into %s", r.table))
}
