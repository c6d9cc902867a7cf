package store

import (
	"context"
	"fmt"
	"time"

	"lumiere/internal/utils"
	"lumiere/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

// row constrains the generic repositories to pointer types exposing the
// shared Meta columns.
type row[T any] interface {
	*T
	RowMeta() *types.Meta
}

// Repository is the one CRUD implementation behind every content category.
// Categories differ only in their row struct, table name, and ordering.
type Repository[T any, P row[T]] struct {
	pool    *pgxpool.Pool
	table   string
	orderBy string
	columns []string
}

func NewRepository[T any, P row[T]](pool *pgxpool.Pool, table, orderBy string) *Repository[T, P] {
	var zero T
	return &Repository[T, P]{
		pool:    pool,
		table:   table,
		orderBy: orderBy,
		columns: utils.StructTagValues(zero),
	}
}

func (r *Repository[T, P]) All(ctx context.Context) ([]*T, error) {
	query, args, err := psql().Select(r.columns...).From(r.table).
		OrderBy(r.orderBy).
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

func (r *Repository[T, P]) ByID(ctx context.Context, id string) (*T, error) {
	query, args, err := psql().Select(r.columns...).From(r.table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s fetch query: %w", r.table, err)
	}

	var item = new(T)
	err = pgxscan.Get(ctx, r.pool, item, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrRowNotFound
	}

	return item, nil
}

func (r *Repository[T, P]) Count(ctx context.Context) (int, error) {
	query, args, err := psql().Select("count(*)").From(r.table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to generate %s count query: %w", r.table, err)
	}

	var count int
	err = pgxscan.Get(ctx, r.pool, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table, err)
	}

	return count, nil
}

func (r *Repository[T, P]) Create(ctx context.Context, item P) error {
	now := time.Now()
	meta := item.RowMeta()
	meta.ID = utils.NanoID()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	query, args, err := psql().Insert(r.table).SetMap(utils.StructToMap(item)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate %s insert query: %w", r.table, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to insert into %s", r.table))
}

// Update overwrites the full row; there is no field-level patching. The
// created_at column is left untouched.
func (r *Repository[T, P]) Update(ctx context.Context, id string, item P) error {
	meta := item.RowMeta()
	meta.ID = id
	meta.UpdatedAt = time.Now()

	itemMap := utils.StructToMap(item)
	delete(itemMap, "created_at")

	query, args, err := psql().Update(r.table).SetMap(itemMap).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate %s update query for %s: %w", r.table, id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to update %s", r.table))
}

func (r *Repository[T, P]) Delete(ctx context.Context, id string) error {
	query, args, err := psql().Delete(r.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate %s delete query for %s: %w", r.table, id, err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, fmt.Sprintf("failed to delete from %s", r.table))
}
