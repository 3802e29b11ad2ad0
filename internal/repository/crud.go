package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound reports that an id-addressed update or delete matched no row.
var ErrNotFound = errors.New("registro não encontrado")

// CrudRepository implements the list/create/update/delete shape shared by
// every catalog entity, parameterized by model type. The four entities only
// differ in their column lists, so updates take a declared column map and
// write every entry, zero values included (full replace).
type CrudRepository[T any] struct {
	db *gorm.DB
}

func NewCrudRepository[T any](db *gorm.DB) *CrudRepository[T] {
	return &CrudRepository[T]{db: db}
}

func (r *CrudRepository[T]) List(ctx context.Context, order string) ([]T, error) {
	rows := make([]T, 0)
	q := r.db.WithContext(ctx)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CrudRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update replaces the declared columns of the row with the given id and
// returns the affected-row count so callers can detect a miss.
func (r *CrudRepository[T]) Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(columns)
	return res.RowsAffected, res.Error
}

// Delete removes the row with the given id and returns the affected-row
// count.
func (r *CrudRepository[T]) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return res.RowsAffected, res.Error
}
