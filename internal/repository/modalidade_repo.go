package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

type ModalidadeRepository interface {
	List(ctx context.Context) ([]model.Modalidade, error)
	Create(ctx context.Context, modalidade *model.Modalidade) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type modalidadeRepository struct {
	*CrudRepository[model.Modalidade]
}

func NewModalidadeRepository(db *gorm.DB) ModalidadeRepository {
	return &modalidadeRepository{NewCrudRepository[model.Modalidade](db)}
}

func (r *modalidadeRepository) List(ctx context.Context) ([]model.Modalidade, error) {
	return r.CrudRepository.List(ctx, "id ASC")
}
