package repository

import (
	"context"

	"backend/internal/model"

	"gorm.io/gorm"
)

type TipoCompensacaoRepository interface {
	List(ctx context.Context) ([]model.TipoCompensacao, error)
	Create(ctx context.Context, tipo *model.TipoCompensacao) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type tipoCompensacaoRepository struct {
	*CrudRepository[model.TipoCompensacao]
}

func NewTipoCompensacaoRepository(db *gorm.DB) TipoCompensacaoRepository {
	return &tipoCompensacaoRepository{NewCrudRepository[model.TipoCompensacao](db)}
}

func (r *tipoCompensacaoRepository) List(ctx context.Context) ([]model.TipoCompensacao, error) {
	return r.CrudRepository.List(ctx, "id ASC")
}
