package repository

import (
	"context"
	"strings"

	"backend/internal/model"

	"gorm.io/gorm"
)

type NormaRepository interface {
	Search(ctx context.Context, term string) ([]model.Norma, error)
	ListByTipo(ctx context.Context, tipoID uint) ([]model.Norma, error)
	Create(ctx context.Context, norma *model.Norma) error
	Update(ctx context.Context, id uint, columns map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	CreateLink(ctx context.Context, link *model.NormaTipoCompensacao) error
}

type normaRepository struct {
	*CrudRepository[model.Norma]
	db *gorm.DB
}

func NewNormaRepository(db *gorm.DB) NormaRepository {
	return &normaRepository{
		CrudRepository: NewCrudRepository[model.Norma](db),
		db:             db,
	}
}

// Search lists normas ordered by nome; a non-empty term filters by
// case-insensitive substring match over nome, link and preambulo.
// LOWER/LIKE instead of ILIKE so the query behaves the same on the sqlite
// test driver.
func (r *normaRepository) Search(ctx context.Context, term string) ([]model.Norma, error) {
	normas := make([]model.Norma, 0)
	q := r.db.WithContext(ctx).Order("nome ASC")
	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(link) LIKE ? OR LOWER(preambulo) LIKE ?",
			pattern, pattern, pattern)
	}
	if err := q.Find(&normas).Error; err != nil {
		return nil, err
	}
	return normas, nil
}

// ListByTipo returns the normas linked to a tipo through the association
// table. An empty result is a valid success.
func (r *normaRepository) ListByTipo(ctx context.Context, tipoID uint) ([]model.Norma, error) {
	normas := make([]model.Norma, 0)
	err := r.db.WithContext(ctx).
		Joins("INNER JOIN normas_tipos_compensacao ON normas_tipos_compensacao.norma_id = normas.id").
		Where("normas_tipos_compensacao.tipo_id = ?", tipoID).
		Order("normas.nome ASC").
		Find(&normas).Error
	if err != nil {
		return nil, err
	}
	return normas, nil
}

// CreateLink inserts a norma↔tipo association row. Duplicates are allowed.
func (r *normaRepository) CreateLink(ctx context.Context, link *model.NormaTipoCompensacao) error {
	return r.db.WithContext(ctx).Create(link).Error
}
