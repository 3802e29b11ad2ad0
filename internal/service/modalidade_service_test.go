package service

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newModalidadeService(t *testing.T) (ModalidadeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewModalidadeService(repository.NewModalidadeRepository(db), nil), db
}

func TestModalidadeCreateAndList(t *testing.T) {
	svc, db := newModalidadeService(t)
	ctx := context.Background()

	tipo := model.TipoCompensacao{Nome: "SNUC"}
	require.NoError(t, db.Create(&tipo).Error)

	criada, err := svc.Create(ctx, ModalidadeRequest{
		TipoID:    tipo.ID,
		Nome:      "PAGAMENTO",
		Proporcao: "0,5% do valor do empreendimento",
		Forma:     "Depósito em conta do órgão gestor",
	})
	require.NoError(t, err)
	assert.NotZero(t, criada.ID)

	modalidades, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, modalidades, 1)
	assert.Equal(t, tipo.ID, modalidades[0].TipoID)
	assert.Equal(t, "PAGAMENTO", modalidades[0].Nome)
	// absent fields stored as empty, not rejected
	assert.Empty(t, modalidades[0].Vantagens)
}

func TestModalidadeUpdate_FullReplace(t *testing.T) {
	svc, db := newModalidadeService(t)
	ctx := context.Background()

	tipo := model.TipoCompensacao{Nome: "SNUC"}
	require.NoError(t, db.Create(&tipo).Error)

	criada, err := svc.Create(ctx, ModalidadeRequest{
		TipoID:     tipo.ID,
		Nome:       "PAGAMENTO",
		Observacao: "observação antiga",
	})
	require.NoError(t, err)

	err = svc.Update(ctx, criada.ID, ModalidadeRequest{
		TipoID: tipo.ID,
		Nome:   "PAGAMENTO DIRETO",
	})
	require.NoError(t, err)

	modalidades, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, modalidades, 1)
	assert.Equal(t, "PAGAMENTO DIRETO", modalidades[0].Nome)
	assert.Empty(t, modalidades[0].Observacao, "full replace must clear fields absent from the request")
}

func TestModalidadeUpdateDelete_MissIsNotFound(t *testing.T) {
	svc, _ := newModalidadeService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Update(ctx, 77, ModalidadeRequest{Nome: "x"}), repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 77), repository.ErrNotFound)
}
