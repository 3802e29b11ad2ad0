package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
)

// --- DTOs ---

// NormaRequest carries the editable fields of a norma. Absent fields are
// stored as empty values; the layer performs no field validation.
type NormaRequest struct {
	Nome      string `json:"nome"`
	Link      string `json:"link"`
	Preambulo string `json:"preambulo"`
}

// VinculoRequest links an existing norma to an existing tipo.
type VinculoRequest struct {
	TipoID  uint `json:"tipo_id"`
	NormaID uint `json:"norma_id"`
}

// --- Interface ---

type NormaService interface {
	Search(ctx context.Context, term string) ([]model.Norma, error)
	ListByTipo(ctx context.Context, tipoID uint) ([]model.Norma, error)
	Create(ctx context.Context, req NormaRequest) (model.Norma, error)
	Update(ctx context.Context, id uint, req NormaRequest) error
	Delete(ctx context.Context, id uint) error
	Vincular(ctx context.Context, req VinculoRequest) (model.NormaTipoCompensacao, error)
}

// --- Implementation ---

type normaService struct {
	normaRepo repository.NormaRepository
	notifier  ChangeNotifier
}

func NewNormaService(normaRepo repository.NormaRepository, notifier ChangeNotifier) NormaService {
	return &normaService{normaRepo: normaRepo, notifier: notifier}
}

func (s *normaService) Search(ctx context.Context, term string) ([]model.Norma, error) {
	return s.normaRepo.Search(ctx, term)
}

func (s *normaService) ListByTipo(ctx context.Context, tipoID uint) ([]model.Norma, error) {
	return s.normaRepo.ListByTipo(ctx, tipoID)
}

func (s *normaService) Create(ctx context.Context, req NormaRequest) (model.Norma, error) {
	norma := model.Norma{
		Nome:      req.Nome,
		Link:      req.Link,
		Preambulo: req.Preambulo,
	}
	if err := s.normaRepo.Create(ctx, &norma); err != nil {
		return model.Norma{}, err
	}
	s.notify(AcaoCriado, norma.ID)
	return norma, nil
}

func (s *normaService) Update(ctx context.Context, id uint, req NormaRequest) error {
	rows, err := s.normaRepo.Update(ctx, id, map[string]interface{}{
		"nome":      req.Nome,
		"link":      req.Link,
		"preambulo": req.Preambulo,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	s.notify(AcaoAlterado, id)
	return nil
}

func (s *normaService) Delete(ctx context.Context, id uint) error {
	rows, err := s.normaRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	s.notify(AcaoRemovido, id)
	return nil
}

func (s *normaService) Vincular(ctx context.Context, req VinculoRequest) (model.NormaTipoCompensacao, error) {
	link := model.NormaTipoCompensacao{
		TipoID:  req.TipoID,
		NormaID: req.NormaID,
	}
	if err := s.normaRepo.CreateLink(ctx, &link); err != nil {
		return model.NormaTipoCompensacao{}, err
	}
	s.notify(AcaoVinculado, link.ID)
	return link, nil
}

func (s *normaService) notify(acao string, id uint) {
	if s.notifier != nil {
		s.notifier.NotifyChange("normas", acao, id)
	}
}
