package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
)

type TipoCompensacaoRequest struct {
	Nome string `json:"nome"`
}

type TipoCompensacaoService interface {
	List(ctx context.Context) ([]model.TipoCompensacao, error)
	Create(ctx context.Context, req TipoCompensacaoRequest) (model.TipoCompensacao, error)
	Update(ctx context.Context, id uint, req TipoCompensacaoRequest) error
	Delete(ctx context.Context, id uint) error
}

type tipoCompensacaoService struct {
	tipoRepo repository.TipoCompensacaoRepository
	notifier ChangeNotifier
}

func NewTipoCompensacaoService(tipoRepo repository.TipoCompensacaoRepository, notifier ChangeNotifier) TipoCompensacaoService {
	return &tipoCompensacaoService{tipoRepo: tipoRepo, notifier: notifier}
}

func (s *tipoCompensacaoService) List(ctx context.Context) ([]model.TipoCompensacao, error) {
	return s.tipoRepo.List(ctx)
}

func (s *tipoCompensacaoService) Create(ctx context.Context, req TipoCompensacaoRequest) (model.TipoCompensacao, error) {
	tipo := model.TipoCompensacao{Nome: req.Nome}
	if err := s.tipoRepo.Create(ctx, &tipo); err != nil {
		return model.TipoCompensacao{}, err
	}
	s.notify(AcaoCriado, tipo.ID)
	return tipo, nil
}

func (s *tipoCompensacaoService) Update(ctx context.Context, id uint, req TipoCompensacaoRequest) error {
	rows, err := s.tipoRepo.Update(ctx, id, map[string]interface{}{"nome": req.Nome})
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	s.notify(AcaoAlterado, id)
	return nil
}

func (s *tipoCompensacaoService) Delete(ctx context.Context, id uint) error {
	rows, err := s.tipoRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	s.notify(AcaoRemovido, id)
	return nil
}

func (s *tipoCompensacaoService) notify(acao string, id uint) {
	if s.notifier != nil {
		s.notifier.NotifyChange("tipos_compensacao", acao, id)
	}
}
