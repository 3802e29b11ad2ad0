package service

import (
	"context"

	"backend/internal/model"
	"backend/internal/repository"
)

// ModalidadeRequest carries the nine editable fields of a modalidade. The
// tipo_id foreign key is enforced by the store, not here.
type ModalidadeRequest struct {
	TipoID                uint   `json:"tipo_id"`
	Nome                  string `json:"nome"`
	Proporcao             string `json:"proporcao"`
	Forma                 string `json:"forma"`
	Especificidades       string `json:"especificidades"`
	Vantagens             string `json:"vantagens"`
	Desvantagens          string `json:"desvantagens"`
	Observacao            string `json:"observacao"`
	DocumentosNecessarios string `json:"documentos_necessarios"`
}

type ModalidadeService interface {
	List(ctx context.Context) ([]model.Modalidade, error)
	Create(ctx context.Context, req ModalidadeRequest) (model.Modalidade, error)
	Update(ctx context.Context, id uint, req ModalidadeRequest) error
	Delete(ctx context.Context, id uint) error
}

type modalidadeService struct {
	modalidadeRepo repository.ModalidadeRepository
	notifier       ChangeNotifier
}

func NewModalidadeService(modalidadeRepo repository.ModalidadeRepository, notifier ChangeNotifier) ModalidadeService {
	return &modalidadeService{modalidadeRepo: modalidadeRepo, notifier: notifier}
}

func (s *modalidadeService) List(ctx context.Context) ([]model.Modalidade, error) {
	return s.modalidadeRepo.List(ctx)
}

func (s *modalidadeService) Create(ctx context.Context, req ModalidadeRequest) (model.Modalidade, error) {
	modalidade := toModalidadeModel(req)
	if err := s.modalidadeRepo.Create(ctx, &modalidade); err != nil {
		return model.Modalidade{}, err
	}
	s.notify(AcaoCriado, modalidade.ID)
	return modalidade, nil
}

func (s *modalidadeService) Update(ctx context.Context, id uint, req ModalidadeRequest) error {
	rows, err := s.modalidadeRepo.Update(ctx, id, map[string]interface{}{
		"tipo_id":                req.TipoID,
		"nome":                   req.Nome,
		"proporcao":              req.Proporcao,
		"forma":                  req.Forma,
		"especificidades":        req.Especificidades,
		"vantagens":              req.Vantagens,
		"desvantagens":           req.Desvantagens,
		"observacao":             req.Observacao,
		"documentos_necessarios": req.DocumentosNecessarios,
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

func (s *modalidadeService) Delete(ctx context.Context, id uint) error {
	rows, err := s.modalidadeRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	s.notify(AcaoRemovido, id)
	return nil
}

func (s *modalidadeService) notify(acao string, id uint) {
	if s.notifier != nil {
		s.notifier.NotifyChange("modalidades", acao, id)
	}
}

func toModalidadeModel(req ModalidadeRequest) model.Modalidade {
	return model.Modalidade{
		TipoID:                req.TipoID,
		Nome:                  req.Nome,
		Proporcao:             req.Proporcao,
		Forma:                 req.Forma,
		Especificidades:       req.Especificidades,
		Vantagens:             req.Vantagens,
		Desvantagens:          req.Desvantagens,
		Observacao:            req.Observacao,
		DocumentosNecessarios: req.DocumentosNecessarios,
	}
}
