package service

import (
	"cronos_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type motivacaoStore interface {
	FindAtual() (*model.Motivacao, error)
	List() ([]model.Motivacao, error)
	Create(motivacao *model.Motivacao) error
	Update(motivacao *model.Motivacao) error
	Delete(id uint) error
	MarcarEmUso(id uint) error
}

type MotivacaoService struct {
	repo motivacaoStore
}

func NewMotivacaoService(repo motivacaoStore) *MotivacaoService {
	return &MotivacaoService{repo: repo}
}

// Atual devolve a frase do painel, ou nil se o catálogo está vazio.
func (s *MotivacaoService) Atual() (*model.Motivacao, error) {
	motivacao, err := s.repo.FindAtual()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return motivacao, err
}

func (s *MotivacaoService) Listar() ([]model.Motivacao, error) {
	return s.repo.List()
}

func (s *MotivacaoService) Criar(frase string) (*model.Motivacao, error) {
	motivacao := &model.Motivacao{Frase: frase, Ativa: true}
	if err := s.repo.Create(motivacao); err != nil {
		return nil, err
	}
	return motivacao, nil
}

func (s *MotivacaoService) DefinirEmUso(id uint) error {
	return s.repo.MarcarEmUso(id)
}
