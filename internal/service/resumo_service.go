package service

import (
	"cronos_backend/internal/model"
	"cronos_backend/internal/util"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type resumoStore interface {
	Create(resumo *model.Resumo) error
	FindByID(id uint) (*model.Resumo, error)
	FindByShareToken(token string) (*model.Resumo, error)
	ListByUsuario(usuarioID uint) ([]model.Resumo, error)
	CountByUsuario(usuarioID uint) (int64, error)
	Update(resumo *model.Resumo) error
	Delete(id uint) error
}

// ResumoService gerencia as anotações de estudo do usuário.
type ResumoService struct {
	repo resumoStore
}

func NewResumoService(repo resumoStore) *ResumoService {
	return &ResumoService{repo: repo}
}

func (s *ResumoService) Criar(usuarioID, materiaID uint, conteudoID *uint, titulo, corpo string) (*model.Resumo, error) {
	resumo := &model.Resumo{
		UsuarioID:  usuarioID,
		MateriaID:  materiaID,
		ConteudoID: conteudoID,
		Titulo:     titulo,
		Corpo:      corpo,
	}
	if err := s.repo.Create(resumo); err != nil {
		return nil, err
	}
	return resumo, nil
}

func (s *ResumoService) Listar(usuarioID uint) ([]model.Resumo, error) {
	return s.repo.ListByUsuario(usuarioID)
}

func (s *ResumoService) Atualizar(usuarioID, id uint, titulo, corpo string) (*model.Resumo, error) {
	resumo, err := s.doUsuario(usuarioID, id)
	if err != nil {
		return nil, err
	}
	resumo.Titulo = titulo
	resumo.Corpo = corpo
	if err := s.repo.Update(resumo); err != nil {
		return nil, err
	}
	return resumo, nil
}

func (s *ResumoService) Excluir(usuarioID, id uint) error {
	if _, err := s.doUsuario(usuarioID, id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Compartilhar emite (ou reusa) o token público do resumo.
func (s *ResumoService) Compartilhar(usuarioID, id uint) (*model.Resumo, error) {
	resumo, err := s.doUsuario(usuarioID, id)
	if err != nil {
		return nil, err
	}
	if resumo.ShareToken == "" {
		resumo.ShareToken = uuid.NewString()
		if err := s.repo.Update(resumo); err != nil {
			return nil, err
		}
	}
	return resumo, nil
}

// PorToken serve o resumo compartilhado, sem exigir autenticação.
func (s *ResumoService) PorToken(token string) (*model.Resumo, error) {
	if token == "" {
		return nil, util.ErrResumoNotFound
	}
	resumo, err := s.repo.FindByShareToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResumoNotFound
		}
		return nil, err
	}
	return resumo, nil
}

func (s *ResumoService) doUsuario(usuarioID, id uint) (*model.Resumo, error) {
	resumo, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrResumoNotFound
		}
		return nil, err
	}
	if resumo.UsuarioID != usuarioID {
		// não revela existência de resumo alheio
		return nil, util.ErrResumoNotFound
	}
	return resumo, nil
}
