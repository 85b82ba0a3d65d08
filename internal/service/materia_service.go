package service

import (
	"cronos_backend/internal/model"
	"cronos_backend/internal/repository"
	"cronos_backend/internal/util"
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

type materiaStore interface {
	List() ([]repository.MateriaComTotais, error)
	FindByID(id uint) (*model.Materia, error)
	Create(materia *model.Materia) error
	Update(materia *model.Materia) error
	Delete(id uint) error
}

type topicoStore interface {
	ListByMateria(materiaID uint) ([]model.Topico, error)
	FindByID(id uint) (*model.Topico, error)
	Create(topico *model.Topico) error
	Update(topico *model.Topico) error
	Delete(id uint) error
}

type subtopicoStore interface {
	ListByTopico(topicoID uint) ([]model.Subtopico, error)
	FindByID(id uint) (*model.Subtopico, error)
	Create(subtopico *model.Subtopico) error
	Update(subtopico *model.Subtopico) error
	Delete(id uint) error
}

// MateriaService administra a árvore matéria → tópico → subtópico.
// Exclusões cascateiam pelo banco.
type MateriaService struct {
	materias   materiaStore
	topicos    topicoStore
	subtopicos subtopicoStore
}

func NewMateriaService(materias materiaStore, topicos topicoStore, subtopicos subtopicoStore) *MateriaService {
	return &MateriaService{materias: materias, topicos: topicos, subtopicos: subtopicos}
}

var slugInvalido = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(nome string) string {
	slug := strings.ToLower(strings.TrimSpace(nome))
	substituicoes := strings.NewReplacer(
		"á", "a", "à", "a", "ã", "a", "â", "a",
		"é", "e", "ê", "e", "í", "i",
		"ó", "o", "õ", "o", "ô", "o",
		"ú", "u", "ç", "c",
	)
	slug = substituicoes.Replace(slug)
	slug = slugInvalido.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (s *MateriaService) Listar() ([]repository.MateriaComTotais, error) {
	return s.materias.List()
}

func (s *MateriaService) CriarMateria(nome string, ordem int) (*model.Materia, error) {
	materia := &model.Materia{Nome: nome, Slug: slugify(nome), Ordem: ordem}
	if err := s.materias.Create(materia); err != nil {
		return nil, err
	}
	return materia, nil
}

func (s *MateriaService) AtualizarMateria(id uint, nome string, ordem int) (*model.Materia, error) {
	materia, err := s.materias.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriaNotFound
		}
		return nil, err
	}
	materia.Nome = nome
	materia.Slug = slugify(nome)
	materia.Ordem = ordem
	if err := s.materias.Update(materia); err != nil {
		return nil, err
	}
	return materia, nil
}

func (s *MateriaService) ExcluirMateria(id uint) error {
	if _, err := s.materias.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMateriaNotFound
		}
		return err
	}
	return s.materias.Delete(id)
}

func (s *MateriaService) ListarTopicos(materiaID uint) ([]model.Topico, error) {
	if _, err := s.materias.FindByID(materiaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriaNotFound
		}
		return nil, err
	}
	return s.topicos.ListByMateria(materiaID)
}

func (s *MateriaService) CriarTopico(materiaID uint, nome string, ordem int) (*model.Topico, error) {
	if _, err := s.materias.FindByID(materiaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriaNotFound
		}
		return nil, err
	}
	topico := &model.Topico{MateriaID: materiaID, Nome: nome, Ordem: ordem}
	if err := s.topicos.Create(topico); err != nil {
		return nil, err
	}
	return topico, nil
}

func (s *MateriaService) ExcluirTopico(id uint) error {
	if _, err := s.topicos.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMateriaNotFound
		}
		return err
	}
	return s.topicos.Delete(id)
}

func (s *MateriaService) ListarSubtopicos(topicoID uint) ([]model.Subtopico, error) {
	if _, err := s.topicos.FindByID(topicoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriaNotFound
		}
		return nil, err
	}
	return s.subtopicos.ListByTopico(topicoID)
}

func (s *MateriaService) CriarSubtopico(topicoID uint, nome string, ordem int) (*model.Subtopico, error) {
	if _, err := s.topicos.FindByID(topicoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMateriaNotFound
		}
		return nil, err
	}
	subtopico := &model.Subtopico{TopicoID: topicoID, Nome: nome, Ordem: ordem}
	if err := s.subtopicos.Create(subtopico); err != nil {
		return nil, err
	}
	return subtopico, nil
}

func (s *MateriaService) ExcluirSubtopico(id uint) error {
	if _, err := s.subtopicos.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrMateriaNotFound
		}
		return err
	}
	return s.subtopicos.Delete(id)
}
