package service

import (
	"cronos_backend/internal/model"
	"cronos_backend/internal/util"
	"errors"
	"time"

	"gorm.io/gorm"
)

type flashcardStore interface {
	Create(flashcard *model.Flashcard) error
	FindByIDEUsuario(id, usuarioID uint) (*model.Flashcard, error)
	ListByUsuario(usuarioID uint) ([]model.Flashcard, error)
	ListParaRevisao(usuarioID uint, agora time.Time) ([]model.Flashcard, error)
	Update(flashcard *model.Flashcard) error
	Delete(id, usuarioID uint) error
}

// FlashcardService aplica revisão em intervalo fixo: fácil volta em 5
// dias, médio em 3, difícil em 1.
type FlashcardService struct {
	repo flashcardStore
	now  func() time.Time
}

func NewFlashcardService(repo flashcardStore) *FlashcardService {
	return &FlashcardService{repo: repo, now: time.Now}
}

func intervaloRevisao(dificuldade string) time.Duration {
	switch dificuldade {
	case "facil":
		return 5 * 24 * time.Hour
	case "medio":
		return 3 * 24 * time.Hour
	case "dificil":
		return 24 * time.Hour
	default:
		return 2 * 24 * time.Hour
	}
}

func (s *FlashcardService) Criar(usuarioID, materiaID uint, pergunta, resposta, dificuldade string) (*model.Flashcard, error) {
	if dificuldade == "" {
		dificuldade = "medio"
	}
	proxima := s.now().Add(intervaloRevisao(dificuldade))
	flashcard := &model.Flashcard{
		UsuarioID:        usuarioID,
		MateriaID:        materiaID,
		Pergunta:         pergunta,
		Resposta:         resposta,
		NivelDificuldade: dificuldade,
		Status:           model.FlashcardARevisar,
		ProximaRevisao:   &proxima,
	}
	if err := s.repo.Create(flashcard); err != nil {
		return nil, err
	}
	return flashcard, nil
}

func (s *FlashcardService) Listar(usuarioID uint) ([]model.Flashcard, error) {
	return s.repo.ListByUsuario(usuarioID)
}

func (s *FlashcardService) ParaRevisao(usuarioID uint) ([]model.Flashcard, error) {
	return s.repo.ListParaRevisao(usuarioID, s.now())
}

// Revisar marca o cartão como revisado e reagenda pela dificuldade
// informada na revisão.
func (s *FlashcardService) Revisar(usuarioID, id uint, dificuldade string) (*model.Flashcard, error) {
	flashcard, err := s.repo.FindByIDEUsuario(id, usuarioID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrFlashcardNotFound
		}
		return nil, err
	}

	if dificuldade != "" {
		flashcard.NivelDificuldade = dificuldade
	}
	proxima := s.now().Add(intervaloRevisao(flashcard.NivelDificuldade))
	flashcard.Status = model.FlashcardRevisado
	flashcard.ProximaRevisao = &proxima

	if err := s.repo.Update(flashcard); err != nil {
		return nil, err
	}
	return flashcard, nil
}

func (s *FlashcardService) Excluir(usuarioID, id uint) error {
	if _, err := s.repo.FindByIDEUsuario(id, usuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrFlashcardNotFound
		}
		return err
	}
	return s.repo.Delete(id, usuarioID)
}
