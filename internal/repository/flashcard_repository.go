package repository

import (
	"cronos_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type FlashcardRepository struct {
	DB *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) *FlashcardRepository {
	return &FlashcardRepository{DB: db}
}

func (r *FlashcardRepository) Create(flashcard *model.Flashcard) error {
	return r.DB.Create(flashcard).Error
}

func (r *FlashcardRepository) FindByIDEUsuario(id, usuarioID uint) (*model.Flashcard, error) {
	var flashcard model.Flashcard
	err := r.DB.Where("id = ? AND usuario_id = ?", id, usuarioID).First(&flashcard).Error
	if err != nil {
		return nil, err
	}
	return &flashcard, nil
}

func (r *FlashcardRepository) ListByUsuario(usuarioID uint) ([]model.Flashcard, error) {
	var flashcards []model.Flashcard
	err := r.DB.Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").Find(&flashcards).Error
	return flashcards, err
}

// ListParaRevisao devolve os cartões com revisão vencida (ou nunca
// revisados) do usuário.
func (r *FlashcardRepository) ListParaRevisao(usuarioID uint, agora time.Time) ([]model.Flashcard, error) {
	var flashcards []model.Flashcard
	err := r.DB.Where("usuario_id = ? AND (proxima_revisao IS NULL OR proxima_revisao <= ?)",
		usuarioID, agora).
		Order("proxima_revisao ASC").Find(&flashcards).Error
	return flashcards, err
}

func (r *FlashcardRepository) Update(flashcard *model.Flashcard) error {
	return r.DB.Save(flashcard).Error
}

func (r *FlashcardRepository) Delete(id, usuarioID uint) error {
	return r.DB.Where("usuario_id = ?", usuarioID).Delete(&model.Flashcard{}, id).Error
}
