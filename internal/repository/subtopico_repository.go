package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
)

type SubtopicoRepository struct {
	DB *gorm.DB
}

func NewSubtopicoRepository(db *gorm.DB) *SubtopicoRepository {
	return &SubtopicoRepository{DB: db}
}

func (r *SubtopicoRepository) ListByTopico(topicoID uint) ([]model.Subtopico, error) {
	var subtopicos []model.Subtopico
	err := r.DB.Where("topico_id = ?", topicoID).
		Order("ordem ASC, nome ASC").Find(&subtopicos).Error
	return subtopicos, err
}

func (r *SubtopicoRepository) FindByID(id uint) (*model.Subtopico, error) {
	var subtopico model.Subtopico
	if err := r.DB.First(&subtopico, id).Error; err != nil {
		return nil, err
	}
	return &subtopico, nil
}

func (r *SubtopicoRepository) Create(subtopico *model.Subtopico) error {
	return r.DB.Create(subtopico).Error
}

func (r *SubtopicoRepository) Update(subtopico *model.Subtopico) error {
	return r.DB.Save(subtopico).Error
}

func (r *SubtopicoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Subtopico{}, id).Error
}
