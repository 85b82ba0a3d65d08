package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
)

type TopicoRepository struct {
	DB *gorm.DB
}

func NewTopicoRepository(db *gorm.DB) *TopicoRepository {
	return &TopicoRepository{DB: db}
}

func (r *TopicoRepository) ListByMateria(materiaID uint) ([]model.Topico, error) {
	var topicos []model.Topico
	err := r.DB.Where("materia_id = ?", materiaID).
		Order("ordem ASC, nome ASC").Find(&topicos).Error
	return topicos, err
}

func (r *TopicoRepository) FindByID(id uint) (*model.Topico, error) {
	var topico model.Topico
	if err := r.DB.First(&topico, id).Error; err != nil {
		return nil, err
	}
	return &topico, nil
}

func (r *TopicoRepository) Create(topico *model.Topico) error {
	return r.DB.Create(topico).Error
}

func (r *TopicoRepository) Update(topico *model.Topico) error {
	return r.DB.Save(topico).Error
}

func (r *TopicoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Topico{}, id).Error
}
