package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
)

type ResumoRepository struct {
	DB *gorm.DB
}

func NewResumoRepository(db *gorm.DB) *ResumoRepository {
	return &ResumoRepository{DB: db}
}

func (r *ResumoRepository) Create(resumo *model.Resumo) error {
	return r.DB.Create(resumo).Error
}

func (r *ResumoRepository) FindByID(id uint) (*model.Resumo, error) {
	var resumo model.Resumo
	if err := r.DB.First(&resumo, id).Error; err != nil {
		return nil, err
	}
	return &resumo, nil
}

func (r *ResumoRepository) ListByUsuario(usuarioID uint) ([]model.Resumo, error) {
	var resumos []model.Resumo
	err := r.DB.Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").Find(&resumos).Error
	return resumos, err
}

func (r *ResumoRepository) FindByShareToken(token string) (*model.Resumo, error) {
	var resumo model.Resumo
	if err := r.DB.Where("share_token = ?", token).First(&resumo).Error; err != nil {
		return nil, err
	}
	return &resumo, nil
}

func (r *ResumoRepository) CountByUsuario(usuarioID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Resumo{}).Where("usuario_id = ?", usuarioID).Count(&total).Error
	return total, err
}

func (r *ResumoRepository) Update(resumo *model.Resumo) error {
	return r.DB.Save(resumo).Error
}

func (r *ResumoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Resumo{}, id).Error
}
