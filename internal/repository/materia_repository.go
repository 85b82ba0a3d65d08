package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
)

type MateriaRepository struct {
	DB *gorm.DB
}

func NewMateriaRepository(db *gorm.DB) *MateriaRepository {
	return &MateriaRepository{DB: db}
}

// MateriaComTotais é a projeção da listagem (inclui contagem de tópicos).
type MateriaComTotais struct {
	model.Materia
	TotalTopicos int64 `json:"total_topicos"`
}

func (r *MateriaRepository) List() ([]MateriaComTotais, error) {
	var materias []model.Materia
	err := r.DB.Order("ordem ASC, nome ASC").Find(&materias).Error
	if err != nil {
		return nil, err
	}

	out := make([]MateriaComTotais, 0, len(materias))
	for _, m := range materias {
		var total int64
		if err := r.DB.Model(&model.Topico{}).Where("materia_id = ?", m.ID).Count(&total).Error; err != nil {
			return nil, err
		}
		out = append(out, MateriaComTotais{Materia: m, TotalTopicos: total})
	}
	return out, nil
}

func (r *MateriaRepository) FindByID(id uint) (*model.Materia, error) {
	var materia model.Materia
	if err := r.DB.First(&materia, id).Error; err != nil {
		return nil, err
	}
	return &materia, nil
}

func (r *MateriaRepository) Create(materia *model.Materia) error {
	return r.DB.Create(materia).Error
}

func (r *MateriaRepository) Update(materia *model.Materia) error {
	return r.DB.Save(materia).Error
}

func (r *MateriaRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Materia{}, id).Error
}
