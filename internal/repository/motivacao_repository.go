package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
)

type MotivacaoRepository struct {
	DB *gorm.DB
}

func NewMotivacaoRepository(db *gorm.DB) *MotivacaoRepository {
	return &MotivacaoRepository{DB: db}
}

func (r *MotivacaoRepository) FindAtual() (*model.Motivacao, error) {
	var motivacao model.Motivacao
	err := r.DB.Where("em_uso = ? AND ativa = ?", true, true).First(&motivacao).Error
	if err == gorm.ErrRecordNotFound {
		// sem frase marcada, cai para qualquer ativa
		err = r.DB.Where("ativa = ?", true).Order(r.randExpr()).First(&motivacao).Error
	}
	if err != nil {
		return nil, err
	}
	return &motivacao, nil
}

func (r *MotivacaoRepository) List() ([]model.Motivacao, error) {
	var motivacoes []model.Motivacao
	err := r.DB.Order("created_at ASC").Find(&motivacoes).Error
	return motivacoes, err
}

func (r *MotivacaoRepository) Create(motivacao *model.Motivacao) error {
	return r.DB.Create(motivacao).Error
}

func (r *MotivacaoRepository) Update(motivacao *model.Motivacao) error {
	return r.DB.Save(motivacao).Error
}

func (r *MotivacaoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Motivacao{}, id).Error
}

// MarcarEmUso fixa a frase exibida no painel. Uma única frase fica em uso.
func (r *MotivacaoRepository) MarcarEmUso(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Motivacao{}).Where("em_uso = ?", true).
			Update("em_uso", false).Error; err != nil {
			return err
		}
		resultado := tx.Model(&model.Motivacao{}).Where("id = ? AND ativa = ?", id, true).
			Update("em_uso", true)
		if resultado.Error != nil {
			return resultado.Error
		}
		if resultado.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *MotivacaoRepository) randExpr() string {
	if r.DB.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
