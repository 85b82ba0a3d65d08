package repository

import (
	"cronos_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ConteudoRepository struct {
	DB *gorm.DB
}

func NewConteudoRepository(db *gorm.DB) *ConteudoRepository {
	return &ConteudoRepository{DB: db}
}

// ConteudoDetalhe é o conteúdo com os nomes da árvore matéria → tópico →
// subtópico resolvidos, usado para montar prompts e respostas da API.
type ConteudoDetalhe struct {
	model.Conteudo
	MateriaNome   string `json:"materia_nome"`
	TopicoNome    string `json:"topico_nome"`
	SubtopicoNome string `json:"subtopico_nome"`
}

func (r *ConteudoRepository) Create(conteudo *model.Conteudo) error {
	return r.DB.Create(conteudo).Error
}

func (r *ConteudoRepository) FindByID(id uint) (*model.Conteudo, error) {
	var conteudo model.Conteudo
	if err := r.DB.First(&conteudo, id).Error; err != nil {
		return nil, err
	}
	return &conteudo, nil
}

func (r *ConteudoRepository) FindDetalheByID(id uint) (*ConteudoDetalhe, error) {
	var detalhe ConteudoDetalhe
	err := r.DB.Model(&model.Conteudo{}).
		Select("conteudos.*, materias.nome AS materia_nome, topicos.nome AS topico_nome, subtopicos.nome AS subtopico_nome").
		Joins("JOIN materias ON materias.id = conteudos.materia_id").
		Joins("JOIN topicos ON topicos.id = conteudos.topico_id").
		Joins("JOIN subtopicos ON subtopicos.id = conteudos.subtopico_id").
		Where("conteudos.id = ?", id).
		First(&detalhe).Error
	if err != nil {
		return nil, err
	}
	return &detalhe, nil
}

func (r *ConteudoRepository) ListBySubtopico(subtopicoID uint) ([]ConteudoDetalhe, error) {
	var detalhes []ConteudoDetalhe
	err := r.DB.Model(&model.Conteudo{}).
		Select("conteudos.*, materias.nome AS materia_nome, topicos.nome AS topico_nome, subtopicos.nome AS subtopico_nome").
		Joins("JOIN materias ON materias.id = conteudos.materia_id").
		Joins("JOIN topicos ON topicos.id = conteudos.topico_id").
		Joins("JOIN subtopicos ON subtopicos.id = conteudos.subtopico_id").
		Where("conteudos.subtopico_id = ?", subtopicoID).
		Order("conteudos.created_at DESC").
		Find(&detalhes).Error
	return detalhes, err
}

// UpdateTexto sobrescreve o corpo da aula (edição manual). Texto e HTML
// andam juntos, como na criação.
func (r *ConteudoRepository) UpdateTexto(id uint, texto string) error {
	return r.DB.Model(&model.Conteudo{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"texto":      texto,
			"texto_html": texto,
			"updated_at": time.Now(),
		}).Error
}

func (r *ConteudoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Conteudo{}, id).Error
}
