package model

// Questao é uma questão de múltipla escolha pertencente a um conteúdo.
// Os ids de matéria/tópico/subtópico são desnormalizados para consultas
// de desempenho por matéria.
// swagger:model Questao
type Questao struct {
	BaseModel
	ConteudoID         uint   `gorm:"index;not null" json:"conteudo_id"`
	MateriaID          uint   `gorm:"index" json:"materia_id"`
	TopicoID           uint   `json:"topico_id"`
	SubtopicoID        uint   `json:"subtopico_id"`
	Enunciado          string `gorm:"type:text;not null" json:"enunciado"`
	AlternativaCorreta string `gorm:"size:1;not null" json:"alternativa_correta"`
	Explicacao         string `gorm:"type:text" json:"explicacao"`

	Alternativas []Alternativa `gorm:"constraint:OnDelete:CASCADE" json:"alternativas,omitempty"`
}

func (Questao) TableName() string {
	return "questoes"
}

// Alternativa é uma opção de resposta. Uma questão bem formada tem
// exatamente 5 alternativas com letras A-E distintas.
// swagger:model Alternativa
type Alternativa struct {
	BaseModel
	QuestaoID uint   `gorm:"not null;uniqueIndex:idx_questao_letra" json:"questao_id"`
	Letra     string `gorm:"size:1;not null;uniqueIndex:idx_questao_letra" json:"letra"`
	Texto     string `gorm:"type:text;not null" json:"texto"`
}

func (Alternativa) TableName() string {
	return "alternativas"
}
