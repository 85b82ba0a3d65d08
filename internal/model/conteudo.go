package model

// Conteudo é o corpo de aula gerado para um (materia, topico, subtopico).
// Imutável após a criação, exceto edição manual que sobrescreve o texto.
// swagger:model Conteudo
type Conteudo struct {
	BaseModel
	MateriaID   uint   `gorm:"index;not null" json:"materia_id"`
	TopicoID    uint   `gorm:"index;not null" json:"topico_id"`
	SubtopicoID uint   `gorm:"index;not null" json:"subtopico_id"`
	Titulo      string `gorm:"size:255" json:"titulo"`
	Texto       string `gorm:"type:longtext" json:"texto"`
	TextoHTML   string `gorm:"type:longtext" json:"texto_html"`
	GeradoViaIA bool   `gorm:"default:false" json:"gerado_via_ia"`
	Fonte       string `gorm:"size:100" json:"fonte"`
	Versao      int    `gorm:"default:1" json:"versao"`
	Ordem       int    `gorm:"default:1" json:"ordem"`

	Questoes []Questao `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Conteudo) TableName() string {
	return "conteudos"
}
