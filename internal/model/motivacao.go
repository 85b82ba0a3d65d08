package model

// Motivacao é uma frase motivacional exibida no painel do estudante.
// swagger:model Motivacao
type Motivacao struct {
	BaseModel
	Frase string `gorm:"type:text;not null" json:"frase"`
	Ativa bool   `gorm:"default:true" json:"ativa"`
	EmUso bool   `gorm:"default:false" json:"em_uso"`
}

func (Motivacao) TableName() string {
	return "motivacoes"
}
