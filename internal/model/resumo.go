package model

// Resumo é uma anotação de estudo do usuário, opcionalmente ligada a um
// conteúdo gerado.
// swagger:model Resumo
type Resumo struct {
	BaseModel
	UsuarioID  uint   `gorm:"index;not null" json:"usuario_id"`
	MateriaID  uint   `gorm:"index;not null" json:"materia_id"`
	ConteudoID *uint  `gorm:"index" json:"conteudo_id,omitempty"`
	Titulo     string `gorm:"size:255;not null" json:"titulo"`
	Corpo      string `gorm:"type:longtext;not null" json:"corpo"`
	ShareToken string `gorm:"size:36;index" json:"share_token,omitempty"`
}

func (Resumo) TableName() string {
	return "resumos"
}
