package model

// Evolucao acumula a atividade diária de um usuário. Uma linha por
// (usuario, dia); o streak é fixado na criação da linha e os contadores
// são incrementados de forma atômica no banco.
// swagger:model Evolucao
type Evolucao struct {
	BaseModel
	UsuarioID        uint   `gorm:"not null;uniqueIndex:idx_usuario_data" json:"usuario_id"`
	Data             string `gorm:"size:10;not null;uniqueIndex:idx_usuario_data" json:"data"` // YYYY-MM-DD
	MinutosEstudados int    `gorm:"default:0" json:"minutos_estudados"`
	Acessos          int    `gorm:"default:0" json:"acessos"`
	DiasSeguidos     int    `gorm:"default:1" json:"dias_seguidos"`
}

func (Evolucao) TableName() string {
	return "evolucao"
}
