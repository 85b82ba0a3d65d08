package model

// Materia é uma disciplina do plano de estudos (História, Geografia...)
// swagger:model Materia
type Materia struct {
	BaseModel
	Nome  string `gorm:"size:120;not null" json:"nome"`
	Slug  string `gorm:"size:140;uniqueIndex" json:"slug"`
	Ordem int    `gorm:"default:0" json:"ordem"`

	Topicos []Topico `gorm:"constraint:OnDelete:CASCADE" json:"topicos,omitempty"`
}

func (Materia) TableName() string {
	return "materias"
}

// Topico agrupa subtópicos dentro de uma matéria
// swagger:model Topico
type Topico struct {
	BaseModel
	MateriaID uint   `gorm:"index;not null" json:"materia_id"`
	Nome      string `gorm:"size:160;not null" json:"nome"`
	Ordem     int    `gorm:"default:0" json:"ordem"`

	Subtopicos []Subtopico `gorm:"constraint:OnDelete:CASCADE" json:"subtopicos,omitempty"`
}

func (Topico) TableName() string {
	return "topicos"
}

// Subtopico é a unidade mínima de estudo; cada conteúdo gerado pertence a um
// swagger:model Subtopico
type Subtopico struct {
	BaseModel
	TopicoID uint   `gorm:"index;not null" json:"topico_id"`
	Nome     string `gorm:"size:180;not null" json:"nome"`
	Ordem    int    `gorm:"default:0" json:"ordem"`
}

func (Subtopico) TableName() string {
	return "subtopicos"
}
