package model

import "time"

const (
	FlashcardARevisar = "a_revisar"
	FlashcardRevisado = "revisado"
)

// Flashcard é um cartão pergunta/resposta com revisão em intervalo fixo
// por dificuldade (facil=5d, medio=3d, dificil=1d).
// swagger:model Flashcard
type Flashcard struct {
	BaseModel
	UsuarioID        uint       `gorm:"index;not null" json:"usuario_id"`
	MateriaID        uint       `gorm:"index;not null" json:"materia_id"`
	Pergunta         string     `gorm:"type:text;not null" json:"pergunta"`
	Resposta         string     `gorm:"type:text;not null" json:"resposta"`
	NivelDificuldade string     `gorm:"size:20;default:medio" json:"nivel_dificuldade"`
	Status           string     `gorm:"size:20;default:a_revisar" json:"status"`
	ProximaRevisao   *time.Time `json:"proxima_revisao,omitempty"`
}

func (Flashcard) TableName() string {
	return "flashcards"
}
