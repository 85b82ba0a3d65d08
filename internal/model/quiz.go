package model

import "time"

// Quiz é a sessão de 10 questões de um conteúdo. O índice único em
// conteudo_id garante no banco que dois pedidos concorrentes de criação
// nunca resultem em duas sessões para o mesmo conteúdo.
// swagger:model Quiz
type Quiz struct {
	BaseModel
	ConteudoID uint `gorm:"uniqueIndex;not null" json:"conteudo_id"`
	MateriaID  uint `gorm:"index" json:"materia_id"`
	Total      int  `gorm:"default:10" json:"total"`

	Questoes []QuizQuestao `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizQuestao liga uma questão a um quiz em uma posição fixa; a leitura
// sempre devolve as questões ordenadas por ordem para manter a numeração
// do cliente estável.
// swagger:model QuizQuestao
type QuizQuestao struct {
	BaseModel
	QuizID    uint `gorm:"not null;uniqueIndex:idx_quiz_questao" json:"quiz_id"`
	QuestaoID uint `gorm:"not null;uniqueIndex:idx_quiz_questao" json:"questao_id"`
	Ordem     int  `gorm:"not null" json:"ordem"`
}

func (QuizQuestao) TableName() string {
	return "quiz_questoes"
}

// QuizResultado guarda o estado de resposta de um usuário para uma questão
// da sessão. Correta e RespondidoEm são sempre gravados juntos.
// swagger:model QuizResultado
type QuizResultado struct {
	BaseModel
	UsuarioID    uint       `gorm:"not null;uniqueIndex:idx_usuario_quiz_questao" json:"usuario_id"`
	QuizID       uint       `gorm:"not null;uniqueIndex:idx_usuario_quiz_questao" json:"quiz_id"`
	QuestaoID    uint       `gorm:"not null;uniqueIndex:idx_usuario_quiz_questao" json:"questao_id"`
	Correta      *bool      `json:"correta"`
	RespondidoEm *time.Time `json:"respondido_em"`
}

func (QuizResultado) TableName() string {
	return "quiz_resultados"
}
