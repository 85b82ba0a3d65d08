package repository

import (
	"cronos_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByConteudo(conteudoID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.DB.Where("conteudo_id = ?", conteudoID).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// CreateComQuestoes persiste o quiz e seus vínculos ordenados em uma
// transação. O índice único em conteudo_id faz o banco arbitrar criações
// concorrentes: o perdedor recebe gorm.ErrDuplicatedKey e deve reler a
// sessão do vencedor.
func (r *QuizRepository) CreateComQuestoes(quiz *model.Quiz, questaoIDs []uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}
		links := make([]model.QuizQuestao, 0, len(questaoIDs))
		for i, qid := range questaoIDs {
			links = append(links, model.QuizQuestao{
				QuizID:    quiz.ID,
				QuestaoID: qid,
				Ordem:     i + 1,
			})
		}
		return tx.Create(&links).Error
	})
}

// QuestaoIDsDoQuiz devolve os ids das questões na ordem fixa da sessão.
func (r *QuizRepository) QuestaoIDsDoQuiz(quizID uint) ([]uint, error) {
	var links []model.QuizQuestao
	err := r.DB.Where("quiz_id = ?", quizID).Order("ordem ASC").Find(&links).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.QuestaoID)
	}
	return ids, nil
}

// EnsureResultados cria os marcadores de resposta do usuário para cada
// questão da sessão, ignorando os que já existem. Idempotente por causa
// do índice único (usuario, quiz, questao).
func (r *QuizRepository) EnsureResultados(usuarioID, quizID uint, questaoIDs []uint) error {
	resultados := make([]model.QuizResultado, 0, len(questaoIDs))
	for _, qid := range questaoIDs {
		resultados = append(resultados, model.QuizResultado{
			UsuarioID: usuarioID,
			QuizID:    quizID,
			QuestaoID: qid,
		})
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&resultados).Error
}

func (r *QuizRepository) FindResultado(usuarioID, quizID, questaoID uint) (*model.QuizResultado, error) {
	var resultado model.QuizResultado
	err := r.DB.Where("usuario_id = ? AND quiz_id = ? AND questao_id = ?",
		usuarioID, quizID, questaoID).First(&resultado).Error
	if err != nil {
		return nil, err
	}
	return &resultado, nil
}

// GravarResposta escreve correção e carimbo de tempo juntos. Reenvio
// sobrescreve (a primeira resposta é a canônica para o produto, mas a
// regravação não é erro).
func (r *QuizRepository) GravarResposta(usuarioID, quizID, questaoID uint, correta bool) error {
	now := time.Now()
	return r.DB.Model(&model.QuizResultado{}).
		Where("usuario_id = ? AND quiz_id = ? AND questao_id = ?", usuarioID, quizID, questaoID).
		Updates(map[string]interface{}{
			"correta":       correta,
			"respondido_em": &now,
		}).Error
}

// ContarResultados devolve o total de marcadores e quantos ainda estão
// sem resposta para (usuario, quiz).
func (r *QuizRepository) ContarResultados(usuarioID, quizID uint) (total int64, pendentes int64, err error) {
	base := r.DB.Model(&model.QuizResultado{}).
		Where("usuario_id = ? AND quiz_id = ?", usuarioID, quizID)
	if err = base.Count(&total).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.QuizResultado{}).
		Where("usuario_id = ? AND quiz_id = ? AND respondido_em IS NULL", usuarioID, quizID).
		Count(&pendentes).Error
	return
}

func (r *QuizRepository) Agregado(usuarioID, quizID uint) (acertos int64, erros int64, err error) {
	if err = r.DB.Model(&model.QuizResultado{}).
		Where("usuario_id = ? AND quiz_id = ? AND correta = ?", usuarioID, quizID, true).
		Count(&acertos).Error; err != nil {
		return
	}
	err = r.DB.Model(&model.QuizResultado{}).
		Where("usuario_id = ? AND quiz_id = ? AND correta = ?", usuarioID, quizID, false).
		Count(&erros).Error
	return
}

// ResumoItem é uma linha do resumo pós-quiz.
type ResumoItem struct {
	QuestaoID    uint    `json:"questao_id"`
	Correta      *bool   `json:"correta"`
	Enunciado    string  `json:"enunciado"`
	LetraCorreta string  `json:"letra_correta"`
	TextoCorreto *string `json:"texto_correto"`
}

func (r *QuizRepository) ResumoItens(usuarioID, quizID uint) ([]ResumoItem, error) {
	var itens []ResumoItem
	err := r.DB.Model(&model.QuizResultado{}).
		Select(`quiz_resultados.questao_id, quiz_resultados.correta,
			questoes.enunciado, questoes.alternativa_correta AS letra_correta,
			alternativas.texto AS texto_correto`).
		Joins("JOIN questoes ON questoes.id = quiz_resultados.questao_id").
		Joins("LEFT JOIN alternativas ON alternativas.questao_id = questoes.id AND alternativas.letra = questoes.alternativa_correta").
		Where("quiz_resultados.quiz_id = ? AND quiz_resultados.usuario_id = ?", quizID, usuarioID).
		Order("quiz_resultados.id ASC").
		Find(&itens).Error
	return itens, err
}

// HistoricoItem agrega uma sessão respondida no histórico do usuário.
type HistoricoItem struct {
	QuizID       uint       `json:"quiz_id"`
	Materia      *string    `json:"materia"`
	Total        int64      `json:"total"`
	Acertos      int64      `json:"acertos"`
	Erros        int64      `json:"erros"`
	IniciadoEm   *time.Time `json:"iniciado_em"`
	FinalizadoEm *time.Time `json:"finalizado_em"`
}

func (r *QuizRepository) Historico(usuarioID uint) ([]HistoricoItem, error) {
	var itens []HistoricoItem
	err := r.DB.Model(&model.QuizResultado{}).
		Select(`quizzes.id AS quiz_id, materias.nome AS materia,
			COUNT(quiz_resultados.id) AS total,
			SUM(CASE WHEN quiz_resultados.correta = true THEN 1 ELSE 0 END) AS acertos,
			SUM(CASE WHEN quiz_resultados.correta = false THEN 1 ELSE 0 END) AS erros,
			MIN(quiz_resultados.respondido_em) AS iniciado_em,
			MAX(quiz_resultados.respondido_em) AS finalizado_em`).
		Joins("JOIN quizzes ON quizzes.id = quiz_resultados.quiz_id").
		Joins("LEFT JOIN materias ON materias.id = quizzes.materia_id").
		Where("quiz_resultados.usuario_id = ?", usuarioID).
		Group("quizzes.id, materias.nome").
		Order("iniciado_em DESC").
		Find(&itens).Error
	return itens, err
}
