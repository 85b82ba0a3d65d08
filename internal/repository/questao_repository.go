package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
)

type QuestaoRepository struct {
	DB *gorm.DB
}

func NewQuestaoRepository(db *gorm.DB) *QuestaoRepository {
	return &QuestaoRepository{DB: db}
}

// CreateComAlternativas grava a questão e suas alternativas em uma
// transação; uma questão nunca fica visível sem o conjunto completo.
func (r *QuestaoRepository) CreateComAlternativas(questao *model.Questao) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(questao).Error
	})
}

// FindCompletasByConteudo devolve até limit questões do conteúdo que têm
// exatamente 5 alternativas, em ordem aleatória. A aleatoriedade evita que
// toda sessão use sempre o mesmo subconjunto; o LIMIT espelha a janela de
// 20 candidatas da seleção de sessão.
func (r *QuestaoRepository) FindCompletasByConteudo(conteudoID uint, limit int) ([]model.Questao, error) {
	var questoes []model.Questao
	err := r.DB.
		Joins("JOIN alternativas ON alternativas.questao_id = questoes.id AND alternativas.deleted_at IS NULL").
		Where("questoes.conteudo_id = ?", conteudoID).
		Group("questoes.id").
		Having("COUNT(alternativas.id) = 5").
		Order(r.randExpr()).
		Limit(limit).
		Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
			return db.Order("letra ASC")
		}).
		Find(&questoes).Error
	return questoes, err
}

func (r *QuestaoRepository) FindByID(id uint) (*model.Questao, error) {
	var questao model.Questao
	err := r.DB.Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
		return db.Order("letra ASC")
	}).First(&questao, id).Error
	if err != nil {
		return nil, err
	}
	return &questao, nil
}

func (r *QuestaoRepository) FindByIDs(ids []uint) ([]model.Questao, error) {
	var questoes []model.Questao
	err := r.DB.Preload("Alternativas", func(db *gorm.DB) *gorm.DB {
		return db.Order("letra ASC")
	}).Where("id IN ?", ids).Find(&questoes).Error
	return questoes, err
}

// RespostaInfo junta a letra da alternativa escolhida com o gabarito da
// questão, para a correção de uma resposta.
type RespostaInfo struct {
	LetraEscolhida string
	LetraCorreta   string
	Explicacao     string
}

func (r *QuestaoRepository) FindRespostaInfo(alternativaID, questaoID uint) (*RespostaInfo, error) {
	var info RespostaInfo
	err := r.DB.Model(&model.Alternativa{}).
		Select("alternativas.letra AS letra_escolhida, questoes.alternativa_correta AS letra_correta, questoes.explicacao").
		Joins("JOIN questoes ON questoes.id = alternativas.questao_id").
		Where("alternativas.id = ? AND questoes.id = ?", alternativaID, questaoID).
		First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *QuestaoRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Questao{}, id).Error
}

// randExpr devolve a função de ordenação aleatória do dialeto em uso
// (RAND no MySQL, RANDOM no sqlite usado em testes).
func (r *QuestaoRepository) randExpr() string {
	if r.DB.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
