package repository

import (
	"cronos_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvolucaoRepository struct {
	DB *gorm.DB
}

func NewEvolucaoRepository(db *gorm.DB) *EvolucaoRepository {
	return &EvolucaoRepository{DB: db}
}

// RegistrarTick faz o upsert atômico do dia: cria a linha com o streak
// calculado pelo chamador, ou incrementa minutos/acessos no banco se já
// existir. O streak nunca é alterado depois da criação; pings concorrentes
// do mesmo dia disputam só os incrementos, que o banco resolve sem perder
// atualização.
func (r *EvolucaoRepository) RegistrarTick(usuarioID uint, data string, minutos, acessos, diasSeguidos int) error {
	entrada := model.Evolucao{
		UsuarioID:        usuarioID,
		Data:             data,
		MinutosEstudados: minutos,
		Acessos:          acessos,
		DiasSeguidos:     diasSeguidos,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "usuario_id"}, {Name: "data"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"minutos_estudados": gorm.Expr("minutos_estudados + ?", minutos),
			"acessos":           gorm.Expr("acessos + ?", acessos),
		}),
	}).Create(&entrada).Error
}

func (r *EvolucaoRepository) FindByUsuarioEData(usuarioID uint, data string) (*model.Evolucao, error) {
	var entrada model.Evolucao
	err := r.DB.Where("usuario_id = ? AND data = ?", usuarioID, data).First(&entrada).Error
	if err != nil {
		return nil, err
	}
	return &entrada, nil
}

// FindUltimaByUsuario devolve a entrada mais recente (base do cálculo de
// streak no primeiro toque do dia).
func (r *EvolucaoRepository) FindUltimaByUsuario(usuarioID uint) (*model.Evolucao, error) {
	var entrada model.Evolucao
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("data DESC").First(&entrada).Error
	if err != nil {
		return nil, err
	}
	return &entrada, nil
}

func (r *EvolucaoRepository) ListByUsuario(usuarioID uint) ([]model.Evolucao, error) {
	var entradas []model.Evolucao
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("data ASC").Find(&entradas).Error
	return entradas, err
}

func (r *EvolucaoRepository) TotalMinutos(usuarioID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&model.Evolucao{}).
		Where("usuario_id = ?", usuarioID).
		Select("COALESCE(SUM(minutos_estudados), 0)").
		Scan(&total).Error
	return total, err
}

// DesempenhoMateria agrega acertos/erros do usuário por matéria.
type DesempenhoMateria struct {
	MateriaID     uint   `json:"materia_id"`
	Materia       string `json:"materia"`
	Acertos       int64  `json:"acertos"`
	Erros         int64  `json:"erros"`
	TotalQuestoes int64  `json:"total_questoes"`
}

func (r *EvolucaoRepository) DesempenhoPorMateria(usuarioID uint) ([]DesempenhoMateria, error) {
	var linhas []DesempenhoMateria
	err := r.DB.Model(&model.Materia{}).
		Select(`materias.id AS materia_id, materias.nome AS materia,
			COALESCE(SUM(CASE WHEN quiz_resultados.correta = true THEN 1 ELSE 0 END), 0) AS acertos,
			COALESCE(SUM(CASE WHEN quiz_resultados.correta = false THEN 1 ELSE 0 END), 0) AS erros,
			COALESCE(COUNT(quiz_resultados.id), 0) AS total_questoes`).
		Joins("LEFT JOIN questoes ON questoes.materia_id = materias.id").
		Joins(`LEFT JOIN quiz_resultados ON quiz_resultados.questao_id = questoes.id
			AND quiz_resultados.usuario_id = ? AND quiz_resultados.respondido_em IS NOT NULL`, usuarioID).
		Group("materias.id, materias.nome").
		Order("materias.nome ASC").
		Find(&linhas).Error
	return linhas, err
}
