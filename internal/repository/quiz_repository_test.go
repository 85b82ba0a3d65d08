package repository

import (
	"cronos_backend/internal/model"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestCreateComQuestoesDuplicadoNoMesmoConteudo(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuizRepository(db)

	q1 := questaoComAlternativas(t, db, 7, "A")
	q2 := questaoComAlternativas(t, db, 7, "B")

	primeiro := &model.Quiz{ConteudoID: 7}
	if err := repo.CreateComQuestoes(primeiro, []uint{q1.ID, q2.ID}); err != nil {
		t.Fatalf("primeiro quiz: %v", err)
	}

	segundo := &model.Quiz{ConteudoID: 7}
	err := repo.CreateComQuestoes(segundo, []uint{q2.ID, q1.ID})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("segundo quiz do mesmo conteúdo: err = %v, esperava gorm.ErrDuplicatedKey", err)
	}

	// o perdedor relê a sessão do vencedor
	vencedor, err := repo.FindByConteudo(7)
	if err != nil {
		t.Fatalf("FindByConteudo: %v", err)
	}
	if vencedor.ID != primeiro.ID {
		t.Errorf("quiz vigente = %d, esperava %d", vencedor.ID, primeiro.ID)
	}
}

func TestQuestaoIDsDoQuizMantemOrdemDeCriacao(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuizRepository(db)

	var ids []uint
	for i := 0; i < 4; i++ {
		ids = append(ids, questaoComAlternativas(t, db, 3, "C").ID)
	}
	// ordem embaralhada em relação aos ids crescentes
	ordem := []uint{ids[2], ids[0], ids[3], ids[1]}

	quiz := &model.Quiz{ConteudoID: 3}
	if err := repo.CreateComQuestoes(quiz, ordem); err != nil {
		t.Fatalf("CreateComQuestoes: %v", err)
	}

	lidos, err := repo.QuestaoIDsDoQuiz(quiz.ID)
	if err != nil {
		t.Fatalf("QuestaoIDsDoQuiz: %v", err)
	}
	if len(lidos) != len(ordem) {
		t.Fatalf("len = %d, esperava %d", len(lidos), len(ordem))
	}
	for i := range ordem {
		if lidos[i] != ordem[i] {
			t.Errorf("posição %d: id %d, esperava %d", i, lidos[i], ordem[i])
		}
	}
}

func TestEnsureResultadosIdempotente(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuizRepository(db)

	q1 := questaoComAlternativas(t, db, 5, "A")
	q2 := questaoComAlternativas(t, db, 5, "B")
	quiz := &model.Quiz{ConteudoID: 5}
	if err := repo.CreateComQuestoes(quiz, []uint{q1.ID, q2.ID}); err != nil {
		t.Fatalf("CreateComQuestoes: %v", err)
	}

	ids := []uint{q1.ID, q2.ID}
	if err := repo.EnsureResultados(40, quiz.ID, ids); err != nil {
		t.Fatalf("primeiro EnsureResultados: %v", err)
	}
	if err := repo.EnsureResultados(40, quiz.ID, ids); err != nil {
		t.Fatalf("segundo EnsureResultados: %v", err)
	}

	total, pendentes, err := repo.ContarResultados(40, quiz.ID)
	if err != nil {
		t.Fatalf("ContarResultados: %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, esperava 2 (sem duplicar marcadores)", total)
	}
	if pendentes != 2 {
		t.Errorf("pendentes = %d, esperava 2", pendentes)
	}
}

func TestGravarRespostaEAgregado(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuizRepository(db)

	var ids []uint
	for i := 0; i < 3; i++ {
		ids = append(ids, questaoComAlternativas(t, db, 9, "D").ID)
	}
	quiz := &model.Quiz{ConteudoID: 9}
	if err := repo.CreateComQuestoes(quiz, ids); err != nil {
		t.Fatalf("CreateComQuestoes: %v", err)
	}
	if err := repo.EnsureResultados(40, quiz.ID, ids); err != nil {
		t.Fatalf("EnsureResultados: %v", err)
	}

	if err := repo.GravarResposta(40, quiz.ID, ids[0], true); err != nil {
		t.Fatalf("GravarResposta: %v", err)
	}
	if err := repo.GravarResposta(40, quiz.ID, ids[1], true); err != nil {
		t.Fatalf("GravarResposta: %v", err)
	}
	if err := repo.GravarResposta(40, quiz.ID, ids[2], false); err != nil {
		t.Fatalf("GravarResposta: %v", err)
	}

	total, pendentes, err := repo.ContarResultados(40, quiz.ID)
	if err != nil {
		t.Fatalf("ContarResultados: %v", err)
	}
	if total != 3 || pendentes != 0 {
		t.Errorf("total/pendentes = %d/%d, esperava 3/0", total, pendentes)
	}

	acertos, erros, err := repo.Agregado(40, quiz.ID)
	if err != nil {
		t.Fatalf("Agregado: %v", err)
	}
	if acertos != 2 || erros != 1 {
		t.Errorf("acertos/erros = %d/%d, esperava 2/1", acertos, erros)
	}

	resultado, err := repo.FindResultado(40, quiz.ID, ids[2])
	if err != nil {
		t.Fatalf("FindResultado: %v", err)
	}
	if resultado.Correta == nil || *resultado.Correta {
		t.Error("resultado da terceira questão deveria estar gravado como errado")
	}
	if resultado.RespondidoEm == nil {
		t.Error("RespondidoEm deveria acompanhar a correção")
	}
}

func TestResumoItensTrazGabaritoComTexto(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuizRepository(db)

	q1 := questaoComAlternativas(t, db, 11, "B")
	q2 := questaoComAlternativas(t, db, 11, "E")
	ids := []uint{q1.ID, q2.ID}

	quiz := &model.Quiz{ConteudoID: 11}
	if err := repo.CreateComQuestoes(quiz, ids); err != nil {
		t.Fatalf("CreateComQuestoes: %v", err)
	}
	if err := repo.EnsureResultados(40, quiz.ID, ids); err != nil {
		t.Fatalf("EnsureResultados: %v", err)
	}
	if err := repo.GravarResposta(40, quiz.ID, q1.ID, true); err != nil {
		t.Fatalf("GravarResposta: %v", err)
	}

	itens, err := repo.ResumoItens(40, quiz.ID)
	if err != nil {
		t.Fatalf("ResumoItens: %v", err)
	}
	if len(itens) != 2 {
		t.Fatalf("len(itens) = %d, esperava 2", len(itens))
	}

	if itens[0].QuestaoID != q1.ID || itens[0].LetraCorreta != "B" {
		t.Errorf("primeiro item: %+v", itens[0])
	}
	if itens[0].Correta == nil || !*itens[0].Correta {
		t.Error("primeiro item deveria constar como acerto")
	}
	if itens[0].TextoCorreto == nil || *itens[0].TextoCorreto != "Opção B" {
		t.Errorf("texto correto do primeiro item: %v", itens[0].TextoCorreto)
	}

	// pendente sai com Correta nula
	if itens[1].QuestaoID != q2.ID || itens[1].Correta != nil {
		t.Errorf("segundo item: %+v", itens[1])
	}
}

func TestHistoricoAgregaPorQuiz(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuizRepository(db)

	materia := &model.Materia{Nome: "História", Slug: "historia"}
	if err := db.Create(materia).Error; err != nil {
		t.Fatalf("criar matéria: %v", err)
	}

	var ids []uint
	for i := 0; i < 2; i++ {
		ids = append(ids, questaoComAlternativas(t, db, 13, "A").ID)
	}
	quiz := &model.Quiz{ConteudoID: 13, MateriaID: materia.ID}
	if err := repo.CreateComQuestoes(quiz, ids); err != nil {
		t.Fatalf("CreateComQuestoes: %v", err)
	}
	if err := repo.EnsureResultados(40, quiz.ID, ids); err != nil {
		t.Fatalf("EnsureResultados: %v", err)
	}
	if err := repo.GravarResposta(40, quiz.ID, ids[0], true); err != nil {
		t.Fatalf("GravarResposta: %v", err)
	}
	if err := repo.GravarResposta(40, quiz.ID, ids[1], false); err != nil {
		t.Fatalf("GravarResposta: %v", err)
	}

	itens, err := repo.Historico(40)
	if err != nil {
		t.Fatalf("Historico: %v", err)
	}
	if len(itens) != 1 {
		t.Fatalf("len(itens) = %d, esperava 1", len(itens))
	}
	item := itens[0]
	if item.QuizID != quiz.ID || item.Total != 2 || item.Acertos != 1 || item.Erros != 1 {
		t.Errorf("item agregado: %+v", item)
	}
	if item.Materia == nil || *item.Materia != "História" {
		t.Errorf("matéria do item: %v", item.Materia)
	}

	// outro usuário não enxerga o histórico alheio
	alheio, err := repo.Historico(41)
	if err != nil {
		t.Fatalf("Historico de outro usuário: %v", err)
	}
	if len(alheio) != 0 {
		t.Errorf("histórico alheio com %d itens", len(alheio))
	}
}
