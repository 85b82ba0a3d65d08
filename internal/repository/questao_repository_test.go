package repository

import (
	"cronos_backend/internal/model"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestFindCompletasByConteudoExigeCincoAlternativas(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuestaoRepository(db)

	completa := questaoComAlternativas(t, db, 21, "A")

	// questão capenga: só 4 alternativas
	capenga := &model.Questao{
		ConteudoID:         21,
		Enunciado:          "Faltou a alternativa E",
		AlternativaCorreta: "A",
	}
	for _, letra := range []string{"A", "B", "C", "D"} {
		capenga.Alternativas = append(capenga.Alternativas, model.Alternativa{Letra: letra, Texto: "Opção " + letra})
	}
	if err := db.Create(capenga).Error; err != nil {
		t.Fatalf("criar questão incompleta: %v", err)
	}

	// questão completa de outro conteúdo fica de fora
	questaoComAlternativas(t, db, 22, "B")

	questoes, err := repo.FindCompletasByConteudo(21, 20)
	if err != nil {
		t.Fatalf("FindCompletasByConteudo: %v", err)
	}
	if len(questoes) != 1 {
		t.Fatalf("len = %d, esperava só a questão completa", len(questoes))
	}
	if questoes[0].ID != completa.ID {
		t.Errorf("id = %d, esperava %d", questoes[0].ID, completa.ID)
	}
	if len(questoes[0].Alternativas) != 5 {
		t.Errorf("alternativas carregadas = %d, esperava 5", len(questoes[0].Alternativas))
	}
	// preload ordenado por letra
	for i, letra := range []string{"A", "B", "C", "D", "E"} {
		if questoes[0].Alternativas[i].Letra != letra {
			t.Errorf("alternativa %d: letra %s, esperava %s", i, questoes[0].Alternativas[i].Letra, letra)
		}
	}
}

func TestFindCompletasByConteudoRespeitaLimite(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuestaoRepository(db)

	for i := 0; i < 6; i++ {
		questaoComAlternativas(t, db, 23, "C")
	}

	questoes, err := repo.FindCompletasByConteudo(23, 4)
	if err != nil {
		t.Fatalf("FindCompletasByConteudo: %v", err)
	}
	if len(questoes) != 4 {
		t.Errorf("len = %d, esperava o limite de 4", len(questoes))
	}
}

func TestFindRespostaInfoCruzaAlternativaComGabarito(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuestaoRepository(db)

	questao := questaoComAlternativas(t, db, 25, "D")
	escolhida := questao.Alternativas[1] // letra B

	info, err := repo.FindRespostaInfo(escolhida.ID, questao.ID)
	if err != nil {
		t.Fatalf("FindRespostaInfo: %v", err)
	}
	if info.LetraEscolhida != "B" {
		t.Errorf("LetraEscolhida = %s, esperava B", info.LetraEscolhida)
	}
	if info.LetraCorreta != "D" {
		t.Errorf("LetraCorreta = %s, esperava D", info.LetraCorreta)
	}
	if info.Explicacao == "" {
		t.Error("Explicacao deveria vir preenchida")
	}
}

func TestFindRespostaInfoRejeitaAlternativaDeOutraQuestao(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewQuestaoRepository(db)

	q1 := questaoComAlternativas(t, db, 27, "A")
	q2 := questaoComAlternativas(t, db, 27, "B")

	// alternativa da q2 contra o id da q1: o vínculo não existe
	_, err := repo.FindRespostaInfo(q2.Alternativas[0].ID, q1.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, esperava ErrRecordNotFound", err)
	}
}
