package service

import (
	"fmt"
	"testing"
)

func questaoJSON(resposta string) string {
	return fmt.Sprintf(`{
		"pergunta": "Qual era o principal objetivo da Lei de Terras de 1850?",
		"alternativas": [
			"A) Dificultar o acesso à terra pelos ex-escravizados",
			"B) Distribuir terras a imigrantes",
			"C) Criar o registro civil",
			"D) Abolir as sesmarias",
			"E) Taxar grandes propriedades"
		],
		"resposta_correta": %s,
		"explicacao": "A lei condicionou a propriedade à compra."
	}`, resposta)
}

func TestNormalizarQuestoesComCercaDeCodigo(t *testing.T) {
	raw := "Aqui estão as questões:\n```json\n[" + questaoJSON(`"A"`) + "]\n```\nBons estudos!"

	questoes, err := NormalizarQuestoes(raw)
	if err != nil {
		t.Fatalf("NormalizarQuestoes: %v", err)
	}
	if len(questoes) != 1 {
		t.Fatalf("esperava 1 questão, veio %d", len(questoes))
	}

	q := questoes[0]
	if q.Correta != "A" {
		t.Errorf("gabarito = %q, esperava A", q.Correta)
	}
	if len(q.Alternativas) != 5 {
		t.Fatalf("esperava 5 alternativas, veio %d", len(q.Alternativas))
	}
	// rótulos "A)" etc. devem ter sido removidos
	if q.Alternativas[0].Texto != "Dificultar o acesso à terra pelos ex-escravizados" {
		t.Errorf("alternativa A crua: %q", q.Alternativas[0].Texto)
	}
	if q.Alternativas[1].Letra != "B" {
		t.Errorf("letra posicional = %q, esperava B", q.Alternativas[1].Letra)
	}
}

func TestNormalizarQuestoesGabaritoNumerico(t *testing.T) {
	raw := "[" + questaoJSON("2") + "]"

	questoes, err := NormalizarQuestoes(raw)
	if err != nil {
		t.Fatalf("NormalizarQuestoes: %v", err)
	}
	if len(questoes) != 1 {
		t.Fatalf("esperava 1 questão, veio %d", len(questoes))
	}
	if questoes[0].Correta != "C" {
		t.Errorf("índice 2 deveria virar C, veio %q", questoes[0].Correta)
	}
}

func TestNormalizarQuestoesDescartaMalformadasSemAbortar(t *testing.T) {
	// segunda questão sem gabarito, terceira com só 3 alternativas
	raw := `[` + questaoJSON(`"B"`) + `,
		{"pergunta": "Sem gabarito", "alternativas": ["a", "b", "c", "d", "e"]},
		{"pergunta": "Poucas", "alternativas": ["a", "b", "c"], "resposta_correta": "A"}
	]`

	questoes, err := NormalizarQuestoes(raw)
	if err != nil {
		t.Fatalf("NormalizarQuestoes: %v", err)
	}
	if len(questoes) != 1 {
		t.Fatalf("só a primeira deveria sobreviver, vieram %d", len(questoes))
	}
}

func TestNormalizarQuestoesDescartaGabaritoVazado(t *testing.T) {
	raw := `[{
		"pergunta": "Questão 3: O que foi o Pacto Colonial?",
		"alternativas": [
			"Exclusividade comercial da metrópole",
			"Acordo entre colônias",
			"Resposta correta: A",
			"Tratado com a Inglaterra",
			"Imposto sobre o ouro"
		],
		"resposta_correta": "A",
		"explicacao": ""
	}]`

	questoes, err := NormalizarQuestoes(raw)
	if err != nil {
		t.Fatalf("NormalizarQuestoes: %v", err)
	}
	// a alternativa com gabarito vazado cai, a questão fica com 4 e é descartada
	if len(questoes) != 0 {
		t.Fatalf("esperava 0 questões, vieram %d", len(questoes))
	}
}

func TestNormalizarQuestoesRemoveRotuloDeQuestao(t *testing.T) {
	raw := `[{
		"enunciado": "Questão 1: Quem proclamou a independência?",
		"alternativas": ["Dom Pedro I", "Dom Pedro II", "Dom João VI", "Tiradentes", "Deodoro"],
		"resposta_correta": "a"
	}]`

	questoes, err := NormalizarQuestoes(raw)
	if err != nil {
		t.Fatalf("NormalizarQuestoes: %v", err)
	}
	if len(questoes) != 1 {
		t.Fatalf("esperava 1 questão, veio %d", len(questoes))
	}
	if questoes[0].Enunciado != "Quem proclamou a independência?" {
		t.Errorf("rótulo não removido: %q", questoes[0].Enunciado)
	}
	if questoes[0].Correta != "A" {
		t.Errorf("letra minúscula deveria virar A, veio %q", questoes[0].Correta)
	}
}

func TestNormalizarQuestoesSemArrayJSON(t *testing.T) {
	if _, err := NormalizarQuestoes("Desculpe, não consegui gerar as questões."); err == nil {
		t.Fatal("esperava erro de parse")
	}
}

func TestNormalizarQuestoesComColchetesNaProsa(t *testing.T) {
	// o primeiro "[" do texto não é o array de questões
	raw := "Observação [importante]: segue o JSON pedido.\n[" + questaoJSON(`"E"`) + "]"

	questoes, err := NormalizarQuestoes(raw)
	if err != nil {
		t.Fatalf("NormalizarQuestoes: %v", err)
	}
	if len(questoes) != 1 {
		t.Fatalf("esperava 1 questão, veio %d", len(questoes))
	}
	if questoes[0].Correta != "E" {
		t.Errorf("gabarito = %q, esperava E", questoes[0].Correta)
	}
}

func TestExtrairArrayJSONColchetesDentroDeString(t *testing.T) {
	texto := `[{"pergunta": "use [x] na fórmula", "alternativas": ["a[", "b", "c", "d", "e"], "resposta_correta": "A"}]`

	arr, _, ok := extrairArrayJSON(texto)
	if !ok {
		t.Fatal("não achou o array")
	}
	if arr != texto {
		t.Fatalf("array truncado: %q", arr)
	}
}
