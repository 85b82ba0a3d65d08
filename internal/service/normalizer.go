package service

import (
	"cronos_backend/internal/util"
	"encoding/json"
	"regexp"
	"strings"
)

// QuestaoNormalizada é uma questão validada extraída da saída bruta da IA,
// pronta para persistência: enunciado limpo, 5 alternativas com letras
// A-E e gabarito normalizado.
type QuestaoNormalizada struct {
	Enunciado    string
	Alternativas []AlternativaNormalizada
	Correta      string
	Explicacao   string
}

type AlternativaNormalizada struct {
	Letra string
	Texto string
}

// questaoBruta espelha o contrato JSON pedido no prompt. Aceita os dois
// nomes de campo que o provedor costuma alternar.
type questaoBruta struct {
	Pergunta        string          `json:"pergunta"`
	Enunciado       string          `json:"enunciado"`
	Alternativas    []string        `json:"alternativas"`
	RespostaCorreta json.RawMessage `json:"resposta_correta"`
	Explicacao      string          `json:"explicacao"`
}

var (
	fenceRe       = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")
	rotuloQuestao = regexp.MustCompile(`(?i)^\s*(quest(ão|ao|ion)|pergunta)\s*[:\-.)]?\s*\d*\s*[:\-.)]?\s*`)
	rotuloLetra   = regexp.MustCompile(`(?i)^\s*\(?([a-e])\)?\s*[\).:\-]\s*`)
	letraRe       = regexp.MustCompile(`[A-Ea-e]`)
	// marcas de gabarito/explicação vazadas pelo provedor dentro de uma
	// alternativa invalidam o texto dela
	marcadorVazado = regexp.MustCompile(`(?i)(resposta\s+correta|correct\s+answer|gabarito|explica(ção|cao)\s*:)`)
)

// NormalizarQuestoes transforma a saída semi-estruturada do provedor em
// questões validadas. Elementos malformados são descartados sem abortar o
// lote; só a ausência de um array JSON parseável é erro.
func NormalizarQuestoes(raw string) ([]QuestaoNormalizada, error) {
	texto := fenceRe.ReplaceAllString(raw, "")

	// prosa antes do JSON pode conter colchetes soltos; tenta cada
	// candidato até um deles desserializar
	var brutas []questaoBruta
	achou := false
	for inicio := 0; inicio < len(texto); {
		arr, fim, ok := extrairArrayJSON(texto[inicio:])
		if !ok && fim == 0 {
			// sem mais '[' no texto
			break
		}
		if ok {
			if err := json.Unmarshal([]byte(arr), &brutas); err == nil {
				achou = true
				break
			}
		}
		inicio += fim
	}
	if !achou {
		return nil, &util.ParseError{Reason: "nenhum array JSON de questões encontrado"}
	}

	questoes := make([]QuestaoNormalizada, 0, len(brutas))
	for _, bruta := range brutas {
		if questao, ok := normalizarQuestao(bruta); ok {
			questoes = append(questoes, questao)
		}
	}
	return questoes, nil
}

// extrairArrayJSON devolve o array balanceado que começa no primeiro '['
// do texto, casando colchetes com atenção a strings e escapes.
// indexOf('[') + lastIndexOf(']') não serve: prosa ao redor pode conter
// colchetes. O segundo retorno é a posição logo após o '[' inicial, para
// o chamador tentar o próximo candidato.
func extrairArrayJSON(texto string) (string, int, bool) {
	inicio := strings.IndexByte(texto, '[')
	if inicio < 0 {
		return "", 0, false
	}

	profundidade := 0
	emString := false
	escapado := false
	for i := inicio; i < len(texto); i++ {
		ch := texto[i]
		if emString {
			switch {
			case escapado:
				escapado = false
			case ch == '\\':
				escapado = true
			case ch == '"':
				emString = false
			}
			continue
		}
		switch ch {
		case '"':
			emString = true
		case '[':
			profundidade++
		case ']':
			profundidade--
			if profundidade == 0 {
				return texto[inicio : i+1], inicio + 1, true
			}
		}
	}
	return "", inicio + 1, false
}

func normalizarQuestao(bruta questaoBruta) (QuestaoNormalizada, bool) {
	enunciado := bruta.Pergunta
	if enunciado == "" {
		enunciado = bruta.Enunciado
	}
	enunciado = strings.TrimSpace(rotuloQuestao.ReplaceAllString(enunciado, ""))
	if enunciado == "" {
		return QuestaoNormalizada{}, false
	}

	correta, ok := normalizarLetra(bruta.RespostaCorreta)
	if !ok {
		return QuestaoNormalizada{}, false
	}

	alternativas := make([]AlternativaNormalizada, 0, 5)
	letras := "ABCDE"
	for i, alt := range bruta.Alternativas {
		if i >= 5 {
			break
		}
		texto := strings.TrimSpace(rotuloLetra.ReplaceAllString(alt, ""))
		if texto == "" || marcadorVazado.MatchString(texto) {
			continue
		}
		alternativas = append(alternativas, AlternativaNormalizada{
			Letra: string(letras[i]),
			Texto: texto,
		})
	}
	if len(alternativas) != 5 {
		return QuestaoNormalizada{}, false
	}

	return QuestaoNormalizada{
		Enunciado:    enunciado,
		Alternativas: alternativas,
		Correta:      correta,
		Explicacao:   strings.TrimSpace(bruta.Explicacao),
	}, true
}

// normalizarLetra aceita "C", "c", "C) ..." ou o índice numérico 0-4 e
// devolve sempre uma letra maiúscula A-E.
func normalizarLetra(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var texto string
	if err := json.Unmarshal(raw, &texto); err == nil {
		letra := letraRe.FindString(texto)
		if letra == "" {
			return "", false
		}
		return strings.ToUpper(letra), true
	}

	var indice int
	if err := json.Unmarshal(raw, &indice); err == nil && indice >= 0 && indice <= 4 {
		return string(rune('A' + indice)), true
	}

	return "", false
}
