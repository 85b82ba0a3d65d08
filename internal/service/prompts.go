package service

import (
	"fmt"
	"regexp"
	"strings"
)

// Bloco pedagógico fixo injetado nos prompts de geração. Mantido curto
// de propósito: serve de guia conceitual, não de conteúdo literal.
const basePedagogica = `Fundamentos pedagógicos (usar apenas como referência, nunca copiar literalmente):
- O ENEM usa TRI: acertos em questões fáceis pesam mais; erros em fáceis com acertos em difíceis indicam inconsistência.
- Dificuldade estimada: fácil = conteúdo recorrente e direto; médio = exige análise e interpretação; difícil = interdisciplinar e abstrato.
- Seguir a Matriz de Referência do ENEM e as competências gerais da BNCC (pensamento crítico, argumentação baseada em fatos, cidadania).`

var (
	tagRe       = regexp.MustCompile(`<[^>]+>`)
	espacosRe   = regexp.MustCompile(`\s+`)
	h1Re        = regexp.MustCompile(`(?is)<h1[^>]*>.*?</h1>`)
	fenceHTMLRe = regexp.MustCompile("(?i)```html|```")
	h2InicialRe = regexp.MustCompile(`(?is)^\s*<h2[^>]*>.*?</h2>`)
)

// StripHTML remove tags e colapsa espaços; usado para alimentar prompts
// com o texto puro de um conteúdo salvo em HTML.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}
	texto := tagRe.ReplaceAllString(html, " ")
	return strings.TrimSpace(espacosRe.ReplaceAllString(texto, " "))
}

// SanitizarConteudoHTML limpa a saída da IA para um corpo de aula:
// remove delimitadores markdown, qualquer <h1> e o <h2> inicial.
func SanitizarConteudoHTML(html string) string {
	conteudo := fenceHTMLRe.ReplaceAllString(html, "")
	conteudo = h1Re.ReplaceAllString(conteudo, "")
	conteudo = h2InicialRe.ReplaceAllString(conteudo, "")
	return strings.TrimSpace(conteudo)
}

// PromptConteudo monta o prompt do resumo didático em HTML de um
// subtópico.
func PromptConteudo(materia, topico, subtopico string) string {
	return fmt.Sprintf(`Gere um resumo didático em HTML estruturado (com <h2>, <p>, <ul>, <li>) para auxiliar no estudo de ENEM, vestibulares e concursos.

Tema:
- Matéria: %s
- Tópico: %s
- Subtópico: %s

%s

Regras obrigatórias:
- O conteúdo deve ser didático, claro e detalhado (mínimo de 1000 palavras).
- Estruture o texto com subtítulos (<h2>, <h3> se necessário), parágrafos e listas.
- Nunca coloque título geral no texto (nem <h1>, nem o subtópico como título inicial).
- O texto deve começar direto com <h2> ou <p>, sem introdução.`,
		materia, topico, subtopico, basePedagogica)
}

// PromptQuestoes monta o prompt de geração de questões estilo ENEM em
// JSON. O formato do array é o contrato do normalizador.
func PromptQuestoes(materia, topico, subtopico, conteudoHTML string, quantidade int) string {
	conteudoBase := StripHTML(conteudoHTML)

	return fmt.Sprintf(`Crie exatamente %d questões de múltipla escolha no estilo ENEM sobre o subtópico "%s" (tópico "%s", matéria "%s").

Regras obrigatórias:
- Cada questão tem exatamente 5 alternativas em ordem alfabética: A), B), C), D), E).
- A alternativa correta deve variar aleatoriamente entre A-E ao longo das questões.
- Nunca inclua a resposta dentro do enunciado nem repita instruções deste prompt.
- O JSON deve ser válido e parseável diretamente pelo backend.
- O enunciado deve ser curto, objetivo e se sustentar sozinho.
- A explicação deve ser clara, curta e didática.

Formato esperado:
[
  {
    "pergunta": "Enunciado da questão",
    "alternativas": ["A) ...", "B) ...", "C) ...", "D) ...", "E) ..."],
    "resposta_correta": "C",
    "explicacao": "Explicação curta e didática"
  }
]

Texto de referência:
"%s"

%s`, quantidade, subtopico, topico, materia, conteudoBase, basePedagogica)
}

// PromptAssistente monta o prompt do chat do assistente, opcionalmente
// ancorado no conteúdo que o estudante está lendo.
func PromptAssistente(mensagem, subtopico, conteudoHTML string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "O estudante fez a seguinte pergunta: %q\n\n%s\n\n", mensagem, basePedagogica)

	if conteudoHTML != "" {
		fmt.Fprintf(&b, "O estudante está estudando o subtópico %q. Use também este conteúdo como referência:\n%q\n\n",
			subtopico, StripHTML(conteudoHTML))
	}

	b.WriteString("Responda de forma didática, estruturada em HTML (<p>, <ul>, <blockquote>), conectando o tema ao ENEM.")
	return b.String()
}
