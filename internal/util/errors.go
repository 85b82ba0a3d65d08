package util

import (
	"errors"
	"fmt"
)

var (
	ErrEmailRegistered     = errors.New("email já cadastrado")
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrMateriaNotFound     = errors.New("matéria não encontrada")
	ErrConteudoNotFound    = errors.New("conteúdo não encontrado")
	ErrQuizNotFound        = errors.New("quiz não encontrado")
	ErrAlternativaInvalida = errors.New("alternativa inválida")
	ErrQuestaoForaDoQuiz   = errors.New("questão não pertence a este quiz")
	ErrFlashcardNotFound   = errors.New("flashcard não encontrado")
	ErrResumoNotFound      = errors.New("resumo não encontrado")
)

// QuizIncompletoError indica finalização antes de todas as respostas.
type QuizIncompletoError struct {
	Pendentes int
}

func (e *QuizIncompletoError) Error() string {
	return fmt.Sprintf("ainda faltam %d questões para responder", e.Pendentes)
}

// QuestoesInsuficientesError indica que, mesmo após uma tentativa de
// geração, o pool de questões completas do conteúdo não chegou a 10.
type QuestoesInsuficientesError struct {
	Obtidas int
}

func (e *QuestoesInsuficientesError) Error() string {
	return fmt.Sprintf("não foi possível montar um quiz completo (10 questões necessárias, %d disponíveis)", e.Obtidas)
}

// ProviderErrorKind classifica falhas do provedor de IA.
type ProviderErrorKind string

const (
	ProviderRateLimited   ProviderErrorKind = "rate_limited"
	ProviderUnreachable   ProviderErrorKind = "unreachable"
	ProviderEmptyResponse ProviderErrorKind = "empty_response"
	ProviderMalformed     ProviderErrorKind = "malformed"
)

// ProviderError é devolvido pelo adaptador Gemini. Status carrega o código
// HTTP quando houver.
type ProviderError struct {
	Kind   ProviderErrorKind
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("provedor de IA: %s (status %d)", e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("provedor de IA: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("provedor de IA: %s", e.Kind)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ParseError indica que a saída do provedor não continha um array JSON
// válido de questões.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "saída da IA não parseável: " + e.Reason
}
