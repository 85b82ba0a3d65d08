package service

import (
	"context"
	"cronos_backend/internal/util"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// AssistenteService responde dúvidas do estudante sobre um conteúdo,
// ancorando o prompt no corpo da aula.
type AssistenteService struct {
	conteudos conteudoFinder
	gerador   textGenerator
}

func NewAssistenteService(conteudos conteudoFinder, gerador textGenerator) *AssistenteService {
	return &AssistenteService{conteudos: conteudos, gerador: gerador}
}

func (s *AssistenteService) Perguntar(ctx context.Context, conteudoID uint, mensagem string) (string, error) {
	mensagem = strings.TrimSpace(mensagem)
	if mensagem == "" {
		return "", &util.ParseError{Reason: "mensagem vazia"}
	}

	detalhe, err := s.conteudos.FindDetalheByID(conteudoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrConteudoNotFound
		}
		return "", err
	}

	resposta, err := s.gerador.Generate(ctx, PromptAssistente(mensagem, detalhe.SubtopicoNome, detalhe.TextoHTML))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resposta), nil
}
