package service

import (
	"context"
	"cronos_backend/internal/model"
	"cronos_backend/internal/util"
	"cronos_backend/pkg/logger"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// QuestaoService cobre a geração administrativa de questões em lote,
// fora do caminho da sessão de quiz.
type QuestaoService struct {
	questaoRepo questaoStore
	conteudos   conteudoFinder
	gerador     textGenerator
}

func NewQuestaoService(questaoRepo questaoStore, conteudos conteudoFinder, gerador textGenerator) *QuestaoService {
	return &QuestaoService{questaoRepo: questaoRepo, conteudos: conteudos, gerador: gerador}
}

// GerarLote pede à IA `quantidade` questões do conteúdo e persiste as que
// passarem na normalização. Devolve quantas entraram de fato.
func (s *QuestaoService) GerarLote(ctx context.Context, conteudoID uint, quantidade int) ([]model.Questao, error) {
	if quantidade <= 0 {
		quantidade = questoesPorQuiz
	}

	detalhe, err := s.conteudos.FindDetalheByID(conteudoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConteudoNotFound
		}
		return nil, err
	}

	raw, err := s.gerador.Generate(ctx, PromptQuestoes(detalhe.MateriaNome, detalhe.TopicoNome, detalhe.SubtopicoNome, detalhe.TextoHTML, quantidade))
	if err != nil {
		return nil, err
	}

	normalizadas, err := NormalizarQuestoes(raw)
	if err != nil {
		return nil, err
	}

	criadas := make([]model.Questao, 0, len(normalizadas))
	for _, normalizada := range normalizadas {
		questao := &model.Questao{
			ConteudoID:         detalhe.ID,
			MateriaID:          detalhe.MateriaID,
			TopicoID:           detalhe.TopicoID,
			SubtopicoID:        detalhe.SubtopicoID,
			Enunciado:          normalizada.Enunciado,
			AlternativaCorreta: normalizada.Correta,
			Explicacao:         normalizada.Explicacao,
		}
		for _, alternativa := range normalizada.Alternativas {
			questao.Alternativas = append(questao.Alternativas, model.Alternativa{
				Letra: alternativa.Letra,
				Texto: alternativa.Texto,
			})
		}
		if err := s.questaoRepo.CreateComAlternativas(questao); err != nil {
			logger.Log.Error("falha ao persistir questão do lote", zap.Error(err))
			continue
		}
		criadas = append(criadas, *questao)
	}

	logger.Log.Info("lote de questões gerado",
		zap.Uint("conteudo_id", conteudoID),
		zap.Int("pedidas", quantidade),
		zap.Int("persistidas", len(criadas)))

	return criadas, nil
}
