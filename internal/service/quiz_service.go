package service

import (
	"context"
	"cronos_backend/internal/model"
	"cronos_backend/internal/repository"
	"cronos_backend/internal/util"
	"cronos_backend/pkg/logger"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	questoesPorQuiz     = 10
	candidatasPorSessao = 20
)

// Interfaces de dependência do gerenciador de sessão, satisfeitas pelos
// repositórios reais e por fakes nos testes.
type quizStore interface {
	FindByConteudo(conteudoID uint) (*model.Quiz, error)
	CreateComQuestoes(quiz *model.Quiz, questaoIDs []uint) error
	QuestaoIDsDoQuiz(quizID uint) ([]uint, error)
	EnsureResultados(usuarioID, quizID uint, questaoIDs []uint) error
	FindResultado(usuarioID, quizID, questaoID uint) (*model.QuizResultado, error)
	GravarResposta(usuarioID, quizID, questaoID uint, correta bool) error
	ContarResultados(usuarioID, quizID uint) (total int64, pendentes int64, err error)
	Agregado(usuarioID, quizID uint) (acertos int64, erros int64, err error)
	ResumoItens(usuarioID, quizID uint) ([]repository.ResumoItem, error)
	Historico(usuarioID uint) ([]repository.HistoricoItem, error)
}

type questaoStore interface {
	FindCompletasByConteudo(conteudoID uint, limit int) ([]model.Questao, error)
	FindByIDs(ids []uint) ([]model.Questao, error)
	CreateComAlternativas(questao *model.Questao) error
	FindRespostaInfo(alternativaID, questaoID uint) (*repository.RespostaInfo, error)
}

type conteudoFinder interface {
	FindDetalheByID(id uint) (*repository.ConteudoDetalhe, error)
}

type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// QuizService gerencia o ciclo de vida da sessão de quiz de um conteúdo:
// criação (reaproveitando questões existentes e completando via IA),
// resposta por questão, finalização e projeções de leitura.
type QuizService struct {
	quizRepo    quizStore
	questaoRepo questaoStore
	conteudos   conteudoFinder
	gerador     textGenerator
}

func NewQuizService(quizRepo quizStore, questaoRepo questaoStore, conteudos conteudoFinder, gerador textGenerator) *QuizService {
	return &QuizService{
		quizRepo:    quizRepo,
		questaoRepo: questaoRepo,
		conteudos:   conteudos,
		gerador:     gerador,
	}
}

// QuestaoSessao é uma questão da sessão como vai para o cliente.
type QuestaoSessao struct {
	ID                 uint                `json:"id"`
	Enunciado          string              `json:"enunciado"`
	MateriaID          uint                `json:"materia_id"`
	AlternativaCorreta string              `json:"alternativa_correta"`
	Explicacao         string              `json:"explicacao"`
	Alternativas       []model.Alternativa `json:"alternativas"`
}

type SessaoQuiz struct {
	QuizID   uint            `json:"quiz_id"`
	Questoes []QuestaoSessao `json:"questoes"`
}

// CriarSessao devolve a sessão do conteúdo, criando-a na primeira chamada.
// Chamada repetida devolve o mesmo quiz_id; os marcadores de resposta do
// usuário são garantidos de forma idempotente em toda chamada.
func (s *QuizService) CriarSessao(ctx context.Context, usuarioID, conteudoID uint) (*SessaoQuiz, error) {
	quiz, questaoIDs, err := s.obterOuCriarQuiz(ctx, conteudoID)
	if err != nil {
		return nil, err
	}

	if err := s.quizRepo.EnsureResultados(usuarioID, quiz.ID, questaoIDs); err != nil {
		return nil, err
	}

	questoes, err := s.questaoRepo.FindByIDs(questaoIDs)
	if err != nil {
		return nil, err
	}

	// preserva a ordem fixa dos vínculos da sessão
	porID := make(map[uint]model.Questao, len(questoes))
	for _, questao := range questoes {
		porID[questao.ID] = questao
	}
	saida := make([]QuestaoSessao, 0, len(questaoIDs))
	for _, id := range questaoIDs {
		questao, ok := porID[id]
		if !ok {
			continue
		}
		saida = append(saida, QuestaoSessao{
			ID:                 questao.ID,
			Enunciado:          questao.Enunciado,
			MateriaID:          questao.MateriaID,
			AlternativaCorreta: questao.AlternativaCorreta,
			Explicacao:         questao.Explicacao,
			Alternativas:       questao.Alternativas,
		})
	}

	return &SessaoQuiz{QuizID: quiz.ID, Questoes: saida}, nil
}

func (s *QuizService) obterOuCriarQuiz(ctx context.Context, conteudoID uint) (*model.Quiz, []uint, error) {
	quiz, err := s.quizRepo.FindByConteudo(conteudoID)
	if err == nil {
		ids, err := s.quizRepo.QuestaoIDsDoQuiz(quiz.ID)
		if err != nil {
			return nil, nil, err
		}
		return quiz, ids, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	candidatas, err := s.questaoRepo.FindCompletasByConteudo(conteudoID, candidatasPorSessao)
	if err != nil {
		return nil, nil, err
	}

	if len(candidatas) < questoesPorQuiz {
		candidatas, err = s.completarComIA(ctx, conteudoID, candidatas)
		if err != nil {
			return nil, nil, err
		}
	}

	if len(candidatas) < questoesPorQuiz {
		return nil, nil, &util.QuestoesInsuficientesError{Obtidas: len(candidatas)}
	}

	escolhidas := candidatas[:questoesPorQuiz]
	ids := make([]uint, 0, questoesPorQuiz)
	for _, questao := range escolhidas {
		ids = append(ids, questao.ID)
	}

	novo := &model.Quiz{
		ConteudoID: conteudoID,
		MateriaID:  escolhidas[0].MateriaID,
		Total:      questoesPorQuiz,
	}
	if err := s.quizRepo.CreateComQuestoes(novo, ids); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// perdeu a corrida de criação: reusa a sessão do vencedor
			vencedor, err := s.quizRepo.FindByConteudo(conteudoID)
			if err != nil {
				return nil, nil, err
			}
			idsVencedor, err := s.quizRepo.QuestaoIDsDoQuiz(vencedor.ID)
			if err != nil {
				return nil, nil, err
			}
			return vencedor, idsVencedor, nil
		}
		return nil, nil, err
	}

	return novo, ids, nil
}

// completarComIA faz uma única tentativa de geração para chegar ao pool
// mínimo. Falhas do provedor ou de parse não sobem cruas: viram menos
// questões no pool, e o chamador decide com QuestoesInsuficientes.
func (s *QuizService) completarComIA(ctx context.Context, conteudoID uint, candidatas []model.Questao) ([]model.Questao, error) {
	detalhe, err := s.conteudos.FindDetalheByID(conteudoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrConteudoNotFound
		}
		return nil, err
	}

	faltam := questoesPorQuiz - len(candidatas)
	prompt := PromptQuestoes(detalhe.MateriaNome, detalhe.TopicoNome, detalhe.SubtopicoNome, detalhe.TextoHTML, faltam)

	raw, err := s.gerador.Generate(ctx, prompt)
	if err != nil {
		logger.Log.Warn("geração de questões falhou", zap.Uint("conteudo_id", conteudoID), zap.Error(err))
		return candidatas, nil
	}

	normalizadas, err := NormalizarQuestoes(raw)
	if err != nil {
		logger.Log.Warn("saída da IA não parseável", zap.Uint("conteudo_id", conteudoID), zap.Error(err))
		return candidatas, nil
	}

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
			logger.Log.Error("falha ao persistir questão gerada", zap.Error(err))
			continue
		}
		candidatas = append(candidatas, *questao)
	}

	return candidatas, nil
}

// RespostaCorrigida é o resultado da correção de uma resposta.
type RespostaCorrigida struct {
	Correta      bool   `json:"correta"`
	LetraCorreta string `json:"letra_correta"`
	Explicacao   string `json:"explicacao"`
}

// Responder corrige a alternativa enviada e grava o resultado no marcador
// do usuário. Reenvio sobrescreve a correção anterior.
func (s *QuizService) Responder(usuarioID, quizID, questaoID, alternativaID uint) (*RespostaCorrigida, error) {
	if _, err := s.quizRepo.FindResultado(usuarioID, quizID, questaoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestaoForaDoQuiz
		}
		return nil, err
	}

	info, err := s.questaoRepo.FindRespostaInfo(alternativaID, questaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAlternativaInvalida
		}
		return nil, err
	}

	correta := strings.EqualFold(info.LetraEscolhida, info.LetraCorreta)
	if err := s.quizRepo.GravarResposta(usuarioID, quizID, questaoID, correta); err != nil {
		return nil, err
	}

	explicacao := info.Explicacao
	if explicacao == "" {
		explicacao = "Sem explicação disponível."
	}

	return &RespostaCorrigida{
		Correta:      correta,
		LetraCorreta: strings.ToUpper(info.LetraCorreta),
		Explicacao:   explicacao,
	}, nil
}

// ResultadoFinal agrega a sessão respondida.
type ResultadoFinal struct {
	QuizID  uint  `json:"quiz_id"`
	Total   int64 `json:"total"`
	Acertos int64 `json:"acertos"`
	Erros   int64 `json:"erros"`
}

// Finalizar exige os 10 marcadores respondidos e devolve o agregado.
// Não muda estado: chamar de novo após a conclusão devolve os mesmos
// números.
func (s *QuizService) Finalizar(usuarioID, quizID uint) (*ResultadoFinal, error) {
	total, pendentes, err := s.quizRepo.ContarResultados(usuarioID, quizID)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, util.ErrQuizNotFound
	}
	if pendentes > 0 || total != questoesPorQuiz {
		return nil, &util.QuizIncompletoError{Pendentes: int(pendentes)}
	}

	acertos, erros, err := s.quizRepo.Agregado(usuarioID, quizID)
	if err != nil {
		return nil, err
	}

	return &ResultadoFinal{
		QuizID:  quizID,
		Total:   total,
		Acertos: acertos,
		Erros:   erros,
	}, nil
}

func (s *QuizService) Resumo(usuarioID, quizID uint) ([]repository.ResumoItem, error) {
	return s.quizRepo.ResumoItens(usuarioID, quizID)
}

func (s *QuizService) Historico(usuarioID uint) ([]repository.HistoricoItem, error) {
	return s.quizRepo.Historico(usuarioID)
}
