package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// QuizController expõe o ciclo da sessão de quiz.
type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// CriarSessaoRequest abre a sessão de um conteúdo.
// swagger:model CriarSessaoRequest
type CriarSessaoRequest struct {
	ConteudoID uint `json:"conteudo_id" binding:"required"`
}

// CriarSessao godoc
// @Summary Abre (ou retoma) a sessão de quiz de um conteúdo
// @Description Devolve sempre o mesmo quiz para o mesmo conteúdo; as questões vêm na ordem fixa da sessão
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CriarSessaoRequest true "Conteúdo alvo"
// @Success 200 {object} util.Response{data=service.SessaoQuiz}
// @Failure 400 {object} util.Response "Conteúdo sem questões suficientes"
// @Router /api/quiz/sessoes [post]
func (c *QuizController) CriarSessao(ctx *gin.Context) {
	var req CriarSessaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "corpo inválido: conteudo_id é obrigatório")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sessao, err := c.QuizService.CriarSessao(ctx.Request.Context(), claims.UserID, req.ConteudoID)
	if err != nil {
		var insuficientes *util.QuestoesInsuficientesError
		switch {
		case errors.As(err, &insuficientes):
			util.BadRequest(ctx, insuficientes.Error())
		case errors.Is(err, util.ErrConteudoNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, sessao)
}

// ResponderRequest é o corpo do envio de resposta.
// swagger:model ResponderRequest
type ResponderRequest struct {
	QuizID        uint `json:"quiz_id" binding:"required"`
	QuestaoID     uint `json:"questao_id" binding:"required"`
	AlternativaID uint `json:"alternativa_id" binding:"required"`
}

// Responder godoc
// @Summary Corrige uma resposta da sessão
// @Description Grava a correção no marcador do usuário; reenvio sobrescreve
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ResponderRequest true "Resposta"
// @Success 200 {object} util.Response{data=service.RespostaCorrigida}
// @Failure 400 {object} util.Response "Questão fora da sessão"
// @Router /api/quiz/responder [post]
func (c *QuizController) Responder(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ResponderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "corpo inválido: quiz_id, questao_id e alternativa_id são obrigatórios")
		return
	}

	resultado, err := c.QuizService.Responder(claims.UserID, req.QuizID, req.QuestaoID, req.AlternativaID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestaoForaDoQuiz):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrAlternativaInvalida):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resultado)
}

// FinalizarRequest fecha a sessão indicada.
// swagger:model FinalizarRequest
type FinalizarRequest struct {
	QuizID uint `json:"quiz_id" binding:"required"`
}

// Finalizar godoc
// @Summary Finaliza a sessão e devolve o agregado
// @Description Exige as 10 questões respondidas; chamada repetida devolve os mesmos números
// @Tags Quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body FinalizarRequest true "Sessão"
// @Success 200 {object} util.Response{data=service.ResultadoFinal}
// @Failure 400 {object} util.Response "Sessão incompleta"
// @Router /api/quiz/finalizar [post]
func (c *QuizController) Finalizar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FinalizarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "corpo inválido: quiz_id é obrigatório")
		return
	}

	resultado, err := c.QuizService.Finalizar(claims.UserID, req.QuizID)
	if err != nil {
		var incompleto *util.QuizIncompletoError
		switch {
		case errors.As(err, &incompleto):
			util.BadRequest(ctx, incompleto.Error())
		case errors.Is(err, util.ErrQuizNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, resultado)
}

// Resumo godoc
// @Summary Revisão questão a questão da sessão
// @Tags Quiz
// @Produce json
// @Security ApiKeyAuth
// @Param quiz_id path int true "ID do quiz"
// @Success 200 {object} util.Response{data=[]repository.ResumoItem}
// @Router /api/quiz/{quiz_id}/resumo [get]
func (c *QuizController) Resumo(ctx *gin.Context) {
	quizID, err := paramUint(ctx, "quiz_id")
	if err != nil {
		util.BadRequest(ctx, "quiz_id inválido")
		return
	}
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	itens, err := c.QuizService.Resumo(claims.UserID, quizID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, itens)
}

// Historico godoc
// @Summary Histórico de quizzes de um usuário
// @Description Rota pública: recebe o usuário pelo caminho
// @Tags Quiz
// @Produce json
// @Param usuario_id path int true "ID do usuário"
// @Success 200 {object} util.Response{data=[]repository.HistoricoItem}
// @Router /api/quiz/historico/{usuario_id} [get]
func (c *QuizController) Historico(ctx *gin.Context) {
	usuarioID, err := paramUint(ctx, "usuario_id")
	if err != nil {
		util.BadRequest(ctx, "usuario_id inválido")
		return
	}

	itens, err := c.QuizService.Historico(usuarioID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, itens)
}

func paramUint(ctx *gin.Context, name string) (uint, error) {
	valor, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(valor), nil
}
