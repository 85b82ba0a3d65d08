package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// QuestaoController cobre a geração administrativa de questões em lote.
type QuestaoController struct {
	QuestaoService *service.QuestaoService
}

func NewQuestaoController(questaoService *service.QuestaoService) *QuestaoController {
	return &QuestaoController{QuestaoService: questaoService}
}

// swagger:model GerarLoteRequest
type GerarLoteRequest struct {
	Quantidade int `json:"quantidade"`
}

// GerarLote godoc
// @Summary Gera questões de um conteúdo em lote (administrador)
// @Description Persiste apenas as questões que passam na normalização
// @Tags Questões
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param conteudo_id path int true "ID do conteúdo"
// @Param body body GerarLoteRequest false "Quantidade (padrão 10)"
// @Success 201 {object} util.Response{data=[]model.Questao}
// @Failure 502 {object} util.Response "Provedor de IA indisponível"
// @Router /api/questoes/gerar/{conteudo_id} [post]
func (c *QuestaoController) GerarLote(ctx *gin.Context) {
	conteudoID, err := paramUint(ctx, "conteudo_id")
	if err != nil {
		util.BadRequest(ctx, "conteudo_id inválido")
		return
	}

	var req GerarLoteRequest
	_ = ctx.ShouldBindJSON(&req)

	questoes, err := c.QuestaoService.GerarLote(ctx.Request.Context(), conteudoID, req.Quantidade)
	if err != nil {
		var provider *util.ProviderError
		var parse *util.ParseError
		switch {
		case errors.Is(err, util.ErrConteudoNotFound):
			util.NotFound(ctx, err.Error())
		case errors.As(err, &provider):
			util.Error(ctx, http.StatusBadGateway, provider.Error())
		case errors.As(err, &parse):
			util.Error(ctx, http.StatusUnprocessableEntity, parse.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, questoes)
}
