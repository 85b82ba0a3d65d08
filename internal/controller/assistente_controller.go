package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssistenteController struct {
	AssistenteService *service.AssistenteService
}

func NewAssistenteController(assistenteService *service.AssistenteService) *AssistenteController {
	return &AssistenteController{AssistenteService: assistenteService}
}

// swagger:model PerguntaRequest
type PerguntaRequest struct {
	ConteudoID uint   `json:"conteudo_id" binding:"required"`
	Mensagem   string `json:"mensagem" binding:"required"`
}

// Perguntar godoc
// @Summary Tira uma dúvida sobre um conteúdo com o assistente
// @Tags Assistente
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PerguntaRequest true "Pergunta"
// @Success 200 {object} util.Response
// @Failure 502 {object} util.Response "Provedor de IA indisponível"
// @Router /api/assistente [post]
func (c *AssistenteController) Perguntar(ctx *gin.Context) {
	var req PerguntaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "conteudo_id e mensagem são obrigatórios")
		return
	}

	resposta, err := c.AssistenteService.Perguntar(ctx.Request.Context(), req.ConteudoID, req.Mensagem)
	if err != nil {
		var provider *util.ProviderError
		var parse *util.ParseError
		switch {
		case errors.Is(err, util.ErrConteudoNotFound):
			util.NotFound(ctx, err.Error())
		case errors.As(err, &parse):
			util.BadRequest(ctx, parse.Error())
		case errors.As(err, &provider):
			util.Error(ctx, http.StatusBadGateway, provider.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"resposta": resposta})
}
