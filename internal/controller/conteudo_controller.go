package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConteudoController struct {
	ConteudoService *service.ConteudoService
}

func NewConteudoController(conteudoService *service.ConteudoService) *ConteudoController {
	return &ConteudoController{ConteudoService: conteudoService}
}

// Gerar godoc
// @Summary Gera (ou retoma) a aula de um subtópico via IA
// @Tags Conteúdos
// @Produce json
// @Security ApiKeyAuth
// @Param subtopico_id path int true "ID do subtópico"
// @Success 200 {object} util.Response{data=repository.ConteudoDetalhe}
// @Failure 502 {object} util.Response "Provedor de IA indisponível"
// @Router /api/conteudos/gerar/{subtopico_id} [post]
func (c *ConteudoController) Gerar(ctx *gin.Context) {
	subtopicoID, err := paramUint(ctx, "subtopico_id")
	if err != nil {
		util.BadRequest(ctx, "subtopico_id inválido")
		return
	}

	detalhe, err := c.ConteudoService.Gerar(ctx.Request.Context(), subtopicoID)
	if err != nil {
		var provider *util.ProviderError
		switch {
		case errors.Is(err, util.ErrMateriaNotFound):
			util.NotFound(ctx, "subtópico não encontrado")
		case errors.As(err, &provider):
			util.Error(ctx, http.StatusBadGateway, provider.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detalhe)
}

// Detalhe godoc
// @Summary Lê um conteúdo com os nomes da árvore resolvidos
// @Tags Conteúdos
// @Produce json
// @Param id path int true "ID do conteúdo"
// @Success 200 {object} util.Response{data=repository.ConteudoDetalhe}
// @Router /api/conteudos/{id} [get]
func (c *ConteudoController) Detalhe(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}

	detalhe, err := c.ConteudoService.Detalhe(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrConteudoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detalhe)
}

// ListarPorSubtopico godoc
// @Summary Lista os conteúdos de um subtópico
// @Tags Conteúdos
// @Produce json
// @Param subtopico_id path int true "ID do subtópico"
// @Success 200 {object} util.Response{data=[]repository.ConteudoDetalhe}
// @Router /api/conteudos/subtopico/{subtopico_id} [get]
func (c *ConteudoController) ListarPorSubtopico(ctx *gin.Context) {
	subtopicoID, err := paramUint(ctx, "subtopico_id")
	if err != nil {
		util.BadRequest(ctx, "subtopico_id inválido")
		return
	}
	detalhes, err := c.ConteudoService.ListarPorSubtopico(subtopicoID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detalhes)
}

// swagger:model EditarTextoRequest
type EditarTextoRequest struct {
	Texto string `json:"texto" binding:"required"`
}

// EditarTexto godoc
// @Summary Sobrescreve o corpo da aula (edição manual)
// @Tags Conteúdos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do conteúdo"
// @Param body body EditarTextoRequest true "Novo texto"
// @Success 200 {object} util.Response
// @Router /api/conteudos/{id} [put]
func (c *ConteudoController) EditarTexto(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	var req EditarTextoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "texto é obrigatório")
		return
	}
	if err := c.ConteudoService.EditarTexto(ctx.Request.Context(), id, req.Texto); err != nil {
		if errors.Is(err, util.ErrConteudoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"atualizado": true})
}

// Excluir godoc
// @Summary Exclui um conteúdo e suas questões
// @Tags Conteúdos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do conteúdo"
// @Success 200 {object} util.Response
// @Router /api/conteudos/{id} [delete]
func (c *ConteudoController) Excluir(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	if err := c.ConteudoService.Excluir(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, util.ErrConteudoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"excluido": true})
}
