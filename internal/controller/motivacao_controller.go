package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MotivacaoController struct {
	MotivacaoService *service.MotivacaoService
}

func NewMotivacaoController(motivacaoService *service.MotivacaoService) *MotivacaoController {
	return &MotivacaoController{MotivacaoService: motivacaoService}
}

// Atual godoc
// @Summary Frase motivacional do painel
// @Tags Motivações
// @Produce json
// @Success 200 {object} util.Response{data=model.Motivacao}
// @Router /api/motivacoes/atual [get]
func (c *MotivacaoController) Atual(ctx *gin.Context) {
	motivacao, err := c.MotivacaoService.Atual()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, motivacao)
}

// Listar godoc
// @Summary Lista o catálogo de frases (administrador)
// @Tags Motivações
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Motivacao}
// @Router /api/motivacoes [get]
func (c *MotivacaoController) Listar(ctx *gin.Context) {
	motivacoes, err := c.MotivacaoService.Listar()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, motivacoes)
}

// swagger:model MotivacaoRequest
type MotivacaoRequest struct {
	Frase string `json:"frase" binding:"required"`
}

// Criar godoc
// @Summary Cadastra uma frase (administrador)
// @Tags Motivações
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MotivacaoRequest true "Frase"
// @Success 201 {object} util.Response{data=model.Motivacao}
// @Router /api/motivacoes [post]
func (c *MotivacaoController) Criar(ctx *gin.Context) {
	var req MotivacaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "frase é obrigatória")
		return
	}
	motivacao, err := c.MotivacaoService.Criar(req.Frase)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, motivacao)
}

// DefinirEmUso godoc
// @Summary Fixa a frase exibida no painel (administrador)
// @Tags Motivações
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da frase"
// @Success 200 {object} util.Response
// @Router /api/motivacoes/{id}/em-uso [post]
func (c *MotivacaoController) DefinirEmUso(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	if err := c.MotivacaoService.DefinirEmUso(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "frase não encontrada ou inativa")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"em_uso": true})
}
