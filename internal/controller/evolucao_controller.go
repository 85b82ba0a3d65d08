package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EvolucaoController struct {
	EvolucaoService *service.EvolucaoService
}

func NewEvolucaoController(evolucaoService *service.EvolucaoService) *EvolucaoController {
	return &EvolucaoController{EvolucaoService: evolucaoService}
}

// swagger:model RegistrarAtividadeRequest
type RegistrarAtividadeRequest struct {
	Minutos int `json:"minutos"`
	Acessos int `json:"acessos"`
}

// Registrar godoc
// @Summary Registra atividade de estudo do dia
// @Description Soma minutos e acessos na linha do dia; o streak é fixado no primeiro toque
// @Tags Evolução
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body RegistrarAtividadeRequest true "Atividade"
// @Success 200 {object} util.Response
// @Router /api/evolucao [post]
func (c *EvolucaoController) Registrar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req RegistrarAtividadeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "corpo inválido")
		return
	}

	if err := c.EvolucaoService.RegistrarAtividade(claims.UserID, req.Minutos, req.Acessos); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"registrado": true})
}

// Ping godoc
// @Summary Toque de presença do dia
// @Description Registra um acesso e devolve os contadores atualizados do dia
// @Tags Evolução
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.EstadoDia}
// @Router /api/evolucao/ping [post]
func (c *EvolucaoController) Ping(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	estado, err := c.EvolucaoService.Tick(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, estado)
}

// Painel godoc
// @Summary Painel de evolução do usuário autenticado
// @Tags Evolução
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.PainelEvolucao}
// @Router /api/evolucao/painel [get]
func (c *EvolucaoController) Painel(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	painel, err := c.EvolucaoService.Painel(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, painel)
}
