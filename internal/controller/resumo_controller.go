package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type ResumoController struct {
	ResumoService *service.ResumoService
}

func NewResumoController(resumoService *service.ResumoService) *ResumoController {
	return &ResumoController{ResumoService: resumoService}
}

// swagger:model ResumoRequest
type ResumoRequest struct {
	MateriaID  uint   `json:"materia_id" binding:"required"`
	ConteudoID *uint  `json:"conteudo_id"`
	Titulo     string `json:"titulo" binding:"required"`
	Corpo      string `json:"corpo" binding:"required"`
}

// Criar godoc
// @Summary Cria um resumo de estudo
// @Tags Resumos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ResumoRequest true "Resumo"
// @Success 201 {object} util.Response{data=model.Resumo}
// @Router /api/resumos [post]
func (c *ResumoController) Criar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ResumoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "materia_id, titulo e corpo são obrigatórios")
		return
	}

	resumo, err := c.ResumoService.Criar(claims.UserID, req.MateriaID, req.ConteudoID, req.Titulo, req.Corpo)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, resumo)
}

// Listar godoc
// @Summary Lista os resumos do usuário autenticado
// @Tags Resumos
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Resumo}
// @Router /api/resumos [get]
func (c *ResumoController) Listar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resumos, err := c.ResumoService.Listar(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resumos)
}

// Atualizar godoc
// @Summary Atualiza um resumo próprio
// @Tags Resumos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do resumo"
// @Param body body ResumoRequest true "Resumo"
// @Success 200 {object} util.Response{data=model.Resumo}
// @Router /api/resumos/{id} [put]
func (c *ResumoController) Atualizar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}

	var req ResumoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "materia_id, titulo e corpo são obrigatórios")
		return
	}

	resumo, err := c.ResumoService.Atualizar(claims.UserID, id, req.Titulo, req.Corpo)
	if err != nil {
		if errors.Is(err, util.ErrResumoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resumo)
}

// Excluir godoc
// @Summary Exclui um resumo próprio
// @Tags Resumos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do resumo"
// @Success 200 {object} util.Response
// @Router /api/resumos/{id} [delete]
func (c *ResumoController) Excluir(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}

	if err := c.ResumoService.Excluir(claims.UserID, id); err != nil {
		if errors.Is(err, util.ErrResumoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"excluido": true})
}

// Compartilhar godoc
// @Summary Emite o link público de um resumo próprio
// @Tags Resumos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do resumo"
// @Success 200 {object} util.Response{data=model.Resumo}
// @Router /api/resumos/{id}/compartilhar [post]
func (c *ResumoController) Compartilhar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}

	resumo, err := c.ResumoService.Compartilhar(claims.UserID, id)
	if err != nil {
		if errors.Is(err, util.ErrResumoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resumo)
}

// PorToken godoc
// @Summary Lê um resumo compartilhado (rota pública)
// @Tags Resumos
// @Produce json
// @Param token path string true "Token de compartilhamento"
// @Success 200 {object} util.Response{data=model.Resumo}
// @Router /api/resumos/compartilhado/{token} [get]
func (c *ResumoController) PorToken(ctx *gin.Context) {
	resumo, err := c.ResumoService.PorToken(ctx.Param("token"))
	if err != nil {
		if errors.Is(err, util.ErrResumoNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resumo)
}
