package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type FlashcardController struct {
	FlashcardService *service.FlashcardService
}

func NewFlashcardController(flashcardService *service.FlashcardService) *FlashcardController {
	return &FlashcardController{FlashcardService: flashcardService}
}

// swagger:model FlashcardRequest
type FlashcardRequest struct {
	MateriaID   uint   `json:"materia_id" binding:"required"`
	Pergunta    string `json:"pergunta" binding:"required"`
	Resposta    string `json:"resposta" binding:"required"`
	Dificuldade string `json:"dificuldade" binding:"omitempty,oneof=facil medio dificil"`
}

// Criar godoc
// @Summary Cria um flashcard
// @Tags Flashcards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body FlashcardRequest true "Flashcard"
// @Success 201 {object} util.Response{data=model.Flashcard}
// @Router /api/flashcards [post]
func (c *FlashcardController) Criar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FlashcardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "materia_id, pergunta e resposta são obrigatórios")
		return
	}

	flashcard, err := c.FlashcardService.Criar(claims.UserID, req.MateriaID, req.Pergunta, req.Resposta, req.Dificuldade)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, flashcard)
}

// Listar godoc
// @Summary Lista os flashcards do usuário
// @Tags Flashcards
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Flashcard}
// @Router /api/flashcards [get]
func (c *FlashcardController) Listar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	flashcards, err := c.FlashcardService.Listar(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, flashcards)
}

// ParaRevisao godoc
// @Summary Lista os flashcards com revisão vencida
// @Tags Flashcards
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Flashcard}
// @Router /api/flashcards/revisao [get]
func (c *FlashcardController) ParaRevisao(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	flashcards, err := c.FlashcardService.ParaRevisao(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, flashcards)
}

// swagger:model RevisarRequest
type RevisarRequest struct {
	Dificuldade string `json:"dificuldade" binding:"omitempty,oneof=facil medio dificil"`
}

// Revisar godoc
// @Summary Marca um flashcard como revisado e reagenda
// @Tags Flashcards
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do flashcard"
// @Param body body RevisarRequest false "Dificuldade percebida na revisão"
// @Success 200 {object} util.Response{data=model.Flashcard}
// @Router /api/flashcards/{id}/revisar [post]
func (c *FlashcardController) Revisar(ctx *gin.Context) {
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

	var req RevisarRequest
	_ = ctx.ShouldBindJSON(&req)

	flashcard, err := c.FlashcardService.Revisar(claims.UserID, id, req.Dificuldade)
	if err != nil {
		if errors.Is(err, util.ErrFlashcardNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, flashcard)
}

// Excluir godoc
// @Summary Exclui um flashcard próprio
// @Tags Flashcards
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do flashcard"
// @Success 200 {object} util.Response
// @Router /api/flashcards/{id} [delete]
func (c *FlashcardController) Excluir(ctx *gin.Context) {
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

	if err := c.FlashcardService.Excluir(claims.UserID, id); err != nil {
		if errors.Is(err, util.ErrFlashcardNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"excluido": true})
}
