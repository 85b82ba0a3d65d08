package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

// MateriaController cobre a árvore matéria → tópico → subtópico.
// Leituras são públicas; escrita é de administrador.
type MateriaController struct {
	MateriaService *service.MateriaService
}

func NewMateriaController(materiaService *service.MateriaService) *MateriaController {
	return &MateriaController{MateriaService: materiaService}
}

// swagger:model NomeOrdemRequest
type NomeOrdemRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Ordem int    `json:"ordem"`
}

// Listar godoc
// @Summary Lista as matérias com contagem de tópicos
// @Tags Matérias
// @Produce json
// @Success 200 {object} util.Response{data=[]repository.MateriaComTotais}
// @Router /api/materias [get]
func (c *MateriaController) Listar(ctx *gin.Context) {
	materias, err := c.MateriaService.Listar()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, materias)
}

// Criar godoc
// @Summary Cria uma matéria
// @Tags Matérias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body NomeOrdemRequest true "Matéria"
// @Success 201 {object} util.Response{data=model.Materia}
// @Router /api/materias [post]
func (c *MateriaController) Criar(ctx *gin.Context) {
	var req NomeOrdemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "nome é obrigatório")
		return
	}
	materia, err := c.MateriaService.CriarMateria(req.Nome, req.Ordem)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, materia)
}

// Atualizar godoc
// @Summary Atualiza uma matéria
// @Tags Matérias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da matéria"
// @Param body body NomeOrdemRequest true "Matéria"
// @Success 200 {object} util.Response{data=model.Materia}
// @Router /api/materias/{id} [put]
func (c *MateriaController) Atualizar(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	var req NomeOrdemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "nome é obrigatório")
		return
	}
	materia, err := c.MateriaService.AtualizarMateria(id, req.Nome, req.Ordem)
	if err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, materia)
}

// Excluir godoc
// @Summary Exclui uma matéria e toda a sua árvore
// @Tags Matérias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID da matéria"
// @Success 200 {object} util.Response
// @Router /api/materias/{id} [delete]
func (c *MateriaController) Excluir(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	if err := c.MateriaService.ExcluirMateria(id); err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"excluido": true})
}

// ListarTopicos godoc
// @Summary Lista os tópicos de uma matéria
// @Tags Matérias
// @Produce json
// @Param materia_id path int true "ID da matéria"
// @Success 200 {object} util.Response{data=[]model.Topico}
// @Router /api/materias/{materia_id}/topicos [get]
func (c *MateriaController) ListarTopicos(ctx *gin.Context) {
	materiaID, err := paramUint(ctx, "materia_id")
	if err != nil {
		util.BadRequest(ctx, "materia_id inválido")
		return
	}
	topicos, err := c.MateriaService.ListarTopicos(materiaID)
	if err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topicos)
}

// CriarTopico godoc
// @Summary Cria um tópico em uma matéria
// @Tags Matérias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param materia_id path int true "ID da matéria"
// @Param body body NomeOrdemRequest true "Tópico"
// @Success 201 {object} util.Response{data=model.Topico}
// @Router /api/materias/{materia_id}/topicos [post]
func (c *MateriaController) CriarTopico(ctx *gin.Context) {
	materiaID, err := paramUint(ctx, "materia_id")
	if err != nil {
		util.BadRequest(ctx, "materia_id inválido")
		return
	}
	var req NomeOrdemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "nome é obrigatório")
		return
	}
	topico, err := c.MateriaService.CriarTopico(materiaID, req.Nome, req.Ordem)
	if err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, topico)
}

// ExcluirTopico godoc
// @Summary Exclui um tópico e seus subtópicos
// @Tags Matérias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do tópico"
// @Success 200 {object} util.Response
// @Router /api/topicos/{id} [delete]
func (c *MateriaController) ExcluirTopico(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	if err := c.MateriaService.ExcluirTopico(id); err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"excluido": true})
}

// ListarSubtopicos godoc
// @Summary Lista os subtópicos de um tópico
// @Tags Matérias
// @Produce json
// @Param topico_id path int true "ID do tópico"
// @Success 200 {object} util.Response{data=[]model.Subtopico}
// @Router /api/topicos/{topico_id}/subtopicos [get]
func (c *MateriaController) ListarSubtopicos(ctx *gin.Context) {
	topicoID, err := paramUint(ctx, "topico_id")
	if err != nil {
		util.BadRequest(ctx, "topico_id inválido")
		return
	}
	subtopicos, err := c.MateriaService.ListarSubtopicos(topicoID)
	if err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subtopicos)
}

// CriarSubtopico godoc
// @Summary Cria um subtópico em um tópico
// @Tags Matérias
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param topico_id path int true "ID do tópico"
// @Param body body NomeOrdemRequest true "Subtópico"
// @Success 201 {object} util.Response{data=model.Subtopico}
// @Router /api/topicos/{topico_id}/subtopicos [post]
func (c *MateriaController) CriarSubtopico(ctx *gin.Context) {
	topicoID, err := paramUint(ctx, "topico_id")
	if err != nil {
		util.BadRequest(ctx, "topico_id inválido")
		return
	}
	var req NomeOrdemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "nome é obrigatório")
		return
	}
	subtopico, err := c.MateriaService.CriarSubtopico(topicoID, req.Nome, req.Ordem)
	if err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, subtopico)
}

// ExcluirSubtopico godoc
// @Summary Exclui um subtópico
// @Tags Matérias
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "ID do subtópico"
// @Success 200 {object} util.Response
// @Router /api/subtopicos/{id} [delete]
func (c *MateriaController) ExcluirSubtopico(ctx *gin.Context) {
	id, err := paramUint(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, "id inválido")
		return
	}
	if err := c.MateriaService.ExcluirSubtopico(id); err != nil {
		if errors.Is(err, util.ErrMateriaNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"excluido": true})
}
