package controller

import (
	"cronos_backend/internal/service"
	"cronos_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegistroRequest
type RegistroRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// Registrar godoc
// @Summary Cadastra um estudante
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param body body RegistroRequest true "Dados de cadastro"
// @Success 201 {object} util.Response{data=service.Credenciais}
// @Failure 409 {object} util.Response "E-mail já cadastrado"
// @Router /api/auth/registro [post]
func (c *AuthController) Registrar(ctx *gin.Context) {
	var req RegistroRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "nome, email e senha (mínimo 6 caracteres) são obrigatórios")
		return
	}

	credenciais, err := c.AuthService.Registrar(req.Nome, req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, credenciais)
}

// Login godoc
// @Summary Autentica e devolve o token JWT
// @Tags Autenticação
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credenciais"
// @Success 200 {object} util.Response{data=service.Credenciais}
// @Failure 401 {object} util.Response "Credenciais inválidas"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "email e senha são obrigatórios")
		return
	}

	credenciais, err := c.AuthService.Login(req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, credenciais)
}

// Perfil godoc
// @Summary Perfil do usuário autenticado
// @Tags Autenticação
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/auth/perfil [get]
func (c *AuthController) Perfil(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.Perfil(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// swagger:model AtualizarPerfilRequest
type AtualizarPerfilRequest struct {
	Nome string `json:"nome" binding:"required"`
}

// AtualizarPerfil godoc
// @Summary Atualiza o nome do usuário autenticado
// @Tags Autenticação
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AtualizarPerfilRequest true "Novo nome"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/auth/perfil [put]
func (c *AuthController) AtualizarPerfil(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AtualizarPerfilRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "nome é obrigatório")
		return
	}

	user, err := c.AuthService.AtualizarPerfil(claims.UserID, req.Nome)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
