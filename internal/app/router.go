package app

import (
	"cronos_backend/docs"
	"cronos_backend/internal/config"
	"cronos_backend/internal/middleware"
	"cronos_backend/internal/model"
	"cronos_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(a.services.evolucao))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/registro", c.auth.Registrar)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/motivacoes/atual", c.motivacao.Atual)

		// árvore de estudo é de leitura livre
		public.GET("/materias", c.materia.Listar)
		public.GET("/materias/:materia_id/topicos", c.materia.ListarTopicos)
		public.GET("/topicos/:topico_id/subtopicos", c.materia.ListarSubtopicos)
		public.GET("/conteudos/:id", c.conteudo.Detalhe)
		public.GET("/conteudos/subtopico/:subtopico_id", c.conteudo.ListarPorSubtopico)

		// histórico recebe o usuário pelo caminho
		public.GET("/quiz/historico/:usuario_id", c.quiz.Historico)

		public.GET("/resumos/compartilhado/:token", c.resumo.PorToken)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/perfil", c.auth.Perfil)
	rg.PUT("/auth/perfil", c.auth.AtualizarPerfil)

	rg.POST("/conteudos/gerar/:subtopico_id", c.conteudo.Gerar)

	rg.POST("/quiz/sessoes", c.quiz.CriarSessao)
	rg.POST("/quiz/responder", c.quiz.Responder)
	rg.POST("/quiz/finalizar", c.quiz.Finalizar)
	rg.GET("/quiz/:quiz_id/resumo", c.quiz.Resumo)

	rg.POST("/evolucao", c.evolucao.Registrar)
	rg.POST("/evolucao/ping", c.evolucao.Ping)
	rg.GET("/evolucao/painel", c.evolucao.Painel)

	rg.POST("/resumos", c.resumo.Criar)
	rg.GET("/resumos", c.resumo.Listar)
	rg.PUT("/resumos/:id", c.resumo.Atualizar)
	rg.DELETE("/resumos/:id", c.resumo.Excluir)
	rg.POST("/resumos/:id/compartilhar", c.resumo.Compartilhar)

	rg.POST("/flashcards", c.flashcard.Criar)
	rg.GET("/flashcards", c.flashcard.Listar)
	rg.GET("/flashcards/revisao", c.flashcard.ParaRevisao)
	rg.POST("/flashcards/:id/revisar", c.flashcard.Revisar)
	rg.DELETE("/flashcards/:id", c.flashcard.Excluir)

	rg.POST("/assistente", c.assistente.Perguntar)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/materias", c.materia.Criar)
		admin.PUT("/materias/:id", c.materia.Atualizar)
		admin.DELETE("/materias/:id", c.materia.Excluir)
		admin.POST("/materias/:materia_id/topicos", c.materia.CriarTopico)
		admin.DELETE("/topicos/:id", c.materia.ExcluirTopico)
		admin.POST("/topicos/:topico_id/subtopicos", c.materia.CriarSubtopico)
		admin.DELETE("/subtopicos/:id", c.materia.ExcluirSubtopico)

		admin.PUT("/conteudos/:id", c.conteudo.EditarTexto)
		admin.DELETE("/conteudos/:id", c.conteudo.Excluir)

		admin.POST("/questoes/gerar/:conteudo_id", c.questao.GerarLote)

		admin.GET("/motivacoes", c.motivacao.Listar)
		admin.POST("/motivacoes", c.motivacao.Criar)
		admin.POST("/motivacoes/:id/em-uso", c.motivacao.DefinirEmUso)
	}
}
