package app

import (
	"context"
	"cronos_backend/internal/config"
	"cronos_backend/internal/controller"
	"cronos_backend/internal/repository"
	"cronos_backend/internal/service"
	"cronos_backend/pkg/database"
	"cronos_backend/pkg/logger"
	"cronos_backend/pkg/monitoring"
	"cronos_backend/pkg/security"
	"cronos_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user      *repository.UserRepository
	materia   *repository.MateriaRepository
	topico    *repository.TopicoRepository
	subtopico *repository.SubtopicoRepository
	conteudo  *repository.ConteudoRepository
	questao   *repository.QuestaoRepository
	quiz      *repository.QuizRepository
	evolucao  *repository.EvolucaoRepository
	resumo    *repository.ResumoRepository
	flashcard *repository.FlashcardRepository
	motivacao *repository.MotivacaoRepository
}

type services struct {
	gemini     *service.GeminiService
	auth       *service.AuthService
	materia    *service.MateriaService
	conteudo   *service.ConteudoService
	questao    *service.QuestaoService
	quiz       *service.QuizService
	evolucao   *service.EvolucaoService
	resumo     *service.ResumoService
	flashcard  *service.FlashcardService
	motivacao  *service.MotivacaoService
	assistente *service.AssistenteService
}

type controllers struct {
	auth       *controller.AuthController
	materia    *controller.MateriaController
	conteudo   *controller.ConteudoController
	questao    *controller.QuestaoController
	quiz       *controller.QuizController
	evolucao   *controller.EvolucaoController
	resumo     *controller.ResumoController
	flashcard  *controller.FlashcardController
	motivacao  *controller.MotivacaoController
	assistente *controller.AssistenteController
	health     *controller.HealthController
}

// RegisterConfigCallback inscreve um consumidor de recarga de configuração
// (hoje, a troca de chaves Gemini a quente).
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig repassa a configuração recarregada aos inscritos.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(db),
		materia:   repository.NewMateriaRepository(db),
		topico:    repository.NewTopicoRepository(db),
		subtopico: repository.NewSubtopicoRepository(db),
		conteudo:  repository.NewConteudoRepository(db),
		questao:   repository.NewQuestaoRepository(db),
		quiz:      repository.NewQuizRepository(db),
		evolucao:  repository.NewEvolucaoRepository(db),
		resumo:    repository.NewResumoRepository(db),
		flashcard: repository.NewFlashcardRepository(db),
		motivacao: repository.NewMotivacaoRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.gemini = service.NewGeminiService(cfg.AI)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.materia = service.NewMateriaService(repos.materia, repos.topico, repos.subtopico)
	s.conteudo = service.NewConteudoService(repos.conteudo, repos.materia, repos.topico, repos.subtopico, s.gemini, rdb)
	s.questao = service.NewQuestaoService(repos.questao, repos.conteudo, s.gemini)
	s.quiz = service.NewQuizService(repos.quiz, repos.questao, repos.conteudo, s.gemini)
	s.evolucao = service.NewEvolucaoService(repos.evolucao)
	s.resumo = service.NewResumoService(repos.resumo)
	s.flashcard = service.NewFlashcardService(repos.flashcard)
	s.motivacao = service.NewMotivacaoService(repos.motivacao)
	s.assistente = service.NewAssistenteService(repos.conteudo, s.gemini)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		materia:    controller.NewMateriaController(s.materia),
		conteudo:   controller.NewConteudoController(s.conteudo),
		questao:    controller.NewQuestaoController(s.questao),
		quiz:       controller.NewQuizController(s.quiz),
		evolucao:   controller.NewEvolucaoController(s.evolucao),
		resumo:     controller.NewResumoController(s.resumo),
		flashcard:  controller.NewFlashcardController(s.flashcard),
		motivacao:  controller.NewMotivacaoController(s.motivacao),
		assistente: controller.NewAssistenteController(s.assistente),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger inicializado")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Falha ao inicializar o banco de dados", zap.Error(err))
	}

	// em release a migração só roda sob --migrate/--migrate-only
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Falha na migração do banco de dados", zap.Error(err))
		}
		database.SeedMotivacoes(db)
		logger.Log.Info("Migração do banco concluída")
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// cache é opcional: sem Redis o serviço segue lendo do banco
		logger.Log.Warn("Redis indisponível, seguindo sem cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	app.RegisterConfigCallback(func(novo *config.Config) {
		services.gemini.UpdateKeys(novo.AI.Keys)
		logger.Log.Info("Chaves do provedor de IA recarregadas", zap.Int("total", len(novo.AI.Keys)))
	})

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("cronos-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Falha ao inicializar o tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
