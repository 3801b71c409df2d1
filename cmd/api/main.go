package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	httphandlers "github.com/rafabene/eventos-backend/internal/handlers/http"
	"github.com/rafabene/eventos-backend/internal/handlers/middleware"
	"github.com/rafabene/eventos-backend/internal/infrastructure/config"
	"github.com/rafabene/eventos-backend/internal/infrastructure/logging"
	"github.com/rafabene/eventos-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/eventos-backend/internal/services"
)

func main() {
	// Carregar variáveis do .env, quando existir
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting eventos backend", "env", cfg.Env)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	usuarioRepo := postgres.NewUsuarioRepository(db)
	eventoRepo := postgres.NewEventoRepository(db)
	participacaoRepo := postgres.NewParticipacaoRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	usuarioService := services.NewUsuarioService(usuarioRepo, eventoRepo, participacaoRepo, uow, logger)
	eventoService := services.NewEventoService(eventoRepo, usuarioRepo, participacaoRepo, uow, logger)

	// Inicializar handlers
	usuarioHandler := httphandlers.NewUsuarioHandler(usuarioService, logger)
	eventoHandler := httphandlers.NewEventoHandler(eventoService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Rotas públicas
	router.POST("/no-auth/usuario/login", usuarioHandler.Login)

	// Rotas autenticadas pelo bearer token (e-mail do usuário)
	auth := middleware.NewAuth(usuarioRepo, logger)
	authed := router.Group("", auth.Handler())
	{
		usuario := authed.Group("/usuario")
		{
			usuario.GET("", usuarioHandler.FindAll)
			usuario.GET("/perfil", usuarioHandler.Perfil)
			usuario.GET("/:id", usuarioHandler.FindByID)
			usuario.POST("", usuarioHandler.Save)
			usuario.PUT("", usuarioHandler.Update)
			usuario.DELETE("/:id", usuarioHandler.Delete)
		}

		evento := authed.Group("/evento")
		{
			evento.GET("", eventoHandler.FindAll)
			evento.GET("/:id", eventoHandler.FindByID)
			evento.POST("", eventoHandler.Save)
			evento.PUT("", eventoHandler.Update)
			evento.DELETE("/:id", eventoHandler.Delete)
			evento.POST("/:id/:idUsuario", eventoHandler.AddParticipante)
			evento.DELETE("/:id/:idUsuario", eventoHandler.RemoveParticipante)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
