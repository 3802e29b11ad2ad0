package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/websocket"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Compensação Ambiental API
// @version         2.0
// @description     Public API over the environmental-compensation catalog (normas, tipos, modalidades) with a SISEMA WFS proxy.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if gin.Mode() != gin.ReleaseMode {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	logger.Info().Msg("connected to PostgreSQL")

	// Change feed for connected frontends
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Repository -> Service -> Handler)
	normaRepo := repository.NewNormaRepository(db)
	tipoRepo := repository.NewTipoCompensacaoRepository(db)
	modalidadeRepo := repository.NewModalidadeRepository(db)

	normaService := service.NewNormaService(normaRepo, wsHub)
	tipoService := service.NewTipoCompensacaoService(tipoRepo, wsHub)
	modalidadeService := service.NewModalidadeService(modalidadeRepo, wsHub)
	sisemaService := service.NewSisemaService(
		cfg.SisemaWFSURL, cfg.LayerUnidadesConservacao, cfg.LayerImoveisCompensacao,
		&http.Client{})

	normaHandler := handler.NewNormaHandler(normaService)
	tipoHandler := handler.NewTipoCompensacaoHandler(tipoService)
	modalidadeHandler := handler.NewModalidadeHandler(modalidadeService)
	sisemaHandler := handler.NewSisemaHandler(sisemaService, logger)

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.AllowedOrigin}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket change feed
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	// Static SPA bundle + runtime config published as window.env before the
	// app script runs
	router.StaticFile("/", "./web/index.html")
	router.Static("/static", "./web/static")
	router.GET("/env.js", func(c *gin.Context) {
		c.Data(200, "application/javascript",
			[]byte("window.env = { API_URL: \""+cfg.PublicAPIURL+"\" };\n"))
	})

	// API routing
	normaHandler.RegisterRoutes(router.Group(""))
	tipoHandler.RegisterRoutes(router.Group(""))
	modalidadeHandler.RegisterRoutes(router.Group(""))
	sisemaHandler.RegisterRoutes(router.Group(""))

	logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
