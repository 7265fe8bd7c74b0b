package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"connconfigapi/bootstrap"
	"connconfigapi/config"
	"connconfigapi/controllers"
	_ "connconfigapi/docs"
	"connconfigapi/pkg/logger"
	"connconfigapi/services"
	"connconfigapi/services/embedded"
	"connconfigapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           connconfigapi
// @version         1.0
// @description     Connection Configuration Catalog API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting Connection Configuration Catalog API with log level: %s", config.Cfg.LogLevel)

	// 3) Connect DB (GORM), either external MySQL or the embedded engine
	var embeddedSrv *embedded.Server
	if config.Cfg.DBEmbedded {
		srv, err := embedded.Start(context.Background(), config.Cfg.DBName)
		if err != nil {
			log.Fatalf("Embedded server error: %v", err)
		}
		embeddedSrv = srv
		if err := config.ConnectDSN(srv.DSN()); err != nil {
			log.Fatalf("ConnectDSN error: %v", err)
		}
	} else {
		if err := config.ConnectDB(); err != nil {
			log.Fatalf("ConnectDB error: %v", err)
		}
	}
	if config.DB == nil {
		log.Fatal("Database is nil after connect")
	}

	if err := config.MigrateDB(); err != nil {
		log.Fatalf("MigrateDB error: %v", err)
	}

	// 4) Seed the reference catalog (no-op when already present)
	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	controllers.SetCatalogService(services.NewCatalogService())

	// 5) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	v1 := router.Group("/api")
	{
		controllers.RegisterCatalogRoutes(v1)
	}

	// 6) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal")

		if embeddedSrv != nil {
			if err := embeddedSrv.Close(); err != nil {
				logger.Warnf("Failed to close embedded server: %v", err)
			}
		}

		logger.Infof("Application shutdown complete")
		os.Exit(0)
	}()

	// 8) Run
	logger.Infof("Starting server at port %s", config.Cfg.HTTPPort)
	router.Run("0.0.0.0:" + config.Cfg.HTTPPort)
}
