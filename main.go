package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"coursecatalog/bootstrap"
	"coursecatalog/config"
	"coursecatalog/controllers"
	_ "coursecatalog/docs"
	"coursecatalog/pkg/logger"
	"coursecatalog/services"
	"coursecatalog/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           coursecatalog
// @version         1.0
// @description     Course catalog web application

// @BasePath  /

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
	logger.Infof("Starting coursecatalog with log level: %s", config.Cfg.LogLevel)

	// 3) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}

	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Bootstrap error: %v", err)
	}

	controllers.SetCategoryService(services.NewCategoryService())
	controllers.SetCourseService(services.NewCourseService())

	// 4) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())
	router.LoadHTMLGlob("templates/*.html")

	controllers.RegisterCatalogRoutes(router)
	controllers.RegisterCategoryRoutes(router)
	controllers.RegisterCourseRoutes(router)
	controllers.RegisterCatalogJSONRoutes(router)

	// 5) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 6) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, application shutdown complete")
		os.Exit(0)
	}()

	// 7) Run
	logger.Infof("Starting server at port %s", config.Cfg.HTTPPort)
	router.Run("0.0.0.0:" + config.Cfg.HTTPPort)
}
