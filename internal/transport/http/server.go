package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "gamestore-hub/internal/app"
	"gamestore-hub/internal/bootstrap"
	rabbitmqClient "gamestore-hub/internal/platform/rabbitmq"
	"gamestore-hub/internal/repository"
	"gamestore-hub/internal/transport/http/handler"
	"gamestore-hub/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	authService := appsvc.NewAuthService(
		userRepo,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireHour)*time.Hour,
	)
	catalogService := appsvc.NewCatalogService()
	visitService := appsvc.NewVisitService(
		appsvc.NewRedisVisitStore(app.Redis),
		time.Duration(app.Config.Redis.LastVisitTTLSeconds)*time.Second,
		app.Config.Redis.VisitLogMaxEntries,
	)
	subscriberPublisher := rabbitmqClient.NewSubscriberPublisher(app.MQConn, app.Config.RabbitMQ.SubscriberPersistQueue)
	subscriberService := appsvc.NewSubscriberService(subscriberPublisher)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	visitHandler := handler.NewVisitHandler(visitService)
	subscriberHandler := handler.NewSubscriberHandler(subscriberService)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", middleware.AuthJWT(app.Config.Auth.JWTSecret), authHandler.Profile)

	router.GET("/products", catalogHandler.ListProducts)
	router.GET("/products/categories", catalogHandler.ListCategories)

	router.GET("/visits", visitHandler.Record)
	router.POST("/visits/reset", visitHandler.Reset)

	router.POST("/subscribers", subscriberHandler.Subscribe)

	return router
}
