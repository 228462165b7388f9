package http

import (
	"path/filepath"

	"github.com/gin-gonic/gin"

	appsvc "exercise-tracker/internal/app"
	"exercise-tracker/internal/bootstrap"
	"exercise-tracker/internal/repository"
	"exercise-tracker/internal/transport/http/handler"
	"exercise-tracker/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(app.Logger), gin.Recovery(), middleware.CORS())

	healthHandler := handler.NewHealthHandler(app)
	router.StaticFile("/", filepath.Join(app.Config.App.ViewsDir, "index.html"))
	router.Static("/public", app.Config.App.PublicDir)
	router.GET("/healthz", healthHandler.Check)

	var events appsvc.ActivityPublisher
	if app.Events != nil {
		events = app.Events
	}

	userRepo := repository.NewUserRepository(app.MySQL)
	exerciseRepo := repository.NewExerciseRepository(app.MySQL)
	userService := appsvc.NewUserService(userRepo, events, app.Logger)
	exerciseService := appsvc.NewExerciseService(userService, exerciseRepo, events, app.Logger)
	userHandler := handler.NewUserHandler(userService, app.Logger)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, app.Logger)

	users := router.Group("/api/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.POST("/:_id/exercises", exerciseHandler.Add)
	users.GET("/:_id/logs", exerciseHandler.Log)

	return router
}
