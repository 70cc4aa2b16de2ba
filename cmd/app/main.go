package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/export_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/planner_fx"
	"voyago/cmd/fx/session_fx"
	"voyago/cmd/fx/weather_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		session_fx.Module,
		planner_fx.Module,
		weather_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	plannerController *controllers.PlannerController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, sessionController, plannerController, weatherController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessionController *controllers.SessionController,
	plannerController *controllers.PlannerController,
	weatherController *controllers.WeatherController,
	exportController *controllers.ExportController) {

	sessionGroup := r.Group("/sessions")
	sessionGroup.POST("", sessionController.CreateSession)
	sessionGroup.GET("", middleware.SessionAuthMiddleware(), sessionController.GetSession)
	sessionGroup.PUT("/preferences", middleware.SessionAuthMiddleware(), sessionController.UpdatePreferences)
	sessionGroup.DELETE("", middleware.SessionAuthMiddleware(), sessionController.DeleteSession)

	plansGroup := r.Group("/plans")
	plansGroup.Use(middleware.SessionAuthMiddleware())
	plansGroup.POST("/suggestions", plannerController.GenerateSuggestions)
	plansGroup.POST("/itinerary", plannerController.GenerateItinerary)
	plansGroup.GET("/export/json", exportController.ExportJSON)
	plansGroup.GET("/export/pdf", exportController.ExportPDF)

	weatherGroup := r.Group("/weather")
	weatherGroup.GET("/forecast", weatherController.GetForecast)
}
