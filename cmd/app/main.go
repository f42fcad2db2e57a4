package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"weekplan/cmd/fx/account_fx"
	"weekplan/cmd/fx/controllers_fx"
	"weekplan/cmd/fx/db_fx"
	"weekplan/cmd/fx/plan_fx"
	"weekplan/cmd/fx/profile_fx"
	"weekplan/internal/api/controllers"
	"weekplan/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		plan_fx.Module,
		profile_fx.Module,
		controllers_fx.Module,

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
	planController *controllers.PlanController,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, planController, accountController, profileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	planController *controllers.PlanController,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	planGroup := r.Group("/plans")
	planGroup.Use(middleware.JWTAuthMiddleware())
	planGroup.POST("", planController.UpsertPlan)
	planGroup.POST("/bulk", planController.CreateBulkPlans)
	planGroup.GET("", planController.ListPlans)
	planGroup.GET("/recent", planController.GetRecentPlans)
	planGroup.GET("/stats/completed-count", planController.GetCompletedCount)
	planGroup.GET("/stats/completed-by-weekday", planController.GetCompletedByWeekday)
	planGroup.DELETE("/:planId", planController.DeletePlan)
	planGroup.DELETE("", planController.DeleteAllPlans)

	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.JWTAuthMiddleware())
	profileGroup.GET("", profileController.GetProfile)
	profileGroup.PUT("", profileController.UpdateProfile)
}
