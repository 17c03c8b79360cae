// @title Quiz App API
// @version 1.0
// @description API de quizzes de verdadeiro ou falso com participações, pontuação e rankings.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"quiz_app_backend/internal/app"
	"quiz_app_backend/internal/config"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	application.Run()
}
