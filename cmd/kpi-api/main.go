package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"go-kpi-analyser/internal/api"
	"go-kpi-analyser/internal/api/handler"
	"go-kpi-analyser/internal/config"
	"go-kpi-analyser/internal/store"
	"go-kpi-analyser/pkg/router"
)

// @title KPI Analyser API
// @version 1.0
// @description Dataset analysis, KPI recommendation and KPI calculation API
// @host localhost:8080
// @BasePath /api/v1
func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err == nil {
		fmt.Println("📄 Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}

	handler.Configure(cfg)

	r := router.New()
	api.RegisterRoutes(r)

	r.Start(cfg.Addr)
}
