package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-kpi-analyser/docs"
	"go-kpi-analyser/internal/api/handler"
	"go-kpi-analyser/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	r.GET("/api/health", handler.Health)

	r.POST("/api/v1/upload", handler.UploadFile)

	r.GET("/api/v1/datasets", handler.ListDatasets)
	// More specific routes first
	r.GET("/api/v1/datasets/*/summary", handler.GetDatasetSummary)
	r.GET("/api/v1/datasets/*", handler.GetDataset)
	r.DELETE("/api/v1/datasets/*", handler.DeleteDataset)

	r.POST("/api/v1/kpis", handler.CreateKPI)
	r.GET("/api/v1/kpis", handler.ListKPIs)
	r.GET("/api/v1/kpis/calculate-all", handler.CalculateAllKPIs)
	r.GET("/api/v1/kpis/*/calculate", handler.CalculateKPI)
	r.GET("/api/v1/kpis/*", handler.GetKPI)
	r.PUT("/api/v1/kpis/*", handler.UpdateKPI)
	r.DELETE("/api/v1/kpis/*", handler.DeleteKPI)

	r.GET("/api/v1/recommendations/analyze/*", handler.AnalyzeDataset)
	r.GET("/api/v1/recommendations/suggest/*", handler.SuggestKPIs)
	r.POST("/api/v1/recommendations/apply", handler.ApplyRecommendations)

	r.GET("/swagger/*", httpSwagger.WrapHandler.ServeHTTP)
}
