package handler

import (
	"go-kpi-analyser/internal/config"
	"go-kpi-analyser/internal/recommend"
)

var (
	maxUploadBytes int64 = 10 << 20
	maxPreviewRows       = 100

	heuristic recommend.Recommender = recommend.NewHeuristic()
	// ai is non-nil only when AI recommendations are enabled; the
	// heuristic stays as the fallback either way.
	ai recommend.Recommender
)

// Configure applies server settings to the handler package. Must be called
// before routes are served.
func Configure(c *config.Config) {
	maxUploadBytes = c.MaxUploadBytes
	maxPreviewRows = c.MaxPreviewRows
	if c.AIEnabled {
		ai = recommend.NewAI(c.AIModel, c.AnthropicAPIKey)
	} else {
		ai = nil
	}
}
