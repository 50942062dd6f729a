package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"go-kpi-analyser/internal/model"
)

const defaultModel = "claude-sonnet-4-20250514"

// AI is the Anthropic-backed recommender. It sends an analysis summary to
// the model and expects a JSON array of recommendations back. A response
// that fails to parse yields an empty list, never an error; only the API
// call itself can fail.
type AI struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewAI builds an AI recommender. An empty model falls back to the default;
// an empty apiKey leaves key resolution to the SDK's environment lookup.
func NewAI(modelName, apiKey string) *AI {
	if modelName == "" {
		modelName = defaultModel
	}
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	return &AI{
		client:    anthropic.NewClient(opts...),
		model:     anthropic.Model(modelName),
		maxTokens: 2000,
	}
}

// Recommend asks the model for exactly 8 KPI recommendations.
func (r *AI) Recommend(ctx context.Context, a *model.Analysis, dashboardType string) ([]model.Recommendation, error) {
	prompt := buildPrompt(a, dashboardType)

	msg, err := r.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     r.model,
		MaxTokens: r.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, &model.ExternalServiceError{Service: "anthropic", Err: err}
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return parseRecommendations(block.Text), nil
		}
	}
	return nil, &model.ExternalServiceError{Service: "anthropic", Err: fmt.Errorf("no text content in response")}
}

// buildPrompt renders the fixed prompt template with the analysis summary
// and the dashboard label. Only the first 10 statistics entries are
// included, in column order.
func buildPrompt(a *model.Analysis, dashboardType string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a business intelligence expert. Analyze this dataset and recommend the most valuable KPIs for a %s dashboard.\n\n", dashboardType)
	fmt.Fprintf(&b, "Dataset Analysis:\n")
	fmt.Fprintf(&b, "- Rows: %d\n", a.RowCount)
	fmt.Fprintf(&b, "- Columns: %d\n", a.ColumnCount)
	fmt.Fprintf(&b, "- Detected Business Domain: %s\n\n", strings.Join(a.DetectedDomains, ", "))

	b.WriteString("Column Information:\n")
	for _, col := range sortedColumns(a) {
		fmt.Fprintf(&b, "- %s (%s)\n", col, a.ColumnTypes[col])
	}

	b.WriteString("\nStatistics Summary:\n")
	cols := sortedColumns(a)
	if len(cols) > 10 {
		cols = cols[:10]
	}
	for _, col := range cols {
		stats := a.Statistics[col]
		if stats == nil {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d values, %d unique", col, stats.Count, stats.UniqueCount)
		if stats.Avg != nil {
			fmt.Fprintf(&b, ", avg: %.2f", *stats.Avg)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `
Provide exactly 8 KPI recommendations in this JSON format:
[
  {
    "name": "Total Revenue",
    "type": "SUM|AVG|COUNT|MIN|MAX",
    "field": "column_name",
    "priority": "high|medium|low",
    "category": "financial|operational|customer|performance",
    "description": "Brief description",
    "reasoning": "Why this KPI is important"
  }
]

Focus on:
1. Most impactful metrics for %s decisions
2. Mix of different KPI types (SUM, AVG, COUNT)
3. Both high-level and detailed metrics
4. Actionable insights

Return ONLY the JSON array, no other text.`, dashboardType)

	return b.String()
}

// sortedColumns returns the analysis columns in declaration order, falling
// back to sorted map keys when the column list is missing.
func sortedColumns(a *model.Analysis) []string {
	if len(a.Columns) > 0 {
		return a.Columns
	}
	cols := make([]string, 0, len(a.ColumnTypes))
	for col := range a.ColumnTypes {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// parseRecommendations strips markdown code fences and decodes the JSON
// array. Any parse failure means no recommendations, not an error.
func parseRecommendations(response string) []model.Recommendation {
	cleaned := strings.ReplaceAll(response, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var recs []model.Recommendation
	if err := json.Unmarshal([]byte(cleaned), &recs); err != nil {
		fmt.Printf("⚠️ Failed to parse AI recommendations: %v\n", err)
		return []model.Recommendation{}
	}
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
