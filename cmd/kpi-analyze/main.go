// kpi-analyze inspects a local CSV/Excel file and prints the analysis and
// KPI recommendations without going through the API server.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go-kpi-analyser/internal/analyzer"
	"go-kpi-analyser/internal/model"
	"go-kpi-analyser/internal/parser"
	"go-kpi-analyser/internal/recommend"
)

func parseFile(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parser.Parse(path, f)
}

var (
	dashboardType string
	useAI         bool
	aiModel       string
	asJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "kpi-analyze <file>",
	Short: "Analyze a dataset file and suggest KPIs",
	Long:  `Parses a CSV or Excel file, infers column types and business domains, computes per-column statistics and prints KPI recommendations.`,
	Args:  cobra.ExactArgs(1),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVar(&dashboardType, "dashboard-type", "general", "dashboard type hint passed to the recommender")
	rootCmd.Flags().BoolVar(&useAI, "ai", false, "use the Anthropic recommender (requires ANTHROPIC_API_KEY)")
	rootCmd.Flags().StringVar(&aiModel, "ai-model", "", "override the Anthropic model")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
}

func run(cmd *cobra.Command, args []string) error {
	table, err := parseFile(args[0])
	if err != nil {
		return err
	}

	analysis := analyzer.Analyze(*table)

	var recommender recommend.Recommender = recommend.NewHeuristic()
	if useAI {
		recommender = recommend.NewAI(aiModel, "")
	}

	recommendations, err := recommender.Recommend(cmd.Context(), analysis, dashboardType)
	if err != nil {
		return err
	}

	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"analysis":        analysis,
			"recommendations": recommendations,
			"dashboardType":   dashboardType,
		})
	}

	printAnalysis(analysis)
	printRecommendations(recommendations)
	return nil
}

func printAnalysis(a *model.Analysis) {
	fmt.Printf("📊 %d rows, %d columns\n", a.RowCount, a.ColumnCount)
	fmt.Printf("🏷️  Domains: %v\n\n", a.DetectedDomains)

	for _, col := range a.Columns {
		stats := a.Statistics[col]
		fmt.Printf("  %-24s %-12s count=%d unique=%d null=%d", col, stats.Type, stats.Count, stats.UniqueCount, stats.NullCount)
		if stats.Sum != nil {
			fmt.Printf(" min=%g max=%g avg=%g sum=%g", *stats.Min, *stats.Max, *stats.Avg, *stats.Sum)
		}
		fmt.Println()
	}
}

func printRecommendations(recs []model.Recommendation) {
	fmt.Printf("\n💡 %d KPI recommendations:\n", len(recs))
	for i, rec := range recs {
		fmt.Printf("  %d. %s (%s of %s) [%s/%s]\n", i+1, rec.Name, rec.Type, rec.Field, rec.Category, rec.Priority)
		if rec.Reasoning != "" {
			fmt.Printf("     %s\n", rec.Reasoning)
		}
	}
}

func main() {
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌ Error:", err)
		os.Exit(1)
	}
}
