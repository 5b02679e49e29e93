// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/lang-card/internal/gateway"
	"github.com/naka-gawa/lang-card/internal/render"
	"github.com/naka-gawa/lang-card/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "lang-card",
	Short: "Generates an SVG language mix card for a GitHub account.",
	Long: `lang-card fetches a GitHub account's repositories, aggregates the
per-language byte counts reported by the API, and renders the result as a
static SVG card: a donut chart plus a legend of the top languages.

An optional GITHUB_TOKEN environment variable (or .env entry) authenticates
the API requests; without it the tool runs against the anonymous rate limits.`,
	SilenceUsage: true,
	RunE:         runCard,
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("username", "u", "", "GitHub user or organization to scan (required)")
	rootCmd.Flags().StringP("output", "o", "assets/lang-stats.svg", "Output SVG path")
	rootCmd.Flags().Int("top", 8, "Number of top languages kept before folding the rest into Other")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.MarkFlagRequired("username")
}

func runCard(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	username, _ := cmd.Flags().GetString("username")
	output, _ := cmd.Flags().GetString("output")
	top, _ := cmd.Flags().GetInt("top")

	// A missing .env file is fine, the environment alone may carry the token.
	_ = godotenv.Load()
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		logger.Debug("GITHUB_TOKEN not set, using unauthenticated requests")
	}

	fetcher, err := gateway.NewGitHubGateway(token, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	aggregator := usecase.NewAggregator(fetcher, logger)

	totals, err := aggregator.CollectLanguageTotals(cmd.Context(), username)
	if err != nil {
		return fmt.Errorf("failed to collect language totals: %w", err)
	}

	theme := render.DefaultTheme()
	entries, totalBytes := usecase.RankLanguages(totals, top, theme.Palette, theme.OtherColor)
	svg := render.Card(entries, totalBytes, theme)

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	logger.Info("wrote language card", "path", output, "languages", len(entries), "totalBytes", totalBytes)
	return nil
}
