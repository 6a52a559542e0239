package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hiviexd/loved-cli/round"
)

var (
	generateRoundFile   string
	generateConcurrency int
	generateContinue    bool
	generateProgress    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate banners for a voting round",
	Long: `Render voting banners for every beatmapset in a round file.

Each entry produces <news_dir>/banners/<id>.jpg and <id>@2x.jpg. Entries
whose background and title are unchanged since the last run are skipped
via the content cache.

Examples:
  loved generate --round rounds/2026-08.yaml
  loved generate --round rounds/2026-08.yaml --concurrency 8 --continue-on-error
  loved generate --round rounds/2026-08.yaml --progress`,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := round.Load(generateRoundFile)
		if err != nil {
			logrus.Fatalf("Failed to load round: %v", err)
		}

		cfg := loadConfigOrDefaults()

		concurrency := cfg.BatchConcurrency
		if cmd.Flags().Changed("concurrency") {
			concurrency = generateConcurrency
		}
		continueOnError := cfg.ContinueOnError
		if cmd.Flags().Changed("continue-on-error") {
			continueOnError = generateContinue
		}

		gen, _, err := buildEngine(cfg)
		if err != nil {
			logrus.Fatalf("Failed to build banner engine: %v", err)
		}

		logrus.Infof("Round %q: %d beatmapsets", r.Name, len(r.Beatmapsets))

		runner := &round.Runner{
			Generator:       gen,
			Concurrency:     concurrency,
			ContinueOnError: continueOnError,
		}

		var results []round.Result
		if generateProgress && isatty.IsTerminal(os.Stdout.Fd()) {
			results, err = runWithProgress(runner, r)
			if err != nil {
				logrus.Fatalf("Progress display failed: %v", err)
			}
			fmt.Println(renderSummary(round.Summarize(results)))
		} else {
			runner.OnResult = logResult
			results = runner.Run(context.Background(), r)
		}

		summary := round.Summarize(results)
		logrus.Infof("Batch complete: total=%d generated=%d cached=%d failed=%d skipped=%d",
			summary.Total, summary.Generated, summary.Cached, summary.Failed, summary.Skipped)

		if summary.Failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateRoundFile, "round", "", "Round file (YAML)")
	generateCmd.Flags().IntVar(&generateConcurrency, "concurrency", 4, "Parallel banner workers")
	generateCmd.Flags().BoolVar(&generateContinue, "continue-on-error", false, "Keep going after a failed banner")
	generateCmd.Flags().BoolVar(&generateProgress, "progress", false, "Show a progress bar (TTY only)")

	generateCmd.MarkFlagRequired("round")
}

func logResult(res round.Result) {
	switch res.Outcome {
	case round.OutcomeGenerated:
		logrus.Infof("Generated %d: %s (%s)", res.Beatmapset.ID, res.Beatmapset.DisplayTitle(), res.Duration.Round(time.Millisecond))
	case round.OutcomeCached:
		logrus.Debugf("Cached %d: %s", res.Beatmapset.ID, res.Beatmapset.DisplayTitle())
	case round.OutcomeFailed:
		logrus.Errorf("Failed %d: %v", res.Beatmapset.ID, res.Err)
	case round.OutcomeSkipped:
		logrus.Warnf("Skipped %d after earlier failure", res.Beatmapset.ID)
	}
}
