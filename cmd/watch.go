package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hiviexd/loved-cli/round"
	"github.com/Hiviexd/loved-cli/watcher"
)

var watchRoundFile string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate banners when round inputs change",
	Long: `Run an initial generation pass, then watch the round file and every
referenced background image. A change triggers another pass; unchanged
entries stay cached, so only the touched banners re-render.

Examples:
  loved watch --round rounds/2026-08.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWatch(watchRoundFile); err != nil {
			logrus.Fatalf("Watch mode exited with error: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchRoundFile, "round", "", "Round file (YAML)")

	watchCmd.MarkFlagRequired("round")
}

func runWatch(roundPath string) error {
	cfg := loadConfigOrDefaults()

	gen, _, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for {
		r, err := round.Load(roundPath)
		if err != nil {
			return err
		}

		runner := &round.Runner{
			Generator:       gen,
			Concurrency:     cfg.BatchConcurrency,
			ContinueOnError: true,
			OnResult:        logResult,
		}
		summary := round.Summarize(runner.Run(ctx, r))
		logrus.Infof("Pass complete: generated=%d cached=%d failed=%d",
			summary.Generated, summary.Cached, summary.Failed)

		// The round file itself is watched too: edits to entries or
		// titles re-trigger, and the watch set is rebuilt in case the
		// background list changed.
		paths := []string{roundPath}
		for _, set := range r.Beatmapsets {
			if p := r.BackgroundPath(set); p != "" {
				paths = append(paths, p)
			}
		}

		w, err := watcher.New(paths)
		if err != nil {
			return err
		}

		logrus.Infof("Watching %d paths for changes (Ctrl-C to stop)", len(paths))

		select {
		case <-ctx.Done():
			w.Stop()
			logrus.Info("Watch mode stopped")
			return nil
		case ev := <-w.Events():
			logrus.Infof("Change detected: %s", ev.Path)
			w.Stop()
		}
	}
}
