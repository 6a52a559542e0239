package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hiviexd/loved-cli/config"
)

var configShowJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tool configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.GetConfigPath()
		if err != nil {
			logrus.Fatal(err)
		}
		if _, err := os.Stat(path); err == nil {
			logrus.Fatalf("Config file already exists: %s", path)
		}

		if err := config.CreateDefaultConfig(); err != nil {
			logrus.Fatalf("Failed to write config: %v", err)
		}
		logrus.Infof("Wrote default config to %s", path)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigOrDefaults()

		if err := config.ValidateConfig(cfg); err != nil {
			logrus.Warnf("Configuration problem: %v", err)
		}

		if configShowJSON {
			out := struct {
				AssetsDir         string `json:"assetsDir"`
				FontPath          string `json:"fontPath,omitempty"`
				OverlayPath       string `json:"overlayPath"`
				Overlay2xPath     string `json:"overlay2xPath"`
				DefaultBackground string `json:"defaultBackground"`
				CacheFile         string `json:"cacheFile"`
				BatchConcurrency  int    `json:"batchConcurrency"`
				ContinueOnError   bool   `json:"continueOnError"`
				LogLevel          string `json:"logLevel"`
			}{
				AssetsDir:         cfg.AssetsDir,
				FontPath:          cfg.FontPath,
				OverlayPath:       cfg.OverlayPath,
				Overlay2xPath:     cfg.Overlay2xPath,
				DefaultBackground: cfg.DefaultBackground,
				CacheFile:         cfg.CacheFile,
				BatchConcurrency:  cfg.BatchConcurrency,
				ContinueOnError:   cfg.ContinueOnError,
				LogLevel:          cfg.LogLevel,
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		fontPath := cfg.FontPath
		if fontPath == "" {
			fontPath = "(embedded Go Regular)"
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Assets dir:\t%s\n", cfg.AssetsDir)
		fmt.Fprintf(tw, "Title font:\t%s\n", fontPath)
		fmt.Fprintf(tw, "Overlay 1x:\t%s\n", cfg.OverlayPath)
		fmt.Fprintf(tw, "Overlay 2x:\t%s\n", cfg.Overlay2xPath)
		fmt.Fprintf(tw, "Default background:\t%s\n", cfg.DefaultBackground)
		fmt.Fprintf(tw, "Cache file:\t%s\n", cfg.CacheFile)
		fmt.Fprintf(tw, "Batch concurrency:\t%d\n", cfg.BatchConcurrency)
		fmt.Fprintf(tw, "Continue on error:\t%t\n", cfg.ContinueOnError)
		fmt.Fprintf(tw, "Log level:\t%s\n", cfg.LogLevel)
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "Output as JSON")
}
