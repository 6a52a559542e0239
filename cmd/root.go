package cmd

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hiviexd/loved-cli/banner"
	"github.com/Hiviexd/loved-cli/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "loved",
	Short: "Banner automation for Project Loved voting rounds",
	Long: `loved automates the repetitive banner work of a community voting round.

Given a round file listing beatmapsets, it renders one voting banner per
entry (cover-fit background, decorative overlay, title with drop shadow)
at 1x and 2x density, and skips unchanged entries via a content cache.

Examples:
  loved generate --round rounds/2026-08.yaml
  loved single bg.png --title "Artist - Song" --out banners/preview
  loved status --round rounds/2026-08.yaml
  loved watch --round rounds/2026-08.yaml`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.loved.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".loved")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func loadConfigOrDefaults() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Debugf("Failed to load config, using defaults: %v", err)
		return config.DefaultConfig()
	}
	return cfg
}

// buildEngine wires the banner engine from configuration: font registry,
// asset library and cache store, all injected into one generator.
func buildEngine(cfg *config.Config) (*banner.Generator, banner.CacheStore, error) {
	fonts := banner.NewFontRegistry()

	var family string
	var err error
	if cfg.FontPath != "" {
		family, err = fonts.RegisterFile(cfg.FontPath)
	} else {
		family, err = fonts.RegisterDefault()
	}
	if err != nil {
		return nil, nil, err
	}
	logrus.Debugf("Registered title font: %s", family)

	assets := banner.NewAssetLibrary(cfg.DefaultBackground, cfg.OverlayPath, cfg.Overlay2xPath)
	cache := banner.NewCacheStore(cfg.CacheFile)

	return banner.NewGenerator(fonts, assets, cache, family), cache, nil
}
