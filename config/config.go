package config

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config struct {
	AssetsDir         string `mapstructure:"assets_dir"`
	FontPath          string `mapstructure:"font_path"`
	OverlayPath       string `mapstructure:"overlay_path"`
	Overlay2xPath     string `mapstructure:"overlay2x_path"`
	DefaultBackground string `mapstructure:"default_background"`

	CacheFile string `mapstructure:"cache_file"`

	BatchConcurrency int  `mapstructure:"batch_concurrency"`
	ContinueOnError  bool `mapstructure:"continue_on_error"`

	LogLevel string `mapstructure:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		AssetsDir:         "assets",
		FontPath:          "", // empty selects the embedded fallback face
		OverlayPath:       filepath.Join("assets", "banner-overlay.png"),
		Overlay2xPath:     filepath.Join("assets", "banner-overlay@2x.png"),
		DefaultBackground: filepath.Join("assets", "default-background.png"),
		CacheFile:         "banner-cache.txt",
		BatchConcurrency:  4,
		ContinueOnError:   false,
		LogLevel:          "info",
	}
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to find home directory: %w", err)
	}

	viper.AddConfigPath(home)
	viper.AddConfigPath(".")
	viper.SetConfigName(".loved")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if err := viper.Unmarshal(config); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	viper.SetConfigFile(path)

	viper.Set("assets_dir", config.AssetsDir)
	viper.Set("font_path", config.FontPath)
	viper.Set("overlay_path", config.OverlayPath)
	viper.Set("overlay2x_path", config.Overlay2xPath)
	viper.Set("default_background", config.DefaultBackground)
	viper.Set("cache_file", config.CacheFile)
	viper.Set("batch_concurrency", config.BatchConcurrency)
	viper.Set("continue_on_error", config.ContinueOnError)
	viper.Set("log_level", config.LogLevel)

	return viper.WriteConfig()
}

func GetConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".loved.yaml"), nil
}

func CreateDefaultConfig() error {
	return SaveConfig(DefaultConfig())
}

func ValidateConfig(config *Config) error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	found := false
	for _, level := range validLogLevels {
		if config.LogLevel == level {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	if config.BatchConcurrency < 1 {
		return fmt.Errorf("batch_concurrency must be at least 1, got %d", config.BatchConcurrency)
	}

	if config.OverlayPath == "" || config.Overlay2xPath == "" {
		return fmt.Errorf("overlay paths must be set for both render scales")
	}

	if config.DefaultBackground == "" {
		return fmt.Errorf("default_background must be set")
	}

	if config.CacheFile == "" {
		return fmt.Errorf("cache_file must be set")
	}

	return nil
}
