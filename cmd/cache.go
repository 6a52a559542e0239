package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hiviexd/loved-cli/banner"
)

var cacheStatsJSON bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or reset the banner cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache index size and location",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigOrDefaults()
		store := banner.NewCacheStore(cfg.CacheFile)

		var fileSize int64
		if info, err := os.Stat(store.Path()); err == nil {
			fileSize = info.Size()
		}

		if cacheStatsJSON {
			out := struct {
				Path    string `json:"path"`
				Entries int    `json:"entries"`
				Bytes   int64  `json:"bytes"`
			}{Path: store.Path(), Entries: store.Len(), Bytes: fileSize}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Cache file:\t%s\n", store.Path())
		fmt.Fprintf(tw, "Entries:\t%d\n", store.Len())
		fmt.Fprintf(tw, "Size:\t%s\n", formatFileSize(fileSize))
		tw.Flush()
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every cache entry",
	Long: `Remove the cache index so the next generate pass re-renders everything.
Banner files themselves are left in place.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfigOrDefaults()
		store := banner.NewCacheStore(cfg.CacheFile)

		entries := store.Len()
		if err := store.Clear(); err != nil {
			logrus.Fatalf("Failed to clear cache: %v", err)
		}
		logrus.Infof("Cleared %d cache entries (%s)", entries, store.Path())
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	cacheStatsCmd.Flags().BoolVar(&cacheStatsJSON, "json", false, "Output as JSON")
}
