package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hiviexd/loved-cli/banner"
	"github.com/Hiviexd/loved-cli/round"
)

var (
	statusRoundFile string
	statusJSON      bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show cache state for a round",
	Long: `Report, per beatmapset, whether its banner is cached, stale (cached but
output files missing), pending, or blocked on a missing background. Nothing
is rendered.`,
	Run: func(cmd *cobra.Command, args []string) {
		r, err := round.Load(statusRoundFile)
		if err != nil {
			logrus.Fatalf("Failed to load round: %v", err)
		}

		cfg := loadConfigOrDefaults()

		gen, cache, err := buildEngine(cfg)
		if err != nil {
			logrus.Fatalf("Failed to build banner engine: %v", err)
		}

		type entryStatus struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
			State string `json:"state"`
			Error string `json:"error,omitempty"`
		}

		entries := make([]entryStatus, 0, len(r.Beatmapsets))
		for _, set := range r.Beatmapsets {
			es := entryStatus{ID: set.ID, Title: set.DisplayTitle()}
			state, err := gen.State(r.Request(set))
			switch {
			case errors.Is(err, banner.ErrAssetIO):
				es.State = "missing-background"
				es.Error = err.Error()
			case err != nil:
				es.State = "error"
				es.Error = err.Error()
			default:
				es.State = string(state)
			}
			entries = append(entries, es)
		}

		if statusJSON {
			out := struct {
				Round   string        `json:"round"`
				Cache   string        `json:"cache"`
				Entries []entryStatus `json:"entries"`
			}{Round: r.Name, Cache: cache.Path(), Entries: entries}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "Round:\t%s\n", r.Name)
		fmt.Fprintf(tw, "Cache:\t%s (%d entries)\n", cache.Path(), cache.Len())
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "ID\tSTATE\tTITLE")
		for _, es := range entries {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", es.ID, es.State, es.Title)
		}
		tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusRoundFile, "round", "", "Round file (YAML)")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")

	statusCmd.MarkFlagRequired("round")
}
