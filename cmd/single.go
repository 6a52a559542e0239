package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Hiviexd/loved-cli/banner"
	"github.com/Hiviexd/loved-cli/utils"
)

var (
	singleTitle string
	singleOut   string
)

var singleCmd = &cobra.Command{
	Use:   "single [background]",
	Short: "Generate one banner outside a round",
	Long: `Render a single banner from an ad-hoc background and title.

The background argument is optional; without it the configured default
background asset is used. Without --title the title is derived from the
background filename.

Examples:
  loved single bg.png --title "Artist - Song" --out banners/preview
  loved single backgrounds/1971987-some_song.jpg --out banners/1971987
  loved single --title "Coming Soon" --out banners/teaser`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		backgroundPath := ""
		if len(args) == 1 {
			backgroundPath = args[0]
			if err := utils.ValidateImageFile(backgroundPath); err != nil {
				logrus.Fatal(err)
			}
		}

		title := singleTitle
		if title == "" {
			if backgroundPath == "" {
				logrus.Fatal("Title is required when no background is given. Use --title flag")
			}
			title = utils.DeriveTitleFromFilename(backgroundPath)
			logrus.Debugf("Derived title from filename: %s", title)
		}
		if singleOut == "" {
			logrus.Fatal("Output stem is required. Use --out flag")
		}

		cfg := loadConfigOrDefaults()

		gen, _, err := buildEngine(cfg)
		if err != nil {
			logrus.Fatalf("Failed to build banner engine: %v", err)
		}

		generated, err := gen.CreateBanner(banner.Request{
			BackgroundPath: backgroundPath,
			OutputStem:     singleOut,
			Title:          title,
		})
		if err != nil {
			logrus.Fatalf("Failed to generate banner: %v", err)
		}

		if generated {
			logrus.Infof("Generated %s and %s", banner.OutputPath(singleOut, 1), banner.OutputPath(singleOut, 2))
		} else {
			logrus.Infof("Already cached: %s", banner.OutputPath(singleOut, 1))
		}
	},
}

func init() {
	rootCmd.AddCommand(singleCmd)

	singleCmd.Flags().StringVar(&singleTitle, "title", "", "Banner title")
	singleCmd.Flags().StringVar(&singleOut, "out", "", "Output path without extension")
}
