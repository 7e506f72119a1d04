package main

import (
	"github.com/spf13/cobra"

	"github.com/wudi/headline/version"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "headline",
	Short: "Extract news headlines from images via OCR",
	Long: `headline extracts a probable headline string from photographed or
screenshotted news images.

Images are binarized for recognition (grayscale plus inverted Otsu
thresholding), run through Tesseract with Chinese and English trained data,
and the best candidate line is selected: the longest line of CJK text wins,
with the first recognized line as fallback.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./headline.yaml or ~/.headline/headline.yaml)",
	)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}
