package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"

	"github.com/wudi/headline/config"
	"github.com/wudi/headline/headline"

	_ "github.com/wudi/headline/ocr/tesseract"
)

var extractFull bool

var extractCmd = &cobra.Command{
	Use:   "extract <image>...",
	Short: "Extract the headline from one or more image files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		extractor := headline.New(nil, headline.WithConfig(cfg.ExtractorConfig()))

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}

			res, err := extractor.Extract(cmd.Context(), img)
			if err != nil {
				return fmt.Errorf("extract %s: %w", path, err)
			}

			if len(args) > 1 {
				fmt.Printf("%s: %s\n", path, res.Title)
			} else {
				fmt.Println(res.Title)
			}
			if extractFull && res.FullText != "" {
				fmt.Println(res.FullText)
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractFull, "full", false, "also print the full recognized text")
}
