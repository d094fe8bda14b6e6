package main

import (
	"fmt"
	"os"

	"github.com/mimictools/mimic"
	"github.com/spf13/cobra"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract a color palette from a screenshot",
	Long: `Cluster the dominant colors of a screenshot, categorize them into
primary, neutral, and accent roles, and emit CSS custom properties.
The CSS is written to color_palette.css by default; pass --output - to
write it to stdout instead.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runPalette,
}

func init() {
	f := paletteCmd.Flags()
	f.StringP("output", "o", "color_palette.css", "Output CSS file (- for stdout)")
	f.IntP("num-colors", "n", mimic.DefaultNumColors, "Number of colors to extract")
	f.Bool("json", false, "Also write a JSON sidecar next to the CSS file")
	f.String("algorithm", "kmeans", "Clustering algorithm: kmeans|dominant")
}

func runPalette(_ *cobra.Command, args []string) error {
	algorithm, err := mimic.ParseAlgorithm(getStringWithFallback("algorithm", "palette.algorithm", "kmeans"))
	if err != nil {
		return err
	}

	img, err := mimic.LoadImage(args[0])
	if err != nil {
		return err
	}

	colors, err := mimic.ExtractPalette(img, mimic.ExtractOptions{
		NumColors: getIntWithFallback("num-colors", "palette.colors", mimic.DefaultNumColors),
		Algorithm: algorithm,
	})
	if err != nil {
		return fmt.Errorf("extracting palette from %s: %w", args[0], err)
	}

	palette := mimic.Categorize(colors)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	output := getStringWithFallback("output", "palette.output", "color_palette.css")
	if output == "-" {
		fmt.Print(mimic.BuildPaletteCSS(palette))
		return nil
	}

	withJSON := getBoolWithFallback("json", "palette.json", false)
	sidecar, err := mimic.WritePaletteFiles(palette, output, withJSON)
	if err != nil {
		return err
	}

	if !quiet {
		reporter := mimic.NewReporter(os.Stdout, mimic.ReportConfig{
			UseColors: getBoolWithFallback("color", "color", false),
		})
		reporter.PrintPalette(palette)

		fmt.Printf("\nCSS variables saved to: %s\n", output)
		if sidecar != "" {
			fmt.Printf("Palette data saved to: %s\n", sidecar)
		}
	}

	return nil
}
