package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .mimic.yaml config file",
	Long:  `Create a .mimic.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".mimic.yaml"); err == nil && !force {
			return fmt.Errorf(".mimic.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".mimic.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .mimic.yaml")
		return nil
	},
}

const defaultConfig = `# mimic configuration
# Docs: https://github.com/mimictools/mimic

# Shared settings
verbose: false

# Palette extraction
palette:
  colors: 8
  algorithm: kmeans        # kmeans | dominant
  json: false

# Design token scraping
tokens:
  output: design_tokens.json
  timeout: 15              # seconds

# Stylesheet generation
stylesheet:
  tokens: design_tokens.json
  output: style_template.css
  no-reset: false
  no-utilities: false

# Template analysis
analyze:
  format: pretty           # pretty | json
  patterns: []             # default: **/*.html and **/*.tmpl

# Component generation
component:
  output-dir: .
  english: false
  go-handler: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
