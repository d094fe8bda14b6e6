package main

import (
	"fmt"
	"strings"

	"github.com/mimictools/mimic"
	"github.com/spf13/cobra"
)

var componentCmd = &cobra.Command{
	Use:   "component <type> <name>",
	Short: "Generate HTMX component boilerplate",
	Long: `Generate an HTML template and matching Go handler for a dynamic
component. Available types: ` + strings.Join(mimic.ComponentTypes(), ", ") + `.
Text defaults to Korean; use --english for English strings.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runComponent,
}

func init() {
	f := componentCmd.Flags()
	f.StringP("output-dir", "o", ".", "Directory to write generated files")
	f.Bool("english", false, "Use English strings instead of Korean")
	f.Bool("go-handler", true, "Also generate the Go handler file")
}

func runComponent(_ *cobra.Command, args []string) error {
	componentType, name := args[0], args[1]

	result, err := mimic.GenerateComponent(mimic.ComponentOptions{
		Type:      componentType,
		Name:      name,
		Korean:    !getBoolWithFallback("english", "component.english", false),
		GoHandler: getBoolWithFallback("go-handler", "component.go-handler", true),
	})
	if err != nil {
		return err
	}

	dir := getStringWithFallback("output-dir", "component.output-dir", ".")
	paths, err := result.WriteFiles(dir)
	if err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		for _, p := range paths {
			fmt.Printf("Created: %s\n", p)
		}
		fmt.Println()
		fmt.Print(result.Instructions(name, componentType))
	}

	return nil
}
