package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heritage-alg/heritage/internal/site"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as static files",
	Long: `Renders every page of the site into a directory that any static host can
serve. Carousels loop with the nominal layout and booking stays offline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dir := cfg.Build.OutputDir
		if buildOutput != "" {
			dir = buildOutput
		}

		ctx := cmd.Context()
		s, closeSource, err := newSite(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		gen := site.NewGenerator(s)
		if verbose {
			for _, p := range gen.Paths(ctx) {
				fmt.Fprintf(os.Stderr, "  %s\n", p)
			}
		}
		res, err := gen.Export(ctx, dir)
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Exported %d pages and %d assets to %s\n", res.Pages, res.Assets, dir)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides build.output_dir)")
	rootCmd.AddCommand(buildCmd)
}
