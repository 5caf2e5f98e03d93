package cmd

import (
	"github.com/spf13/cobra"

	"github.com/heritage-alg/heritage/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "heritage",
	Short: "Boutique site for traditional Algerian and Moroccan dresses",
	Long: `Heritage serves the boutique catalog with looping carousels for
products and testimonials, a booking form and the contact pages. It can
also export the whole site as static files and prepare product photos.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
