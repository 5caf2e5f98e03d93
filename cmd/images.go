package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/heritage-alg/heritage/internal/config"
	"github.com/heritage-alg/heritage/internal/imaging"
	"github.com/heritage-alg/heritage/internal/progress"
)

var (
	imagesQuality     int
	imagesConcurrency int
	imagesBackupDir   string
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Prepare product photos",
	Long:  `Generates the responsive WebP variants of product photos and recompresses originals.`,
}

var imagesResizeCmd = &cobra.Command{
	Use:   "resize [dir]",
	Short: "Generate the responsive WebP variants of each photo",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, files, err := discoverImages(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "No images found.")
			return nil
		}

		sum, err := imaging.ResizeAll(cmd.Context(), files, batchOptions(cfg))
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Resized %d images: %d variants written (%s), %d already present\n",
			sum.Sources, sum.Generated, humanize.Bytes(uint64(sum.Bytes)), sum.Skipped)
		return failedImages(sum.Failed)
	},
}

var imagesCompressCmd = &cobra.Command{
	Use:   "compress [dir]",
	Short: "Recompress original photos in place, keeping backups",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, files, err := discoverImages(args)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			fmt.Fprintln(os.Stderr, "No images found.")
			return nil
		}

		sum, err := imaging.CompressAll(cmd.Context(), files, batchOptions(cfg))
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Compressed %d images: %d replaced, %s saved (%s -> %s)\n",
			sum.Files, sum.Replaced, humanize.Bytes(uint64(max(sum.Saved(), 0))),
			humanize.Bytes(uint64(sum.OriginalSize)), humanize.Bytes(uint64(sum.NewSize)))
		return failedImages(sum.Failed)
	},
}

// discoverImages loads the config and lists the photos under the directory
// argument, or images.dir when none is given.
func discoverImages(args []string) (*config.Config, []string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	dir := cfg.Images.Dir
	if len(args) == 1 {
		dir = args[0]
	}

	files, err := imaging.Discover(dir, cfg.Images.Include, cfg.Images.Exclude)
	if err != nil {
		return nil, nil, fmt.Errorf("discovering images in %s: %w", dir, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Found %d images in %s\n", len(files), dir)
	}
	return cfg, files, nil
}

func batchOptions(cfg *config.Config) imaging.BatchOptions {
	opts := imaging.BatchOptions{
		Encode:      imaging.DefaultEncodeOptions(),
		Concurrency: cfg.Images.Concurrency,
		BackupDir:   imagesBackupDir,
		Reporter:    progress.NewReporter(),
	}
	if cfg.Images.Quality > 0 {
		opts.Encode.Quality = cfg.Images.Quality
	}
	if imagesQuality > 0 {
		opts.Encode.Quality = imagesQuality
	}
	if imagesConcurrency > 0 {
		opts.Concurrency = imagesConcurrency
	}
	return opts
}

func failedImages(failed []string) error {
	if len(failed) == 0 {
		return nil
	}
	for _, f := range failed {
		fmt.Fprintf(os.Stderr, "  failed: %s\n", f)
	}
	return fmt.Errorf("%d images failed", len(failed))
}

func init() {
	imagesCmd.PersistentFlags().IntVar(&imagesQuality, "quality", 0, "WebP quality 1-100 (overrides images.quality)")
	imagesCmd.PersistentFlags().IntVar(&imagesConcurrency, "concurrency", 0, "images processed in parallel (overrides images.concurrency)")
	imagesCompressCmd.Flags().StringVar(&imagesBackupDir, "backup-dir", "", "directory for backups (default: next to each file)")

	imagesCmd.AddCommand(imagesResizeCmd)
	imagesCmd.AddCommand(imagesCompressCmd)
	rootCmd.AddCommand(imagesCmd)
}
