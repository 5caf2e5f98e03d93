package imaging

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heritage-alg/heritage/internal/progress"
)

// BatchOptions configures ResizeAll and CompressAll.
type BatchOptions struct {
	Encode      EncodeOptions
	Sizes       []Size
	Concurrency int
	// BackupDir collects the backups of CompressAll. Empty keeps each
	// backup next to its file.
	BackupDir string
	Reporter  progress.Reporter
}

func (o BatchOptions) normalized() BatchOptions {
	if o.Encode.Quality == 0 {
		o.Encode = DefaultEncodeOptions()
	}
	if len(o.Sizes) == 0 {
		o.Sizes = Sizes
	}
	if o.Concurrency < 1 {
		o.Concurrency = 1
	}
	if o.Reporter == nil {
		o.Reporter = progress.Discard{}
	}
	return o
}

// ResizeSummary totals a ResizeAll run.
type ResizeSummary struct {
	Sources   int
	Generated int
	Skipped   int
	Bytes     int64
	Failed    []string
}

// CompressSummary totals a CompressAll run.
type CompressSummary struct {
	Files        int
	Replaced     int
	OriginalSize int64
	NewSize      int64
	Failed       []string
}

// Saved is the number of bytes CompressAll removed.
func (s CompressSummary) Saved() int64 { return s.OriginalSize - s.NewSize }

// ResizeAll generates the variants of every file. A failing file is logged
// and recorded in the summary; the batch carries on. Only a cancelled
// context stops it early.
func ResizeAll(ctx context.Context, files []string, opts BatchOptions) (ResizeSummary, error) {
	opts = opts.normalized()
	sum := ResizeSummary{Sources: len(files)}

	var (
		mu   sync.Mutex
		done atomic.Int64
	)
	opts.Reporter.Start(len(files), "Resizing")
	defer opts.Reporter.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, f := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results, err := Resize(f, opts.Sizes, opts.Encode)

			mu.Lock()
			for _, r := range results {
				if r.Skipped {
					sum.Skipped++
					continue
				}
				sum.Generated++
				sum.Bytes += r.Bytes
			}
			if err != nil {
				log.Printf("imaging: %v", err)
				sum.Failed = append(sum.Failed, f)
			}
			mu.Unlock()

			opts.Reporter.Update(int(done.Add(1)), filepath.Base(f))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, fmt.Errorf("resizing images: %w", err)
	}
	return sum, ctx.Err()
}

// CompressAll recompresses every file in place.
func CompressAll(ctx context.Context, files []string, opts BatchOptions) (CompressSummary, error) {
	opts = opts.normalized()
	sum := CompressSummary{Files: len(files)}

	var (
		mu   sync.Mutex
		done atomic.Int64
	)
	opts.Reporter.Start(len(files), "Compressing")
	defer opts.Reporter.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)
	for _, f := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Compress(f, opts.BackupDir, opts.Encode)

			mu.Lock()
			if err != nil {
				log.Printf("imaging: %v", err)
				sum.Failed = append(sum.Failed, f)
			} else {
				sum.OriginalSize += r.OriginalSize
				sum.NewSize += r.NewSize
				if r.Replaced {
					sum.Replaced++
				}
			}
			mu.Unlock()

			opts.Reporter.Update(int(done.Add(1)), filepath.Base(f))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, fmt.Errorf("compressing images: %w", err)
	}
	return sum, ctx.Err()
}
