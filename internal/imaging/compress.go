package imaging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// CompressResult describes one recompressed photo.
type CompressResult struct {
	Path         string
	OriginalSize int64
	NewSize      int64
	// Replaced is false when re-encoding would not have made the file
	// smaller; the original is then kept.
	Replaced bool
}

// Reduction is the relative size gain, in percent.
func (r CompressResult) Reduction() float64 {
	if r.OriginalSize == 0 || !r.Replaced {
		return 0
	}
	return float64(r.OriginalSize-r.NewSize) / float64(r.OriginalSize) * 100
}

// BackupPath is where Compress copies path before touching it. An empty
// backupDir keeps the backup next to the file.
func BackupPath(path, backupDir string) string {
	if backupDir == "" {
		return path + BackupSuffix
	}
	return filepath.Join(backupDir, filepath.Base(path))
}

// Compress re-encodes path as WebP and replaces it only when the result is
// smaller. The original is copied to its backup path first and restored if
// anything fails.
func Compress(path, backupDir string, o EncodeOptions) (res CompressResult, err error) {
	res.Path = path
	if res.OriginalSize, err = fileSize(path); err != nil {
		return res, err
	}

	backup := BackupPath(path, backupDir)
	if err := copyFile(path, backup); err != nil {
		return res, fmt.Errorf("backing up %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			if rerr := copyFile(backup, path); rerr != nil {
				err = fmt.Errorf("%w (restoring backup: %v)", err, rerr)
			}
		}
	}()

	img, err := Open(path)
	if err != nil {
		return res, err
	}

	tmp := path + ".tmp"
	if err := writeFile(tmp, img, o); err != nil {
		return res, err
	}
	n, err := fileSize(tmp)
	if err != nil {
		os.Remove(tmp)
		return res, err
	}

	if n >= res.OriginalSize {
		res.NewSize = res.OriginalSize
		return res, os.Remove(tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return res, fmt.Errorf("replacing %s: %w", path, err)
	}
	res.NewSize = n
	res.Replaced = true
	return res, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
