package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/httpsaudit/internal/domain"
)

const (
	ErrorsLabel = "unexpected_errors"
	ErrorsFile  = "abnormal_unexpected_errors.txt"
)

// FileNames maps each category to its artifact name inside the output directory.
var FileNames = map[domain.Category]string{
	domain.CategoryNormal:         "normal_https_only.txt",
	domain.CategoryHTTPSFail:      "abnormal_https_failed.txt",
	domain.CategoryHTTPAccessible: "abnormal_http_accessible.txt",
	domain.CategoryOther:          "abnormal_other.txt",
}

// Writer stores buckets as plain text files, one line per entry.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Write always produces every category file, even when empty. The error
// file exists only when errs is non-empty; a copy left by an earlier run
// is removed otherwise.
func (w *Writer) Write(buckets map[domain.Category][]string, errs []string) ([]domain.Artifact, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var (
		artifacts []domain.Artifact
		writeErr  error
	)
	for _, c := range domain.Categories {
		path := filepath.Join(w.Dir, FileNames[c])
		if err := writeLines(path, buckets[c]); err != nil {
			writeErr = multierr.Append(writeErr, err)
			continue
		}
		artifacts = append(artifacts, domain.Artifact{Label: string(c), Path: path})
	}

	path := filepath.Join(w.Dir, ErrorsFile)
	if len(errs) > 0 {
		if err := writeLines(path, errs); err != nil {
			writeErr = multierr.Append(writeErr, err)
		} else {
			artifacts = append(artifacts, domain.Artifact{Label: ErrorsLabel, Path: path})
		}
	} else if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		writeErr = multierr.Append(writeErr, fmt.Errorf("remove stale %s: %w", path, err))
	}

	return artifacts, writeErr
}

func writeLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
