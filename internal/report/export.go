// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// stdout is the destination for empty-path exports so tests can substitute
// a buffer.
var stdout io.Writer = os.Stdout

// Export writes rows in the named format ("csv", "table", or "json"; empty
// means CSV) to path, or to stdout when path is empty. File writes go
// through a temporary file in the destination directory and a rename, so a
// failed export never leaves a partial file behind.
func Export(rows []types.ResultRow, path, format string) error {
	if path == "" {
		return render(rows, stdout, format)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".report-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	renderErr := render(rows, tmpFile, format)
	closeErr := tmpFile.Close()
	if renderErr != nil {
		os.Remove(tmpPath)
		return renderErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func render(rows []types.ResultRow, w io.Writer, format string) error {
	switch format {
	case "", "csv":
		return WriteCSV(rows, w)
	case "table":
		FormatTable(rows, w)
		return nil
	case "json":
		return FormatJSON(rows, w)
	default:
		return fmt.Errorf("unknown format %q (want csv, table, or json)", format)
	}
}
