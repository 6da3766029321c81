// Package artifact writes generated JSON artifacts into the output directory.
package artifact

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Compression selects how artifacts are stored on disk.
type Compression string

const (
	None Compression = "none"
	Zstd Compression = "zstd"
)

// ParseCompression converts a config value into a Compression.
func ParseCompression(s string) (Compression, error) {
	switch Compression(s) {
	case "", None:
		return None, nil
	case Zstd:
		return Zstd, nil
	default:
		return "", eris.Errorf("artifact: unknown compression %q (valid: none, zstd)", s)
	}
}

// Options configures a Writer.
type Options struct {
	Compression Compression
	Indent      bool
}

// Writer writes artifacts into a single output directory.
type Writer struct {
	dir  string
	opts Options
}

// NewWriter returns a Writer for dir, creating the directory if absent.
func NewWriter(dir string, opts Options) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "artifact: create output dir %s", dir)
	}
	if opts.Compression == "" {
		opts.Compression = None
	}
	return &Writer{dir: dir, opts: opts}, nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the on-disk path for the named artifact.
func (w *Writer) Path(name string) string {
	if w.opts.Compression == Zstd {
		name += ".zst"
	}
	return filepath.Join(w.dir, name)
}

// WriteJSON encodes v as UTF-8 JSON into the named artifact, replacing any
// previous file. On failure the partially written file is left in place.
func (w *Writer) WriteJSON(name string, v any) (string, error) {
	path := w.Path(name)

	file, err := os.Create(path)
	if err != nil {
		return "", eris.Wrapf(err, "artifact: create %s", path)
	}
	defer file.Close() //nolint:errcheck

	if err := w.encode(file, v); err != nil {
		return "", eris.Wrapf(err, "artifact: write %s", path)
	}
	if err := file.Close(); err != nil {
		return "", eris.Wrapf(err, "artifact: close %s", path)
	}

	zap.L().Debug("artifact written", zap.String("path", path))
	return path, nil
}

func (w *Writer) encode(dst io.Writer, v any) error {
	bw := bufio.NewWriter(dst)

	var out io.Writer = bw
	var zw *zstd.Encoder
	if w.opts.Compression == Zstd {
		var err error
		zw, err = zstd.NewWriter(bw, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return eris.Wrap(err, "zstd writer")
		}
		out = zw
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if w.opts.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		if zw != nil {
			_ = zw.Close()
		}
		return eris.Wrap(err, "encode json")
	}

	if zw != nil {
		if err := zw.Close(); err != nil {
			return eris.Wrap(err, "zstd close")
		}
	}
	return bw.Flush()
}
