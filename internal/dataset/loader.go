package dataset

import (
	"context"
	"errors"
	"net/url"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/airdata-cli/internal/fetcher"
	"github.com/sells-group/airdata-cli/internal/record"
)

// RowPolicy decides what happens to a row that lacks a declared column.
type RowPolicy string

const (
	// AbortOnMissing fails the whole run on the first structurally bad row.
	AbortOnMissing RowPolicy = "abort"
	// SkipMissing logs and drops structurally bad rows.
	SkipMissing RowPolicy = "skip"
)

// ParseRowPolicy converts a config value into a RowPolicy.
func ParseRowPolicy(s string) (RowPolicy, error) {
	switch RowPolicy(s) {
	case "", AbortOnMissing:
		return AbortOnMissing, nil
	case SkipMissing:
		return SkipMissing, nil
	default:
		return "", eris.Errorf("dataset: unknown row policy %q (valid: abort, skip)", s)
	}
}

// LoadStats counts the rows seen while loading one CSV source.
type LoadStats struct {
	Rows    int64
	Skipped int64
}

// Loader downloads CSV sources and turns their rows into records.
type Loader struct {
	fetcher fetcher.Fetcher
	baseURL string
	policy  RowPolicy
	csvOpts fetcher.CSVOptions
}

// NewLoader creates a Loader that resolves source file names against
// baseURL. CSV sources are parsed strictly until WithCSVOptions is called.
func NewLoader(f fetcher.Fetcher, baseURL string, policy RowPolicy) *Loader {
	if policy == "" {
		policy = AbortOnMissing
	}
	return &Loader{
		fetcher: f,
		baseURL: baseURL,
		policy:  policy,
	}
}

// WithCSVOptions sets the CSV parser options used for every source and
// returns l.
func (l *Loader) WithCSVOptions(opts fetcher.CSVOptions) *Loader {
	l.csvOpts = opts
	return l
}

// Policy returns the loader's row policy.
func (l *Loader) Policy() RowPolicy {
	return l.policy
}

// URL returns the download URL for a source file.
func (l *Loader) URL(file string) (string, error) {
	u, err := url.JoinPath(l.baseURL, file)
	if err != nil {
		return "", eris.Wrapf(err, "dataset: build url for %s", file)
	}
	return u, nil
}

// Load downloads file once and parses every data row with parse, keeping
// file order. A download or CSV error is returned as-is; a row that parse
// rejects is handled per the loader's RowPolicy.
func Load[T any](ctx context.Context, l *Loader, file string, parse func(record.Row) (T, error)) ([]T, LoadStats, error) {
	log := zap.L().With(zap.String("component", "dataset.loader"), zap.String("source", file))
	var stats LoadStats

	u, err := l.URL(file)
	if err != nil {
		return nil, stats, err
	}

	log.Info("downloading source", zap.String("url", u))
	body, err := l.fetcher.Download(ctx, u)
	if err != nil {
		return nil, stats, eris.Wrapf(err, "dataset: fetch %s", file)
	}
	defer body.Close() //nolint:errcheck

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rowCh, errCh := fetcher.StreamRows(ctx, body, l.csvOpts)

	var out []T
	var rowNum int64
	for raw := range rowCh {
		rowNum++
		rec, err := parse(record.Row(raw))
		if err != nil {
			var mfe *record.MissingFieldError
			if l.policy == SkipMissing && errors.As(err, &mfe) {
				log.Warn("skipping row", zap.Int64("row", rowNum), zap.Strings("missing", mfe.Fields))
				stats.Skipped++
				continue
			}
			return nil, stats, eris.Wrapf(err, "dataset: %s row %d", file, rowNum)
		}
		out = append(out, rec)
		stats.Rows++
	}

	if err := <-errCh; err != nil {
		return nil, stats, eris.Wrapf(err, "dataset: parse %s", file)
	}

	log.Info("loaded source", zap.Int64("rows", stats.Rows), zap.Int64("skipped", stats.Skipped))
	return out, stats, nil
}
