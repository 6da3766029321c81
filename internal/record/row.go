// Package record defines the typed OurAirports records, their construction
// from raw CSV rows, and the records derived from them (split runways,
// extended airports, navaid GeoJSON features).
package record

import (
	"fmt"
	"strings"

	"github.com/sells-group/airdata-cli/internal/coerce"
)

// Row is one CSV data row keyed by header column name. Values are raw text.
type Row map[string]string

// MissingFieldError reports that a row lacks one or more declared columns
// entirely. Empty or malformed cell content never produces this error.
type MissingFieldError struct {
	Record string
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record: %s row missing field(s): %s", e.Record, strings.Join(e.Fields, ", "))
}

// fieldReader reads declared columns from a row and remembers which ones
// were absent.
type fieldReader struct {
	record  string
	row     Row
	missing []string
}

func newFieldReader(record string, row Row) *fieldReader {
	return &fieldReader{record: record, row: row}
}

func (r *fieldReader) str(name string) string {
	v, ok := r.row[name]
	if !ok {
		r.missing = append(r.missing, name)
	}
	return v
}

func (r *fieldReader) integer(name string) int64 { return coerce.Int64Or(r.str(name), 0) }

func (r *fieldReader) float(name string) float64 { return coerce.FloatOr(r.str(name), 0) }

func (r *fieldReader) optInt(name string) *int { return coerce.OptionalInt(r.str(name)) }

func (r *fieldReader) optFloat(name string) *float64 { return coerce.OptionalFloat(r.str(name)) }

func (r *fieldReader) optString(name string) *string { return coerce.NullableString(r.str(name)) }

func (r *fieldReader) boolean(name, trueToken string) bool {
	return coerce.Bool(r.str(name), trueToken)
}

func (r *fieldReader) list(name string) []string { return coerce.StringList(r.str(name)) }

func (r *fieldReader) err() error {
	if len(r.missing) == 0 {
		return nil
	}
	return &MissingFieldError{Record: r.record, Fields: r.missing}
}
