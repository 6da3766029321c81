package dataset

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/airdata-cli/internal/artifact"
	"github.com/sells-group/airdata-cli/internal/collection"
	"github.com/sells-group/airdata-cli/internal/record"
)

const (
	airportsCSV    = "airports.csv"
	frequenciesCSV = "airport-frequencies.csv"
)

// Airports generates the airport list/map artifacts and their extended
// variants carrying radio frequencies.
type Airports struct{}

func (d *Airports) Name() string      { return "airports" }
func (d *Airports) Sources() []string { return []string{airportsCSV, frequenciesCSV} }
func (d *Airports) Artifacts() []string {
	return []string{"airport_list.json", "airport_map.json", "airport_ext_list.json", "airport_ext_map.json"}
}

func (d *Airports) Generate(ctx context.Context, l *Loader, w *artifact.Writer) (*Result, error) {
	log := zap.L().With(zap.String("dataset", d.Name()))

	airports, st, err := Load(ctx, l, airportsCSV, record.ParseAirport)
	if err != nil {
		return nil, eris.Wrap(err, "airports: load airports")
	}
	// Frequencies are joined on airport id, so both sources must be fully
	// loaded before extension.
	freqs, fst, err := Load(ctx, l, frequenciesCSV, record.ParseAirportFrequency)
	if err != nil {
		return nil, eris.Wrap(err, "airports: load frequencies")
	}

	byIdent := collection.Index(airports, func(a record.Airport) string { return a.Ident })
	warnDuplicates(log, "ident", len(airports), byIdent.Len())

	ext := record.ExtendAirports(airports, freqs)
	extByIdent := collection.Index(ext, func(a record.AirportExtended) string { return a.Ident })

	res := &Result{Rows: st.Rows + fst.Rows, Skipped: st.Skipped + fst.Skipped}
	err = writeOutputs(w, res,
		output{"airport_list.json", collection.List(airports)},
		output{"airport_map.json", byIdent},
		output{"airport_ext_list.json", ext},
		output{"airport_ext_map.json", extByIdent},
	)
	if err != nil {
		return nil, eris.Wrap(err, "airports: write")
	}
	return res, nil
}

// warnDuplicates logs when a lookup map kept fewer keys than there were
// records; the later record silently replaced the earlier one.
func warnDuplicates(log *zap.Logger, key string, records, keys int) {
	if keys < records {
		log.Warn("duplicate keys in lookup map, last record wins",
			zap.String("key", key),
			zap.Int("duplicates", records-keys),
		)
	}
}
