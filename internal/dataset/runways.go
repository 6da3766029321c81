package dataset

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/airdata-cli/internal/artifact"
	"github.com/sells-group/airdata-cli/internal/collection"
	"github.com/sells-group/airdata-cli/internal/record"
)

// Runways generates the runway list, the per-airport runway grouping and the
// per-airport, per-end split runway map.
type Runways struct{}

func (d *Runways) Name() string      { return "runways" }
func (d *Runways) Sources() []string { return []string{"runways.csv"} }
func (d *Runways) Artifacts() []string {
	return []string{"runway_list.json", "runway_map.json", "runway_split_map.json"}
}

func (d *Runways) Generate(ctx context.Context, l *Loader, w *artifact.Writer) (*Result, error) {
	runways, st, err := Load(ctx, l, "runways.csv", record.ParseRunway)
	if err != nil {
		return nil, eris.Wrap(err, "runways: load")
	}

	res := &Result{Rows: st.Rows, Skipped: st.Skipped}
	err = writeOutputs(w, res,
		output{"runway_list.json", collection.List(runways)},
		output{"runway_map.json", collection.GroupBy(runways, func(r record.Runway) string { return r.AirportIdent })},
		output{"runway_split_map.json", record.SplitIndex(runways)},
	)
	if err != nil {
		return nil, eris.Wrap(err, "runways: write")
	}
	return res, nil
}
