package dataset

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/airdata-cli/internal/artifact"
	"github.com/sells-group/airdata-cli/internal/collection"
	"github.com/sells-group/airdata-cli/internal/record"
)

// NavAids generates the navaid list, the ident grouping (idents are not
// unique) and the GeoJSON feature collection.
type NavAids struct{}

func (d *NavAids) Name() string      { return "navaids" }
func (d *NavAids) Sources() []string { return []string{"navaids.csv"} }
func (d *NavAids) Artifacts() []string {
	return []string{"navaid_list.json", "navaid_map.json", "navaid.geojson"}
}

func (d *NavAids) Generate(ctx context.Context, l *Loader, w *artifact.Writer) (*Result, error) {
	navaids, st, err := Load(ctx, l, "navaids.csv", record.ParseNavAid)
	if err != nil {
		return nil, eris.Wrap(err, "navaids: load")
	}

	res := &Result{Rows: st.Rows, Skipped: st.Skipped}
	err = writeOutputs(w, res,
		output{"navaid_list.json", collection.List(navaids)},
		output{"navaid_map.json", collection.GroupBy(navaids, func(n record.NavAid) string { return n.Ident })},
		output{"navaid.geojson", record.FeatureCollection(navaids)},
	)
	if err != nil {
		return nil, eris.Wrap(err, "navaids: write")
	}
	return res, nil
}
