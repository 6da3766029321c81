package dataset

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/airdata-cli/internal/artifact"
	"github.com/sells-group/airdata-cli/internal/collection"
	"github.com/sells-group/airdata-cli/internal/record"
)

// Countries generates country_list.json and country_map.json keyed by code.
type Countries struct{}

func (d *Countries) Name() string        { return "countries" }
func (d *Countries) Sources() []string   { return []string{"countries.csv"} }
func (d *Countries) Artifacts() []string { return []string{"country_list.json", "country_map.json"} }

func (d *Countries) Generate(ctx context.Context, l *Loader, w *artifact.Writer) (*Result, error) {
	countries, st, err := Load(ctx, l, "countries.csv", record.ParseCountry)
	if err != nil {
		return nil, eris.Wrap(err, "countries: load")
	}

	byCode := collection.Index(countries, func(c record.Country) string { return c.Code })
	warnDuplicates(zap.L().With(zap.String("dataset", d.Name())), "code", len(countries), byCode.Len())

	res := &Result{Rows: st.Rows, Skipped: st.Skipped}
	err = writeOutputs(w, res,
		output{"country_list.json", collection.List(countries)},
		output{"country_map.json", byCode},
	)
	if err != nil {
		return nil, eris.Wrap(err, "countries: write")
	}
	return res, nil
}

// Regions generates region_list.json and region_map.json keyed by code.
type Regions struct{}

func (d *Regions) Name() string        { return "regions" }
func (d *Regions) Sources() []string   { return []string{"regions.csv"} }
func (d *Regions) Artifacts() []string { return []string{"region_list.json", "region_map.json"} }

func (d *Regions) Generate(ctx context.Context, l *Loader, w *artifact.Writer) (*Result, error) {
	regions, st, err := Load(ctx, l, "regions.csv", record.ParseRegion)
	if err != nil {
		return nil, eris.Wrap(err, "regions: load")
	}

	byCode := collection.Index(regions, func(r record.Region) string { return r.Code })
	warnDuplicates(zap.L().With(zap.String("dataset", d.Name())), "code", len(regions), byCode.Len())

	res := &Result{Rows: st.Rows, Skipped: st.Skipped}
	err = writeOutputs(w, res,
		output{"region_list.json", collection.List(regions)},
		output{"region_map.json", byCode},
	)
	if err != nil {
		return nil, eris.Wrap(err, "regions: write")
	}
	return res, nil
}
