package record

import (
	"github.com/sells-group/airdata-cli/internal/geo"
)

// NavAid is one row of navaids.csv. Optional fields are nil when the cell is
// empty or unparsable and are omitted from JSON output.
type NavAid struct {
	ID                   int64    `json:"id"`
	Filename             string   `json:"filename"`
	Ident                string   `json:"ident"`
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	FrequencyKHz         *int     `json:"frequency_khz,omitempty"`
	LatitudeDeg          float64  `json:"latitude_deg"`
	LongitudeDeg         float64  `json:"longitude_deg"`
	ElevationFt          *int     `json:"elevation_ft,omitempty"`
	ISOCountry           string   `json:"iso_country"`
	DMEFrequencyKHz      *int     `json:"dme_frequency_khz,omitempty"`
	DMEChannel           *string  `json:"dme_channel,omitempty"`
	DMELatitudeDeg       *float64 `json:"dme_latitude_deg,omitempty"`
	DMELongitudeDeg      *float64 `json:"dme_longitude_deg,omitempty"`
	DMEElevationFt       *int     `json:"dme_elevation_ft,omitempty"`
	SlavedVariationDeg   *float64 `json:"slaved_variation_deg,omitempty"`
	MagneticVariationDeg *float64 `json:"magnetic_variation_deg,omitempty"`
	UsageType            *string  `json:"usageType,omitempty"`
	Power                *string  `json:"power,omitempty"`
	AssociatedAirport    *string  `json:"associated_airport,omitempty"`
}

// ParseNavAid builds a NavAid from a raw row.
func ParseNavAid(row Row) (NavAid, error) {
	r := newFieldReader("navaid", row)
	n := NavAid{
		ID:                   r.integer("id"),
		Filename:             r.str("filename"),
		Ident:                r.str("ident"),
		Name:                 r.str("name"),
		Type:                 r.str("type"),
		FrequencyKHz:         r.optInt("frequency_khz"),
		LatitudeDeg:          r.float("latitude_deg"),
		LongitudeDeg:         r.float("longitude_deg"),
		ElevationFt:          r.optInt("elevation_ft"),
		ISOCountry:           r.str("iso_country"),
		DMEFrequencyKHz:      r.optInt("dme_frequency_khz"),
		DMEChannel:           r.optString("dme_channel"),
		DMELatitudeDeg:       r.optFloat("dme_latitude_deg"),
		DMELongitudeDeg:      r.optFloat("dme_longitude_deg"),
		DMEElevationFt:       r.optInt("dme_elevation_ft"),
		SlavedVariationDeg:   r.optFloat("slaved_variation_deg"),
		MagneticVariationDeg: r.optFloat("magnetic_variation_deg"),
		UsageType:            r.optString("usageType"),
		Power:                r.optString("power"),
		AssociatedAirport:    r.optString("associated_airport"),
	}
	if err := r.err(); err != nil {
		return NavAid{}, err
	}
	return n, nil
}

// Feature projects the navaid onto a GeoJSON point feature. The core
// properties are always present; the optional ones follow in a fixed order
// and only when set. dme_elevation_ft is not exported.
func (n NavAid) Feature() geo.Feature {
	f := geo.NewPointFeature(n.ID, n.LongitudeDeg, n.LatitudeDeg)
	p := f.Properties
	p.Set("ident", n.Ident)
	p.Set("name", n.Name)
	p.Set("type", n.Type)
	p.Set("frequency_khz", n.FrequencyKHz)

	optional := []struct {
		key string
		set bool
		val any
	}{
		{"elevation_ft", n.ElevationFt != nil, n.ElevationFt},
		{"dme_frequency_khz", n.DMEFrequencyKHz != nil, n.DMEFrequencyKHz},
		{"dme_channel", n.DMEChannel != nil, n.DMEChannel},
		{"dme_latitude_deg", n.DMELatitudeDeg != nil, n.DMELatitudeDeg},
		{"dme_longitude_deg", n.DMELongitudeDeg != nil, n.DMELongitudeDeg},
		{"slaved_variation_deg", n.SlavedVariationDeg != nil, n.SlavedVariationDeg},
		{"magnetic_variation_deg", n.MagneticVariationDeg != nil, n.MagneticVariationDeg},
		{"usageType", n.UsageType != nil, n.UsageType},
		{"power", n.Power != nil, n.Power},
		{"associated_airport", n.AssociatedAirport != nil, n.AssociatedAirport},
	}
	for _, o := range optional {
		if o.set {
			p.Set(o.key, o.val)
		}
	}
	return f
}

// FeatureCollection projects every navaid, in order.
func FeatureCollection(navaids []NavAid) geo.FeatureCollection {
	features := make([]geo.Feature, len(navaids))
	for i, n := range navaids {
		features[i] = n.Feature()
	}
	return geo.FeatureCollection{Features: features}
}
