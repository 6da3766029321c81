// Package geo encodes GeoJSON features and feature collections.
package geo

import (
	"github.com/iancoleman/orderedmap"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/airdata-cli/internal/jsonenc"
)

// Feature is a GeoJSON Feature with a numeric id, a point geometry and
// insertion-ordered properties.
type Feature struct {
	ID         int64
	Geometry   *geom.Point
	Properties *orderedmap.OrderedMap
}

// NewPointFeature creates a feature located at (lon, lat). Coordinates are in
// GeoJSON axis order: longitude first.
func NewPointFeature(id int64, lon, lat float64) Feature {
	props := orderedmap.New()
	props.SetEscapeHTML(false)
	return Feature{
		ID:         id,
		Geometry:   geom.NewPointFlat(geom.XY, []float64{lon, lat}),
		Properties: props,
	}
}

type featureJSON struct {
	ID         int64                  `json:"id"`
	Type       string                 `json:"type"`
	Geometry   *geojson.Geometry      `json:"geometry"`
	Properties *orderedmap.OrderedMap `json:"properties"`
}

// MarshalJSON implements json.Marshaler.
func (f Feature) MarshalJSON() ([]byte, error) {
	out := featureJSON{ID: f.ID, Type: "Feature", Properties: f.Properties}
	if f.Geometry != nil {
		g, err := geojson.Encode(f.Geometry)
		if err != nil {
			return nil, eris.Wrapf(err, "geo: encode geometry for feature %d", f.ID)
		}
		out.Geometry = g
	}
	if out.Properties == nil {
		out.Properties = orderedmap.New()
	}
	return jsonenc.Marshal(out)
}

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Features []Feature
}

type featureCollectionJSON struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// MarshalJSON implements json.Marshaler. An empty collection encodes its
// features as [].
func (fc FeatureCollection) MarshalJSON() ([]byte, error) {
	features := fc.Features
	if features == nil {
		features = []Feature{}
	}
	return jsonenc.Marshal(featureCollectionJSON{Type: "FeatureCollection", Features: features})
}
