package record

import (
	"github.com/sells-group/airdata-cli/internal/collection"
	"github.com/sells-group/airdata-cli/internal/jsonenc"
)

// RunwayEnd holds the fields of one physical runway end. In runways.csv the
// low end columns carry a "le_" prefix and the high end columns "he_".
type RunwayEnd struct {
	Ident                string
	LatitudeDeg          *float64
	LongitudeDeg         *float64
	ElevationFt          *int
	HeadingDegT          *float64
	DisplacedThresholdFt *int
}

// Runway is one row of runways.csv.
type Runway struct {
	ID           int64
	AirportRef   int64
	AirportIdent string
	LengthFt     *int
	WidthFt      *int
	Surface      string
	Lighted      bool
	Closed       bool
	LowEnd       RunwayEnd
	HighEnd      RunwayEnd
}

// runwayJSON is the flat, prefixed form used in runway_list.json.
type runwayJSON struct {
	ID                     int64    `json:"id"`
	AirportRef             int64    `json:"airport_ref"`
	AirportIdent           string   `json:"airport_ident"`
	LengthFt               *int     `json:"length_ft"`
	WidthFt                *int     `json:"width_ft"`
	Surface                string   `json:"surface"`
	Lighted                bool     `json:"lighted"`
	Closed                 bool     `json:"closed"`
	LeIdent                string   `json:"le_ident"`
	LeLatitudeDeg          *float64 `json:"le_latitude_deg"`
	LeLongitudeDeg         *float64 `json:"le_longitude_deg"`
	LeElevationFt          *int     `json:"le_elevation_ft"`
	LeHeadingDegT          *float64 `json:"le_heading_degT"`
	LeDisplacedThresholdFt *int     `json:"le_displaced_threshold_ft"`
	HeIdent                string   `json:"he_ident"`
	HeLatitudeDeg          *float64 `json:"he_latitude_deg"`
	HeLongitudeDeg         *float64 `json:"he_longitude_deg"`
	HeElevationFt          *int     `json:"he_elevation_ft"`
	HeHeadingDegT          *float64 `json:"he_heading_degT"`
	HeDisplacedThresholdFt *int     `json:"he_displaced_threshold_ft"`
}

// MarshalJSON encodes the runway with its OurAirports column names.
func (rw Runway) MarshalJSON() ([]byte, error) {
	return jsonenc.Marshal(runwayJSON{
		ID:                     rw.ID,
		AirportRef:             rw.AirportRef,
		AirportIdent:           rw.AirportIdent,
		LengthFt:               rw.LengthFt,
		WidthFt:                rw.WidthFt,
		Surface:                rw.Surface,
		Lighted:                rw.Lighted,
		Closed:                 rw.Closed,
		LeIdent:                rw.LowEnd.Ident,
		LeLatitudeDeg:          rw.LowEnd.LatitudeDeg,
		LeLongitudeDeg:         rw.LowEnd.LongitudeDeg,
		LeElevationFt:          rw.LowEnd.ElevationFt,
		LeHeadingDegT:          rw.LowEnd.HeadingDegT,
		LeDisplacedThresholdFt: rw.LowEnd.DisplacedThresholdFt,
		HeIdent:                rw.HighEnd.Ident,
		HeLatitudeDeg:          rw.HighEnd.LatitudeDeg,
		HeLongitudeDeg:         rw.HighEnd.LongitudeDeg,
		HeElevationFt:          rw.HighEnd.ElevationFt,
		HeHeadingDegT:          rw.HighEnd.HeadingDegT,
		HeDisplacedThresholdFt: rw.HighEnd.DisplacedThresholdFt,
	})
}

// ParseRunway builds a Runway from a raw row.
func ParseRunway(row Row) (Runway, error) {
	r := newFieldReader("runway", row)
	rw := Runway{
		ID:           r.integer("id"),
		AirportRef:   r.integer("airport_ref"),
		AirportIdent: r.str("airport_ident"),
		LengthFt:     r.optInt("length_ft"),
		WidthFt:      r.optInt("width_ft"),
		Surface:      r.str("surface"),
		Lighted:      r.boolean("lighted", "1"),
		Closed:       r.boolean("closed", "1"),
		LowEnd:       readRunwayEnd(r, "le_"),
		HighEnd:      readRunwayEnd(r, "he_"),
	}
	if err := r.err(); err != nil {
		return Runway{}, err
	}
	return rw, nil
}

func readRunwayEnd(r *fieldReader, prefix string) RunwayEnd {
	return RunwayEnd{
		Ident:                r.str(prefix + "ident"),
		LatitudeDeg:          r.optFloat(prefix + "latitude_deg"),
		LongitudeDeg:         r.optFloat(prefix + "longitude_deg"),
		ElevationFt:          r.optInt(prefix + "elevation_ft"),
		HeadingDegT:          r.optFloat(prefix + "heading_degT"),
		DisplacedThresholdFt: r.optInt(prefix + "displaced_threshold_ft"),
	}
}

// SplitRunway is one end of a runway together with the attributes shared by
// both ends.
type SplitRunway struct {
	ID                   int64    `json:"id"`
	AirportRef           int64    `json:"airport_ref"`
	AirportIdent         string   `json:"airport_ident"`
	LengthFt             *int     `json:"length_ft"`
	WidthFt              *int     `json:"width_ft"`
	Surface              string   `json:"surface"`
	Lighted              bool     `json:"lighted"`
	Closed               bool     `json:"closed"`
	Ident                string   `json:"ident"`
	LatitudeDeg          *float64 `json:"latitude_deg"`
	LongitudeDeg         *float64 `json:"longitude_deg"`
	ElevationFt          *int     `json:"elevation_ft"`
	HeadingDegT          *float64 `json:"heading_degT"`
	DisplacedThresholdFt *int     `json:"displaced_threshold_ft"`
}

// Split returns the low end followed by the high end.
func (rw Runway) Split() [2]SplitRunway {
	return [2]SplitRunway{rw.splitEnd(rw.LowEnd), rw.splitEnd(rw.HighEnd)}
}

func (rw Runway) splitEnd(end RunwayEnd) SplitRunway {
	return SplitRunway{
		ID:                   rw.ID,
		AirportRef:           rw.AirportRef,
		AirportIdent:         rw.AirportIdent,
		LengthFt:             rw.LengthFt,
		WidthFt:              rw.WidthFt,
		Surface:              rw.Surface,
		Lighted:              rw.Lighted,
		Closed:               rw.Closed,
		Ident:                end.Ident,
		LatitudeDeg:          end.LatitudeDeg,
		LongitudeDeg:         end.LongitudeDeg,
		ElevationFt:          end.ElevationFt,
		HeadingDegT:          end.HeadingDegT,
		DisplacedThresholdFt: end.DisplacedThresholdFt,
	}
}

// SplitIndex maps airport ident to end ident to split runway. The two ends
// of one runway are assumed to have distinct idents; a later end with the
// same ident at the same airport replaces the earlier one.
func SplitIndex(runways []Runway) *collection.Map[*collection.Map[SplitRunway]] {
	out := collection.NewMap[*collection.Map[SplitRunway]]()
	for _, rw := range runways {
		ends, ok := out.Get(rw.AirportIdent)
		if !ok {
			ends = collection.NewMap[SplitRunway]()
			out.Set(rw.AirportIdent, ends)
		}
		for _, sr := range rw.Split() {
			ends.Set(sr.Ident, sr)
		}
	}
	return out
}
