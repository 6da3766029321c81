package record

import "github.com/sells-group/airdata-cli/internal/collection"

// AirportFrequency is one row of airport-frequencies.csv. AirportRef is the
// foreign key to Airport.ID.
type AirportFrequency struct {
	ID           int64    `json:"id"`
	AirportRef   int64    `json:"airport_ref"`
	AirportIdent string   `json:"airport_ident"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	FrequencyMHz *float64 `json:"frequency_mhz"`
}

// ParseAirportFrequency builds an AirportFrequency from a raw row.
func ParseAirportFrequency(row Row) (AirportFrequency, error) {
	r := newFieldReader("airport frequency", row)
	f := AirportFrequency{
		ID:           r.integer("id"),
		AirportRef:   r.integer("airport_ref"),
		AirportIdent: r.str("airport_ident"),
		Type:         r.str("type"),
		Description:  r.str("description"),
		FrequencyMHz: r.optFloat("frequency_mhz"),
	}
	if err := r.err(); err != nil {
		return AirportFrequency{}, err
	}
	return f, nil
}

// Frequency is the part of an AirportFrequency kept on an extended airport.
type Frequency struct {
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	FrequencyMHz *float64 `json:"frequency_mhz"`
}

// Trim drops the fields that only identify the frequency row.
func (f AirportFrequency) Trim() Frequency {
	return Frequency{Type: f.Type, Description: f.Description, FrequencyMHz: f.FrequencyMHz}
}

// FrequencyGroup maps frequency type to the frequencies of that type.
type FrequencyGroup = collection.Group[Frequency]

// FrequenciesByAirport groups frequency rows by AirportRef, keeping
// encounter order within each airport.
func FrequenciesByAirport(freqs []AirportFrequency) map[int64][]AirportFrequency {
	out := make(map[int64][]AirportFrequency)
	for _, f := range freqs {
		out[f.AirportRef] = append(out[f.AirportRef], f)
	}
	return out
}

// GroupFrequencies groups one airport's frequencies by type in
// first-encounter order. It returns nil when freqs is empty.
func GroupFrequencies(freqs []AirportFrequency) *FrequencyGroup {
	if len(freqs) == 0 {
		return nil
	}
	g := collection.NewGroup[Frequency]()
	for _, f := range freqs {
		g.Append(f.Type, f.Trim())
	}
	return g
}
