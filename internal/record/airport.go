package record

// Airport is one row of airports.csv.
type Airport struct {
	ID               int64    `json:"id"`
	Ident            string   `json:"ident"`
	Type             string   `json:"type"`
	Name             string   `json:"name"`
	LatitudeDeg      float64  `json:"latitude_deg"`
	LongitudeDeg     float64  `json:"longitude_deg"`
	ElevationFt      *int     `json:"elevation_ft"`
	Continent        string   `json:"continent"`
	ISOCountry       string   `json:"iso_country"`
	ISORegion        string   `json:"iso_region"`
	Municipality     string   `json:"municipality"`
	ScheduledService bool     `json:"scheduled_service"`
	GPSCode          string   `json:"gps_code"`
	IATACode         string   `json:"iata_code"`
	LocalCode        string   `json:"local_code"`
	HomeLink         string   `json:"home_link"`
	WikipediaLink    string   `json:"wikipedia_link"`
	Keywords         []string `json:"keywords"`
}

// ParseAirport builds an Airport from a raw row.
func ParseAirport(row Row) (Airport, error) {
	r := newFieldReader("airport", row)
	a := Airport{
		ID:               r.integer("id"),
		Ident:            r.str("ident"),
		Type:             r.str("type"),
		Name:             r.str("name"),
		LatitudeDeg:      r.float("latitude_deg"),
		LongitudeDeg:     r.float("longitude_deg"),
		ElevationFt:      r.optInt("elevation_ft"),
		Continent:        r.str("continent"),
		ISOCountry:       r.str("iso_country"),
		ISORegion:        r.str("iso_region"),
		Municipality:     r.str("municipality"),
		ScheduledService: r.boolean("scheduled_service", "yes"),
		GPSCode:          r.str("gps_code"),
		IATACode:         r.str("iata_code"),
		LocalCode:        r.str("local_code"),
		HomeLink:         r.str("home_link"),
		WikipediaLink:    r.str("wikipedia_link"),
		Keywords:         r.list("keywords"),
	}
	if err := r.err(); err != nil {
		return Airport{}, err
	}
	return a, nil
}

// AirportExtended is an Airport plus its radio frequencies grouped by type.
// Frequencies is nil, and omitted from JSON, when the airport has none.
type AirportExtended struct {
	Airport
	Frequencies *FrequencyGroup `json:"frequencies,omitempty"`
}

// Extend attaches freqs (the airport's own frequency rows) to a.
func Extend(a Airport, freqs []AirportFrequency) AirportExtended {
	return AirportExtended{Airport: a, Frequencies: GroupFrequencies(freqs)}
}

// ExtendAirports extends every airport with the frequencies whose
// airport_ref matches its id. Airport order is preserved.
func ExtendAirports(airports []Airport, freqs []AirportFrequency) []AirportExtended {
	byRef := FrequenciesByAirport(freqs)
	out := make([]AirportExtended, len(airports))
	for i, a := range airports {
		out[i] = Extend(a, byRef[a.ID])
	}
	return out
}
