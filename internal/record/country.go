package record

// Country is one row of countries.csv.
type Country struct {
	ID            int64    `json:"id"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Continent     string   `json:"continent"`
	WikipediaLink string   `json:"wikipedia_link"`
	Keywords      []string `json:"keywords"`
}

// ParseCountry builds a Country from a raw row.
func ParseCountry(row Row) (Country, error) {
	r := newFieldReader("country", row)
	c := Country{
		ID:            r.integer("id"),
		Code:          r.str("code"),
		Name:          r.str("name"),
		Continent:     r.str("continent"),
		WikipediaLink: r.str("wikipedia_link"),
		Keywords:      r.list("keywords"),
	}
	if err := r.err(); err != nil {
		return Country{}, err
	}
	return c, nil
}

// Region is one row of regions.csv.
type Region struct {
	ID            int64    `json:"id"`
	Code          string   `json:"code"`
	LocalCode     string   `json:"local_code"`
	Name          string   `json:"name"`
	Continent     string   `json:"continent"`
	ISOCountry    string   `json:"iso_country"`
	WikipediaLink string   `json:"wikipedia_link"`
	Keywords      []string `json:"keywords"`
}

// ParseRegion builds a Region from a raw row.
func ParseRegion(row Row) (Region, error) {
	r := newFieldReader("region", row)
	reg := Region{
		ID:            r.integer("id"),
		Code:          r.str("code"),
		LocalCode:     r.str("local_code"),
		Name:          r.str("name"),
		Continent:     r.str("continent"),
		ISOCountry:    r.str("iso_country"),
		WikipediaLink: r.str("wikipedia_link"),
		Keywords:      r.list("keywords"),
	}
	if err := r.err(); err != nil {
		return Region{}, err
	}
	return reg, nil
}
