package record

// airportRow returns a complete airports.csv row for KDEN with overrides
// applied.
func airportRow(overrides map[string]string) Row {
	row := Row{
		"id":                "3486",
		"ident":             "KDEN",
		"type":              "large_airport",
		"name":              "Denver International Airport",
		"latitude_deg":      "39.861698",
		"longitude_deg":     "-104.672996",
		"elevation_ft":      "5431",
		"continent":         "NA",
		"iso_country":       "US",
		"iso_region":        "US-CO",
		"municipality":      "Denver",
		"scheduled_service": "yes",
		"gps_code":          "KDEN",
		"iata_code":         "DEN",
		"local_code":        "DEN",
		"home_link":         "http://www.flydenver.com/",
		"wikipedia_link":    "https://en.wikipedia.org/wiki/Denver_International_Airport",
		"keywords":          "",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func runwayRow(overrides map[string]string) Row {
	row := Row{
		"id":                        "238393",
		"airport_ref":               "3486",
		"airport_ident":             "KDEN",
		"length_ft":                 "12000",
		"width_ft":                  "150",
		"surface":                   "CON",
		"lighted":                   "1",
		"closed":                    "0",
		"le_ident":                  "16L",
		"le_latitude_deg":           "39.878",
		"le_longitude_deg":          "-104.662",
		"le_elevation_ft":           "5357",
		"le_heading_degT":           "179.6",
		"le_displaced_threshold_ft": "",
		"he_ident":                  "34R",
		"he_latitude_deg":           "39.845",
		"he_longitude_deg":          "-104.662",
		"he_elevation_ft":           "5319",
		"he_heading_degT":           "359.6",
		"he_displaced_threshold_ft": "700",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}

func navaidRow(overrides map[string]string) Row {
	row := Row{
		"id":                     "85270",
		"filename":               "Denver_VOR-DME_US",
		"ident":                  "DEN",
		"name":                   "Denver",
		"type":                   "VOR-DME",
		"frequency_khz":          "117900",
		"latitude_deg":           "39.812",
		"longitude_deg":          "-104.660",
		"elevation_ft":           "",
		"iso_country":            "US",
		"dme_frequency_khz":      "",
		"dme_channel":            "",
		"dme_latitude_deg":       "",
		"dme_longitude_deg":      "",
		"dme_elevation_ft":       "",
		"slaved_variation_deg":   "",
		"magnetic_variation_deg": "",
		"usageType":              "",
		"power":                  "",
		"associated_airport":     "",
	}
	for k, v := range overrides {
		row[k] = v
	}
	return row
}
