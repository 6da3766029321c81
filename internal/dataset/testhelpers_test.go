package dataset

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/airdata-cli/internal/artifact"
	fetchermocks "github.com/sells-group/airdata-cli/internal/fetcher/mocks"
)

const testBaseURL = "https://data.example.com/ourairports"

const airportsFixture = `id,ident,type,name,latitude_deg,longitude_deg,elevation_ft,continent,iso_country,iso_region,municipality,scheduled_service,gps_code,iata_code,local_code,home_link,wikipedia_link,keywords
3486,KDEN,large_airport,Denver International Airport,39.861698,-104.672996,5431,NA,US,US-CO,Denver,yes,KDEN,DEN,DEN,http://www.flydenver.com/,https://en.wikipedia.org/wiki/Denver_International_Airport,
42,00A,heliport,Total Rf Heliport,40.070985,-74.933689,11,NA,US,US-PA,Bensalem,no,K00A,,00A,,,
6523,00AK,small_airport,Lowell Field,59.947733,-151.692524,,NA,US,US-AK,Anchor Point,no,00AK,,00AK,,,"Lowell, Anchor Point"
`

const frequenciesFixture = `id,airport_ref,airport_ident,type,description,frequency_mhz
1,42,00A,COM,UNICOM,122.8
2,42,00A,COM,CTAF,122.9
3,3486,KDEN,TWR,DEN TWR,118.3
`

const countriesFixture = `id,code,name,continent,wikipedia_link,keywords
302755,US,United States,NA,https://en.wikipedia.org/wiki/United_States,"America, USA"
302556,CA,Canada,NA,https://en.wikipedia.org/wiki/Canada,
`

const regionsFixture = `id,code,local_code,name,continent,iso_country,wikipedia_link,keywords
306085,US-CO,CO,Colorado,NA,US,https://en.wikipedia.org/wiki/Colorado,
306093,US-PA,PA,Pennsylvania,NA,US,https://en.wikipedia.org/wiki/Pennsylvania,
`

const runwaysFixture = `id,airport_ref,airport_ident,length_ft,width_ft,surface,lighted,closed,le_ident,le_latitude_deg,le_longitude_deg,le_elevation_ft,le_heading_degT,le_displaced_threshold_ft,he_ident,he_latitude_deg,he_longitude_deg,he_elevation_ft,he_heading_degT,he_displaced_threshold_ft
1,3486,KDEN,12000,150,CON,1,0,16L,39.878,-104.662,5357,179.6,,34R,39.845,-104.662,5319,359.6,700
2,3486,KDEN,16000,200,CON,1,0,16R,39.88,-104.69,5380,179.6,,34L,39.84,-104.69,5330,359.6,
3,42,00A,80,80,ASPH-G,0,0,H1,,,,,,,,,,,
`

const navaidsFixture = `id,filename,ident,name,type,frequency_khz,latitude_deg,longitude_deg,elevation_ft,iso_country,dme_frequency_khz,dme_channel,dme_latitude_deg,dme_longitude_deg,dme_elevation_ft,slaved_variation_deg,magnetic_variation_deg,usageType,power,associated_airport
1,Denver_VOR-DME_US,DEN,Denver,VOR-DME,117900,39.812,-104.660,5440,US,1179,126X,39.812,-104.660,5440,11,7.9,BOTH,HIGH,KDEN
2,Den_NDB_XX,DEN,Den,NDB,350,10.0,20.0,,XX,,,,,,,,,,
3,Bjc_VOR_US,BJC,Jeffco,VOR,115000,39.9,-105.1,,US,,,,,,,,,,
`

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

// expectSource registers a Download expectation for file returning content.
func expectSource(m *fetchermocks.MockFetcher, file, content string) {
	m.On("Download", mock.Anything, testBaseURL+"/"+file).Return(body(content), nil).Once()
}

func newTestWriter(t *testing.T) *artifact.Writer {
	t.Helper()
	w, err := artifact.NewWriter(t.TempDir(), artifact.Options{})
	require.NoError(t, err)
	return w
}

func bytesReader(b []byte) io.Reader {
	return strings.NewReader(string(b))
}

// topLevelKeys returns the keys of a JSON object in document order.
func topLevelKeys(t *testing.T, dec *json.Decoder) []string {
	t.Helper()
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return keys
}
