package cities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cs []City) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func lonDirectory() *Directory {
	return New([]City{
		{Name: "Barcelona", Country: "ES", Region: "Catalonia", Population: 1620343},
		{Name: "Longview", Country: "US", Region: "Texas", Population: 81638},
		{Name: "Kaunas", Country: "LT", Region: "Kolonia", Population: 3000000},
		{Name: "London", Country: "GB", Region: "England", Population: 8982000},
		{Name: "Paris", Country: "FR", Region: "Île-de-France", Population: 2161000},
	})
}

func TestSearch_PrefixBeatsSubstringAndPopulationBreaksTies(t *testing.T) {
	got := lonDirectory().Search("lon", 10)

	require.Len(t, got, 4)
	assert.Equal(t, []string{"London", "Longview", "Kaunas", "Barcelona"}, names(got))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := Default().Search("LONDON", 8)
	require.NotEmpty(t, got)
	assert.Equal(t, "London", got[0].Name)
}

func TestSearch_MatchesCountryAndRegion(t *testing.T) {
	got := Default().Search("bavaria", 8)
	require.Len(t, got, 1)
	assert.Equal(t, "Munich", got[0].Name)

	got = Default().Search("jp", 8)
	assert.Equal(t, []string{"Tokyo", "Osaka", "Yokohama", "Kyoto"}, names(got))
}

func TestSearch_ShortQuery(t *testing.T) {
	assert.Empty(t, Default().Search("l", 8))
	assert.Empty(t, Default().Search("", 8))
}

func TestSearch_ShortQueryCountsCharacters(t *testing.T) {
	d := New([]City{{Name: "Zürich", Country: "CH", Region: "Zurich", Latitude: 47.3769, Longitude: 8.5417, Population: 421878}})

	assert.Empty(t, d.Search("ü", 8))
	assert.Empty(t, d.Search("東", 8))
	assert.Equal(t, []string{"Zürich"}, names(d.Search("zü", 8)))
}

func TestSearch_Limit(t *testing.T) {
	got := Default().Search("an", 3)
	assert.Len(t, got, 3)
}

func TestSearchEnhanced_ExactMatchFirst(t *testing.T) {
	d := New([]City{
		{Name: "Parisville", Country: "US", Region: "Ohio", Population: 30000000},
		{Name: "Paris", Country: "FR", Region: "Île-de-France", Population: 2161000},
	})

	got := d.SearchEnhanced("paris", 8)
	assert.Equal(t, []string{"Paris", "Parisville"}, names(got))

	// basic ranking only looks at the prefix tier and population
	got = d.Search("paris", 8)
	assert.Equal(t, []string{"Parisville", "Paris"}, names(got))
}

func TestSearchEnhanced_NameOutranksCountryOnlyMatch(t *testing.T) {
	got := lonDirectory().SearchEnhanced("lon", 8)
	require.NotEmpty(t, got)
	assert.Equal(t, "London", got[0].Name)
	assert.Equal(t, "Kaunas", got[len(got)-1].Name)
}

func TestSearchEnhanced_SingleCharacter(t *testing.T) {
	assert.NotEmpty(t, Default().SearchEnhanced("l", 8))
}

func TestRank_BasicWeightsIgnorePopulationLog(t *testing.T) {
	w := BasicWeights
	c := City{Name: "London", Country: "GB", Population: 1000}
	assert.Equal(t, 1.0, w.score(c, "lon"))
	assert.Equal(t, 0.0, w.score(c, "gb"))
}

func TestCountryFlag(t *testing.T) {
	assert.Equal(t, "🇬🇧", CountryFlag("GB"))
	assert.Equal(t, "🇬🇧", CountryFlag("gb"))
	assert.Equal(t, GlobeFlag, CountryFlag("XX"))
	assert.Equal(t, GlobeFlag, CountryFlag(""))
}

func TestNearest(t *testing.T) {
	c, km, ok := Default().Nearest(51.5, -0.12)
	require.True(t, ok)
	assert.Equal(t, "London", c.Name)
	assert.Less(t, km, 5.0)

	_, _, ok = New(nil).Nearest(0, 0)
	assert.False(t, ok)
}

func TestToSearchLocation(t *testing.T) {
	loc := ToSearchLocation(City{Name: "Tokyo", Country: "JP", Region: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Population: 37400068})
	assert.Equal(t, "Tokyo-JP", loc.Key())
	assert.Equal(t, "🇯🇵", loc.Flag)
	assert.Equal(t, 37400068, loc.Population)
}
