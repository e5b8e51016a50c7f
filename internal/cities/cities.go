package cities

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/evanhutnik/cloudvibes-service/internal/types"
)

const earthRadiusKm = 6371.0

type City struct {
	Name       string
	Country    string
	Region     string
	Latitude   float64
	Longitude  float64
	Population int
}

// Weights control how a city is scored against a search query.
// Ties on score are broken by population, larger first.
type Weights struct {
	Exact    float64
	Prefix   float64
	Contains float64
	Country  float64
	Region   float64
	// PopulationLog multiplies log10(population).
	PopulationLog float64
}

var (
	// BasicWeights ranks name-prefix matches first, then by population.
	BasicWeights = Weights{Prefix: 1}

	EnhancedWeights = Weights{
		Exact:         1000,
		Prefix:        100,
		Contains:      50,
		Country:       30,
		Region:        20,
		PopulationLog: 2,
	}
)

type Directory struct {
	cities []City
}

var defaultDirectory = &Directory{cities: majorCities}

// Default returns the built-in directory of major world cities.
func Default() *Directory {
	return defaultDirectory
}

func New(cities []City) *Directory {
	c := make([]City, len(cities))
	copy(c, cities)
	return &Directory{cities: c}
}

func (d *Directory) Len() int {
	return len(d.cities)
}

// Search matches query against name, country and region and ranks with BasicWeights.
// Queries shorter than two characters match nothing.
func (d *Directory) Search(query string, limit int) []City {
	if utf8.RuneCountInString(query) < 2 {
		return nil
	}
	return d.Rank(query, limit, BasicWeights)
}

// SearchEnhanced ranks with EnhancedWeights and accepts single-character queries.
func (d *Directory) SearchEnhanced(query string, limit int) []City {
	return d.Rank(query, limit, EnhancedWeights)
}

// Rank returns up to limit cities whose name, country or region contains query,
// ordered by score under w.
func (d *Directory) Rank(query string, limit int, w Weights) []City {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		city  City
		score float64
	}
	var matches []scored
	for _, c := range d.cities {
		if !isMatch(c, q) {
			continue
		}
		matches = append(matches, scored{city: c, score: w.score(c, q)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].city.Population > matches[j].city.Population
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	result := make([]City, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.city)
	}
	return result
}

// Nearest returns the directory city closest to the coordinates.
func (d *Directory) Nearest(lat, lon float64) (City, float64, bool) {
	var best City
	bestKm := math.Inf(1)
	for _, c := range d.cities {
		km := haversineKm(lat, lon, c.Latitude, c.Longitude)
		if km < bestKm {
			best, bestKm = c, km
		}
	}
	return best, bestKm, len(d.cities) > 0
}

func isMatch(c City, q string) bool {
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Country), q) ||
		strings.Contains(strings.ToLower(c.Region), q)
}

func (w Weights) score(c City, q string) float64 {
	name := strings.ToLower(c.Name)
	var score float64
	if name == q {
		score += w.Exact
	}
	if strings.HasPrefix(name, q) {
		score += w.Prefix
	}
	if strings.Contains(name, q) {
		score += w.Contains
	}
	if strings.Contains(strings.ToLower(c.Country), q) {
		score += w.Country
	}
	if strings.Contains(strings.ToLower(c.Region), q) {
		score += w.Region
	}
	if c.Population > 0 {
		score += math.Log10(float64(c.Population)) * w.PopulationLog
	}
	return score
}

// CountryFlag maps a two-letter country code to its emoji flag, or GlobeFlag.
func CountryFlag(code string) string {
	if flag, ok := flags[strings.ToUpper(code)]; ok {
		return flag
	}
	return GlobeFlag
}

func ToSearchLocation(c City) types.SearchLocation {
	return types.SearchLocation{
		Name:       c.Name,
		Country:    c.Country,
		Region:     c.Region,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		Population: c.Population,
		Flag:       CountryFlag(c.Country),
	}
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
