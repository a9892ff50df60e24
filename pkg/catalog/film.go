package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Film represents a single film offered by a streaming service.
type Film struct {
	Name    string
	Year    int
	Genre   string
	Rating  float64
	Runtime int
}

// FilmKey identifies a Film inside a Service.
type FilmKey struct {
	Name string
	Year int
}

// NewFilm creates a Film with every field set.
func NewFilm(name string, year int, genre string, rating float64, runtime int) *Film {
	return &Film{
		Name:    name,
		Year:    year,
		Genre:   genre,
		Rating:  rating,
		Runtime: runtime,
	}
}

// Key returns the composite key the film is stored under.
func (f *Film) Key() FilmKey {
	return FilmKey{Name: f.Name, Year: f.Year}
}

func (f *Film) String() string {
	return fmt.Sprintf("%s (%d) - %s - %s stars - %d min", f.Name, f.Year, f.Genre, FormatRating(f.Rating), f.Runtime)
}

// LegacyKey returns the name and year concatenation older catalogs used as key.
// Different films can share a legacy key ("X1" 99 and "X" 199), so it is never used for lookups.
func (k FilmKey) LegacyKey() string {
	return k.Name + strconv.Itoa(k.Year)
}

func (k FilmKey) String() string {
	return fmt.Sprintf("%s (%d)", k.Name, k.Year)
}

// FormatRating renders a rating with at least one decimal digit, e.g. 5.0 or 4.25.
func FormatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return s
}
