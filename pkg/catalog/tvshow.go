package catalog

import "fmt"

// Season is one season of a TVShow.
type Season struct {
	Number   int
	Year     int
	Episodes int
}

// NewSeason creates a Season with every field set.
func NewSeason(number, year, episodes int) *Season {
	return &Season{Number: number, Year: year, Episodes: episodes}
}

func (s *Season) String() string {
	return fmt.Sprintf("Season %d (%d) - %d episodes", s.Number, s.Year, s.Episodes)
}

// TVShow represents a show offered by a streaming service along with its seasons.
type TVShow struct {
	Name    string
	Genre   string
	Rating  float64
	seasons map[int]*Season
}

// NewTVShow creates a TVShow without seasons.
func NewTVShow(name, genre string, rating float64) *TVShow {
	return &TVShow{
		Name:    name,
		Genre:   genre,
		Rating:  rating,
		seasons: make(map[int]*Season),
	}
}

// AddSeason stores the season under its number, replacing any season already there.
func (t *TVShow) AddSeason(season *Season) {
	if t.seasons == nil {
		t.seasons = make(map[int]*Season)
	}
	t.seasons[season.Number] = season
}

// Season returns the season with the given number.
func (t *TVShow) Season(number int) (*Season, error) {
	season, ok := t.seasons[number]
	if !ok {
		return nil, fmt.Errorf("season %d of %q: %w", number, t.Name, ErrNotFound)
	}
	return season, nil
}

// Seasons returns every season of the show in no particular order.
func (t *TVShow) Seasons() []*Season {
	seasons := make([]*Season, 0, len(t.seasons))
	for _, season := range t.seasons {
		seasons = append(seasons, season)
	}
	return seasons
}

func (t *TVShow) String() string {
	return fmt.Sprintf("%s - %s - %s stars", t.Name, t.Genre, FormatRating(t.Rating))
}
