package catalog

import (
	"fmt"
	"strconv"
)

// Service is a streaming service catalog. It exclusively owns its films and TV shows.
type Service struct {
	Name  string
	Price float64

	films   map[FilmKey]*Film
	tvShows map[string]*TVShow
}

// NewService creates an empty Service.
func NewService(name string, price float64) *Service {
	return &Service{
		Name:    name,
		Price:   price,
		films:   make(map[FilmKey]*Film),
		tvShows: make(map[string]*TVShow),
	}
}

// AddFilm inserts film unless a film with the same name and year is already present,
// in which case the catalog is left untouched and ErrAlreadyExists is returned.
func (s *Service) AddFilm(film *Film) error {
	key := film.Key()
	if _, ok := s.films[key]; ok {
		return fmt.Errorf("film %s: %w", key, ErrAlreadyExists)
	}
	if s.films == nil {
		s.films = make(map[FilmKey]*Film)
	}
	s.films[key] = film
	return nil
}

// AddTVShow inserts show unless a show with the same name is already present.
func (s *Service) AddTVShow(show *TVShow) error {
	if _, ok := s.tvShows[show.Name]; ok {
		return fmt.Errorf("tv show %q: %w", show.Name, ErrAlreadyExists)
	}
	if s.tvShows == nil {
		s.tvShows = make(map[string]*TVShow)
	}
	s.tvShows[show.Name] = show
	return nil
}

// Film looks a film up by name and year.
func (s *Service) Film(name string, year int) (*Film, error) {
	key := FilmKey{Name: name, Year: year}
	film, ok := s.films[key]
	if !ok {
		return nil, fmt.Errorf("film %s: %w", key, ErrNotFound)
	}
	return film, nil
}

// TVShow looks a show up by name.
func (s *Service) TVShow(name string) (*TVShow, error) {
	show, ok := s.tvShows[name]
	if !ok {
		return nil, fmt.Errorf("tv show %q: %w", name, ErrNotFound)
	}
	return show, nil
}

// Films returns every film of the catalog in no particular order.
func (s *Service) Films() []*Film {
	films := make([]*Film, 0, len(s.films))
	for _, film := range s.films {
		films = append(films, film)
	}
	return films
}

// TVShows returns every show of the catalog in no particular order.
func (s *Service) TVShows() []*TVShow {
	shows := make([]*TVShow, 0, len(s.tvShows))
	for _, show := range s.tvShows {
		shows = append(shows, show)
	}
	return shows
}

// RateFilm overwrites the rating of a film. The rating is not range checked.
func (s *Service) RateFilm(name string, year int, rating float64) error {
	film, err := s.Film(name, year)
	if err != nil {
		return err
	}
	film.Rating = rating
	return nil
}

// RateTVShow overwrites the rating of a show. The rating is not range checked.
func (s *Service) RateTVShow(name string, rating float64) error {
	show, err := s.TVShow(name)
	if err != nil {
		return err
	}
	show.Rating = rating
	return nil
}

// RemoveFilm deletes the film stored under name and year.
func (s *Service) RemoveFilm(name string, year int) error {
	key := FilmKey{Name: name, Year: year}
	if _, ok := s.films[key]; !ok {
		return fmt.Errorf("film %s: %w", key, ErrNotFound)
	}
	delete(s.films, key)
	return nil
}

// RemoveTVShow deletes the show stored under name.
func (s *Service) RemoveTVShow(name string) error {
	if _, ok := s.tvShows[name]; !ok {
		return fmt.Errorf("tv show %q: %w", name, ErrNotFound)
	}
	delete(s.tvShows, name)
	return nil
}

func (s *Service) String() string {
	return fmt.Sprintf("%s - %s/month - %d films - %d TV shows",
		s.Name, strconv.FormatFloat(s.Price, 'f', -1, 64), len(s.films), len(s.tvShows))
}
