package store

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/PithLimb/StreamingServices/pkg/catalog"
	"github.com/goccy/go-json"
)

/*
The snapshot is a JSON document holding the whole Registry:

	{"services":[{"name":"Streamer","price":9.99,
	  "films":[{"name":"Arrival","year":2016,"genre":"Sci-Fi","rating":4.5,"runtime":116}],
	  "tvShows":[{"name":"Dark","genre":"Thriller","rating":4.8,
	    "seasons":[{"number":1,"year":2017,"episodes":10}]}]}]}

Keys are not stored, they are rebuilt from the entity fields on decode. Every list is
sorted so equal registries always encode to the same bytes.
*/

type snapshot struct {
	Services []serviceRecord `json:"services"`
}

type serviceRecord struct {
	Name    string         `json:"name"`
	Price   float64        `json:"price"`
	Films   []filmRecord   `json:"films"`
	TVShows []tvShowRecord `json:"tvShows"`
}

type filmRecord struct {
	Name    string  `json:"name"`
	Year    int     `json:"year"`
	Genre   string  `json:"genre"`
	Rating  float64 `json:"rating"`
	Runtime int     `json:"runtime"`
}

type tvShowRecord struct {
	Name    string         `json:"name"`
	Genre   string         `json:"genre"`
	Rating  float64        `json:"rating"`
	Seasons []seasonRecord `json:"seasons"`
}

type seasonRecord struct {
	Number   int `json:"number"`
	Year     int `json:"year"`
	Episodes int `json:"episodes"`
}

// Encode serializes registry into the snapshot format.
func Encode(registry *catalog.Registry) ([]byte, error) {
	services := registry.Services()
	slices.SortFunc(services, func(a, b *catalog.Service) int { return cmp.Compare(a.Name, b.Name) })

	s := snapshot{Services: make([]serviceRecord, 0, len(services))}
	for _, svc := range services {
		s.Services = append(s.Services, encodeService(svc))
	}

	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to json.Marshal: %w", err)
	}

	return b, nil
}

func encodeService(svc *catalog.Service) serviceRecord {
	films := svc.Films()
	slices.SortFunc(films, func(a, b *catalog.Film) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Year, b.Year))
	})
	shows := svc.TVShows()
	slices.SortFunc(shows, func(a, b *catalog.TVShow) int { return cmp.Compare(a.Name, b.Name) })

	record := serviceRecord{
		Name:    svc.Name,
		Price:   svc.Price,
		Films:   make([]filmRecord, 0, len(films)),
		TVShows: make([]tvShowRecord, 0, len(shows)),
	}
	for _, film := range films {
		record.Films = append(record.Films, filmRecord{
			Name:    film.Name,
			Year:    film.Year,
			Genre:   film.Genre,
			Rating:  film.Rating,
			Runtime: film.Runtime,
		})
	}
	for _, show := range shows {
		seasons := show.Seasons()
		slices.SortFunc(seasons, func(a, b *catalog.Season) int { return cmp.Compare(a.Number, b.Number) })

		showRecord := tvShowRecord{
			Name:    show.Name,
			Genre:   show.Genre,
			Rating:  show.Rating,
			Seasons: make([]seasonRecord, 0, len(seasons)),
		}
		for _, season := range seasons {
			showRecord.Seasons = append(showRecord.Seasons, seasonRecord{
				Number:   season.Number,
				Year:     season.Year,
				Episodes: season.Episodes,
			})
		}
		record.TVShows = append(record.TVShows, showRecord)
	}

	return record
}

// Decode rebuilds a Registry from a snapshot. Malformed documents and duplicated
// keys are reported as ErrCorrupt.
func Decode(data []byte) (*catalog.Registry, error) {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: failed to json.Unmarshal: %v", ErrCorrupt, err)
	}

	registry := catalog.NewRegistry()
	for _, record := range s.Services {
		svc := catalog.NewService(record.Name, record.Price)
		for _, f := range record.Films {
			if err := svc.AddFilm(catalog.NewFilm(f.Name, f.Year, f.Genre, f.Rating, f.Runtime)); err != nil {
				return nil, fmt.Errorf("%w: service %q: %v", ErrCorrupt, record.Name, err)
			}
		}
		for _, sh := range record.TVShows {
			show := catalog.NewTVShow(sh.Name, sh.Genre, sh.Rating)
			for _, season := range sh.Seasons {
				show.AddSeason(catalog.NewSeason(season.Number, season.Year, season.Episodes))
			}
			if err := svc.AddTVShow(show); err != nil {
				return nil, fmt.Errorf("%w: service %q: %v", ErrCorrupt, record.Name, err)
			}
		}
		if registry.AddService(svc) {
			return nil, fmt.Errorf("%w: service %q is duplicated", ErrCorrupt, record.Name)
		}
	}

	return registry, nil
}
