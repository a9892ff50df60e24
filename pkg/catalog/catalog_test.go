package catalog_test

import (
	"testing"

	"github.com/PithLimb/StreamingServices/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AddFilm(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)

	films := []*catalog.Film{
		catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116),
		catalog.NewFilm("Arrival", 1996, "Sci-Fi", 3.0, 115),
		catalog.NewFilm("Heat", 1995, "Crime", 4.8, 170),
	}
	for _, film := range films {
		require.NoError(t, svc.AddFilm(film))
	}

	assert.ElementsMatch(t, films, svc.Films())
}

func TestService_AddFilm_Duplicate(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)
	first := catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)
	require.NoError(t, svc.AddFilm(first))

	err := svc.AddFilm(catalog.NewFilm("Arrival", 2016, "Drama", 1.0, 90))
	assert.ErrorIs(t, err, catalog.ErrAlreadyExists)

	films := svc.Films()
	require.Len(t, films, 1)
	assert.Same(t, first, films[0])
	assert.Equal(t, "Sci-Fi", films[0].Genre)
}

func TestZeroValues(t *testing.T) {
	svc := &catalog.Service{Name: "Streamer", Price: 9.99}
	require.NoError(t, svc.AddFilm(catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)))
	require.NoError(t, svc.AddTVShow(catalog.NewTVShow("Dark", "Thriller", 4.8)))
	assert.ErrorIs(t, svc.AddFilm(catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)), catalog.ErrAlreadyExists)
	assert.Len(t, svc.Films(), 1)
	assert.Len(t, svc.TVShows(), 1)

	show := &catalog.TVShow{Name: "Dark"}
	show.AddSeason(catalog.NewSeason(1, 2017, 10))
	assert.Len(t, show.Seasons(), 1)

	registry := &catalog.Registry{}
	assert.False(t, registry.AddService(svc))
	assert.Equal(t, 1, registry.Len())
}

func TestService_AddFilm_LegacyKeyCollision(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)
	a := catalog.NewFilm("X1", 99, "Drama", 3, 90)
	b := catalog.NewFilm("X", 199, "Drama", 3, 90)

	assert.Equal(t, a.Key().LegacyKey(), b.Key().LegacyKey())
	require.NoError(t, svc.AddFilm(a))
	require.NoError(t, svc.AddFilm(b))
	assert.Len(t, svc.Films(), 2)
}

func TestService_AddTVShow_Duplicate(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)
	require.NoError(t, svc.AddTVShow(catalog.NewTVShow("Dark", "Thriller", 4.8)))

	err := svc.AddTVShow(catalog.NewTVShow("Dark", "Comedy", 1))
	assert.ErrorIs(t, err, catalog.ErrAlreadyExists)

	show, err := svc.TVShow("Dark")
	require.NoError(t, err)
	assert.Equal(t, "Thriller", show.Genre)
	assert.Len(t, svc.TVShows(), 1)
}

func TestService_RateFilm(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)
	require.NoError(t, svc.AddFilm(catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)))
	require.NoError(t, svc.AddFilm(catalog.NewFilm("Heat", 1995, "Crime", 4.8, 170)))

	require.NoError(t, svc.RateFilm("Arrival", 2016, 5.0))

	arrival, err := svc.Film("Arrival", 2016)
	require.NoError(t, err)
	assert.Equal(t, 5.0, arrival.Rating)
	heat, err := svc.Film("Heat", 1995)
	require.NoError(t, err)
	assert.Equal(t, 4.8, heat.Rating)

	err = svc.RateFilm("Arrival", 2017, 1.0)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Equal(t, 5.0, arrival.Rating)
	assert.Equal(t, 4.8, heat.Rating)
}

func TestService_RateTVShow(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)
	require.NoError(t, svc.AddTVShow(catalog.NewTVShow("Dark", "Thriller", 4.8)))

	require.NoError(t, svc.RateTVShow("Dark", 7.5))
	show, err := svc.TVShow("Dark")
	require.NoError(t, err)
	assert.Equal(t, 7.5, show.Rating)

	assert.ErrorIs(t, svc.RateTVShow("Lost", 1), catalog.ErrNotFound)
}

func TestService_Remove(t *testing.T) {
	svc := catalog.NewService("Streamer", 9.99)
	require.NoError(t, svc.AddFilm(catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)))
	require.NoError(t, svc.AddFilm(catalog.NewFilm("Heat", 1995, "Crime", 4.8, 170)))
	require.NoError(t, svc.AddTVShow(catalog.NewTVShow("Dark", "Thriller", 4.8)))
	require.NoError(t, svc.AddTVShow(catalog.NewTVShow("Lost", "Drama", 3.9)))

	require.NoError(t, svc.RemoveFilm("Arrival", 2016))
	require.Len(t, svc.Films(), 1)
	assert.Equal(t, "Heat", svc.Films()[0].Name)

	assert.ErrorIs(t, svc.RemoveFilm("Arrival", 2016), catalog.ErrNotFound)
	assert.Len(t, svc.Films(), 1)

	require.NoError(t, svc.RemoveTVShow("Dark"))
	require.Len(t, svc.TVShows(), 1)
	assert.Equal(t, "Lost", svc.TVShows()[0].Name)

	assert.ErrorIs(t, svc.RemoveTVShow("Dark"), catalog.ErrNotFound)
	assert.Len(t, svc.TVShows(), 1)
}

func TestService_ArrivalScenario(t *testing.T) {
	registry := catalog.NewRegistry()
	registry.AddService(catalog.NewService("Streamer", 9.99))

	svc, err := registry.Service("Streamer")
	require.NoError(t, err)

	arrival := catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)
	require.NoError(t, svc.AddFilm(arrival))
	assert.Equal(t, []*catalog.Film{{Name: "Arrival", Year: 2016, Genre: "Sci-Fi", Rating: 4.5, Runtime: 116}}, svc.Films())

	require.NoError(t, svc.RateFilm("Arrival", 2016, 5.0))
	assert.Equal(t, 5.0, svc.Films()[0].Rating)

	require.NoError(t, svc.RemoveFilm("Arrival", 2016))
	assert.Empty(t, svc.Films())
}

func TestTVShow_AddSeason(t *testing.T) {
	show := catalog.NewTVShow("Dark", "Thriller", 4.8)
	show.AddSeason(catalog.NewSeason(1, 2017, 10))
	show.AddSeason(catalog.NewSeason(2, 2019, 8))
	show.AddSeason(catalog.NewSeason(1, 2018, 11))

	assert.Len(t, show.Seasons(), 2)
	first, err := show.Season(1)
	require.NoError(t, err)
	assert.Equal(t, 2018, first.Year)
	assert.Equal(t, 11, first.Episodes)

	_, err = show.Season(3)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRegistry(t *testing.T) {
	registry := catalog.NewRegistry()
	assert.Equal(t, 0, registry.Len())

	first := catalog.NewService("Streamer", 9.99)
	require.NoError(t, first.AddFilm(catalog.NewFilm("Arrival", 2016, "Sci-Fi", 4.5, 116)))
	assert.False(t, registry.AddService(first))
	assert.True(t, registry.AddService(catalog.NewService("Streamer", 12.99)))

	svc, err := registry.Service("Streamer")
	require.NoError(t, err)
	assert.Equal(t, 12.99, svc.Price)
	assert.Empty(t, svc.Films())

	_, err = registry.Service("Other")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.ErrorIs(t, registry.RemoveService("Other"), catalog.ErrNotFound)
	require.NoError(t, registry.RemoveService("Streamer"))
	assert.Empty(t, registry.Services())
}

func TestStrings(t *testing.T) {
	film := catalog.NewFilm("Arrival", 2016, "Sci-Fi", 5, 116)
	assert.Equal(t, "Arrival (2016) - Sci-Fi - 5.0 stars - 116 min", film.String())

	show := catalog.NewTVShow("Dark", "Thriller", 4.8)
	assert.Equal(t, "Dark - Thriller - 4.8 stars", show.String())

	season := catalog.NewSeason(1, 2017, 10)
	assert.Equal(t, "Season 1 (2017) - 10 episodes", season.String())

	svc := catalog.NewService("Streamer", 9.99)
	assert.Equal(t, "Streamer - 9.99/month - 0 films - 0 TV shows", svc.String())
}

func TestFormatRating(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "0.0"},
		{5, "5.0"},
		{4.5, "4.5"},
		{3.25, "3.25"},
		{-1, "-1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.FormatRating(tt.rating))
		})
	}
}
