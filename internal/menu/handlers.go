package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/internal/store"
	"github.com/PithLimb/StreamingServices/pkg/catalog"
)

// Notice is a handler failure carrying the message shown to the operator.
type Notice struct {
	Message string
	Err     error
}

func (n *Notice) Error() string {
	return fmt.Sprintf("%s: %v", n.Message, n.Err)
}

func (n *Notice) Unwrap() error {
	return n.Err
}

func notice(message string, err error) error {
	return &Notice{Message: message, Err: err}
}

func lookupService(registry *catalog.Registry, in *Input) (*catalog.Service, error) {
	name, err := in.Line("Enter the service name: ")
	if err != nil {
		return nil, err
	}

	svc, err := registry.Service(name)
	if err != nil {
		return nil, notice("Service not found.", err)
	}

	return svc, nil
}

func createService(ctx context.Context, registry *catalog.Registry, in *Input) (string, error) {
	name, err := in.Line("Enter the service name: ")
	if err != nil {
		return "", err
	}
	price, err := in.Decimal("Enter the monthly price: ")
	if err != nil {
		return "", err
	}

	if registry.AddService(catalog.NewService(name, price)) {
		common.Log.WarnContext(ctx, "Replaced existing streaming service", "service", name)
	}

	return "Streaming service created.", nil
}

func addFilm(ctx context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	name, err := in.Line("Enter film name: ")
	if err != nil {
		return "", err
	}
	year, err := in.WholeNumber("Enter release year: ")
	if err != nil {
		return "", err
	}
	genre, err := in.Line("Enter genre: ")
	if err != nil {
		return "", err
	}
	rating, err := in.Decimal("Enter rating (0-5): ")
	if err != nil {
		return "", err
	}
	runtime, err := in.WholeNumber("Enter runtime (minutes): ")
	if err != nil {
		return "", err
	}

	film := catalog.NewFilm(name, year, genre, rating, runtime)
	if err := svc.AddFilm(film); err != nil {
		return "", notice("Film already exists.", err)
	}
	common.Log.DebugContext(ctx, "Added film", "service", svc.Name, "film", film.Key().String())

	return "Film added.", nil
}

func addTVShow(ctx context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	name, err := in.Line("Enter TV show name: ")
	if err != nil {
		return "", err
	}
	genre, err := in.Line("Enter genre: ")
	if err != nil {
		return "", err
	}
	rating, err := in.Decimal("Enter rating (0-5): ")
	if err != nil {
		return "", err
	}

	if err := svc.AddTVShow(catalog.NewTVShow(name, genre, rating)); err != nil {
		return "", notice("TV Show already exists.", err)
	}
	common.Log.DebugContext(ctx, "Added TV show", "service", svc.Name, "show", name)

	return "TV show added.", nil
}

func listFilms(_ context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Films:")
	for _, film := range svc.Films() {
		b.WriteString("\n")
		b.WriteString(film.String())
	}

	return b.String(), nil
}

func listTVShows(_ context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("TV Shows:")
	for _, show := range svc.TVShows() {
		b.WriteString("\n")
		b.WriteString(show.String())
	}

	return b.String(), nil
}

func rateFilm(_ context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	name, err := in.Line("Enter film name: ")
	if err != nil {
		return "", err
	}
	year, err := in.WholeNumber("Enter release year: ")
	if err != nil {
		return "", err
	}
	rating, err := in.Decimal("Enter new rating (0-5): ")
	if err != nil {
		return "", err
	}

	if err := svc.RateFilm(name, year, rating); err != nil {
		return "", notice("Film not found.", err)
	}

	return "Rating updated for film: " + name, nil
}

func rateTVShow(_ context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	name, err := in.Line("Enter TV show name: ")
	if err != nil {
		return "", err
	}
	rating, err := in.Decimal("Enter new rating (0-5): ")
	if err != nil {
		return "", err
	}

	if err := svc.RateTVShow(name, rating); err != nil {
		return "", notice("TV Show not found.", err)
	}

	return "Rating updated for TV show: " + name, nil
}

func removeFilm(_ context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	name, err := in.Line("Enter film name: ")
	if err != nil {
		return "", err
	}
	year, err := in.WholeNumber("Enter release year: ")
	if err != nil {
		return "", err
	}

	if err := svc.RemoveFilm(name, year); err != nil {
		return "", notice("Film not found.", err)
	}

	return "Film removed.", nil
}

func removeTVShow(_ context.Context, registry *catalog.Registry, in *Input) (string, error) {
	svc, err := lookupService(registry, in)
	if err != nil {
		return "", err
	}

	name, err := in.Line("Enter TV show name: ")
	if err != nil {
		return "", err
	}

	if err := svc.RemoveTVShow(name); err != nil {
		return "", notice("TV show not found.", err)
	}

	return "TV show removed.", nil
}

func exitAndSave(gateway store.Gateway) Handler {
	return func(ctx context.Context, registry *catalog.Registry, _ *Input) (string, error) {
		if err := gateway.Save(ctx, registry); err != nil {
			common.Log.ErrorContext(ctx, "Failed to store.Gateway.Save", "err", err)
			return "", notice("Error saving data: "+err.Error(), err)
		}

		return "Data saved. Exiting.", nil
	}
}

// result classifies a handler outcome for the catalog_operations_total metric.
func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, catalog.ErrNotFound):
		return "not_found"
	case errors.Is(err, catalog.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, common.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInputClosed):
		return "input_closed"
	}
	return "error"
}
