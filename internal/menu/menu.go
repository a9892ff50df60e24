package menu

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/internal/store"
	"github.com/PithLimb/StreamingServices/pkg/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "github.com/PithLimb/StreamingServices/internal/menu"

// Handler runs one menu operation against registry, reading its fields from in.
// The returned string is shown to the operator.
type Handler func(ctx context.Context, registry *catalog.Registry, in *Input) (string, error)

// Option is a menu entry.
type Option struct {
	// Name identifies the operation in logs, traces and metrics.
	Name    string
	Label   string
	Handler Handler
	// Exit ends the session once Handler succeeds.
	Exit bool
}

// Menu is the interactive driver of the catalog.
type Menu struct {
	options map[int]Option
	in      *Input
	out     io.Writer
}

// New creates the streaming service menu. Exiting saves the registry through gateway.
func New(r io.Reader, out io.Writer, gateway store.Gateway) *Menu {
	return &Menu{
		options: map[int]Option{
			1:  {Name: "create_service", Label: "Create a new streaming service", Handler: createService},
			2:  {Name: "add_film", Label: "Add a film to a streaming service", Handler: addFilm},
			3:  {Name: "add_tv_show", Label: "Add a TV show to a streaming service", Handler: addTVShow},
			4:  {Name: "list_films", Label: "List all films in a service", Handler: listFilms},
			5:  {Name: "list_tv_shows", Label: "List all TV shows in a service", Handler: listTVShows},
			6:  {Name: "rate_film", Label: "Rate a film", Handler: rateFilm},
			7:  {Name: "rate_tv_show", Label: "Rate a TV show", Handler: rateTVShow},
			8:  {Name: "remove_film", Label: "Remove a film", Handler: removeFilm},
			9:  {Name: "remove_tv_show", Label: "Remove a TV show", Handler: removeTVShow},
			10: {Name: "exit_and_save", Label: "Exit and Save", Handler: exitAndSave(gateway), Exit: true},
		},
		in:  NewInput(r, out),
		out: out,
	}
}

/*
Run reads menu choices until the operator exits.

It returns nil after a successful exit and save, and ErrInputClosed when the input
ends first, in which case nothing is saved. Operation failures are printed and the
session goes on.
*/
func (m *Menu) Run(ctx context.Context, registry *catalog.Registry) error {
	for {
		m.printOptions()

		line, err := m.in.Line(fmt.Sprintf("Enter your choice (1-%d): ", len(m.options)))
		if err != nil {
			return err
		}

		choice, err := common.ParseWholeNumber(line)
		option, ok := m.options[choice]
		if err != nil || !ok {
			m.println("Invalid choice. Please try again.")
			continue
		}

		message, err := m.dispatch(ctx, option, registry)
		var n *Notice
		switch {
		case errors.Is(err, ErrInputClosed):
			return err
		case errors.As(err, &n):
			m.println(n.Message)
		case errors.Is(err, common.ErrInvalidInput):
			m.println("Operation cancelled: " + err.Error())
		case err != nil:
			m.println("Error: " + err.Error())
		default:
			m.println(message)
			if option.Exit {
				return nil
			}
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, option Option, registry *catalog.Registry) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "menu."+option.Name)
	defer span.End()

	common.Log.DebugContext(ctx, "Menu operation", "operation", option.Name)

	message, err := option.Handler(ctx, registry, m.in)
	outcome := result(err)
	span.SetAttributes(attribute.String("menu.result", outcome))
	if err != nil {
		span.RecordError(err)
		common.Log.InfoContext(ctx, "Menu operation failed", "operation", option.Name, "result", outcome, "err", err)
	}
	common.CatalogOperationsTotalIncr(ctx, option.Name, outcome)

	return message, err
}

func (m *Menu) printOptions() {
	m.println("\n--- Streaming Service Menu ---")
	for i := 1; i <= len(m.options); i++ {
		if option, ok := m.options[i]; ok {
			m.println(fmt.Sprintf("%d. %s", i, option.Label))
		}
	}
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}
