package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/cleanerbot/internal/presentation/tui"
	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/scenario"
	"github.com/muesli/termenv"
)

// Validate checks a scenario file and prints its starting grid.
func Validate(path string, w io.Writer) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	g, err := sc.Build()
	if err != nil {
		if errs := scenario.ValidationErrors(err); len(errs) > 0 {
			fmt.Fprintf(w, "Scenario %s is invalid:\n", path)
			for _, e := range errs {
				fmt.Fprintf(w, "  - %v\n", e)
			}
		}
		return err
	}

	name := sc.Name
	if name == "" {
		name = path
	}
	fmt.Fprintf(w, "Scenario %q is valid: %dx%d, %d dirt, %d obstacles.\n",
		name, g.Width(), g.Height(), g.DirtRemaining(), g.Count(domain.Obstacle))
	fmt.Fprint(w, tui.NewRenderer(termenv.Ascii).Grid(g, domain.Pt(0, 0)))
	return nil
}
