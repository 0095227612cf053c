package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/cleanerbot/pkg/robot"
	"github.com/aretw0/cleanerbot/pkg/strategy"
)

// PromptStrategy asks the user to pick a strategy by number or name.
// Empty or unrecognized answers select the perimeter strategy.
func PromptStrategy(r io.Reader, w io.Writer) robot.Strategy {
	fmt.Fprintln(w, "Choose a cleaning strategy:")
	for i, name := range strategy.Names() {
		fmt.Fprintf(w, "  %d) %s\n", i+1, name)
	}
	fmt.Fprint(w, "> ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return strategy.PerimeterHugger{}
	}
	return strategy.Parse(strings.TrimSpace(line))
}
