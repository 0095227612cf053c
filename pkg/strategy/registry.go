package strategy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/robot"
)

// Registered strategy names.
const (
	NamePerimeter = "perimeter"
	NameSpiral    = "spiral"
	NameZigzag    = "zigzag"
)

// menu lists the strategies in the order they are offered to users (1-based).
var menu = []robot.Strategy{
	PerimeterHugger{},
	Spiral{},
	Zigzag{},
}

var aliases = map[string]string{
	"perimeter-hugger": NamePerimeter,
	"hugger":           NamePerimeter,
	"boustrophedon":    NameZigzag,
}

// Names returns the registered names in menu order.
func Names() []string {
	names := make([]string, len(menu))
	for i, s := range menu {
		names[i] = s.Name()
	}
	return names
}

// Lookup returns the strategy registered under name (case-insensitive).
func Lookup(name string) (robot.Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	for _, s := range menu {
		if s.Name() == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", domain.ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}

// Parse resolves a user choice, given either as a name or as a 1-based menu number.
// Unrecognized input falls back to PerimeterHugger.
func Parse(choice string) robot.Strategy {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(menu) {
			return menu[n-1]
		}
		return PerimeterHugger{}
	}
	if s, err := Lookup(choice); err == nil {
		return s
	}
	return PerimeterHugger{}
}
