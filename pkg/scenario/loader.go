package scenario

import (
	"fmt"
	"os"
	"reflect"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a scenario from a YAML (or JSON, which is valid YAML) file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scenario document. Points may be written as [x, y] or {x: 1, y: 2}.
func Parse(data []byte) (Scenario, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse scenario: %w", err)
	}

	var s Scenario
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       pointHook,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &s,
	})
	if err != nil {
		return Scenario{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", domain.ErrInvalidScenario, err)
	}
	return s, nil
}

var pointType = reflect.TypeOf(domain.Point{})

// pointHook turns a two element list into a domain.Point.
func pointHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != pointType || (from.Kind() != reflect.Slice && from.Kind() != reflect.Array) {
		return data, nil
	}

	v := reflect.ValueOf(data)
	if v.Len() != 2 {
		return nil, fmt.Errorf("point must have exactly 2 coordinates, got %d", v.Len())
	}

	coords := make([]int, 2)
	for i := range coords {
		if err := mapstructure.WeakDecode(v.Index(i).Interface(), &coords[i]); err != nil {
			return nil, fmt.Errorf("point coordinate %d: %w", i, err)
		}
	}
	return domain.Point{X: coords[0], Y: coords[1]}, nil
}
