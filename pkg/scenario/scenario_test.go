package scenario_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Builds(t *testing.T) {
	g, err := scenario.Default().Build()
	require.NoError(t, err)

	assert.Equal(t, 20, g.Width())
	assert.Equal(t, 10, g.Height())
	assert.Equal(t, 2, g.DirtRemaining())
	assert.True(t, g.IsObstacle(2, 5))
	assert.True(t, g.IsObstacle(12, 1))
	assert.True(t, g.IsDirt(10, 8))
}

func TestParse_PointForms(t *testing.T) {
	doc := `
name: office
width: 10
height: 6
strategy: spiral
dirt:
  - [5, 3]
  - {x: 8, y: 2}
obstacles:
  - ["2", 4]
  - [7, 1]
`
	s, err := scenario.Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "office", s.Name)
	assert.Equal(t, "spiral", s.Strategy)
	assert.Equal(t, []domain.Point{{X: 5, Y: 3}, {X: 8, Y: 2}}, s.Dirt)
	assert.Equal(t, []domain.Point{{X: 2, Y: 4}, {X: 7, Y: 1}}, s.Obstacles)
	assert.NoError(t, s.Validate())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "width: [1"},
		{"unknown key", "width: 3\nheight: 3\ncolor: red\n"},
		{"short point", "width: 3\nheight: 3\ndirt:\n  - [1]\n"},
		{"non numeric point", "width: 3\nheight: 3\ndirt:\n  - [a, b]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	s := scenario.Scenario{
		Width:     4,
		Height:    3,
		Strategy:  "teleport",
		Dirt:      []domain.Point{{X: 4, Y: 0}, {X: 1, Y: 1}},
		Obstacles: []domain.Point{{X: 1, Y: 1}, {X: 0, Y: -1}},
	}

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)

	errs := scenario.ValidationErrors(err)
	require.Len(t, errs, 4)

	var keys []string
	for _, e := range errs {
		var ve *scenario.ValidationError
		require.ErrorAs(t, e, &ve)
		keys = append(keys, ve.Key)
	}
	assert.Equal(t, []string{"strategy", "obstacles[1]", "dirt[0]", "dirt[1]"}, keys)
	assert.Contains(t, err.Error(), "4 validation errors")
}

func TestValidate_Dimensions(t *testing.T) {
	err := scenario.Scenario{Width: 0, Height: -2}.Validate()
	require.Error(t, err)
	assert.Len(t, scenario.ValidationErrors(err), 2)

	_, err = scenario.Scenario{Width: 0, Height: 1}.Build()
	assert.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestValidate_AreaLimit(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"at limit", 1 << 10, 1 << 10, false},
		{"one row over", 1<<10 + 1, 1 << 10, true},
		{"would overflow int", math.MaxInt, math.MaxInt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := scenario.Scenario{Width: tt.width, Height: tt.height}.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidScenario)
			errs := scenario.ValidationErrors(err)
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Error(), "cell limit")
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 3\nheight: 2\ndirt:\n  - [2, 1]\n"), 0644))

	s, err := scenario.Load(path)
	require.NoError(t, err)

	g, err := s.Build()
	require.NoError(t, err)
	assert.True(t, g.IsDirt(2, 1))

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExampleScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := scenario.Load(path)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Name)

			_, err = s.Build()
			assert.NoError(t, err)
		})
	}
}
