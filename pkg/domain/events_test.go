package domain_test

import (
	"testing"

	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestMergeHooks(t *testing.T) {
	var calls []string

	a := domain.LifecycleHooks{
		OnMove: func(e *domain.StepEvent) { calls = append(calls, "a:"+e.Position.String()) },
	}
	b := domain.LifecycleHooks{
		OnMove:  func(e *domain.StepEvent) { calls = append(calls, "b:"+e.Position.String()) },
		OnClean: func(e *domain.StepEvent) { calls = append(calls, "b:clean") },
	}

	merged := domain.MergeHooks(a, b)

	assert.Nil(t, merged.OnRunStart, "no set registers OnRunStart")
	assert.Nil(t, merged.OnBlocked)

	merged.OnMove(domain.NewStepEvent(domain.EventMove, "spiral", domain.Pt(0, 0), domain.Pt(1, 0)))
	merged.OnClean(domain.NewStepEvent(domain.EventClean, "spiral", domain.Pt(1, 0), domain.Pt(1, 0)))

	assert.Equal(t, []string{"a:(1,0)", "b:(1,0)", "b:clean"}, calls)
}

func TestCellState_Symbol(t *testing.T) {
	tests := []struct {
		state  domain.CellState
		symbol string
		name   string
	}{
		{domain.Empty, ".", "empty"},
		{domain.Dirt, "D", "dirt"},
		{domain.Obstacle, "#", "obstacle"},
		{domain.Cleaned, "C", "cleaned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.state.Symbol())
			assert.Equal(t, tt.name, tt.state.String())
		})
	}
}
