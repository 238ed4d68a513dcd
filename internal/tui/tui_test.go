package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourneyplan/tourneyplan/internal/planner"
	"github.com/tourneyplan/tourneyplan/internal/scenario"
)

func TestNewModelMarksAdmittedAndRejectedItems(t *testing.T) {
	s := &scenario.Scenario{
		Candidates: []scenario.Plan{
			{ID: "a", Plan: planner.Plan{
				Schedule: planner.Schedule{Freq: planner.FreqHourly, Speed: planner.SpeedBullet, Variant: planner.VariantStandard, AtInstant: 0},
				StartsAt: 0, Duration: 60_000,
			}},
			{ID: "b", Plan: planner.Plan{
				Schedule: planner.Schedule{Freq: planner.FreqHourly, Speed: planner.SpeedBullet, Variant: planner.VariantStandard, AtInstant: 100},
				StartsAt: 100, Duration: 60_000,
			}},
		},
	}

	m, err := newModel(s, false)
	require.NoError(t, err)

	items := m.list.Items()
	require.Len(t, items, 2)

	first := items[0].(item)
	second := items[1].(item)
	assert.True(t, first.admitted)
	assert.False(t, second.admitted, "second candidate conflicts with the first's nominal interval and should be rejected")
}

func TestNewModelStrictPropagatesUsurpationError(t *testing.T) {
	sched := planner.Schedule{Freq: planner.FreqHourly, Speed: planner.SpeedBullet, Variant: planner.VariantStandard, AtInstant: 0}
	s := &scenario.Scenario{
		Existing: []scenario.Tournament{
			{ID: "existing", Tournament: planner.Tournament{Schedule: &sched, StartsAt: 0, Duration: 60_000}},
		},
		Candidates: []scenario.Plan{
			{ID: "a", Plan: planner.Plan{
				Schedule: planner.Schedule{Freq: planner.FreqYearly, Speed: planner.SpeedBullet, Variant: planner.VariantStandard, AtInstant: 0},
				StartsAt: 0, Duration: 60_000,
			}},
		},
	}

	_, err := newModel(s, true)
	require.Error(t, err)
}
