package planner

import "testing"

func TestRunEmptyCandidatesYieldsEmpty(t *testing.T) {
	if out := Run([]Tournament{{StartsAt: 0}}, nil); len(out) != 0 {
		t.Errorf("expected empty, got %d", len(out))
	}
}

func TestRunEmptyExistingEqualsSelfPruning(t *testing.T) {
	candidates := []Plan{standardHourlyPlan(0), standardHourlyPlan(30)}
	withoutExisting := Run(nil, candidates)
	selfPruned := prune(nil, candidates)
	if len(withoutExisting) != len(selfPruned) {
		t.Fatalf("got %d admitted, want %d", len(withoutExisting), len(selfPruned))
	}
	for i := range selfPruned {
		if withoutExisting[i].Schedule.AtInstant != selfPruned[i].Schedule.AtInstant {
			t.Errorf("index %d: admitted set differs from self-pruning candidates", i)
		}
	}
}

func TestRunUsesScheduleNominalStartNotActualStaggeredStart(t *testing.T) {
	sched := Schedule{
		Freq: FreqHourly, Speed: SpeedBullet, Variant: VariantStandard,
		AtInstant: 0, // nominal start, occupies [0, 60000)
	}
	// The tournament's actual start has already been staggered forward
	// by the maximum allowed amount; only its nominal schedule time
	// should matter for pruning.
	existing := []Tournament{{Schedule: &sched, StartsAt: MaxStaggerMS, Duration: 60_000}}

	candidate := Plan{
		Schedule: Schedule{
			Freq: FreqHourly, Speed: SpeedBullet, Variant: VariantStandard,
			AtInstant: 70_000,
		},
		StartsAt: 70_000, // nominal [70000, 130000): clear of the schedule's nominal [0,60000)
		Duration: 60_000,
	}
	// If pruning used the tournament's actual (staggered) interval
	// [40000, 100000) instead, this candidate would be rejected.
	out := Run(existing, []Plan{candidate})
	if len(out) != 1 {
		t.Error("pruning must use the existing tournament's nominal schedule time, not its actual (staggered) start")
	}
}

func TestRunScheduleLessTournamentNeverBlocksButStillSpaces(t *testing.T) {
	existing := []Tournament{{StartsAt: 0, Duration: 3600_000}} // no Schedule
	candidate := standardHourlyPlan(0)
	out := Run(existing, []Plan{candidate})
	if len(out) != 1 {
		t.Fatalf("schedule-less existing tournament must never participate in pruning, got %d admitted", len(out))
	}
	if out[0].StartsAt.Sub(candidate.StartsAt) == 0 {
		t.Error("schedule-less existing tournament should still influence stagger spacing")
	}
}

func TestRunAdmittedPairsNeverConflictAtNominalStarts(t *testing.T) {
	candidates := []Plan{
		standardHourlyPlan(0),
		standardHourlyPlan(10),
		standardHourlyPlan(59),
		standardHourlyPlan(200),
	}
	out := Run(nil, candidates)
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			si := ScheduledInterval{Schedule: out[i].Schedule, StartsAt: out[i].Schedule.AtInstant, Duration: out[i].Duration}
			sj := ScheduledInterval{Schedule: out[j].Schedule, StartsAt: out[j].Schedule.AtInstant, Duration: out[j].Duration}
			if conflicts(si, sj) {
				t.Errorf("admitted plans %d and %d conflict at nominal starts", i, j)
			}
		}
	}
}

func TestRunStaggerWithinBounds(t *testing.T) {
	candidates := []Plan{standardHourlyPlan(0), standardHourlyPlan(0), standardHourlyPlan(0)}
	out := Run(nil, candidates)
	for i, p := range out {
		delta := p.StartsAt.Sub(candidates[i].StartsAt)
		if delta < 0 || delta > MaxStaggerMS {
			t.Errorf("plan %d: stagger %d out of [0, %d]", i, delta, int64(MaxStaggerMS))
		}
	}
}

func TestRunIsPure(t *testing.T) {
	existing := []Tournament{{StartsAt: 0, Duration: 3600_000}}
	candidates := []Plan{standardHourlyPlan(30), standardHourlyPlan(200)}

	out1 := Run(existing, candidates)
	out2 := Run(existing, candidates)
	if len(out1) != len(out2) {
		t.Fatalf("non-deterministic result length: %d vs %d", len(out1), len(out2))
	}
	for i := range out1 {
		if out1[i].StartsAt != out2[i].StartsAt {
			t.Errorf("index %d: non-deterministic start: %d vs %d", i, out1[i].StartsAt, out2[i].StartsAt)
		}
	}
}

func TestRunOutputIsSubsetInOrder(t *testing.T) {
	candidates := []Plan{
		standardHourlyPlan(0),
		standardHourlyPlan(5),
		standardHourlyPlan(120),
	}
	out := Run(nil, candidates)
	if len(out) == 0 || len(out) > len(candidates) {
		t.Fatalf("unexpected admitted count: %d", len(out))
	}
	last := int64(-1)
	for _, p := range out {
		idx := int64(-1)
		for i, c := range candidates {
			if c.Schedule.AtInstant == p.Schedule.AtInstant {
				idx = int64(i)
			}
		}
		if idx < 0 {
			t.Fatal("admitted plan not found among candidates")
		}
		if idx <= last {
			t.Error("admitted plans must preserve relative candidate order")
		}
		last = idx
	}
}
