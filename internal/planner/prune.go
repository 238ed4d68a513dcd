package planner

import "fmt"

// UsurpationError is raised by RunStrict when a candidate is blocked
// exclusively by existing or already-admitted schedules of strictly
// lower Freq. That situation means the caller handed candidates in an
// order that let a low-importance event usurp a higher-importance
// one — a caller bug, not a planner bug.
type UsurpationError struct {
	Candidate   Plan
	Conflicting []ScheduledInterval
}

func (e *UsurpationError) Error() string {
	return fmt.Sprintf(
		"planner: candidate at %d (freq=%s) usurped by %d lower-freq schedule(s); caller must order candidates by descending priority",
		e.Candidate.StartsAt, e.Candidate.Schedule.Freq, len(e.Conflicting),
	)
}

// prune performs greedy left-to-right admission: a candidate is
// accepted iff it conflicts with nothing already accepted, judged at
// nominal starts. existing seeds the accepted set and is never itself
// rejected.
func prune(existing []ScheduledInterval, candidates []Plan) []Plan {
	accepted := make([]ScheduledInterval, len(existing), len(existing)+len(candidates))
	copy(accepted, existing)

	admitted := make([]Plan, 0, len(candidates))
	for _, candidate := range candidates {
		si := candidate.scheduledInterval()
		if conflictsWithAny(si, accepted) {
			continue
		}
		accepted = append(accepted, si)
		admitted = append(admitted, candidate)
	}
	return admitted
}

// pruneStrict is prune's usurpation-checking twin, used by RunStrict.
// It returns the first usurpation it detects, in candidate order.
func pruneStrict(existing []ScheduledInterval, candidates []Plan) ([]Plan, error) {
	accepted := make([]ScheduledInterval, len(existing), len(existing)+len(candidates))
	copy(accepted, existing)

	admitted := make([]Plan, 0, len(candidates))
	for _, candidate := range candidates {
		si := candidate.scheduledInterval()
		conflicting, err := conflictsWithFailOnUsurp(si, accepted)
		if err != nil {
			return nil, err
		}
		if len(conflicting) > 0 {
			continue
		}
		accepted = append(accepted, si)
		admitted = append(admitted, candidate)
	}
	return admitted, nil
}

// conflictsWithAny reports whether si conflicts with any element of
// scheds.
func conflictsWithAny(si ScheduledInterval, scheds []ScheduledInterval) bool {
	for _, s := range scheds {
		if conflicts(si, s) {
			return true
		}
	}
	return false
}

// conflictsWithFailOnUsurp computes C, the subset of scheds that si
// conflicts with, and raises a *UsurpationError if C is non-empty but
// every member of C has a strictly lower Freq than si — i.e. si would
// be rejected solely because of lower-importance schedules, which
// violates the caller's priority-ordering contract. It otherwise
// returns C unchanged so the caller can treat non-empty C as "reject".
func conflictsWithFailOnUsurp(si ScheduledInterval, scheds []ScheduledInterval) ([]ScheduledInterval, error) {
	var c []ScheduledInterval
	for _, s := range scheds {
		if conflicts(si, s) {
			c = append(c, s)
		}
	}
	if len(c) == 0 {
		return nil, nil
	}

	hasAtLeastAsImportant := false
	for _, s := range c {
		if s.Schedule.Freq >= si.Schedule.Freq {
			hasAtLeastAsImportant = true
			break
		}
	}
	if !hasAtLeastAsImportant {
		return c, &UsurpationError{
			Candidate:   Plan{Schedule: si.Schedule, StartsAt: si.StartsAt, Duration: si.Duration},
			Conflicting: c,
		}
	}
	return c, nil
}
