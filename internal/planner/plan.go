package planner

// Run is the production entry point: it prunes candidates against
// existing and previously admitted schedules, then staggers the
// survivors' start times, and returns them in their original relative
// order. It never errors; plans it cannot admit are silently dropped.
//
// Run is named Run rather than Plan because Plan already names the
// candidate type.
func Run(existing []Tournament, candidates []Plan) []Plan {
	admitted := prune(existingScheduledIntervals(existing), candidates)
	return stagger(existing, admitted)
}

// RunStrict has identical semantics to Run, but uses the
// usurpation-detecting pruner: it returns a *UsurpationError if a
// candidate would be rejected solely by schedules of strictly lower
// Freq, which indicates the caller handed candidates in the wrong
// priority order.
func RunStrict(existing []Tournament, candidates []Plan) ([]Plan, error) {
	admitted, err := pruneStrict(existingScheduledIntervals(existing), candidates)
	if err != nil {
		return nil, err
	}
	return stagger(existing, admitted), nil
}

// existingScheduledIntervals builds the nominal-start ScheduledInterval
// view of every existing tournament that carries a Schedule. Tournaments
// with no Schedule are skipped here — they still feed stagger spacing,
// just not pruning.
func existingScheduledIntervals(existing []Tournament) []ScheduledInterval {
	out := make([]ScheduledInterval, 0, len(existing))
	for _, t := range existing {
		if si, ok := existingScheduledInterval(t); ok {
			out = append(out, si)
		}
	}
	return out
}
