package planner

// scheduleDailyOverlapMins is the width of the window, in minutes,
// within which two same-speed daily-or-better schedules of the same
// variant are considered mutually conflicting. 11.5 hours is wide
// enough that two dailies placed at opposite hours of the day (e.g.
// 00:00 and 11:00) still only cancel one of the pair, but narrow
// enough that near-duplicate placements don't both survive. The
// window compares start times only, independent of duration; see
// DESIGN.md (open question 2). The asymmetry this creates with
// higher-importance schedules placed nearly opposite a daily is
// accepted behavior, not a bug.
const scheduleDailyOverlapMins = 690

const scheduleDailyOverlapMs = scheduleDailyOverlapMins * 60 * 1000

// conflicts reports whether a and b clash and therefore cannot both be
// admitted. It is pure and symmetric: conflicts(a, b) == conflicts(b, a)
// for all a, b.
func conflicts(a, b ScheduledInterval) bool {
	if !a.Schedule.Variant.Equal(b.Schedule.Variant) {
		return false
	}

	if a.Schedule.Freq.IsDailyOrBetter() && b.Schedule.Freq.IsDailyOrBetter() && a.Schedule.SameSpeed(b.Schedule) {
		diff := a.StartsAt.Sub(b.StartsAt)
		if diff < 0 {
			diff = -diff
		}
		return diff < scheduleDailyOverlapMs
	}

	sharesPopulation := a.Schedule.Variant.Exotic() ||
		a.Schedule.HasMaxRating() || b.Schedule.HasMaxRating() ||
		a.Schedule.SimilarSpeed(b.Schedule)
	if !sharesPopulation {
		return false
	}
	if !a.Schedule.SimilarConditions(b.Schedule) {
		return false
	}
	return overlaps(a.StartsAt, a.EndsAt(), b.StartsAt, b.EndsAt())
}
