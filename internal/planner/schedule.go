package planner

// Schedule is the planning descriptor for a tournament: its cadence,
// speed, variant, entry conditions, and nominal start.
type Schedule struct {
	Freq       Freq
	Speed      Speed
	Variant    Variant
	Conditions Conditions
	AtInstant  Instant
}

// SameSpeed reports whether s and other have the exact same Speed.
func (s Schedule) SameSpeed(other Schedule) bool {
	return s.Speed.SameSpeed(other.Speed)
}

// SimilarSpeed reports whether s and other have the same or an
// adjacent Speed bucket.
func (s Schedule) SimilarSpeed(other Schedule) bool {
	return s.Speed.SimilarSpeed(other.Speed)
}

// SimilarConditions reports whether s and other's Conditions are
// equivalent up to the domain's notion of population overlap.
func (s Schedule) SimilarConditions(other Schedule) bool {
	return s.Conditions.Similar(other.Conditions)
}

// HasMaxRating reports whether s restricts entrants by a maximum
// rating.
func (s Schedule) HasMaxRating() bool {
	return s.Conditions.HasMaxRating()
}
