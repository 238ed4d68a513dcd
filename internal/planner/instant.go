package planner

// Instant is an absolute point in time with millisecond resolution,
// totally ordered. It is a count of milliseconds since an arbitrary
// but fixed epoch chosen by the caller; the planner never reads a
// clock itself.
type Instant int64

// Duration is a non-negative length of time in milliseconds.
type Duration int64

// Add returns the instant d milliseconds after i.
func (i Instant) Add(d Duration) Instant {
	return i + Instant(d)
}

// Sub returns the signed number of milliseconds between i and j (i - j).
func (i Instant) Sub(j Instant) int64 {
	return int64(i) - int64(j)
}

// Before reports whether i is strictly earlier than j.
func (i Instant) Before(j Instant) bool {
	return i < j
}

// overlaps reports whether the half-open interval [aStart, aEnd) shares
// any instant with [bStart, bEnd).
func overlaps(aStart, aEnd, bStart, bEnd Instant) bool {
	return aStart < bEnd && bStart < aEnd
}
