package planner

import "sort"

// MaxStaggerMS is the largest offset, in milliseconds, that stagger
// assignment may add to a plan's nominal start. 40 seconds keeps the
// shift under a minute (preserving at-least-minute spacing from
// tourneys starting the following minute) while matching or exceeding
// the spread of the uniform-random [0, 60) second jitter it replaces.
const MaxStaggerMS = 40_000

// starts is a small ordered multiset of Instant, backed by a sorted
// slice. Stagger's working sets are tens to low hundreds of elements,
// where a sorted slice with binary-search insertion beats the
// bookkeeping of a balanced tree.
type starts []Instant

func newStarts(existing []Tournament) starts {
	s := make(starts, len(existing))
	for i, t := range existing {
		s[i] = t.StartsAt
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// insert adds at to the set, keeping it sorted.
func (s *starts) insert(at Instant) {
	i := sort.Search(len(*s), func(i int) bool { return (*s)[i] >= at })
	*s = append(*s, 0)
	copy((*s)[i+1:], (*s)[i:])
	(*s)[i] = at
}

// offsetsWithin returns, as ascending millisecond offsets from t0, every
// element of s in [t0, t0+MaxStaggerMS].
func (s starts) offsetsWithin(t0 Instant) []int64 {
	hi := t0.Add(MaxStaggerMS)
	lo := sort.Search(len(s), func(i int) bool { return s[i] >= t0 })
	hiIdx := sort.Search(len(s), func(i int) bool { return s[i] > hi })

	offsets := make([]int64, 0, hiIdx-lo)
	for _, at := range s[lo:hiIdx] {
		offsets = append(offsets, at.Sub(t0))
	}
	return offsets
}

// stagger assigns each admitted plan, in input order, a start shifted
// by up to MaxStaggerMS from its nominal start, chosen to maximize
// spacing from the actual starts of existing tournaments and of
// previously staggered plans. It returns plans in the same order with
// StartsAt replaced.
func stagger(existing []Tournament, admitted []Plan) []Plan {
	s := newStarts(existing)

	out := make([]Plan, len(admitted))
	for i, p := range admitted {
		t0 := p.StartsAt
		offsets := s.offsetsWithin(t0)
		delta := findMinimalGoodSlot(0, MaxStaggerMS, offsets)

		adjusted := t0.Add(Duration(delta))
		out[i] = p.withStartsAt(adjusted)
		s.insert(adjusted)
	}
	return out
}
