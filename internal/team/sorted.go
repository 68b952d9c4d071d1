package team

import (
	"sort"

	"monster_arena/internal/monster"
)

type rankedEntry struct {
	m   *monster.Monster
	key float64
}

// sorted is the OPTIMISE discipline. Entries are kept by descending key so
// the first-ranked (smallest key) entry sits at the tail and retrieve is O(1).
// Equal keys are served in insertion order.
type sorted struct {
	entries   []rankedEntry
	keyOf     func(*monster.Monster) float64
	ascending bool
}

func newSorted(keyOf func(*monster.Monster) float64) *sorted {
	return &sorted{entries: make([]rankedEntry, 0, TeamLimit), keyOf: keyOf}
}

// rank negates the sort value so the highest value is served first, unless
// the ascending toggle is set.
func (s *sorted) rank(m *monster.Monster) float64 {
	key := -s.keyOf(m)
	if s.ascending {
		key = -key
	}
	return key
}

func (s *sorted) add(m *monster.Monster) error {
	if len(s.entries) >= TeamLimit {
		return errFull()
	}
	key := s.rank(m)
	i := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].key <= key })
	s.entries = append(s.entries, rankedEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = rankedEntry{m: m, key: key}
	return nil
}

func (s *sorted) retrieve() (*monster.Monster, error) {
	n := len(s.entries)
	if n == 0 {
		return nil, errEmpty()
	}
	e := s.entries[n-1]
	s.entries[n-1] = rankedEntry{}
	s.entries = s.entries[:n-1]
	return e.m, nil
}

// special negates every key and flips the ascending toggle, turning max-first
// into min-first (and back). Runs of equal keys keep their insertion order.
func (s *sorted) special() {
	for i := range s.entries {
		s.entries[i].key = -s.entries[i].key
	}
	reverseEntries(s.entries)
	for start := 0; start < len(s.entries); {
		end := start + 1
		for end < len(s.entries) && s.entries[end].key == s.entries[start].key {
			end++
		}
		reverseEntries(s.entries[start:end])
		start = end
	}
	s.ascending = !s.ascending
}

func reverseEntries(es []rankedEntry) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}

func (s *sorted) size() int { return len(s.entries) }

// clear also resets the ascending toggle.
func (s *sorted) clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.ascending = false
}

func (s *sorted) list() []*monster.Monster {
	out := make([]*monster.Monster, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i].m)
	}
	return out
}
