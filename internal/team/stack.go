package team

import "monster_arena/internal/monster"

// stack is the FRONT discipline: last in, first out.
type stack struct {
	items []*monster.Monster
}

func newStack() *stack { return &stack{items: make([]*monster.Monster, 0, TeamLimit)} }

func (s *stack) add(m *monster.Monster) error {
	if len(s.items) >= TeamLimit {
		return errFull()
	}
	s.items = append(s.items, m)
	return nil
}

func (s *stack) retrieve() (*monster.Monster, error) {
	n := len(s.items)
	if n == 0 {
		return nil, errEmpty()
	}
	m := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return m, nil
}

// special reverses the top three members, or the whole stack when it holds
// fewer than three.
func (s *stack) special() {
	n := len(s.items)
	if n >= 3 {
		reverse(s.items[n-3:])
		return
	}
	reverse(s.items)
}

func (s *stack) size() int { return len(s.items) }

func (s *stack) clear() {
	clear(s.items)
	s.items = s.items[:0]
}

func (s *stack) list() []*monster.Monster {
	out := make([]*monster.Monster, len(s.items))
	for i, m := range s.items {
		out[len(s.items)-1-i] = m
	}
	return out
}
