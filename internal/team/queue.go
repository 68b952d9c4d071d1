package team

import "monster_arena/internal/monster"

// queue is the BACK discipline: a fixed-capacity circular buffer.
type queue struct {
	items  [TeamLimit]*monster.Monster
	front  int
	length int
}

func newQueue() *queue { return &queue{} }

func (q *queue) add(m *monster.Monster) error {
	if q.length >= TeamLimit {
		return errFull()
	}
	q.items[(q.front+q.length)%TeamLimit] = m
	q.length++
	return nil
}

func (q *queue) retrieve() (*monster.Monster, error) {
	if q.length == 0 {
		return nil, errEmpty()
	}
	m := q.items[q.front]
	q.items[q.front] = nil
	q.front = (q.front + 1) % TeamLimit
	q.length--
	return m, nil
}

// special splits the queue after ceil(n/2) members and reverses each half in
// place: [1 2 3 4 5] becomes [3 2 1 5 4].
func (q *queue) special() {
	members := q.list()
	mid := (len(members) + 1) / 2
	reverse(members[:mid])
	reverse(members[mid:])
	q.clear()
	for _, m := range members {
		_ = q.add(m)
	}
}

func (q *queue) size() int { return q.length }

func (q *queue) clear() {
	q.items = [TeamLimit]*monster.Monster{}
	q.front = 0
	q.length = 0
}

func (q *queue) list() []*monster.Monster {
	out := make([]*monster.Monster, 0, q.length)
	for i := 0; i < q.length; i++ {
		out = append(out, q.items[(q.front+i)%TeamLimit])
	}
	return out
}
