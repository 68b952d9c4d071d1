package team

import (
	"fmt"

	apperrors "monster_arena/internal/errors"
	"monster_arena/internal/monster"
)

// TeamLimit is the most monsters a team can hold.
const TeamLimit = 6

// roster is the storage discipline behind a Team.
type roster interface {
	add(m *monster.Monster) error
	retrieve() (*monster.Monster, error)
	special()
	size() int
	clear()
	// list returns the members in retrieval order without removing them.
	list() []*monster.Monster
}

func errFull() error {
	return apperrors.WithMetadata(apperrors.CodeFullContainer,
		fmt.Sprintf("team already holds %d monsters", TeamLimit),
		map[string]string{"limit": fmt.Sprint(TeamLimit)})
}

func errEmpty() error {
	return apperrors.New(apperrors.CodeEmptyContainer, "team has no monsters left")
}

func reverse(ms []*monster.Monster) {
	for i, j := 0, len(ms)-1; i < j; i, j = i+1, j-1 {
		ms[i], ms[j] = ms[j], ms[i]
	}
}
