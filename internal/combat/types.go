package combat

import (
	"monster_arena/internal/monster"
	"monster_arena/internal/turn"
)

// Event is one entry of a battle log. T is the turn number; 0 is setup.
type Event struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EventBattleStart = "BattleStart"
	EventAction      = "Action"
	EventSwap        = "Swap"
	EventSpecial     = "Special"
	EventHit         = "Hit"
	EventFaint       = "Faint"
	EventSendOut     = "SendOut"
	EventLevelUp     = "LevelUp"
	EventEvolve      = "Evolve"
	EventTurnLimit   = "TurnLimit"
	EventResult      = "Result"
)

// Side is what the engine needs from a team.
type Side interface {
	Add(m *monster.Monster) error
	Retrieve() (*monster.Monster, error)
	Special()
	Size() int
	ChooseAction(self, opponent *monster.Monster) turn.Action
	String() string
}
