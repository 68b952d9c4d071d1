package combat

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"monster_arena/internal/config"
	"monster_arena/internal/monster"
	"monster_arena/internal/turn"
)

// corner is one side of the battle: its team and the monster currently out.
type corner struct {
	label  string
	team   Side
	active *monster.Monster
	wins   turn.Result
}

// Battle runs one match between two sides. It is not safe for concurrent use;
// each battle owns both teams until it returns.
type Battle struct {
	ID              string
	Verbosity       int
	MaxTurns        int // 0 means no limit
	LevelOnKnockout bool
	Logger          *zap.Logger
	Emit            func(Event)

	turnNumber int
	c1, c2     *corner
}

func NewBattle(cfg config.BattleDef, logger *zap.Logger, emit func(Event)) *Battle {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Battle{
		ID:              uuid.NewString(),
		Verbosity:       cfg.Verbosity,
		MaxTurns:        cfg.MaxTurns,
		LevelOnKnockout: cfg.LevelOnKnockout,
		Logger:          logger,
		Emit:            emit,
	}
}

func (b *Battle) Turn() int { return b.turnNumber }

// Active returns the monsters currently out for team 1 and team 2.
func (b *Battle) Active() (*monster.Monster, *monster.Monster) {
	if b.c1 == nil || b.c2 == nil {
		return nil, nil
	}
	return b.c1.active, b.c2.active
}

func (b *Battle) emit(typ string, payload map[string]any) {
	if b.Emit != nil {
		b.Emit(Event{T: b.turnNumber, Type: typ, Payload: payload})
	}
}

func (b *Battle) logf(level int, msg string, fields ...zap.Field) {
	if b.Verbosity < level {
		return
	}
	b.Logger.Info(msg, append(fields, zap.String("battle_id", b.ID), zap.Int("turn", b.turnNumber))...)
}

// Start binds the two sides and sends out the first monster of each.
func (b *Battle) Start(team1, team2 Side) error {
	if b.Logger == nil {
		b.Logger = zap.NewNop()
	}
	b.turnNumber = 0
	b.logf(1, "battle started", zap.Stringer("team1", team1), zap.Stringer("team2", team2))
	b.emit(EventBattleStart, map[string]any{"team1": team1.String(), "team2": team2.String()})

	b.c1 = &corner{label: "team1", team: team1, wins: turn.Team1}
	b.c2 = &corner{label: "team2", team: team2, wins: turn.Team2}
	for _, c := range []*corner{b.c1, b.c2} {
		if err := b.sendOut(c); err != nil {
			return err
		}
	}
	return nil
}

// Battle processes turns until the match is decided. Container errors abort
// the battle.
func (b *Battle) Battle(team1, team2 Side) (turn.Result, error) {
	if err := b.Start(team1, team2); err != nil {
		return turn.None, err
	}

	result := turn.None
	for !result.Done() {
		if b.MaxTurns > 0 && b.turnNumber >= b.MaxTurns {
			b.emit(EventTurnLimit, map[string]any{"max_turns": b.MaxTurns})
			b.logf(1, "turn limit reached", zap.Int("max_turns", b.MaxTurns))
			result = turn.Draw
			break
		}
		var err error
		if result, err = b.ProcessTurn(); err != nil {
			return turn.None, fmt.Errorf("turn %d: %w", b.turnNumber, err)
		}
	}

	b.emit(EventResult, map[string]any{"result": result.String(), "turns": b.turnNumber})
	b.logf(1, "battle finished", zap.Stringer("result", result))
	return result, nil
}

// ProcessTurn resolves one turn. Team 1's swap or special takes the turn's
// non-attack slot; team 2's is only considered when team 1 attacks. Damage is
// exchanged only when both sides attack.
func (b *Battle) ProcessTurn() (turn.Result, error) {
	b.turnNumber++
	c1, c2 := b.c1, b.c2
	a1 := c1.team.ChooseAction(c1.active, c2.active)
	a2 := c2.team.ChooseAction(c2.active, c1.active)
	b.emit(EventAction, map[string]any{"team1": a1.String(), "team2": a2.String()})
	b.logf(2, "actions chosen",
		zap.Stringer("team1_action", a1), zap.Stringer("team1_active", c1.active),
		zap.Stringer("team2_action", a2), zap.Stringer("team2_active", c2.active))

	var err error
	switch {
	case a1 == turn.Swap:
		err = b.swap(c1)
	case a1 == turn.Special:
		err = b.special(c1)
	case a2 == turn.Swap:
		err = b.swap(c2)
	case a2 == turn.Special:
		err = b.special(c2)
	}
	if err != nil {
		return turn.None, err
	}
	if a1 != turn.Attack || a2 != turn.Attack {
		return turn.None, nil
	}

	s1, s2 := c1.active.Speed(), c2.active.Speed()
	switch {
	case s1 > s2:
		return b.strike(c1, c2)
	case s1 < s2:
		return b.strike(c2, c1)
	}
	return b.trade()
}

func (b *Battle) swap(c *corner) error {
	if err := c.team.Add(c.active); err != nil {
		return err
	}
	b.emit(EventSwap, map[string]any{"side": c.label, "monster": c.active.Name()})
	return b.sendOut(c)
}

func (b *Battle) special(c *corner) error {
	if err := c.team.Add(c.active); err != nil {
		return err
	}
	c.team.Special()
	b.emit(EventSpecial, map[string]any{"side": c.label, "team": c.team.String()})
	b.logf(3, "special used", zap.String("side", c.label), zap.Stringer("team", c.team))
	return b.sendOut(c)
}

func (b *Battle) sendOut(c *corner) error {
	m, err := c.team.Retrieve()
	if err != nil {
		return fmt.Errorf("send out %s: %w", c.label, err)
	}
	c.active = m
	b.emit(EventSendOut, map[string]any{"side": c.label, "monster": m.Name(), "hp": m.HP(), "level": m.Level()})
	b.logf(3, "monster sent out", zap.String("side", c.label), zap.Stringer("monster", m))
	return nil
}

func (b *Battle) hit(att, def *corner, dmg float64) bool {
	fainted := def.active.Damage(dmg)
	b.emit(EventHit, map[string]any{
		"attacker": att.active.Name(), "defender": def.active.Name(),
		"dmg": dmg, "hp": def.active.HP(), "side": att.label,
	})
	b.logf(3, "hit",
		zap.String("side", att.label), zap.Stringer("attacker", att.active),
		zap.Stringer("defender", def.active), zap.Float64("damage", dmg))
	return fainted
}

// strike is the faster monster attacking alone.
func (b *Battle) strike(att, def *corner) (turn.Result, error) {
	if !b.hit(att, def, CalcDamage(att.active, def.active)) {
		return turn.None, nil
	}
	return b.knockout(att, def)
}

// trade resolves equal speed: both damages use pre-damage stats, then both
// sides check for fainting.
func (b *Battle) trade() (turn.Result, error) {
	c1, c2 := b.c1, b.c2
	d1 := CalcDamage(c1.active, c2.active)
	d2 := CalcDamage(c2.active, c1.active)
	fainted2 := b.hit(c1, c2, d1)
	fainted1 := b.hit(c2, c1, d2)

	switch {
	case fainted1 && fainted2:
		b.faint(c1)
		b.faint(c2)
		empty1, empty2 := c1.team.Size() <= 0, c2.team.Size() <= 0
		switch {
		case empty1 && empty2:
			return turn.Draw, nil
		case empty1:
			return turn.Team2, nil
		case empty2:
			return turn.Team1, nil
		}
		if err := b.sendOut(c1); err != nil {
			return turn.None, err
		}
		return turn.None, b.sendOut(c2)
	case fainted2:
		return b.knockout(c1, c2)
	case fainted1:
		return b.knockout(c2, c1)
	}
	return turn.None, nil
}

func (b *Battle) faint(c *corner) {
	b.emit(EventFaint, map[string]any{"side": c.label, "monster": c.active.Name()})
	b.logf(3, "monster fainted", zap.String("side", c.label), zap.Stringer("monster", c.active))
}

// knockout handles def's active monster fainting to att's.
func (b *Battle) knockout(att, def *corner) (turn.Result, error) {
	b.faint(def)
	b.reward(att)
	if def.team.Size() <= 0 {
		return att.wins, nil
	}
	return turn.None, b.sendOut(def)
}

// reward levels up the monster that scored a knockout and evolves it when it
// becomes ready. Only active with LevelOnKnockout.
func (b *Battle) reward(c *corner) {
	if !b.LevelOnKnockout {
		return
	}
	c.active.LevelUp()
	b.emit(EventLevelUp, map[string]any{"side": c.label, "monster": c.active.Name(), "level": c.active.Level()})
	if !c.active.ReadyToEvolve() {
		return
	}
	from := c.active.Name()
	c.active = c.active.Evolve()
	b.emit(EventEvolve, map[string]any{"side": c.label, "from": from, "to": c.active.Name()})
	b.logf(2, "monster evolved", zap.String("side", c.label), zap.String("from", from), zap.Stringer("to", c.active))
}
