package combat

import (
	"encoding/json"

	"monster_arena/internal/turn"
)

type SimResult struct {
	ID         string      `json:"id"`
	Result     turn.Result `json:"result"`
	Turns      int         `json:"turns"`
	Team1      string      `json:"team1"`
	Team2      string      `json:"team2"`
	Survivors1 int         `json:"survivors_team1"`
	Survivors2 int         `json:"survivors_team2"`
	Events     []Event     `json:"events,omitempty"`
}

// RunSingle plays one battle. With record set, every event is kept in the
// result (and still forwarded to b.Emit).
func RunSingle(b *Battle, team1, team2 Side, record bool) (SimResult, error) {
	var events []Event
	if record {
		forward := b.Emit
		b.Emit = func(ev Event) {
			events = append(events, ev)
			if forward != nil {
				forward(ev)
			}
		}
		defer func() { b.Emit = forward }()
	}

	res := SimResult{ID: b.ID, Team1: team1.String(), Team2: team2.String()}
	result, err := b.Battle(team1, team2)
	if err != nil {
		return res, err
	}
	res.Result = result
	res.Turns = b.Turn()
	out1, out2 := b.Active()
	res.Survivors1 = survivors(team1, out1 != nil && out1.Alive())
	res.Survivors2 = survivors(team2, out2 != nil && out2.Alive())
	res.Events = events
	return res, nil
}

func survivors(s Side, activeAlive bool) int {
	n := s.Size()
	if activeAlive {
		n++
	}
	return n
}

type Summary struct {
	Runs      int     `json:"runs"`
	Team1Wins int     `json:"team1_wins"`
	Team2Wins int     `json:"team2_wins"`
	Draws     int     `json:"draws"`
	Team1Rate float64 `json:"team1_win_rate"`
	Team2Rate float64 `json:"team2_win_rate"`
	DrawRate  float64 `json:"draw_rate"`
	AvgTurns  float64 `json:"avg_turns"`
}

// Add folds one result into the summary.
func (s *Summary) Add(r SimResult) {
	s.Runs++
	switch r.Result {
	case turn.Team1:
		s.Team1Wins++
	case turn.Team2:
		s.Team2Wins++
	case turn.Draw:
		s.Draws++
	}
	// running mean
	s.AvgTurns += (float64(r.Turns) - s.AvgTurns) / float64(s.Runs)
	n := float64(s.Runs)
	s.Team1Rate = float64(s.Team1Wins) / n
	s.Team2Rate = float64(s.Team2Wins) / n
	s.DrawRate = float64(s.Draws) / n
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
