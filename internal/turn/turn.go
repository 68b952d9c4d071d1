// Package turn defines the actions a team can take and the battle results.
// It has no dependencies so both teams and the battle engine can share it.
package turn

type Action int

const (
	Attack Action = iota + 1
	Swap
	Special
)

func (a Action) String() string {
	switch a {
	case Attack:
		return "ATTACK"
	case Swap:
		return "SWAP"
	case Special:
		return "SPECIAL"
	}
	return "UNKNOWN"
}

// Result is None while the battle is running; any other value is terminal.
type Result int

const (
	None Result = iota
	Team1
	Team2
	Draw
)

func (r Result) String() string {
	switch r {
	case None:
		return "NONE"
	case Team1:
		return "TEAM1"
	case Team2:
		return "TEAM2"
	case Draw:
		return "DRAW"
	}
	return "UNKNOWN"
}

func (r Result) Done() bool { return r != None }

// MarshalText lets results appear by name in JSON reports.
func (r Result) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
