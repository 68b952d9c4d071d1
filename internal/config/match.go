package config

type MatchConfig struct {
	Battle BattleDef `yaml:"battle"`
	Team1  TeamDef   `yaml:"team1"`
	Team2  TeamDef   `yaml:"team2"`
}

type BattleDef struct {
	Verbosity       int  `yaml:"verbosity"`
	MaxTurns        int  `yaml:"max_turns"`
	LevelOnKnockout bool `yaml:"level_on_knockout"`
}

type TeamDef struct {
	Mode         string   `yaml:"mode"`      // front | back | optimise
	Selection    string   `yaml:"selection"` // random | manual | provided
	SortKey      string   `yaml:"sort_key"`  // hp | attack | defense | speed | level
	Provided     []string `yaml:"provided"`
	Level        int      `yaml:"level"`
	ComplexStats bool     `yaml:"complex_stats"`
}

// DefaultMatch pits two randomly selected queue teams against each other.
func DefaultMatch() *MatchConfig {
	team := TeamDef{Mode: "back", Selection: "random", SortKey: "hp", Level: 1}
	return &MatchConfig{
		Battle: BattleDef{MaxTurns: 10000},
		Team1:  team,
		Team2:  team,
	}
}
