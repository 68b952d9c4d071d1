package config

type SpeciesConfig struct {
	Species []SpeciesDef `yaml:"species"`
}

type SpeciesDef struct {
	ID          string       `yaml:"id"`
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Element     string       `yaml:"element"`
	Spawnable   bool         `yaml:"spawnable"`
	EvolvesTo   string       `yaml:"evolves_to"`
	Simple      StatTableDef `yaml:"simple"`
	Complex     StatTableDef `yaml:"complex"`
}

// StatTableDef maps a level to stats: Levels[level] when present, otherwise
// Base + Growth*(level-1).
type StatTableDef struct {
	Base   StatsDef         `yaml:"base"`
	Growth StatsDef         `yaml:"growth"`
	Levels map[int]StatsDef `yaml:"levels"`
}

type StatsDef struct {
	MaxHP   int `yaml:"max_hp"`
	Attack  int `yaml:"attack"`
	Defense int `yaml:"defense"`
	Speed   int `yaml:"speed"`
}
