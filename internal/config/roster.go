package config

type RosterConfig struct {
	Fighters []FighterDef `yaml:"fighters"`
}

type FighterDef struct {
	Kind    string `yaml:"kind"`
	Health  int    `yaml:"health"`
	Damage  int    `yaml:"damage"`
	Charges int    `yaml:"charges"`
}
