package config

// Xtaskfile represents the structure of the xtask.yaml configuration file.
type Xtaskfile struct {
	Tool        string            `yaml:"tool"`
	Target      string            `yaml:"target"`
	Profile     string            `yaml:"profile"`
	Package     string            `yaml:"package"`
	Features    []string          `yaml:"features"`
	Environment map[string]string `yaml:"environment"`
}
