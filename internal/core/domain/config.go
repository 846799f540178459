package domain

// Default values reproduce the historical hardcoded invocation.
const (
	DefaultTool    = "cargo"
	DefaultTarget  = "x86_64-pc-windows-msvc"
	DefaultProfile = string(ProfileRelease)
)

// Toolchain identifies the external build tool and the environment it runs with.
type Toolchain struct {
	// Name is the executable, looked up on PATH unless it contains a path separator.
	Name string
	// Environment overrides entries of the inherited process environment.
	// A PATH entry is prepended to the inherited PATH.
	Environment map[string]string
}

// Config is the resolved xtask configuration.
type Config struct {
	// Tool is the build tool executable, looked up on PATH.
	Tool        string
	Target      string
	Profile     string
	Package     string
	Features    []string
	Environment map[string]string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Tool:    DefaultTool,
		Target:  DefaultTarget,
		Profile: DefaultProfile,
	}
}

// Toolchain returns the toolchain described by the configuration.
func (c *Config) Toolchain() Toolchain {
	return Toolchain{Name: c.Tool, Environment: c.Environment}
}

// Definition builds a BuildDefinition from the configuration.
func (c *Config) Definition() (BuildDefinition, error) {
	return NewBuildDefinition(c.Target, c.Profile,
		WithPackage(c.Package),
		WithFeatures(c.Features...),
	)
}
