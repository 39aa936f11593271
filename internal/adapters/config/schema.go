package config

// Profilefile represents the structure of the wafer.yaml profile file.
type Profilefile struct {
	Version   string       `yaml:"version"`
	OS        string       `yaml:"os"`
	Port      string       `yaml:"port"`
	AppSrc    string       `yaml:"app_src"`
	BuildName string       `yaml:"build_name"`
	LogLevel  string       `yaml:"loglevel"`
	RTable    string       `yaml:"rtable"`
	Toolchain ToolchainDTO `yaml:"toolchain"`
	Flags     []FlagDTO    `yaml:"flags"`
}

// ToolchainDTO overrides the toolchain entry points.
type ToolchainDTO struct {
	Entry            string   `yaml:"entry"`
	Interpreter      []string `yaml:"interpreter"`
	InterpretedEntry string   `yaml:"interpreted_entry"`
}

// FlagDTO is one entry of the flags list. Exactly one field must be set.
type FlagDTO struct {
	Enable  string    `yaml:"enable"`
	Disable string    `yaml:"disable"`
	With    *ValueDTO `yaml:"with"`
	Option  *ValueDTO `yaml:"option"`
}

// ValueDTO is a named flag value.
type ValueDTO struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// SupportedVersion is the profile schema version this loader understands.
const SupportedVersion = "1"
