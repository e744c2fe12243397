package config

// Config is the root configuration structure
type Config struct {
	Agent    AgentConfig    `yaml:"agent"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig contains scan settings
type AnalysisConfig struct {
	// Extensions excluded from directory scans, leading dot included,
	// compared literally and case-sensitively (e.g. ".txt", ".log").
	ExcludeExtensions []string `yaml:"exclude_extensions"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Format    string `yaml:"format"` // text, json, markdown
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
}
