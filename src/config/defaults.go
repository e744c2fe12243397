package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "ratio-bot",
			Version:     "1.0.0",
			Description: "Comment-to-code ratio analyzer",
		},
		Analysis: AnalysisConfig{
			ExcludeExtensions: []string{},
		},
		Output: OutputConfig{
			Format:    "text",
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:            "info",
			IncludeTimestamp: true,
		},
	}
}
