package config

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.Log = LogConfig{Level: "off"}
	cfg.UI.GlamourStyle = "notty"
	return cfg
}
