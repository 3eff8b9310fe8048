// Package config loads and validates configuration for services embedding
// the engine loader.
//
// Configuration comes from three layers, later layers overriding earlier
// ones: a YAML config file, a .env file, and process environment variables.
// Viper handles the merge; godotenv loads the .env file.
//
// Services embed ServiceConfig in their own config structs:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load("query-service", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config
