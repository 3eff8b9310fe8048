package config

import (
	"fmt"

	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/logger"
	"github.com/skillsenselab/enginekit/validation"
)

// ServiceConfig contains the configuration every engine-hosting service
// needs. Projects extend it by embedding:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	}
type ServiceConfig struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Engine      engine.Config `yaml:"engine" mapstructure:"engine"`
}

// GetServiceConfig returns the base ServiceConfig. Embedding structs get the
// method promoted, so they satisfy interfaces keyed on it automatically.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults fills unset fields. Embedding structs should override and
// call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Engine.ApplyDefaults()
}

// Validate checks the base configuration fields. Embedding structs should
// override and call c.ServiceConfig.Validate() first.
func (c *ServiceConfig) Validate() error {
	v := validation.New().
		Required("config.name", c.Name).
		Required("config.environment", c.Environment).
		OneOf("config.environment", c.Environment, []string{"development", "staging", "production"})
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("config.engine: %w", err)
	}
	return nil
}
