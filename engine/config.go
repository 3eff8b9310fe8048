package engine

import (
	"github.com/skillsenselab/enginekit/validation"
)

// Config contains engine loader configuration.
type Config struct {
	// Root is the directory holding one artifact directory per family.
	Root string `yaml:"root" mapstructure:"root" validate:"required"`
	// ArtifactName overrides the engine binary file name.
	ArtifactName string `yaml:"artifact_name" mapstructure:"artifact_name"`
	// Preload lists provider names the loader component resolves at
	// startup instead of on first use.
	Preload []string `yaml:"preload" mapstructure:"preload"`
}

// ApplyDefaults applies default values to engine configuration.
func (c *Config) ApplyDefaults() {
	if c.ArtifactName == "" {
		c.ArtifactName = DefaultArtifactName
	}
}

// Validate validates engine configuration.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	v := validation.New()
	for _, name := range c.Preload {
		v.Required("preload", name).Provider("preload", name)
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
