// internal/config/loader.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. CUBETRAIN_SHAPE_KIND.
const EnvPrefix = "CUBETRAIN"

// NewViper returns a viper instance with every default registered.
// Logger keys live next to the animation keys in the same file.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("roll_duration", d.RollDuration)
	v.SetDefault("spawn_interval", d.SpawnInterval)
	v.SetDefault("entity_size", d.EntitySize)
	v.SetDefault("max_entities", d.MaxEntities)
	v.SetDefault("rotation_count", d.RotationCount)
	v.SetDefault("spawning_enabled", d.SpawningEnabled)
	v.SetDefault("spawn_radius", d.SpawnRadius)
	v.SetDefault("rotation_speed", d.RotationSpeed)
	v.SetDefault("clockwise", d.Clockwise)
	v.SetDefault("roll_easing", d.RollEasing)
	v.SetDefault("move_easing", d.MoveEasing)
	v.SetDefault("spawn_pattern", d.SpawnPattern)
	v.SetDefault("shape_kind", d.ShapeKind)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.dir", "logs/")
	v.SetDefault("logger.rotation", false)
	v.SetDefault("logger.stdout", true)
	v.SetDefault("logger.development", false)
	v.SetDefault("logger.maxsize", 64)
	v.SetDefault("logger.maxage", 7)
	v.SetDefault("logger.maxbackups", 3)

	v.SetDefault("debug.addr", "localhost:6060")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if not empty) on top of the defaults and returns the
// validated configuration together with the viper instance used for it.
func Load(path string) (*Config, *viper.Viper, error) {
	v := NewViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}
