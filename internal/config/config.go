// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"math"

	validator "gopkg.in/go-playground/validator.v9"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// Шаг симулированного времени за тик (номинальные 60 Гц).
	TickStep = 0.016
	// Приращение угла спавна за тик при RotationSpeed = 1.
	TickAngularStep = 0.05
	MaxDeltaTime    = 0.06

	// Камера 3D-хоста
	CameraFovyDefault  = 50.0
	CameraMinDistance  = 5.0
	CameraMaxDistance  = 30.0
	CameraOrbitSpeed   = 0.02
	CameraAutoRotation = 0.005

	// Сетка терминального и 2D-рендереров: единиц мира на ширину экрана.
	WorldExtent = 24.0

	// HUD
	HUDFontSize     = 18
	HUDLineHeight   = 22
	HUDPadding      = 12
	HUDWidth        = 330
	IndicatorRadius = 9.0
	UIBorderWidth   = 2.0
)

const (
	DefaultRollDuration  = 1.5
	DefaultSpawnInterval = 0.05
	DefaultEntitySize    = 1.0
	DefaultMaxEntities   = 200
	DefaultRotationCount = 4
	DefaultSpawnRadius   = 5.0
	DefaultRotationSpeed = 1.0
	DefaultEasing        = "easeInOutQuad"
	DefaultSpawnPattern  = "circle"
	DefaultShapeKind     = "cube"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	GridColor       = color.RGBA{40, 40, 50, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	OriginColor     = color.RGBA{255, 215, 0, 255}
	PanelColor      = color.RGBA{20, 20, 30, 200}
	UIBorderColor   = color.RGBA{90, 90, 110, 255}
	ActiveColor     = color.RGBA{80, 220, 120, 255}
	InactiveColor   = color.RGBA{220, 80, 80, 255}
)

// Config is the live configuration read by the animator every tick.
// Hosts mutate it only between ticks, through app.Animator.Update.
type Config struct {
	RollDuration    float64 `mapstructure:"roll_duration" validate:"gte=0.5,lte=5"`
	SpawnInterval   float64 `mapstructure:"spawn_interval" validate:"gte=0.05,lte=2"`
	EntitySize      float64 `mapstructure:"entity_size" validate:"gt=0"`
	MaxEntities     int     `mapstructure:"max_entities" validate:"gte=1,lte=200"`
	RotationCount   int     `mapstructure:"rotation_count" validate:"gte=1,lte=10"`
	SpawningEnabled bool    `mapstructure:"spawning_enabled"`
	SpawnRadius     float64 `mapstructure:"spawn_radius" validate:"gte=3,lte=10"`
	RotationSpeed   float64 `mapstructure:"rotation_speed" validate:"gte=0.1,lte=5"`
	Clockwise       bool    `mapstructure:"clockwise"`
	RollEasing      string  `mapstructure:"roll_easing" validate:"required"`
	MoveEasing      string  `mapstructure:"move_easing" validate:"required"`
	SpawnPattern    string  `mapstructure:"spawn_pattern" validate:"required"`
	ShapeKind       string  `mapstructure:"shape_kind" validate:"required"`
}

// Default returns the configuration the control panel starts with.
func Default() *Config {
	return &Config{
		RollDuration:    DefaultRollDuration,
		SpawnInterval:   DefaultSpawnInterval,
		EntitySize:      DefaultEntitySize,
		MaxEntities:     DefaultMaxEntities,
		RotationCount:   DefaultRotationCount,
		SpawningEnabled: true,
		SpawnRadius:     DefaultSpawnRadius,
		RotationSpeed:   DefaultRotationSpeed,
		Clockwise:       true,
		RollEasing:      DefaultEasing,
		MoveEasing:      DefaultEasing,
		SpawnPattern:    DefaultSpawnPattern,
		ShapeKind:       DefaultShapeKind,
	}
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Direction returns +1 for clockwise rotation and -1 otherwise.
func (c *Config) Direction() float64 {
	if c.Clockwise {
		return 1
	}
	return -1
}

var validate = validator.New()

// Validate checks numeric ranges against the control-panel bounds.
// Names are checked by the animator against its registries.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return &ConfigError{Field: "config", Err: err}
	}
	return nil
}

// CheckRuntime is the weaker check applied to programmatic changes:
// values only need to keep the tick arithmetic well defined. The
// control-panel ranges of Validate apply to loaded configuration.
func (c *Config) CheckRuntime() error {
	switch {
	case !positive(c.RollDuration):
		return &ConfigError{Field: "roll_duration", Value: fmt.Sprint(c.RollDuration), Err: ErrOutOfRange}
	case !positive(c.SpawnInterval):
		return &ConfigError{Field: "spawn_interval", Value: fmt.Sprint(c.SpawnInterval), Err: ErrOutOfRange}
	case c.MaxEntities < 1:
		return &ConfigError{Field: "max_entities", Value: fmt.Sprint(c.MaxEntities), Err: ErrOutOfRange}
	case !positive(c.EntitySize):
		return &ConfigError{Field: "entity_size", Value: fmt.Sprint(c.EntitySize), Err: ErrOutOfRange}
	case !positive(c.SpawnRadius):
		return &ConfigError{Field: "spawn_radius", Value: fmt.Sprint(c.SpawnRadius), Err: ErrOutOfRange}
	case !positive(c.RotationSpeed):
		// Угол спавна обязан строго расти в сторону Clockwise.
		return &ConfigError{Field: "rotation_speed", Value: fmt.Sprint(c.RotationSpeed), Err: ErrOutOfRange}
	case c.RotationCount < 1:
		return &ConfigError{Field: "rotation_count", Value: fmt.Sprint(c.RotationCount), Err: ErrOutOfRange}
	}
	return nil
}

// positive отсекает ноль, отрицательные значения, NaN и бесконечности.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
