package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Particles - drag to launch, Space: animation, P: physics, R: reseed, Esc/Q: quit"

	// Simulation parameters
	TickRate        = 60
	ParticleCount   = 100
	Gravity         = 500.0
	MaxTickInterval = 1.0
	InitialSpeed    = 100.0
	MaxInitialMass  = 5.0
	LaunchMass      = 4.0
	LaunchScale     = 1.0

	// Sound parameters
	SampleRate = 44100
	Volume     = -1.5
)

// Config is the runtime configuration. Every field has a default; an INI
// file only needs the keys it overrides:
//
//	[simulation]
//	particles = 150
//	gravity = 800
type Config struct {
	Window struct {
		Width     int
		Height    int
		Title     string
		Resizable bool
	}
	Simulation struct {
		Particles       int
		Seed            int64
		TickRate        int     `gcfg:"tick-rate"`
		Gravity         float64
		MaxTickInterval float64 `gcfg:"max-tick-interval"`
		InitialSpeed    float64 `gcfg:"initial-speed"`
		MaxInitialMass  float64 `gcfg:"max-initial-mass"`
		LaunchMass      float64 `gcfg:"launch-mass"`
		LaunchScale     float64 `gcfg:"launch-scale"`
	}
	Render struct {
		Stats    bool
		Backdrop bool
	}
	Sound struct {
		Enabled    bool
		SampleRate int `gcfg:"sample-rate"`
		Volume     float64
	}
}

func Default() Config {
	var c Config
	c.Window.Width = WindowWidth
	c.Window.Height = WindowHeight
	c.Window.Title = WindowTitle
	c.Window.Resizable = true

	c.Simulation.Particles = ParticleCount
	c.Simulation.TickRate = TickRate
	c.Simulation.Gravity = Gravity
	c.Simulation.MaxTickInterval = MaxTickInterval
	c.Simulation.InitialSpeed = InitialSpeed
	c.Simulation.MaxInitialMass = MaxInitialMass
	c.Simulation.LaunchMass = LaunchMass
	c.Simulation.LaunchScale = LaunchScale

	c.Render.Stats = true
	c.Render.Backdrop = true

	c.Sound.Enabled = true
	c.Sound.SampleRate = SampleRate
	c.Sound.Volume = Volume
	return c
}

// Load returns the defaults overlaid with the file at path. An empty path
// yields the defaults. Unknown keys are tolerated.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); err != nil {
		return c, errors.Wrap(err, "config")
	}
	if err := gcfg.FatalOnly(gcfg.ReadFileInto(&c, path)); err != nil {
		return c, errors.Wrapf(err, "config: parse %s", path)
	}
	return c, c.Validate()
}

// Validate reports the first setting that would make the simulation
// misbehave.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return errors.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Simulation.Particles < 0:
		return errors.Errorf("config: particles %d must not be negative", c.Simulation.Particles)
	case c.Simulation.TickRate <= 0:
		return errors.Errorf("config: tick-rate %d must be positive", c.Simulation.TickRate)
	case c.Simulation.Gravity < 0:
		return errors.Errorf("config: gravity %g must not be negative", c.Simulation.Gravity)
	case c.Simulation.MaxTickInterval <= 0:
		return errors.Errorf("config: max-tick-interval %g must be positive", c.Simulation.MaxTickInterval)
	case c.Simulation.MaxInitialMass <= 0 || c.Simulation.LaunchMass <= 0:
		return errors.New("config: masses must be positive")
	case c.Sound.Enabled && c.Sound.SampleRate <= 0:
		return errors.Errorf("config: sample-rate %d must be positive", c.Sound.SampleRate)
	}
	return nil
}
