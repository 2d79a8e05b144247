package main

import (
	goflag "flag"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/iburimskiy/particle-sandbox/internal/clock"
	"github.com/iburimskiy/particle-sandbox/internal/config"
	"github.com/iburimskiy/particle-sandbox/internal/display"
	"github.com/iburimskiy/particle-sandbox/internal/game"
	"github.com/iburimskiy/particle-sandbox/internal/sound"
)

type flags struct {
	config    string
	particles int
	seed      int64
	mute      bool
}

func main() {
	var f flags
	klog.InitFlags(nil)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.StringVarP(&f.config, "config", "c", "", "path to an INI configuration file")
	pflag.IntVarP(&f.particles, "particles", "n", -1, "number of particles to seed (overrides the config file)")
	pflag.Int64Var(&f.seed, "seed", 0, "random seed; 0 picks one from the clock")
	pflag.BoolVar(&f.mute, "mute", false, "disable collision sounds")
	pflag.Parse()
	defer klog.Flush()

	if err := run(f); err != nil {
		klog.Errorf("%v", err)
		if dlgErr := zenity.Error(err.Error(), zenity.Title("Particles"), zenity.ErrorIcon); dlgErr != nil {
			klog.V(1).Infof("error dialog: %v", dlgErr)
		}
		klog.Flush()
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.particles >= 0 {
		cfg.Simulation.Particles = f.particles
	}
	if f.seed != 0 {
		cfg.Simulation.Seed = f.seed
	}
	if f.mute {
		cfg.Sound.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Non-fatal, the simulation runs without sound
	player, err := sound.New(sound.Options{
		Enabled:    cfg.Sound.Enabled,
		SampleRate: cfg.Sound.SampleRate,
		Volume:     cfg.Sound.Volume,
	})
	if err != nil {
		klog.Warningf("audio disabled: %v", err)
	}
	defer player.Stop()

	opts := display.OptionsFrom(cfg)
	opts.Rand = rand.New(rand.NewSource(seed))
	opts.Listener = player
	d := display.New(opts)
	d.Start()
	defer d.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.Simulation.TickRate)

	klog.Infof("starting with %d particles, seed %d, G=%g", len(d.Particles()), seed, cfg.Simulation.Gravity)
	if err := ebiten.RunGame(game.New(d, clock.System{})); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
