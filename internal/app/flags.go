package app

import "flag"

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	Density float64
	Seed    int64
	Scale   int
	TPS     int
	HUD     bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 128, Height: 96, Density: 0.2, Seed: 42, Scale: 2, TPS: 15, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts alive")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per frame pixel")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
}

