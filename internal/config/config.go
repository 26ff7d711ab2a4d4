package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/faultslip/internal/friction"
)

const (
	DefaultDcLow   = 10.0
	DefaultDcHigh  = 1000.0
	DefaultDcCount = 5
	DefaultMuTZero = 0.55
)

// Config is the yaml run configuration for the CLI. Zero-valued
// physical fields fall back to the friction defaults.
type Config struct {
	A                float64     `yaml:"a"`
	B                float64     `yaml:"b"`
	MuRef            float64     `yaml:"mu_ref"`
	VRef             float64     `yaml:"v_ref"`
	K1               float64     `yaml:"k1"`
	MuTZero          float64     `yaml:"mu_t_zero"`
	Dc               float64     `yaml:"dc"`
	RadiationDamping bool        `yaml:"radiation_damping"`
	TStart           float64     `yaml:"t_start"`
	TFinal           float64     `yaml:"t_final"`
	NumSteps         int         `yaml:"num_steps"`
	Seed             int64       `yaml:"seed"`
	Sweep            SweepConfig `yaml:"sweep"`
}

// SweepConfig is the critical-slip-distance grid for sweep runs.
type SweepConfig struct {
	DcLow  float64 `yaml:"dc_low"`
	DcHigh float64 `yaml:"dc_high"`
	Count  int     `yaml:"count"`
}

func DefaultConfig() *Config {
	p := friction.DefaultParams()
	return &Config{
		A:                p.A,
		B:                p.B,
		MuRef:            p.MuRef,
		VRef:             p.VRef,
		K1:               p.K1,
		MuTZero:          DefaultMuTZero,
		RadiationDamping: p.RadiationDamping,
		TStart:           p.TStart,
		TFinal:           p.TFinal,
		NumSteps:         p.NumSteps,
		Sweep: SweepConfig{
			DcLow:  DefaultDcLow,
			DcHigh: DefaultDcHigh,
			Count:  DefaultDcCount,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params maps the configuration onto model parameters. Dc stays as
// configured; sweep commands substitute their own grid values.
func (c *Config) Params() friction.Params {
	p := friction.DefaultParams()
	if c.A != 0 {
		p.A = c.A
	}
	if c.B != 0 {
		p.B = c.B
	}
	if c.MuRef != 0 {
		p.MuRef = c.MuRef
	}
	if c.VRef != 0 {
		p.VRef = c.VRef
	}
	if c.K1 != 0 {
		p.K1 = c.K1
	}
	if c.NumSteps != 0 {
		p.NumSteps = c.NumSteps
	}
	if c.TFinal != 0 || c.TStart != 0 {
		p.TStart = c.TStart
		p.TFinal = c.TFinal
	}
	p.MuTZero = c.MuTZero
	p.Dc = c.Dc
	p.RadiationDamping = c.RadiationDamping
	return p
}
