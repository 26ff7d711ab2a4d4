package config

import "sort"

// Presets are named lab setups for the CLI. The "reference" preset
// reproduces the unmodified reference start, which aborts at step 2 by
// construction; the others keep mu(0) below mu_ref so the trajectory
// stays in the numerical domain.
var Presets = map[string]*Config{
	"lab": {
		MuTZero: 0.55, RadiationDamping: true,
		Sweep: SweepConfig{DcLow: 10, DcHigh: 1000, Count: 5},
	},
	"stick-slip": {
		MuTZero: 0.55, Dc: 10, RadiationDamping: true,
	},
	"creep": {
		MuTZero: 0.55, Dc: 1000, RadiationDamping: true,
	},
	"undamped": {
		MuTZero: 0.55, Dc: 10, RadiationDamping: false,
	},
	"reference": {
		Dc: 10, RadiationDamping: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
