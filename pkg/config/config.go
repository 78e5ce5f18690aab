// Package config holds the tunables of a refinement run: the eps sweep
// schedule and the quality cutoffs. Defaults match the established pipeline;
// a YAML file can override them and flags override the file.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/yumyai/rebin/pkg/model"
)

// Params holds every tunable of a run.
type Params struct {
	Domain             string  `yaml:"domain"`
	CompletenessCutoff float64 `yaml:"completeness_cutoff"`
	PurityCutoff       float64 `yaml:"purity_cutoff"`
	EpsStart           float64 `yaml:"eps_start"`
	EpsStep            float64 `yaml:"eps_step"`
	MinPoints          int     `yaml:"min_points"`
	MaxSweepRounds     int     `yaml:"max_sweep_rounds"`
}

// Default returns the established sweep schedule and cutoffs.
func Default() Params {
	return Params{
		Domain:             "bacteria",
		CompletenessCutoff: 90,
		PurityCutoff:       90,
		EpsStart:           0.3,
		EpsStep:            0.1,
		MinPoints:          3,
		MaxSweepRounds:     512,
	}
}

// Load reads a YAML override file on top of the defaults.
func Load(path string) (Params, error) {
	p := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

func (p Params) Validate() error {
	if _, err := model.ExpectedMarkers(p.Domain); err != nil {
		return err
	}
	if p.CompletenessCutoff < 0 || p.CompletenessCutoff > 100 {
		return fmt.Errorf("completeness cutoff %v outside [0,100]", p.CompletenessCutoff)
	}
	if p.PurityCutoff < 0 || p.PurityCutoff > 100 {
		return fmt.Errorf("purity cutoff %v outside [0,100]", p.PurityCutoff)
	}
	if p.EpsStart <= 0 {
		return fmt.Errorf("eps start must be positive, got %v", p.EpsStart)
	}
	if p.EpsStep <= 0 {
		return fmt.Errorf("eps step must be positive, got %v", p.EpsStep)
	}
	if p.MinPoints < 1 {
		return fmt.Errorf("min points must be at least 1, got %d", p.MinPoints)
	}
	if p.MaxSweepRounds < 1 {
		return fmt.Errorf("max sweep rounds must be at least 1, got %d", p.MaxSweepRounds)
	}
	return nil
}
