package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"creditrisk/internal/decision"
	"creditrisk/internal/limit"
)

// PolicyFile is the YAML shape of an optional policy override. Any key left
// out keeps the built-in default; a tiers list replaces the whole table.
//
//	tiers:
//	  - job_levels: [0, 1]
//	    ceiling: 10000
//	age_override:
//	  below_age: 21
//	  factor: 0.5
//	score:
//	  max: 850
//	  span: 550
type PolicyFile struct {
	Tiers       []TierEntry      `yaml:"tiers"`
	AgeOverride *AgeOverrideSpec `yaml:"age_override"`
	Score       *ScoreSpec       `yaml:"score"`
}

type TierEntry struct {
	JobLevels []int   `yaml:"job_levels"`
	Ceiling   float64 `yaml:"ceiling"`
}

type AgeOverrideSpec struct {
	BelowAge *int     `yaml:"below_age"`
	Factor   *float64 `yaml:"factor"`
}

type ScoreSpec struct {
	Max  *float64 `yaml:"max"`
	Span *float64 `yaml:"span"`
}

// LoadPolicy returns the default limit policy and score scale, overridden by
// the YAML file at path when path is non-empty.
func LoadPolicy(path string) (limit.Policy, decision.ScoreScale, error) {
	policy := limit.DefaultPolicy()
	scale := decision.DefaultScoreScale()
	if path == "" {
		return policy, scale, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return policy, scale, fmt.Errorf("read policy file: %w", err)
	}
	return ParsePolicy(raw)
}

// ParsePolicy applies a YAML document on top of the defaults.
func ParsePolicy(raw []byte) (limit.Policy, decision.ScoreScale, error) {
	policy := limit.DefaultPolicy()
	scale := decision.DefaultScoreScale()

	var file PolicyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return policy, scale, fmt.Errorf("parse policy file: %w", err)
	}

	if len(file.Tiers) > 0 {
		tiers := make([]limit.Tier, 0, len(file.Tiers))
		for _, t := range file.Tiers {
			tiers = append(tiers, limit.JobLevelTier(t.Ceiling, t.JobLevels...))
		}
		policy.Tiers = tiers
	}
	if o := file.AgeOverride; o != nil {
		overlay(&policy.AgeOverride.BelowAge, o.BelowAge)
		overlay(&policy.AgeOverride.Factor, o.Factor)
	}
	if sc := file.Score; sc != nil {
		overlay(&scale.Max, sc.Max)
		overlay(&scale.Span, sc.Span)
	}

	if err := policy.Validate(); err != nil {
		return policy, scale, err
	}
	if err := scale.Validate(); err != nil {
		return policy, scale, err
	}
	return policy, scale, nil
}

func overlay[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
