// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call and shared by all
// constructors of that call.
type builderConfig struct {
	idFn     IDFn
	weightFn WeightFn
	rng      *rand.Rand // nil unless WithSeed/WithRand

	leftPrefix  string // CompleteBipartite left side
	rightPrefix string // CompleteBipartite right side
	hubID       string // Star and Wheel center
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultHubID       = "Center"
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		hubID:       defaultHubID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.hubID == "" {
		cfg.hubID = defaultHubID
	}

	return cfg
}
