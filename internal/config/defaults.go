package config

import "runtime"

// ApplyAdaptiveDefaults fills the parallelism settings left at zero from the
// host's CPU count. Explicit flag or environment values are kept.
func ApplyAdaptiveDefaults(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.MinBatch == 0 {
		cfg.MinBatch = EstimateMinBatch(cfg.Workers)
	}
	return cfg
}

// EstimateMinBatch returns the collection size below which fanning out costs
// more than it saves. Formatting one value takes well under a microsecond, so
// each worker needs a few hundred values to amortize goroutine start-up.
func EstimateMinBatch(workers int) int {
	switch {
	case workers <= 1:
		return 1 << 30 // never parallel
	case workers <= 4:
		return 512
	case workers <= 16:
		return 1024
	default:
		return 2048
	}
}
