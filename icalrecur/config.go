package icalrecur

import "time"

// EngineConfig holds configuration for an Engine as a plain
// struct-of-options value, with package-level presets below for
// common deployment shapes.
type EngineConfig struct {
	CacheEnabled bool
	CacheConfig  CacheConfig

	MaxExpansionOccurrences int           // cap on occurrences checked by HasOccurrenceInRange
	LargeRangeThreshold     time.Duration // ranges wider than this get a limited first pass
	LargeRangeLimit         time.Duration // width of that limited pass
}

// DefaultEngineConfig is sensible for general production use.
var DefaultEngineConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig:  DefaultCacheConfig,

	MaxExpansionOccurrences: 100,
	LargeRangeThreshold:     90 * 24 * time.Hour,
	LargeRangeLimit:         90 * 24 * time.Hour,
}

// HighPerformanceConfig trades expansion thoroughness for speed.
var HighPerformanceConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             30 * time.Minute,
		MaxEntries:      5000,
		CleanupInterval: 10 * time.Minute,
	},

	MaxExpansionOccurrences: 50,
	LargeRangeThreshold:     30 * 24 * time.Hour,
	LargeRangeLimit:         30 * 24 * time.Hour,
}

// LowMemoryConfig favors a small cache footprint.
var LowMemoryConfig = EngineConfig{
	CacheEnabled: true,
	CacheConfig: CacheConfig{
		TTL:             5 * time.Minute,
		MaxEntries:      100,
		CleanupInterval: 2 * time.Minute,
	},

	MaxExpansionOccurrences: 200,
	LargeRangeThreshold:     180 * 24 * time.Hour,
	LargeRangeLimit:         180 * 24 * time.Hour,
}

// DisabledCacheConfig turns caching off entirely.
var DisabledCacheConfig = EngineConfig{
	CacheEnabled: false,
	CacheConfig:  CacheConfig{},

	MaxExpansionOccurrences: 1000,
	LargeRangeThreshold:     365 * 24 * time.Hour,
	LargeRangeLimit:         365 * 24 * time.Hour,
}
