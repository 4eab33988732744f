package fileformat

import (
	"github.com/gobeaver/beaver-kit/config"
)

// Config carries environment-driven defaults for the scan, watch and CLI
// surfaces. The classification window (MaxBytes) is a fixed constant and
// is deliberately not configurable.
type Config struct {
	// Scanner defaults
	Include        string `env:"FILEFORMAT_INCLUDE"` // comma-separated glob patterns
	Exclude        string `env:"FILEFORMAT_EXCLUDE"` // comma-separated glob patterns
	MaxDepth       int    `env:"FILEFORMAT_MAX_DEPTH,default:0"`
	FollowSymlinks bool   `env:"FILEFORMAT_FOLLOW_SYMLINKS,default:false"`
	Concurrency    int    `env:"FILEFORMAT_CONCURRENCY,default:0"`

	// Report cache defaults
	CacheEnabled    bool `env:"FILEFORMAT_CACHE_ENABLED,default:false"`
	CacheTTLSeconds int  `env:"FILEFORMAT_CACHE_TTL_SECONDS,default:300"`

	// Watcher defaults
	PollIntervalSeconds int `env:"FILEFORMAT_POLL_INTERVAL_SECONDS,default:5"`

	// Fingerprinting defaults
	ChecksumAlgorithm string `env:"FILEFORMAT_CHECKSUM_ALGORITHM,default:xxhash"`

	// Output defaults
	OutputFormat string `env:"FILEFORMAT_OUTPUT_FORMAT,default:text"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
