package module

import (
	"time"

	"levain/internal/core/bakers"
	"levain/internal/platform/config"
)

// Options controls recipes behavior
type Options struct {
	CacheTTL         time.Duration // 0 disables the snapshot cache
	FlourKeywords    []string      // name fragments that count as flour when nothing is tagged
	Events           bool          // record scale events when clickhouse is wired
	StatementTimeout time.Duration // per statement cap inside write transactions, 0 is none
}

// FromConfig reads RECIPES_* values from the service config
func FromConfig(cfg config.Conf) Options {
	rc := cfg.Prefix("RECIPES_")
	return Options{
		CacheTTL:         rc.MayDuration("CACHE_TTL", 5*time.Minute),
		FlourKeywords:    rc.MayCSV("FLOUR_KEYWORDS", bakers.DefaultFlourKeywords),
		Events:           rc.MayBool("EVENTS", true),
		StatementTimeout: rc.MayDuration("STATEMENT_TIMEOUT", 5*time.Second),
	}
}
