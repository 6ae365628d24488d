package modkit

import (
	"levain/internal/modkit/repokit"
	"levain/internal/platform/config"
	"levain/internal/platform/logger"
	"levain/internal/platform/store"
)

// Deps holds what the composition root hands to every module
// PG and CH are nil when the backend is disabled
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// Named returns a component logger derived from Log, or from the root logger when Log is unset
func (d Deps) Named(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	ll := d.Log.With().Str("component", component).Logger()
	return &ll
}
