package repo

import (
	"context"
	"fmt"
	"time"

	"levain/internal/platform/store"
	"levain/internal/services/api/recipes/domain"
)

// EventsTable is the clickhouse table scale events land in
const EventsTable = "recipe_scale_events"

// EventsSchema is the clickhouse DDL for EventsTable
const EventsSchema = `
CREATE TABLE IF NOT EXISTS recipe_scale_events (
	recipe_id    UUID,
	mode         LowCardinality(String),
	ratio        Float64,
	flour_weight Float64,
	pieces       Int32,
	piece_weight Float64,
	at           DateTime64(3, 'UTC')
) ENGINE = MergeTree
ORDER BY (recipe_id, at)
`

// Events writes scale events to clickhouse
// a nil *Events or one without a connection drops events silently
type Events struct {
	ch    store.Clickhouse
	table string
}

// NewEvents returns a clickhouse backed domain.EventSink
func NewEvents(ch store.Clickhouse) *Events { return &Events{ch: ch, table: EventsTable} }

// Enabled reports whether events go anywhere
func (e *Events) Enabled() bool { return e != nil && e.ch != nil }

// Ensure creates the events table when missing
func (e *Events) Ensure(ctx context.Context) error {
	if !e.Enabled() {
		return nil
	}
	if err := e.ch.Exec(ctx, EventsSchema); err != nil {
		return fmt.Errorf("ensure %s: %w", e.table, err)
	}
	return nil
}

// Record appends one event as a single row batch
func (e *Events) Record(ctx context.Context, ev domain.ScaleEvent) error {
	if !e.Enabled() {
		return nil
	}
	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	row := []any{ev.RecipeID, string(ev.Mode), ev.Ratio, ev.FlourWeight, int32(ev.Pieces), ev.PieceWeight, at.UTC()}
	if err := e.ch.Insert(ctx, e.table, [][]any{row}); err != nil {
		return fmt.Errorf("record scale event: %w", err)
	}
	return nil
}

var _ domain.EventSink = (*Events)(nil)
