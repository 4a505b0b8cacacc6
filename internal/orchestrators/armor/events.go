package armor

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// Event types published on the configured bus
const (
	EventArmorChanged             = "armor.changed"
	EventArmorDistributionApplied = "armor.distribution_applied"
	EventArmorLoadoutSaved        = "armor.loadout_saved"
)

// DraftEntity wraps an armor draft as the source of published events
type DraftEntity struct {
	*mech.ArmorDraft
}

// GetID returns the draft's ID
func (d *DraftEntity) GetID() string {
	return d.ID
}

// GetType returns the entity type for rpg-toolkit
func (d *DraftEntity) GetType() string {
	return "armor_draft"
}

var _ core.Entity = (*DraftEntity)(nil)

// publish emits an event with the draft as source. Delivery failures are logged, never returned:
// the change is already persisted.
func (o *orchestrator) publish(ctx context.Context, eventType string, draft *mech.ArmorDraft, data map[string]any) {
	if o.eventBus == nil {
		return
	}

	event := events.NewGameEvent(eventType, &DraftEntity{ArmorDraft: draft}, nil)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish armor event",
			"event", eventType,
			"draft_id", draft.ID,
			"error", err,
		)
	}
}
