package armor

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

const instrumentationName = "github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor"

type metrics struct {
	mutations        metric.Int64Counter
	presetsApplied   metric.Int64Counter
	validationErrors metric.Int64Counter
}

// newMetrics registers the orchestrator counters. A nil meter uses the global provider, which
// is a no-op until one is installed.
func newMetrics(m metric.Meter) (*metrics, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	var (
		out = &metrics{}
		err error
	)

	out.mutations, err = m.Int64Counter(
		"armor.mutations",
		metric.WithDescription("Armor draft changes that were persisted"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mutations counter")
	}

	out.presetsApplied, err = m.Int64Counter(
		"armor.presets_applied",
		metric.WithDescription("Distribution presets applied to drafts"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create presets counter")
	}

	out.validationErrors, err = m.Int64Counter(
		"armor.validation_errors",
		metric.WithDescription("Validation errors reported after a change"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create validation errors counter")
	}

	return out, nil
}

func (m *metrics) mutation(ctx context.Context, op string, validationErrors int) {
	opAttr := metric.WithAttributes(attribute.String("operation", op))
	m.mutations.Add(ctx, 1, opAttr)
	if validationErrors > 0 {
		m.validationErrors.Add(ctx, int64(validationErrors), opAttr)
	}
}

func (m *metrics) presetApplied(ctx context.Context, presetID string) {
	m.presetsApplied.Add(ctx, 1, metric.WithAttributes(attribute.String("preset", presetID)))
}
