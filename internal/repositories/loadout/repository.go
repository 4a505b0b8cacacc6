// Package loadout stores validated armor configurations in a SQL database
package loadout

//go:generate mockgen -destination=mock/mock_repository.go -package=loadoutmock github.com/KirkDiggler/mech-armor-api/internal/repositories/loadout Repository

import (
	"context"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// Repository defines the interface for saved loadouts
type Repository interface {
	// Save stores a loadout. Saving an existing ID overwrites it.
	// Returns errors.InvalidArgument for a nil loadout or empty ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a loadout by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the loadout doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns saved loadouts, newest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a loadout
type SaveInput struct {
	Loadout *mech.Loadout
}

// SaveOutput defines the output for saving a loadout
type SaveOutput struct {
	Loadout *mech.Loadout
}

// GetInput defines the input for getting a loadout
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a loadout
type GetOutput struct {
	Loadout *mech.Loadout
}

// ListInput defines the input for listing loadouts
type ListInput struct {
	// DraftID limits the result to loadouts saved from one draft
	DraftID string
	// Limit caps the number of results; zero means no limit
	Limit int
}

// ListOutput defines the output for listing loadouts
type ListOutput struct {
	Loadouts []*mech.Loadout
}
