// Package armordraft persists armor drafts between editor requests
package armordraft

//go:generate mockgen -destination=mock/mock_repository.go -package=armordraftmock github.com/KirkDiggler/mech-armor-api/internal/repositories/armor_draft Repository

import (
	"context"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// Repository defines the interface for armor draft persistence
type Repository interface {
	// Create stores a new draft
	// Returns errors.InvalidArgument for a nil draft or empty ID
	// Returns errors.AlreadyExists if a draft with the ID is stored
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a draft by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the draft doesn't exist or has expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every live draft, oldest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update replaces a stored draft and refreshes its expiry
	// Returns errors.InvalidArgument for a nil draft or empty ID
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a draft
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the draft doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a draft
type CreateInput struct {
	Draft *mech.ArmorDraft
}

// CreateOutput defines the output for creating a draft
type CreateOutput struct {
	Draft *mech.ArmorDraft
}

// GetInput defines the input for getting a draft
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a draft
type GetOutput struct {
	Draft *mech.ArmorDraft
}

// ListInput defines the input for listing drafts
type ListInput struct{}

// ListOutput defines the output for listing drafts
type ListOutput struct {
	Drafts []*mech.ArmorDraft
}

// UpdateInput defines the input for updating a draft
type UpdateInput struct {
	Draft *mech.ArmorDraft
}

// UpdateOutput defines the output for updating a draft
type UpdateOutput struct {
	Draft *mech.ArmorDraft
}

// DeleteInput defines the input for deleting a draft
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a draft
type DeleteOutput struct{}

const (
	errDraftNil     = "draft cannot be nil"
	errDraftIDEmpty = "draft ID cannot be empty"
)

func validateDraft(draft *mech.ArmorDraft) error {
	if draft == nil {
		return errors.InvalidArgument(errDraftNil)
	}
	if draft.ID == "" {
		return errors.InvalidArgument(errDraftIDEmpty)
	}
	return nil
}
