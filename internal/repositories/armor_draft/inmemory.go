package armordraft

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
)

// InMemoryRepository implements Repository without expiry, for running without redis
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*mech.ArmorDraft
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*mech.ArmorDraft),
	}
}

// Create stores a copy of the draft
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Draft.ID]; exists {
		return nil, errors.AlreadyExistsf("draft with ID %s already exists", input.Draft.ID)
	}
	r.store[input.Draft.ID] = input.Draft.Clone()

	return &CreateOutput{Draft: input.Draft}, nil
}

// Get returns a copy of the stored draft
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}

	return &GetOutput{Draft: draft.Clone()}, nil
}

// List returns copies of every draft, oldest first
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	drafts := make([]*mech.ArmorDraft, 0, len(r.store))
	for _, draft := range r.store {
		drafts = append(drafts, draft.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(drafts, func(i, j int) bool {
		if drafts[i].CreatedAt != drafts[j].CreatedAt {
			return drafts[i].CreatedAt < drafts[j].CreatedAt
		}
		return drafts[i].ID < drafts[j].ID
	})

	return &ListOutput{Drafts: drafts}, nil
}

// Update replaces a stored draft
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Draft.ID]; !exists {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}
	r.store[input.Draft.ID] = input.Draft.Clone()

	return &UpdateOutput{Draft: input.Draft}, nil
}

// Delete removes a draft
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
