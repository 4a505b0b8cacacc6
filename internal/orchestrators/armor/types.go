package armor

import (
	"github.com/KirkDiggler/mech-armor-api/internal/engine/interaction"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

// DraftState is a draft together with everything derived from it. It is rebuilt on every
// read and never stored.
type DraftState struct {
	Draft        *mech.ArmorDraft
	ArmorType    *mech.ArmorType
	Calculations mech.Calculations
	Validation   *mech.ValidationResult
	Statistics   mech.Statistics
}

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	Name        string
	Mass        float64
	ArmorTypeID string // Optional, defaults to standard
	Tonnage     float64
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	State *DraftState
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
	// Role adds recommended coverage warnings for that role
	Role mech.Role
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	State *DraftState
}

// ListDraftsInput defines the request for listing drafts
type ListDraftsInput struct{}

// ListDraftsOutput defines the response for listing drafts
type ListDraftsOutput struct {
	Drafts []*mech.ArmorDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct{}

// SetArmorTypeInput defines the request for swapping the armor type
type SetArmorTypeInput struct {
	DraftID     string
	ArmorTypeID string
}

// SetArmorTypeOutput defines the response for swapping the armor type
type SetArmorTypeOutput struct {
	State *DraftState
}

// SetTonnageInput defines the request for setting armor tonnage
type SetTonnageInput struct {
	DraftID string
	Tonnage float64
}

// SetTonnageOutput defines the response for setting armor tonnage
type SetTonnageOutput struct {
	State *DraftState
	// Message describes why the requested value was adjusted, empty when it was taken as is
	Message string
}

// AdjustTonnageInput defines the request for stepping tonnage in half tons
type AdjustTonnageInput struct {
	DraftID string
	Steps   int
}

// AdjustTonnageOutput defines the response for stepping tonnage
type AdjustTonnageOutput struct {
	State *DraftState
}

// UpdateLocationInput defines the request for changing one location
type UpdateLocationInput struct {
	DraftID string
	// Location accepts a full name or a record sheet abbreviation
	Location string
	Change   mech.ArmorChange
}

// UpdateLocationOutput defines the response for changing one location
type UpdateLocationOutput struct {
	State   *DraftState
	Changed bool
}

// ApplyDistributionInput defines the request for applying a preset or a custom allocation
type ApplyDistributionInput struct {
	DraftID  string
	PresetID string
	// Custom is used as is when PresetID is "custom" or empty
	Custom mech.Allocation
}

// ApplyDistributionOutput defines the response for applying a distribution
type ApplyDistributionOutput struct {
	State     *DraftState
	TotalUsed int
	Scaled    bool
}

// PreviewDistributionInput defines the request for previewing a preset
type PreviewDistributionInput struct {
	DraftID  string
	PresetID string
}

// PreviewDistributionOutput is the preset result against the draft's budget. Nothing is saved.
type PreviewDistributionOutput struct {
	Preset      *mech.Preset
	Targets     mech.Allocation
	Allocation  mech.Allocation
	TotalUsed   int
	TotalPoints int
	Scaled      bool
}

// MaximizeInput defines the request for maximizing armor
type MaximizeInput struct {
	DraftID string
}

// MaximizeOutput defines the response for maximizing armor
type MaximizeOutput struct {
	State  *DraftState
	Points int
}

// AutoAllocate modes
const (
	AutoAllocateProportional = "proportional"
	AutoAllocateEven         = "even"
)

// AutoAllocateInput defines the request for spreading the current budget
type AutoAllocateInput struct {
	DraftID string
	// Mode is proportional (default) or even
	Mode string
}

// AutoAllocateOutput defines the response for spreading the current budget
type AutoAllocateOutput struct {
	State  *DraftState
	Points int
}

// UndoInput defines the request for stepping back in history
type UndoInput struct {
	DraftID string
}

// UndoOutput defines the response for stepping back in history
type UndoOutput struct {
	State *DraftState
}

// RedoInput defines the request for stepping forward in history
type RedoInput struct {
	DraftID string
}

// RedoOutput defines the response for stepping forward in history
type RedoOutput struct {
	State *DraftState
}

// InteractInput routes one editor event into the draft's interaction session
type InteractInput struct {
	DraftID string
	Event   *interaction.Event
}

// InteractionState is the visible state of a draft's interaction session
type InteractionState struct {
	Selected  mech.Location
	Hovered   mech.Location
	Editing   mech.Location
	EditFront string
	EditRear  string
	Dragging  bool
	States    map[mech.Location]interaction.State
}

// InteractOutput defines the response for an editor event
type InteractOutput struct {
	State       *DraftState
	Interaction *InteractionState
	Changed     bool
}

// ListArmorTypesInput filters the armor catalog. An empty TechBase lists every type.
type ListArmorTypesInput struct {
	TechBase  mech.TechBase
	TechLevel int
}

// ListArmorTypesOutput defines the response for listing armor types
type ListArmorTypesOutput struct {
	ArmorTypes []*mech.ArmorType
}

// ListPresetsInput defines the request for listing presets
type ListPresetsInput struct{}

// ListPresetsOutput defines the response for listing presets
type ListPresetsOutput struct {
	Presets []*mech.Preset
}

// SaveLoadoutInput defines the request for saving a draft as a loadout
type SaveLoadoutInput struct {
	DraftID string
	Name    string // Optional, defaults to the draft name
}

// SaveLoadoutOutput defines the response for saving a loadout
type SaveLoadoutOutput struct {
	Loadout *mech.Loadout
}

// GetLoadoutInput defines the request for getting a loadout
type GetLoadoutInput struct {
	LoadoutID string
}

// GetLoadoutOutput defines the response for getting a loadout
type GetLoadoutOutput struct {
	Loadout *mech.Loadout
}

// ListLoadoutsInput defines the request for listing loadouts
type ListLoadoutsInput struct {
	DraftID string
	Limit   int
}

// ListLoadoutsOutput defines the response for listing loadouts
type ListLoadoutsOutput struct {
	Loadouts []*mech.Loadout
}

// ImportMTFInput defines the request for building a draft from a MegaMek file
type ImportMTFInput struct {
	Content string
	Name    string // Optional, defaults to chassis and model
}

// ImportMTFOutput defines the response for importing a MegaMek file
type ImportMTFOutput struct {
	State *DraftState
}
