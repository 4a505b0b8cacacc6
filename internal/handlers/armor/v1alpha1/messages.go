package v1alpha1

import (
	"github.com/KirkDiggler/mech-armor-api/internal/engine/interaction"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor"
)

// Request bodies

// CreateDraftRequest is the body of CreateDraft
type CreateDraftRequest struct {
	Name        string  `json:"name"`
	Mass        float64 `json:"mass"`
	ArmorTypeID string  `json:"armor_type_id,omitempty"`
	Tonnage     float64 `json:"tonnage"`
}

// DraftRequest addresses one draft. It is the body of GetDraft, DeleteDraft, Maximize, Undo
// and Redo.
type DraftRequest struct {
	DraftID string `json:"draft_id"`
	Role    string `json:"role,omitempty"`
}

// SetArmorTypeRequest is the body of SetArmorType
type SetArmorTypeRequest struct {
	DraftID     string `json:"draft_id"`
	ArmorTypeID string `json:"armor_type_id"`
}

// SetTonnageRequest is the body of SetTonnage
type SetTonnageRequest struct {
	DraftID string  `json:"draft_id"`
	Tonnage float64 `json:"tonnage"`
}

// AdjustTonnageRequest is the body of AdjustTonnage
type AdjustTonnageRequest struct {
	DraftID string `json:"draft_id"`
	Steps   int    `json:"steps"`
}

// UpdateLocationRequest is the body of UpdateLocation. A missing side is left unchanged.
type UpdateLocationRequest struct {
	DraftID  string `json:"draft_id"`
	Location string `json:"location"`
	Front    *int   `json:"front,omitempty"`
	Rear     *int   `json:"rear,omitempty"`
}

// DistributionRequest is the body of ApplyDistribution and PreviewDistribution
type DistributionRequest struct {
	DraftID  string          `json:"draft_id"`
	PresetID string          `json:"preset_id,omitempty"`
	Custom   mech.Allocation `json:"custom,omitempty"`
}

// AutoAllocateRequest is the body of AutoAllocate
type AutoAllocateRequest struct {
	DraftID string `json:"draft_id"`
	Mode    string `json:"mode,omitempty"`
}

// InteractRequest is the body of Interact
type InteractRequest struct {
	DraftID string             `json:"draft_id"`
	Event   *interaction.Event `json:"event"`
}

// ListArmorTypesRequest is the body of ListArmorTypes
type ListArmorTypesRequest struct {
	TechBase  string `json:"tech_base,omitempty"`
	TechLevel int    `json:"tech_level,omitempty"`
}

// SaveLoadoutRequest is the body of SaveLoadout
type SaveLoadoutRequest struct {
	DraftID string `json:"draft_id"`
	Name    string `json:"name,omitempty"`
}

// GetLoadoutRequest is the body of GetLoadout
type GetLoadoutRequest struct {
	LoadoutID string `json:"loadout_id"`
}

// ListLoadoutsRequest is the body of ListLoadouts
type ListLoadoutsRequest struct {
	DraftID string `json:"draft_id,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

// ImportMTFRequest is the body of ImportMTF
type ImportMTFRequest struct {
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// Response bodies

// DraftState is a draft with its calculations, findings and statistics
type DraftState struct {
	Draft        *mech.ArmorDraft       `json:"draft"`
	ArmorType    *mech.ArmorType        `json:"armor_type"`
	Calculations mech.Calculations      `json:"calculations"`
	Validation   *mech.ValidationResult `json:"validation"`
	Statistics   mech.Statistics        `json:"statistics"`
	CanUndo      bool                   `json:"can_undo"`
	CanRedo      bool                   `json:"can_redo"`
}

// DraftResponse carries the state of one draft
type DraftResponse struct {
	State *DraftState `json:"state"`
}

// SetTonnageResponse is the reply of SetTonnage
type SetTonnageResponse struct {
	State   *DraftState `json:"state"`
	Message string      `json:"message,omitempty"`
}

// UpdateLocationResponse is the reply of UpdateLocation
type UpdateLocationResponse struct {
	State   *DraftState `json:"state"`
	Changed bool        `json:"changed"`
}

// ApplyDistributionResponse is the reply of ApplyDistribution
type ApplyDistributionResponse struct {
	State     *DraftState `json:"state"`
	TotalUsed int         `json:"total_used"`
	Scaled    bool        `json:"scaled"`
}

// PreviewDistributionResponse is the reply of PreviewDistribution
type PreviewDistributionResponse struct {
	Preset      *mech.Preset    `json:"preset"`
	Targets     mech.Allocation `json:"targets"`
	Allocation  mech.Allocation `json:"allocation"`
	TotalUsed   int             `json:"total_used"`
	TotalPoints int             `json:"total_points"`
	Scaled      bool            `json:"scaled"`
}

// PointsResponse is the reply of Maximize and AutoAllocate
type PointsResponse struct {
	State  *DraftState `json:"state"`
	Points int         `json:"points"`
}

// InteractionState is the interaction session of a draft
type InteractionState struct {
	Selected  mech.Location                       `json:"selected,omitempty"`
	Hovered   mech.Location                       `json:"hovered,omitempty"`
	Editing   mech.Location                       `json:"editing,omitempty"`
	EditFront string                              `json:"edit_front,omitempty"`
	EditRear  string                              `json:"edit_rear,omitempty"`
	Dragging  bool                                `json:"dragging"`
	States    map[mech.Location]interaction.State `json:"states"`
}

// InteractResponse is the reply of Interact
type InteractResponse struct {
	State       *DraftState       `json:"state"`
	Interaction *InteractionState `json:"interaction"`
	Changed     bool              `json:"changed"`
}

// ListDraftsResponse is the reply of ListDrafts
type ListDraftsResponse struct {
	Drafts []*mech.ArmorDraft `json:"drafts"`
}

// ListArmorTypesResponse is the reply of ListArmorTypes
type ListArmorTypesResponse struct {
	ArmorTypes []*mech.ArmorType `json:"armor_types"`
}

// ListPresetsResponse is the reply of ListPresets
type ListPresetsResponse struct {
	Presets []*mech.Preset `json:"presets"`
}

// LoadoutResponse is the reply of SaveLoadout and GetLoadout
type LoadoutResponse struct {
	Loadout *mech.Loadout `json:"loadout"`
}

// ListLoadoutsResponse is the reply of ListLoadouts
type ListLoadoutsResponse struct {
	Loadouts []*mech.Loadout `json:"loadouts"`
}

func toDraftState(state *armor.DraftState) *DraftState {
	if state == nil {
		return nil
	}
	return &DraftState{
		Draft:        state.Draft,
		ArmorType:    state.ArmorType,
		Calculations: state.Calculations,
		Validation:   state.Validation,
		Statistics:   state.Statistics,
		CanUndo:      state.Draft != nil && state.Draft.CanUndo(),
		CanRedo:      state.Draft != nil && state.Draft.CanRedo(),
	}
}

func toInteractionState(state *armor.InteractionState) *InteractionState {
	if state == nil {
		return nil
	}
	return &InteractionState{
		Selected:  state.Selected,
		Hovered:   state.Hovered,
		Editing:   state.Editing,
		EditFront: state.EditFront,
		EditRear:  state.EditRear,
		Dragging:  state.Dragging,
		States:    state.States,
	}
}
