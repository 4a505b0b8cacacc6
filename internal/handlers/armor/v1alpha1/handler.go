package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	"github.com/KirkDiggler/mech-armor-api/internal/orchestrators/armor"
)

// HandlerConfig holds dependencies for the armor handler
type HandlerConfig struct {
	ArmorService armor.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.ArmorService == nil {
		return errors.InvalidArgument("armor service is required")
	}
	return nil
}

// Handler implements ArmorServiceServer on top of the armor orchestrator
type Handler struct {
	armorService armor.Service
}

// NewHandler creates a new armor handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		armorService: cfg.ArmorService,
	}, nil
}

var _ ArmorServiceServer = (*Handler)(nil)

// reply encodes a response body, converting any error for the transport
func reply(resp interface{}, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	body, err := encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return body, nil
}

func requireDraftID(id string) error {
	if id == "" {
		return errors.InvalidArgument("draft_id is required")
	}
	return nil
}

// CreateDraft creates a draft for a unit
func (h *Handler) CreateDraft(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req CreateDraftRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.CreateDraft(ctx, &armor.CreateDraftInput{
		Name:        req.Name,
		Mass:        req.Mass,
		ArmorTypeID: req.ArmorTypeID,
		Tonnage:     req.Tonnage,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}

// GetDraft returns a draft with its calculations. A role adds coverage warnings for that role.
func (h *Handler) GetDraft(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	input := &armor.GetDraftInput{DraftID: req.DraftID}
	if req.Role != "" {
		role, ok := mech.ParseRole(req.Role)
		if !ok {
			return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown role %q", req.Role))
		}
		input.Role = role
	}

	out, err := h.armorService.GetDraft(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}

// ListDrafts lists the live drafts
func (h *Handler) ListDrafts(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.armorService.ListDrafts(ctx, &armor.ListDraftsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&ListDraftsResponse{Drafts: out.Drafts}, nil)
}

// DeleteDraft removes a draft and its interaction session
func (h *Handler) DeleteDraft(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.armorService.DeleteDraft(ctx, &armor.DeleteDraftInput{DraftID: req.DraftID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &structpb.Struct{}, nil
}

// SetArmorType swaps the armor material, keeping the allocation
func (h *Handler) SetArmorType(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req SetArmorTypeRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.ArmorTypeID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("armor_type_id is required"))
	}

	out, err := h.armorService.SetArmorType(ctx, &armor.SetArmorTypeInput{
		DraftID:     req.DraftID,
		ArmorTypeID: req.ArmorTypeID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}

// SetTonnage sets the armor tonnage, rounded and clamped
func (h *Handler) SetTonnage(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req SetTonnageRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.SetTonnage(ctx, &armor.SetTonnageInput{
		DraftID: req.DraftID,
		Tonnage: req.Tonnage,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&SetTonnageResponse{State: toDraftState(out.State), Message: out.Message}, nil)
}

// AdjustTonnage steps the armor tonnage in half tons
func (h *Handler) AdjustTonnage(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req AdjustTonnageRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.AdjustTonnage(ctx, &armor.AdjustTonnageInput{
		DraftID: req.DraftID,
		Steps:   req.Steps,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}

// UpdateLocation changes the front and/or rear armor of one location
func (h *Handler) UpdateLocation(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req UpdateLocationRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Location == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("location is required"))
	}

	out, err := h.armorService.UpdateLocation(ctx, &armor.UpdateLocationInput{
		DraftID:  req.DraftID,
		Location: req.Location,
		Change:   mech.ArmorChange{Front: req.Front, Rear: req.Rear},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&UpdateLocationResponse{State: toDraftState(out.State), Changed: out.Changed}, nil)
}

// ApplyDistribution applies a preset, or the custom allocation when no preset is named
func (h *Handler) ApplyDistribution(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DistributionRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.ApplyDistribution(ctx, &armor.ApplyDistributionInput{
		DraftID:  req.DraftID,
		PresetID: req.PresetID,
		Custom:   req.Custom,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&ApplyDistributionResponse{
		State:     toDraftState(out.State),
		TotalUsed: out.TotalUsed,
		Scaled:    out.Scaled,
	}, nil)
}

// PreviewDistribution computes a preset against the draft's budget without saving it
func (h *Handler) PreviewDistribution(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DistributionRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.PresetID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("preset_id is required"))
	}

	out, err := h.armorService.PreviewDistribution(ctx, &armor.PreviewDistributionInput{
		DraftID:  req.DraftID,
		PresetID: req.PresetID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&PreviewDistributionResponse{
		Preset:      out.Preset,
		Targets:     out.Targets,
		Allocation:  out.Allocation,
		TotalUsed:   out.TotalUsed,
		TotalPoints: out.TotalPoints,
		Scaled:      out.Scaled,
	}, nil)
}

// Maximize sets the tonnage to the unit's maximum and fills every location
func (h *Handler) Maximize(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.Maximize(ctx, &armor.MaximizeInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&PointsResponse{State: toDraftState(out.State), Points: out.Points}, nil)
}

// AutoAllocate spreads the current budget over every location
func (h *Handler) AutoAllocate(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req AutoAllocateRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.AutoAllocate(ctx, &armor.AutoAllocateInput{
		DraftID: req.DraftID,
		Mode:    req.Mode,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&PointsResponse{State: toDraftState(out.State), Points: out.Points}, nil)
}

// Undo steps the allocation back one snapshot
func (h *Handler) Undo(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.Undo(ctx, &armor.UndoInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}

// Redo steps the allocation forward one snapshot
func (h *Handler) Redo(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req DraftRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.Redo(ctx, &armor.RedoInput{DraftID: req.DraftID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}

// Interact routes one editor event into the draft's interaction session
func (h *Handler) Interact(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req InteractRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Event == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("event is required"))
	}

	out, err := h.armorService.Interact(ctx, &armor.InteractInput{
		DraftID: req.DraftID,
		Event:   req.Event,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&InteractResponse{
		State:       toDraftState(out.State),
		Interaction: toInteractionState(out.Interaction),
		Changed:     out.Changed,
	}, nil)
}

// ListArmorTypes lists the armor catalog, optionally filtered by tech base and level
func (h *Handler) ListArmorTypes(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req ListArmorTypesRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.ListArmorTypes(ctx, &armor.ListArmorTypesInput{
		TechBase:  mech.TechBase(req.TechBase),
		TechLevel: req.TechLevel,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&ListArmorTypesResponse{ArmorTypes: out.ArmorTypes}, nil)
}

// ListPresets lists the distribution presets
func (h *Handler) ListPresets(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.armorService.ListPresets(ctx, &armor.ListPresetsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&ListPresetsResponse{Presets: out.Presets}, nil)
}

// SaveLoadout stores a valid draft as a loadout
func (h *Handler) SaveLoadout(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req SaveLoadoutRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if err := requireDraftID(req.DraftID); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.SaveLoadout(ctx, &armor.SaveLoadoutInput{
		DraftID: req.DraftID,
		Name:    req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&LoadoutResponse{Loadout: out.Loadout}, nil)
}

// GetLoadout returns a saved loadout
func (h *Handler) GetLoadout(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req GetLoadoutRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.LoadoutID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("loadout_id is required"))
	}

	out, err := h.armorService.GetLoadout(ctx, &armor.GetLoadoutInput{LoadoutID: req.LoadoutID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&LoadoutResponse{Loadout: out.Loadout}, nil)
}

// ListLoadouts lists saved loadouts, newest first
func (h *Handler) ListLoadouts(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req ListLoadoutsRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.armorService.ListLoadouts(ctx, &armor.ListLoadoutsInput{
		DraftID: req.DraftID,
		Limit:   req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&ListLoadoutsResponse{Loadouts: out.Loadouts}, nil)
}

// ImportMTF builds a draft from a MegaMek unit file
func (h *Handler) ImportMTF(ctx context.Context, body *structpb.Struct) (*structpb.Struct, error) {
	var req ImportMTFRequest
	if err := decode(body, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Content == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("content is required"))
	}

	out, err := h.armorService.ImportMTF(ctx, &armor.ImportMTFInput{
		Content: req.Content,
		Name:    req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return reply(&DraftResponse{State: toDraftState(out.State)}, nil)
}
