package mech

// ArmorDraft is the editable armor configuration of one unit
type ArmorDraft struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Mass         float64      `json:"mass"`
	ArmorTypeID  string       `json:"armor_type_id"`
	Tonnage      float64      `json:"tonnage"`
	Allocation   Allocation   `json:"allocation"`
	History      []Allocation `json:"history,omitempty"`
	HistoryIndex int          `json:"history_index"`
	CreatedAt    int64        `json:"created_at"`
	UpdatedAt    int64        `json:"updated_at"`
}

// Clone returns a deep copy, history included
func (d *ArmorDraft) Clone() *ArmorDraft {
	if d == nil {
		return nil
	}
	out := *d
	out.Allocation = d.Allocation.Clone()
	if d.History != nil {
		out.History = make([]Allocation, len(d.History))
		for i, snapshot := range d.History {
			out.History[i] = snapshot.Clone()
		}
	}
	return &out
}

// CanUndo reports whether an earlier snapshot exists
func (d *ArmorDraft) CanUndo() bool {
	return d.HistoryIndex > 0
}

// CanRedo reports whether a later snapshot exists
func (d *ArmorDraft) CanRedo() bool {
	return d.HistoryIndex < len(d.History)-1
}

// Record appends the current allocation to the history, dropping any redo tail and the
// oldest entries beyond limit.
func (d *ArmorDraft) Record(limit int) {
	if len(d.History) > 0 && d.HistoryIndex < len(d.History)-1 {
		d.History = d.History[:d.HistoryIndex+1]
	}
	d.History = append(d.History, d.Allocation.Clone())
	if limit > 0 && len(d.History) > limit {
		d.History = d.History[len(d.History)-limit:]
	}
	d.HistoryIndex = len(d.History) - 1
}

// Undo steps back one snapshot. It returns false when there is nothing to undo.
func (d *ArmorDraft) Undo() bool {
	if !d.CanUndo() {
		return false
	}
	d.HistoryIndex--
	d.Allocation = d.History[d.HistoryIndex].Clone()
	return true
}

// Redo steps forward one snapshot. It returns false when there is nothing to redo.
func (d *ArmorDraft) Redo() bool {
	if !d.CanRedo() {
		return false
	}
	d.HistoryIndex++
	d.Allocation = d.History[d.HistoryIndex].Clone()
	return true
}

// Loadout is a saved, validated armor configuration
type Loadout struct {
	ID          string     `json:"id"`
	DraftID     string     `json:"draft_id"`
	Name        string     `json:"name"`
	Mass        float64    `json:"mass"`
	ArmorTypeID string     `json:"armor_type_id"`
	Tonnage     float64    `json:"tonnage"`
	Allocation  Allocation `json:"allocation"`
	TotalArmor  int        `json:"total_armor"`
	CreatedAt   int64      `json:"created_at"`
}
