package client

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

// printState prints a draft with its allocation table, findings and budget
func printState(w io.Writer, state *v1alpha1.DraftState) {
	if state == nil || state.Draft == nil {
		fmt.Fprintln(w, "(no draft returned)")
		return
	}

	draft := state.Draft
	fmt.Fprintf(w, "Draft ID: %s\n", draft.ID)
	if draft.Name != "" {
		fmt.Fprintf(w, "Name: %s\n", draft.Name)
	}
	fmt.Fprintf(w, "Mass: %s tons\n", budget.FormatNumber(draft.Mass))
	if state.ArmorType != nil {
		fmt.Fprintf(w, "Armor: %s (%s points/ton)\n", state.ArmorType.Name, budget.FormatNumber(state.ArmorType.PointsPerTon))
	}
	fmt.Fprintf(w, "Tonnage: %s of %s tons (%d points)\n",
		budget.FormatNumber(draft.Tonnage),
		budget.FormatNumber(state.Statistics.MaxTonnage),
		state.Statistics.TotalPoints,
	)

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tFRONT\tREAR\tMAX\tCOVERAGE")
	for _, loc := range state.Calculations.Locations {
		rear := "-"
		if loc.HasRear {
			rear = fmt.Sprintf("%d", loc.Rear)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.0f%%\n", loc.Location, loc.Front, rear, loc.Max, loc.Coverage)
	}
	_ = tw.Flush() // nolint:errcheck // the writer reports its own errors

	fmt.Fprintf(w, "\nTotal: %d / %d, unallocated %d\n",
		state.Calculations.TotalArmor,
		state.Calculations.TotalMax,
		state.Statistics.UnallocatedPoints,
	)

	if state.Validation != nil {
		for _, f := range state.Validation.Errors {
			fmt.Fprintf(w, "❌ %s: %s\n", f.Location, f.Message)
		}
		for _, f := range state.Validation.Warnings {
			fmt.Fprintf(w, "⚠️  %s: %s\n", f.Location, f.Message)
		}
	}

	fmt.Fprintf(w, "Undo: %v, Redo: %v\n", state.CanUndo, state.CanRedo)
}
