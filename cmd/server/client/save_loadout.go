package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var saveLoadoutReq v1alpha1.SaveLoadoutRequest

var saveLoadoutCmd = &cobra.Command{
	Use:   "save-loadout",
	Short: "Save a valid draft as a loadout",
	Long:  `Save a draft as a loadout. Drafts with validation errors are refused and the errors listed.`,
	RunE:  runSaveLoadout,
}

func init() {
	saveLoadoutCmd.Flags().StringVar(&saveLoadoutReq.DraftID, "draft-id", "", "Draft ID (required)")
	saveLoadoutCmd.Flags().StringVar(&saveLoadoutReq.Name, "name", "", "Loadout name (default draft name)")
	_ = saveLoadoutCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runSaveLoadout(_ *cobra.Command, _ []string) error {
	var resp v1alpha1.LoadoutResponse
	if err := call(v1alpha1.MethodSaveLoadout, &saveLoadoutReq, &resp); err != nil {
		return err
	}

	loadout := resp.Loadout
	fmt.Printf("✅ Loadout saved!\n\n")
	fmt.Printf("Loadout ID: %s\n", loadout.ID)
	fmt.Printf("Name: %s\n", loadout.Name)
	fmt.Printf("Armor: %s, %s tons, %d points\n", loadout.ArmorTypeID, budget.FormatNumber(loadout.Tonnage), loadout.TotalArmor)
	return nil
}
