package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var createDraftReq v1alpha1.CreateDraftRequest

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Create a new armor draft",
	Long:  `Create a new armor draft for a unit of the given mass.`,
	RunE:  runCreateDraft,
}

func init() {
	createDraftCmd.Flags().StringVar(&createDraftReq.Name, "name", "", "Unit name (optional)")
	createDraftCmd.Flags().Float64Var(&createDraftReq.Mass, "mass", 0, "Unit mass in tons (required)")
	createDraftCmd.Flags().StringVar(&createDraftReq.ArmorTypeID, "armor", "", "Armor type id (default standard)")
	createDraftCmd.Flags().Float64Var(&createDraftReq.Tonnage, "tonnage", 0, "Armor tonnage")
	_ = createDraftCmd.MarkFlagRequired("mass") // nolint:errcheck // safe to ignore in init
}

func runCreateDraft(_ *cobra.Command, _ []string) error {
	var resp v1alpha1.DraftResponse
	if err := call(v1alpha1.MethodCreateDraft, &createDraftReq, &resp); err != nil {
		return err
	}

	fmt.Printf("✅ Armor draft created successfully!\n\n")
	printState(os.Stdout, resp.State)

	id := resp.State.Draft.ID
	fmt.Printf("\n💡 Next steps:\n")
	fmt.Printf("1. Apply a preset: mech-armor-api client apply-preset --draft-id %s --preset balanced\n", id)
	fmt.Printf("2. Or fill every location: mech-armor-api client maximize --draft-id %s\n", id)
	fmt.Printf("3. Adjust a location: mech-armor-api client set-location --draft-id %s --location HD --front 9\n", id)
	fmt.Printf("4. Save it: mech-armor-api client save-loadout --draft-id %s\n", id)

	return nil
}
