package client

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var getDraftReq v1alpha1.DraftRequest

var getDraftCmd = &cobra.Command{
	Use:   "get-draft",
	Short: "Show an armor draft",
	Long:  `Show an armor draft with its allocation, validation findings and budget.`,
	RunE:  runGetDraft,
}

func init() {
	getDraftCmd.Flags().StringVar(&getDraftReq.DraftID, "draft-id", "", "Draft ID (required)")
	getDraftCmd.Flags().StringVar(&getDraftReq.Role, "role", "", "Add coverage warnings for a role (brawler, sniper, scout)")
	_ = getDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runGetDraft(_ *cobra.Command, _ []string) error {
	var resp v1alpha1.DraftResponse
	if err := call(v1alpha1.MethodGetDraft, &getDraftReq, &resp); err != nil {
		return err
	}

	printState(os.Stdout, resp.State)
	return nil
}
