package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var maximizeReq v1alpha1.DraftRequest

var maximizeCmd = &cobra.Command{
	Use:   "maximize",
	Short: "Fill every location of a draft",
	Long:  `Buy enough armor tonnage to reach every location maximum and allocate it.`,
	RunE:  runMaximize,
}

func init() {
	maximizeCmd.Flags().StringVar(&maximizeReq.DraftID, "draft-id", "", "Draft ID (required)")
	_ = maximizeCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runMaximize(_ *cobra.Command, _ []string) error {
	var resp v1alpha1.PointsResponse
	if err := call(v1alpha1.MethodMaximize, &maximizeReq, &resp); err != nil {
		return err
	}

	fmt.Printf("✅ Armor maximized: %d points\n\n", resp.Points)
	printState(os.Stdout, resp.State)
	return nil
}
