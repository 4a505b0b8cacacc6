package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var (
	applyPresetReq     v1alpha1.DistributionRequest
	applyPresetPreview bool
)

var applyPresetCmd = &cobra.Command{
	Use:   "apply-preset",
	Short: "Apply a distribution preset to a draft",
	Long: `Apply a named distribution preset to a draft. The preset is scaled down when the
draft's tonnage cannot afford it. With --preview nothing is saved.`,
	RunE: runApplyPreset,
}

func init() {
	applyPresetCmd.Flags().StringVar(&applyPresetReq.DraftID, "draft-id", "", "Draft ID (required)")
	applyPresetCmd.Flags().StringVar(&applyPresetReq.PresetID, "preset", "balanced", "Preset ID")
	applyPresetCmd.Flags().BoolVar(&applyPresetPreview, "preview", false, "Only show what the preset would do")
	_ = applyPresetCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runApplyPreset(_ *cobra.Command, _ []string) error {
	if applyPresetPreview {
		var resp v1alpha1.PreviewDistributionResponse
		if err := call(v1alpha1.MethodPreviewDistribution, &applyPresetReq, &resp); err != nil {
			return err
		}

		fmt.Printf("Preset %s needs %d points, budget is %d\n", applyPresetReq.PresetID, resp.TotalUsed, resp.TotalPoints)
		if resp.Scaled {
			fmt.Printf("The preset would be scaled down to fit\n")
		}
		fmt.Printf("\nAllocation preview:\n")
		for _, loc := range mech.Locations {
			armor := resp.Allocation[loc]
			fmt.Printf("  - %s: %d/%d\n", loc, armor.Front, armor.Rear)
		}
		return nil
	}

	var resp v1alpha1.ApplyDistributionResponse
	if err := call(v1alpha1.MethodApplyDistribution, &applyPresetReq, &resp); err != nil {
		return err
	}

	fmt.Printf("✅ Preset %s applied (%d points requested", applyPresetReq.PresetID, resp.TotalUsed)
	if resp.Scaled {
		fmt.Printf(", scaled to fit")
	}
	fmt.Printf(")\n\n")
	printState(os.Stdout, resp.State)
	return nil
}
