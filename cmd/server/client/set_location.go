package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var (
	setLocationReq   v1alpha1.UpdateLocationRequest
	setLocationFront int
	setLocationRear  int
)

var setLocationCmd = &cobra.Command{
	Use:   "set-location",
	Short: "Set the armor on one location",
	Long: `Set the front and/or rear armor of one location. Locations accept full names
("Center Torso") or record sheet abbreviations (CT). A side that is not given is left as is.`,
	RunE: runSetLocation,
}

func init() {
	setLocationCmd.Flags().StringVar(&setLocationReq.DraftID, "draft-id", "", "Draft ID (required)")
	setLocationCmd.Flags().StringVar(&setLocationReq.Location, "location", "", "Location (required)")
	setLocationCmd.Flags().IntVar(&setLocationFront, "front", 0, "Front armor")
	setLocationCmd.Flags().IntVar(&setLocationRear, "rear", 0, "Rear armor")
	_ = setLocationCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
	_ = setLocationCmd.MarkFlagRequired("location") // nolint:errcheck // safe to ignore in init
}

func runSetLocation(cmd *cobra.Command, _ []string) error {
	req := setLocationReq
	if cmd.Flags().Changed("front") {
		req.Front = &setLocationFront
	}
	if cmd.Flags().Changed("rear") {
		req.Rear = &setLocationRear
	}
	if req.Front == nil && req.Rear == nil {
		return fmt.Errorf("at least one of --front or --rear is required")
	}

	var resp v1alpha1.UpdateLocationResponse
	if err := call(v1alpha1.MethodUpdateLocation, &req, &resp); err != nil {
		return err
	}

	if resp.Changed {
		fmt.Printf("✅ %s updated\n\n", req.Location)
	} else {
		fmt.Printf("No change to %s\n\n", req.Location)
	}
	printState(os.Stdout, resp.State)
	return nil
}
