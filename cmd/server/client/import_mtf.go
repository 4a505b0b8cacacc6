package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/handlers/armor/v1alpha1"
)

var importMTFName string

var importMTFCmd = &cobra.Command{
	Use:   "import-mtf <file.mtf>",
	Short: "Create a draft from a MegaMek unit file",
	Long:  `Read the armor block of a MegaMek .mtf file and create a draft with that allocation.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImportMTF,
}

func init() {
	importMTFCmd.Flags().StringVar(&importMTFName, "name", "", "Draft name (default chassis and model)")
}

func runImportMTF(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var resp v1alpha1.DraftResponse
	err = call(v1alpha1.MethodImportMTF, &v1alpha1.ImportMTFRequest{
		Content: string(content),
		Name:    importMTFName,
	}, &resp)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Imported %s\n\n", args[0])
	printState(os.Stdout, resp.State)
	return nil
}
