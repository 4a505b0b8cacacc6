package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mech-armor-api/internal/catalog"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/budget"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/distribution"
	"github.com/KirkDiggler/mech-armor-api/internal/engine/validation"
	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
)

type calcOptions struct {
	Mass     float64
	Armor    string
	Tonnage  float64
	Preset   string
	Role     string
	Maximize bool
	JSON     bool
}

var calcOpts calcOptions

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute an armor allocation offline",
	Long: `Run the armor engine without a server: apply a preset (or maximize) for a unit and
print the per-location allocation, validation findings and budget statistics.`,
	Example: `  mech-armor-api calc --mass 100 --armor standard --tonnage 19 --preset balanced
  mech-armor-api calc --mass 55 --armor ferro_fibrous --maximize --role brawler`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCalc(cmd.OutOrStdout(), calcOpts)
	},
}

func init() {
	calcCmd.Flags().Float64Var(&calcOpts.Mass, "mass", 0, "unit mass in tons (required)")
	calcCmd.Flags().StringVar(&calcOpts.Armor, "armor", "standard", "armor type id or name")
	calcCmd.Flags().Float64Var(&calcOpts.Tonnage, "tonnage", 0, "armor tonnage, rounded to a half ton")
	calcCmd.Flags().StringVar(&calcOpts.Preset, "preset", "balanced", "distribution preset id")
	calcCmd.Flags().StringVar(&calcOpts.Role, "role", "", "add coverage warnings for a role (brawler, sniper, scout)")
	calcCmd.Flags().BoolVar(&calcOpts.Maximize, "maximize", false, "buy enough tonnage to fill every location")
	calcCmd.Flags().BoolVar(&calcOpts.JSON, "json", false, "print the result as JSON")
	_ = calcCmd.MarkFlagRequired("mass") // nolint:errcheck // safe to ignore in init
}

// calcResult is everything the calc command reports
type calcResult struct {
	Mass         float64                `json:"mass"`
	ArmorType    *mech.ArmorType        `json:"armor_type"`
	Tonnage      float64                `json:"tonnage"`
	Preset       string                 `json:"preset,omitempty"`
	TotalUsed    int                    `json:"preset_total,omitempty"`
	Scaled       bool                   `json:"scaled"`
	Calculations mech.Calculations      `json:"calculations"`
	Validation   *mech.ValidationResult `json:"validation"`
	Statistics   mech.Statistics        `json:"statistics"`
}

func calculate(opts calcOptions) (*calcResult, error) {
	if opts.Mass <= 0 || opts.Mass > 200 {
		return nil, fmt.Errorf("mass must be between 0 and 200 tons, got %s", budget.FormatNumber(opts.Mass))
	}

	armorCatalog, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load armor catalog: %w", err)
	}

	armorType, err := armorCatalog.ArmorTypeByName(opts.Armor)
	if err != nil {
		return nil, fmt.Errorf("unknown armor type %q", opts.Armor)
	}

	var role mech.Role
	if opts.Role != "" {
		var ok bool
		if role, ok = mech.ParseRole(opts.Role); !ok {
			return nil, fmt.Errorf("unknown role %q", opts.Role)
		}
	}

	result := &calcResult{
		Mass:      opts.Mass,
		ArmorType: armorType,
	}

	var alloc mech.Allocation
	if opts.Maximize {
		maximized := distribution.Maximize(opts.Mass, armorType)
		result.Tonnage = maximized.Tonnage
		alloc = maximized.Allocation
	} else {
		preset, err := armorCatalog.Preset(opts.Preset)
		if err != nil {
			return nil, fmt.Errorf("unknown preset %q", opts.Preset)
		}

		result.Tonnage = budget.NormalizeTonnage(opts.Tonnage, 0, opts.Mass)
		applied := distribution.ApplyPreset(preset, opts.Mass, budget.PointsForTonnage(result.Tonnage, armorType))
		result.Preset = preset.ID
		result.TotalUsed = applied.TotalUsed
		result.Scaled = applied.Scaled
		alloc = applied.Allocation
	}

	result.Calculations = budget.Recompute(alloc, opts.Mass)
	result.Validation = validation.Validate(&validation.Input{
		Locations:       result.Calculations.Locations,
		ArmorTonnage:    result.Tonnage,
		MaxArmorTonnage: budget.MaxArmorTonnage(opts.Mass),
		Role:            role,
	})
	result.Statistics = budget.Stats(alloc, opts.Mass, result.Tonnage, armorType)

	return result, nil
}

func runCalc(w io.Writer, opts calcOptions) error {
	result, err := calculate(opts)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printCalc(w, result)
	return nil
}

func printCalc(w io.Writer, r *calcResult) {
	num := budget.FormatNumber

	fmt.Fprintf(w, "Unit: %s tons, %s armor (%s points/ton)\n", num(r.Mass), r.ArmorType.Name, num(r.ArmorType.PointsPerTon))
	fmt.Fprintf(w, "Tonnage: %s of %s tons (%d points)\n", num(r.Tonnage), num(r.Statistics.MaxTonnage), r.Statistics.TotalPoints)
	if r.Preset != "" {
		if r.Scaled {
			fmt.Fprintf(w, "Preset: %s (scaled down from %d points)\n", r.Preset, r.TotalUsed)
		} else {
			fmt.Fprintf(w, "Preset: %s\n", r.Preset)
		}
	} else {
		fmt.Fprintf(w, "Maximized\n")
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tFRONT\tREAR\tMAX\tCOVERAGE")
	for _, loc := range r.Calculations.Locations {
		rear := "-"
		if loc.HasRear {
			rear = fmt.Sprintf("%d", loc.Rear)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.0f%%\n", loc.Location, loc.Front, rear, loc.Max, loc.Coverage)
	}
	_ = tw.Flush() // nolint:errcheck // the writer reports its own errors

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d / %d (%.0f%%)\n", r.Calculations.TotalArmor, r.Calculations.TotalMax, r.Calculations.OverallCoverage)
	fmt.Fprintf(w, "Allocated: %d, unallocated: %d, wasted: %s, weight: %s tons\n",
		r.Statistics.AllocatedPoints,
		r.Statistics.UnallocatedPoints,
		num(r.Statistics.WastedPoints),
		num(r.Statistics.ArmorWeight),
	)

	printFindings(w, "Errors", r.Validation.Errors)
	printFindings(w, "Warnings", r.Validation.Warnings)
	if r.Validation.IsValid {
		fmt.Fprintln(w, "\n✅ Allocation is valid")
	} else {
		fmt.Fprintln(w, "\n❌ Allocation is invalid")
	}
}

func printFindings(w io.Writer, title string, findings []mech.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, f := range findings {
		fmt.Fprintf(w, "  - %s: %s\n", f.Location, strings.TrimSpace(f.Message))
	}
}
