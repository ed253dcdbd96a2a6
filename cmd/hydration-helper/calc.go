package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hydration-helper/internal/intake"
	"hydration-helper/internal/model"
)

var (
	calcFlags  measurementFlags
	calcFormat string
)

// calcCmd prints the recommended daily intake for the given measurements.
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the recommended daily water intake",
	RunE: func(cmd *cobra.Command, _ []string) error {
		b := intake.Explain(calcFlags.measurements())
		return printBreakdown(cmd.OutOrStdout(), b, calcFormat)
	},
}

func init() {
	calcFlags.register(calcCmd)
	calcCmd.Flags().StringVar(&calcFormat, "format", "text", "Output format: text or json")
	rootCmd.AddCommand(calcCmd)
}

// printBreakdown writes the computation result in the requested format.
func printBreakdown(w io.Writer, b model.Breakdown, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case "text":
		fmt.Fprintf(w, "Recommended daily intake: %d liters\n", b.Liters)
		fmt.Fprintf(w, "  height:          %.2f cm\n", b.HeightCm)
		fmt.Fprintf(w, "  weight:          %.2f kg\n", b.WeightKg)
		fmt.Fprintf(w, "  baseline:        %.3f L\n", b.BaseLiters)
		fmt.Fprintf(w, "  age factor:      x%.2f\n", b.AgeFactor)
		fmt.Fprintf(w, "  activity factor: x%.2f\n", b.ActivityFactor)
		fmt.Fprintf(w, "  height factor:   x%.2f\n", b.HeightFactor)
		fmt.Fprintf(w, "  before rounding: %.3f L\n", b.RawLiters)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}
}
