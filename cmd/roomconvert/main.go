package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roomease/roomease/internal/ingest"
)

var (
	input   string
	sheet   string
	output  string
	skipped string
)

// maxDiagnostics caps how many rejection lines the summary prints.
const maxDiagnostics = 25

var rootCmd = &cobra.Command{
	Use:   "roomconvert",
	Short: "Convert a registrar room spreadsheet to the roomease catalog format",
	Long: `Convert a registrar room spreadsheet to the roomease catalog format

The registrar sheet lays rooms out in two four-column blocks per row
(building/room, capacity, furniture, AV features). roomconvert flattens
both blocks into one clean JSON room list and writes every row it could
not admit to a rejection log.
`,
	RunE:          convert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&input, "input", "i", "", "Input .xlsx file (required)")
	rootCmd.Flags().StringVarP(&sheet, "sheet", "s", "REG Rooms", "Worksheet name")
	rootCmd.Flags().StringVarP(&output, "output", "o", "rooms.json", "Output room catalog file")
	rootCmd.Flags().StringVar(&skipped, "skipped", "", "Write the rejection log to this file")
	rootCmd.MarkFlagRequired("input")
}

func convert(cmd *cobra.Command, args []string) error {
	rows, err := ingest.ReadSheet(input, sheet)
	if err != nil {
		return err
	}

	res := ingest.Normalize(rows)

	if err := writeJSON(output, res.Rooms); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	if skipped != "" {
		if err := writeJSON(skipped, res.Rejected); err != nil {
			return fmt.Errorf("write %s: %w", skipped, err)
		}
	}

	fmt.Printf("Raw room strings seen:  %d\n", res.RawSeen)
	fmt.Printf("Building codes parsed:  %d\n", res.BuildingGuesses)
	fmt.Printf("Rooms written:          %d (%s)\n", len(res.Rooms), output)
	fmt.Printf("Rows skipped:           %d\n", len(res.Rejected))

	for i, rej := range res.Rejected {
		if i == maxDiagnostics {
			fmt.Printf("  ... and %d more\n", len(res.Rejected)-maxDiagnostics)
			break
		}
		fmt.Printf("  [%s] %q: %s\n", rej.Side, rej.RawRoom, rej.Reason)
	}

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
