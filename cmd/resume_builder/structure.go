package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/spf13/cobra"
)

var structureCmd = &cobra.Command{
	Use:   "structure <file|->",
	Short: "Structure plain resume text into a JSON record",
	Long: "Read plain resume text from a file (or stdin with \"-\"), segment it into sections " +
		"and print the structured resume record as JSON.",
	Args: cobra.ExactArgs(1),
	RunE: runStructure,
}

var (
	structureOutput   string
	structureValidate bool
	structureStats    bool
	structureSummary  bool
)

func init() {
	structureCmd.Flags().StringVarP(&structureOutput, "output", "o", "", "Write the record to this file instead of stdout")
	structureCmd.Flags().BoolVar(&structureValidate, "validate", false, "Validate the record against the resume record JSON Schema")
	structureCmd.Flags().BoolVar(&structureStats, "stats", false, "Print structuring statistics to stderr")
	structureCmd.Flags().BoolVar(&structureSummary, "summary", false, "Print a human-readable summary of the record to stderr")

	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	record, stats := structuring.StructureWithStats(ingestion.CleanText(string(data)))

	if structureValidate {
		if err := schemas.ValidateRecord(record); err != nil {
			return fmt.Errorf("record failed schema validation: %w", err)
		}
	}
	if structureStats {
		statsJSON, err := json.Marshal(stats)
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "stats: %s\n", statsJSON)
	}
	if structureSummary {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintRecordSummary(&record)
		printer.PrintStats(stats)
	}

	out, err := marshalJSON(record)
	if err != nil {
		return err
	}
	return writeOutput(cmd, structureOutput, out)
}
