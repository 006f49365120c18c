package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract plain text from a PDF, DOCX or text document",
	Long: "Extract and clean the text of a PDF, DOCX, TXT or Markdown document. With --structure " +
		"the text is also structured and the output is JSON.",
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var (
	extractOutput    string
	extractStructure bool
)

// extractResult is the --structure output
type extractResult struct {
	Text     string              `json:"text"`
	Record   types.ResumeRecord  `json:"record"`
	Stats    structuring.Stats   `json:"stats"`
	Metadata *ingestion.Metadata `json:"metadata"`
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write output to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractStructure, "structure", false, "Structure the extracted text and print JSON")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ingester, err := newIngester(ctx)
	if err != nil {
		return err
	}

	text, meta, err := ingester.IngestFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", args[0], err)
	}

	if !extractStructure {
		return writeOutput(cmd, extractOutput, []byte(text+"\n"))
	}

	record, stats := structuring.StructureWithStats(text)
	out, err := marshalJSON(extractResult{Text: text, Record: record, Stats: stats, Metadata: meta})
	if err != nil {
		return err
	}
	return writeOutput(cmd, extractOutput, out)
}
