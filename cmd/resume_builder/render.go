package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <record.json|->",
	Short: "Render a structured resume record as LaTeX",
	Long: "Read a resume record JSON (or plain resume text with --text) and render it " +
		"with the built-in LaTeX template or a custom text/template file.",
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var (
	renderTemplate string
	renderOutput   string
	renderFromText bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Path to a LaTeX template (default: built-in)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write the LaTeX to this file instead of stdout")
	renderCmd.Flags().BoolVar(&renderFromText, "text", false, "Treat the input as plain resume text and structure it first")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	var record types.ResumeRecord
	if renderFromText {
		record = structuring.Structure(ingestion.CleanText(string(data)))
	} else if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("failed to parse resume record: %w", err)
	}

	out, err := rendering.RenderLaTeX(&record, renderTemplate)
	if err != nil {
		return err
	}
	return writeOutput(cmd, renderOutput, []byte(out))
}
