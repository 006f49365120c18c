package generation

import (
	"context"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/structuring"
	"github.com/jonathan/resume-builder/internal/types"
)

// Result is a generated resume in both text and structured form.
type Result struct {
	Text     string                    `json:"resume"`
	Record   types.ResumeRecord        `json:"record"`
	Stats    structuring.Stats         `json:"stats"`
	Projects []github.ScoredRepository `json:"projects,omitempty"`
}

// Generator writes resumes with a language model.
type Generator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGenerator creates a Generator using the given model tier.
func NewGenerator(client llm.Client, tier llm.ModelTier) *Generator {
	if tier == "" {
		tier = llm.TierStandard
	}
	return &Generator{client: client, tier: tier}
}

// Generate builds the prompt, calls the model and structures its answer.
func (g *Generator) Generate(ctx context.Context, in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx)

	prompt, projects, err := BuildPrompt(in)
	if err != nil {
		return nil, &Error{Message: "failed to build prompt", Cause: err}
	}

	start := time.Now()
	raw, err := g.client.GenerateContent(ctx, prompt, g.tier)
	if err != nil {
		return nil, &Error{Message: "model call failed", Cause: err}
	}

	text := ingestion.StripMarkdown(llm.StripCodeFence(raw))
	if strings.TrimSpace(text) == "" {
		return nil, &Error{Message: "model returned an empty resume"}
	}

	record, stats := structuring.StructureWithStats(text)
	logger.Info().
		Str("model", g.client.GetModel(g.tier)).
		Int("prompt_chars", len(prompt)).
		Int("resume_chars", len(text)).
		Int("projects", len(projects)).
		Dur("duration", time.Since(start)).
		Interface("stats", stats).
		Msg("generated resume")

	return &Result{
		Text:     text,
		Record:   record,
		Stats:    stats,
		Projects: projects,
	}, nil
}
