package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume with the language model",
	Long: "Assemble a prompt from a job description and any of: a LinkedIn profile export, " +
		"LinkedIn post URLs, a GitHub username and an existing resume; ask the model for a " +
		"resume and print it. --record also writes the structured record as JSON.",
	RunE: runGenerate,
}

var (
	genJobFile     string
	genLinkedIn    string
	genResume      string
	genGitHubUser  string
	genPostURLs    []string
	genMaxProjects int
	genOutput      string
	genRecord      string
	genVerbose     bool
)

func init() {
	generateCmd.Flags().StringVarP(&genJobFile, "job", "j", "", "Path to the job description text (required)")
	generateCmd.Flags().StringVar(&genLinkedIn, "linkedin", "", "Path to a LinkedIn profile export (PDF or text)")
	generateCmd.Flags().StringVar(&genResume, "resume", "", "Path to an existing resume (PDF, DOCX or text)")
	generateCmd.Flags().StringVar(&genGitHubUser, "github", "", "GitHub username to pull projects from")
	generateCmd.Flags().StringSliceVar(&genPostURLs, "post", nil, "LinkedIn post URL (repeatable)")
	generateCmd.Flags().IntVar(&genMaxProjects, "max-projects", 0, "Maximum GitHub projects to include (default 3)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write the resume text to this file instead of stdout")
	generateCmd.Flags().StringVar(&genRecord, "record", "", "Also write the structured record JSON to this file")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print selected projects and a record summary to stderr")

	_ = generateCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(generateCmd)
}

// generateSources are the collaborators used to gather generation input.
type generateSources struct {
	ingester *ingestion.Ingester
	github   server.ProfileFetcher
	posts    server.PostScraper
}

// generateFlags mirrors the generate command's input flags.
type generateFlags struct {
	jobFile     string
	linkedIn    string
	resume      string
	githubUser  string
	postURLs    []string
	maxProjects int
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := newCache(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ingester, err := newIngester(ctx)
	if err != nil {
		return err
	}

	in, err := buildGenerateInput(ctx, generateSources{
		ingester: ingester,
		github:   newGitHubClient(store),
		posts:    newPostScraper(store),
	}, generateFlags{
		jobFile:     genJobFile,
		linkedIn:    genLinkedIn,
		resume:      genResume,
		githubUser:  genGitHubUser,
		postURLs:    genPostURLs,
		maxProjects: genMaxProjects,
	})
	if err != nil {
		return err
	}

	client, err := newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	result, err := generation.NewGenerator(client, llm.TierStandard).Generate(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}

	if genVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintSelectedProjects(result.Projects)
		printer.PrintRecordSummary(&result.Record)
		printer.PrintStats(result.Stats)
	}

	if genRecord != "" {
		out, err := marshalJSON(result.Record)
		if err != nil {
			return err
		}
		if err := writeOutput(cmd, genRecord, out); err != nil {
			return err
		}
	}
	return writeOutput(cmd, genOutput, []byte(result.Text+"\n"))
}

// buildGenerateInput reads every configured source into generation input.
func buildGenerateInput(ctx context.Context, src generateSources, flags generateFlags) (generation.Input, error) {
	in := generation.Input{MaxProjects: flags.maxProjects}

	job, err := readDocument(ctx, src.ingester, flags.jobFile)
	if err != nil {
		return in, fmt.Errorf("failed to read job description: %w", err)
	}
	in.JobDescription = job

	if flags.linkedIn != "" {
		if in.LinkedInText, err = readDocument(ctx, src.ingester, flags.linkedIn); err != nil {
			return in, fmt.Errorf("failed to read LinkedIn export: %w", err)
		}
	}
	if flags.resume != "" {
		if in.ExistingResume, err = readDocument(ctx, src.ingester, flags.resume); err != nil {
			return in, fmt.Errorf("failed to read existing resume: %w", err)
		}
	}

	if user := strings.TrimSpace(flags.githubUser); user != "" {
		profile, err := src.github.FetchProfile(ctx, user)
		if err != nil {
			return in, fmt.Errorf("failed to fetch GitHub profile: %w", err)
		}
		in.GitHub = profile
	}

	if len(flags.postURLs) > 0 {
		for _, p := range src.posts.ScrapePosts(ctx, flags.postURLs) {
			in.Posts = append(in.Posts, p.Content)
		}
	}

	return in, nil
}

// readDocument extracts the text of a document. Files without a known
// extension are read as plain text.
func readDocument(ctx context.Context, ingester *ingestion.Ingester, path string) (string, error) {
	if _, err := ingestion.DetectFormat(path); err != nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return ingestion.CleanText(string(data)), nil
	}
	text, _, err := ingester.IngestFile(ctx, path)
	return text, err
}
