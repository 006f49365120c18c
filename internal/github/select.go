package github

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxProjects is used when SelectRelevantProjects is given max <= 0.
const DefaultMaxProjects = 3

// minKeywordLength excludes short words such as "and", "the" and "with".
const minKeywordLength = 4

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// ScoredRepository is a repository with the number of job keywords it mentions.
type ScoredRepository struct {
	Repository Repository `json:"repository"`
	Score      int        `json:"score"`
}

// Keywords returns the distinct lower-cased words of text that are at least
// four characters long, in first-seen order.
func Keywords(text string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if len(w) < minKeywordLength || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// SelectRelevantProjects scores every repository by how many job-description
// keywords appear in its README or description and returns the top max with a
// positive score, best first. Ties keep repository order.
func SelectRelevantProjects(profile *Profile, jobDescription string, max int) []ScoredRepository {
	if profile == nil {
		return nil
	}
	if max <= 0 {
		max = DefaultMaxProjects
	}
	keywords := Keywords(jobDescription)

	var scored []ScoredRepository
	for _, repo := range profile.Repositories {
		readme := strings.ToLower(repo.ReadmeContent)
		desc := strings.ToLower(repo.Description)
		score := 0
		for _, kw := range keywords {
			if strings.Contains(readme, kw) || strings.Contains(desc, kw) {
				score++
			}
		}
		if score > 0 {
			scored = append(scored, ScoredRepository{Repository: repo, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}
