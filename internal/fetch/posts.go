package fetch

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultScrapeConcurrency caps how many posts are rendered at once.
const DefaultScrapeConcurrency = 2

// Post is the text of one scraped LinkedIn post.
type Post struct {
	URL     string `json:"url"`
	Content string `json:"content"`
}

// PostScraper renders LinkedIn post pages and extracts their body text.
type PostScraper struct {
	renderer    Renderer
	concurrency int
}

// NewPostScraper creates a scraper. concurrency <= 0 uses DefaultScrapeConcurrency.
func NewPostScraper(renderer Renderer, concurrency int) *PostScraper {
	if concurrency <= 0 {
		concurrency = DefaultScrapeConcurrency
	}
	return &PostScraper{renderer: renderer, concurrency: concurrency}
}

// ScrapePosts returns the posts found at urls, in input order. URLs that fail
// to render or carry no post body are skipped, so the result may be shorter
// than the input and is empty when nothing could be scraped.
func (s *PostScraper) ScrapePosts(ctx context.Context, urls []string) []Post {
	logger := logging.FromContext(ctx)
	found := make([]*Post, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, raw := range urls {
		g.Go(func() error {
			u := CleanLinkedInURL(raw)
			if u == "" {
				return nil
			}
			html, err := s.renderer.Render(gctx, u)
			if err != nil {
				logger.Warn().Err(err).Str("url", u).Msg("failed to render post")
				return nil
			}
			content, err := ExtractPost(html)
			if err != nil || content == "" {
				logger.Debug().Str("url", u).Msg("no post content found")
				return nil
			}
			found[i] = &Post{URL: u, Content: content}
			return nil
		})
	}
	_ = g.Wait()

	posts := make([]Post, 0, len(urls))
	if ctx.Err() != nil {
		return posts
	}
	for _, p := range found {
		if p != nil {
			posts = append(posts, *p)
		}
	}
	logger.Info().Int("requested", len(urls)).Int("scraped", len(posts)).Msg("scraped linkedin posts")
	return posts
}

// ExtractPost returns the trimmed text of the first PostSelectors match that
// has any text. Pages without a rendered post body fall back to the
// description meta tags, which carry the post text on public share pages.
func ExtractPost(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	doc.Find(strings.Join(PlatformNoiseSelectors(PlatformLinkedInPost), ", ")).Remove()

	for _, selector := range PostSelectors() {
		var content string
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			content = cleanWhitespace(sel.Text())
			return content == ""
		})
		if content != "" {
			return content, nil
		}
	}
	return metaContent(doc, "og:description", "description"), nil
}
