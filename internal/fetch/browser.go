package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-builder/internal/logging"
)

// MinContentLength is the minimum extracted text length to consider an HTTP
// fetch successful. Shorter pages are rendered in a browser instead.
const MinContentLength = 200

// DefaultSettleTime is how long a rendered page is given to run its scripts.
const DefaultSettleTime = 5 * time.Second

// ShouldUseBrowser returns true if the extracted text is too short,
// indicating the page is likely rendered by JavaScript.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in headless Chrome and returns the rendered HTML.
// Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout, settle time.Duration) (string, error) {
	logger := logging.FromContext(ctx)
	logger.Debug().Str("url", url).Msg("starting headless browser")

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(settle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	logger.Debug().Str("url", url).Int("bytes", len(html)).Msg("rendered page")
	return html, nil
}

// Renderer returns the HTML of a page.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// BrowserRenderer renders pages with headless Chrome.
type BrowserRenderer struct {
	Timeout time.Duration
	Settle  time.Duration
}

// Render implements Renderer.
func (b BrowserRenderer) Render(ctx context.Context, url string) (string, error) {
	timeout, settle := b.Timeout, b.Settle
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if settle <= 0 {
		settle = DefaultSettleTime
	}
	return WithBrowser(ctx, url, timeout, settle)
}

// HTTPRenderer returns the raw HTML of a plain GET.
type HTTPRenderer struct {
	Options *Options
}

// Render implements Renderer.
func (h HTTPRenderer) Render(ctx context.Context, url string) (string, error) {
	result, err := URL(ctx, url, h.Options)
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// FallbackRenderer tries Primary and uses Secondary when Primary fails or
// returns a page with too little text.
type FallbackRenderer struct {
	Primary   Renderer
	Secondary Renderer
}

// Render implements Renderer.
func (f FallbackRenderer) Render(ctx context.Context, url string) (string, error) {
	html, err := f.Primary.Render(ctx, url)
	if err == nil {
		text, _ := ExtractMainText(html, DefaultTextSelectors())
		if !ShouldUseBrowser(text) {
			return html, nil
		}
	}
	logging.FromContext(ctx).Debug().Str("url", url).Msg("falling back to secondary renderer")
	return f.Secondary.Render(ctx, url)
}
