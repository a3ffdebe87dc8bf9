// Package rod implements articlecheck.Fetcher with a headless Chrome
// browser, for articles that only render their body with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/articlecheck"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation plus rendering of one page.
const DefaultFetchTimeout = 30 * time.Second

// serializeJS returns the rendered document including the contents of
// open shadow roots, which outerHTML leaves out.
const serializeJS = `() => {
	const roots = [];
	const walk = (node) => {
		for (const el of node.querySelectorAll('*')) {
			if (el.shadowRoot) {
				roots.push(el.shadowRoot);
				walk(el.shadowRoot);
			}
		}
	};
	walk(document);
	const root = document.documentElement;
	if (typeof root.getHTML === 'function') {
		return '<!DOCTYPE html>' + root.getHTML({ shadowRoots: roots });
	}
	return root.outerHTML;
}`

// Ensure Fetcher implements articlecheck.Fetcher at compile time.
var _ articlecheck.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager   *BrowserManager
	timeout   time.Duration
	userAgent string
	maxPages  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithBrowserMaxPages sets how many pages are served before Chrome is recycled.
func WithBrowserMaxPages(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher launches a headless browser.
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithMaxPages(f.maxPages))
	if err != nil {
		return nil, articlecheck.WrapError(articlecheck.EFETCH, err, "failed to start browser")
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to url, waits for the load event, and returns the
// rendered HTML. A 4xx or 5xx document response is an EFETCH error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.manager.Closed() {
		return "", articlecheck.Errorf(articlecheck.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.NewPage()
	if err != nil {
		return "", articlecheck.WrapError(articlecheck.EFETCH, err, "failed to open browser page")
	}
	defer func() { _ = page.Close() }()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", fetchError(ctx, err)
		}
	}

	var status int
	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument || e.Response == nil {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return "", fetchError(ctx, err)
	}
	waitResponse()
	if status >= 400 {
		return "", articlecheck.Errorf(articlecheck.EFETCH, "failed to fetch URL: HTTP %d", status)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fetchError(ctx, err)
	}

	res, err := page.Eval(serializeJS)
	if err != nil {
		return "", fetchError(ctx, err)
	}
	html := res.Value.Str()
	if html == "" {
		return "", articlecheck.Errorf(articlecheck.EFETCH, "failed to fetch URL: empty document")
	}
	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// fetchError reports context errors as themselves so callers can match
// them with errors.Is, and wraps everything else as EFETCH.
func fetchError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return articlecheck.WrapError(articlecheck.EFETCH, ctxErr, "failed to fetch URL: %v", ctxErr)
	}
	return articlecheck.WrapError(articlecheck.EFETCH, err, "failed to fetch URL")
}
