// Package verify implements the best-effort reachability/keyword check
// against the permitted source domains. It is fire-and-forget: the outcome
// feeds logs and metrics only and never changes an answer.
package verify

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/centai/centai/internal/infrastructure/resilience"
)

type Checker struct {
	domains    []string
	httpClient *http.Client
	exec       *resilience.Executor
}

// New builds a checker over the permitted domain allow-list. exec may be nil
// to fetch without a breaker.
func New(domains []string, exec *resilience.Executor) *Checker {
	return &Checker{
		domains:    domains,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		exec:       exec,
	}
}

// Verify probes urls (or the allow-list when urls is empty) until one page is
// reachable; HTML pages must additionally contain the keyword in their text.
// Per-URL failures are swallowed.
func (c *Checker) Verify(ctx context.Context, keywords string, urls []string) bool {
	toCheck := urls
	if len(toCheck) == 0 {
		toCheck = c.domains
	}
	keyword := strings.ToLower(strings.TrimSpace(keywords))

	for _, u := range toCheck {
		if ctx.Err() != nil {
			return false
		}
		if c.checkURL(ctx, u, keyword) {
			return true
		}
	}
	return false
}

func (c *Checker) checkURL(ctx context.Context, url, keyword string) bool {
	var hit bool
	fetch := func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return errors.New("source fetch status " + resp.Status)
		}
		if keyword == "" {
			hit = true
			return nil
		}
		contentType := strings.ToLower(resp.Header.Get("Content-Type"))
		if !strings.Contains(contentType, "text/html") {
			// Non-HTML but reachable counts as verified.
			hit = true
			return nil
		}
		doc, err := html.Parse(resp.Body)
		if err != nil {
			return err
		}
		hit = strings.Contains(strings.ToLower(pageText(doc)), keyword)
		return nil
	}

	var err error
	if c.exec != nil {
		err = c.exec.Execute(ctx, "source_verify", fetch, classifyVerifyError)
	} else {
		err = fetch(ctx)
	}
	return err == nil && hit
}

func classifyVerifyError(err error) resilience.ErrorClassification {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.ErrorClassification{RecordFailure: false}
	}
	return resilience.ErrorClassification{RecordFailure: true}
}

// pageText collects the visible text of a parsed HTML document, skipping
// script and style subtrees.
func pageText(doc *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return b.String()
}
