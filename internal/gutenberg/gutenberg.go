// Package gutenberg fetches public-domain books and their metadata from the
// Gutendex catalog backed by Project Gutenberg mirrors.
package gutenberg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/corpus"
	"github.com/FelipeVillota/nlp-strategy/pkg/strategy/internalerr"
)

// DefaultBaseURL is the public Gutendex catalog endpoint.
const DefaultBaseURL = "https://gutendex.com"

// Boilerplate markers wrapping the actual text in Gutenberg files.
const (
	startMarker = "*** START OF"
	endMarker   = "*** END OF"
)

// Client talks to the catalog and the text mirrors.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a client against the public catalog.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Metadata is the catalog record for one book.
type Metadata struct {
	ID      int64             `json:"id"`
	Title   string            `json:"title"`
	Authors []Author          `json:"authors"`
	Formats map[string]string `json:"formats"`
}

// Author is one catalog author entry.
type Author struct {
	Name string `json:"name"`
}

// AuthorName returns the primary author, empty when the catalog has none.
// A missing author is not an error; it passes through the pipeline as-is.
func (m *Metadata) AuthorName() string {
	if len(m.Authors) == 0 {
		return ""
	}
	return m.Authors[0].Name
}

// FetchMetadata looks up a book's catalog record by Gutenberg ID.
func (c *Client) FetchMetadata(ctx context.Context, id int64) (*Metadata, error) {
	url := fmt.Sprintf("%s/books/%d", c.BaseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata %d: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("book %d: %w", id, internalerr.ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch metadata %d: HTTP %d", id, resp.StatusCode)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode metadata %d: %w", id, err)
	}

	return &meta, nil
}

// FetchBook downloads the full text of a book and returns it with its
// metadata attached. Plain-text formats are preferred; books that only
// publish HTML are stripped to text. Any retrieval failure is fatal for
// the run: there are no retries.
func (c *Client) FetchBook(ctx context.Context, id int64) (corpus.Book, error) {
	meta, err := c.FetchMetadata(ctx, id)
	if err != nil {
		return corpus.Book{}, err
	}

	textURL, isHTML := pickFormat(meta.Formats)
	if textURL == "" {
		return corpus.Book{}, fmt.Errorf("book %d has no usable text format: %w", id, internalerr.ErrInvalidInput)
	}

	raw, err := c.fetchURL(ctx, textURL)
	if err != nil {
		return corpus.Book{}, fmt.Errorf("fetch text %d: %w", id, err)
	}

	body := raw
	if isHTML {
		body = extractText(raw)
	}
	body = stripBoilerplate(body)

	return corpus.Book{
		GutenbergID: id,
		Title:       meta.Title,
		Author:      meta.AuthorName(),
		Lines:       corpus.SplitLines(body),
	}, nil
}

func (c *Client) fetchURL(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// pickFormat chooses the download URL from the catalog's format map.
// Plain text wins; HTML is the fallback. Zip archives are skipped.
func pickFormat(formats map[string]string) (url string, isHTML bool) {
	var htmlURL string
	for mime, u := range formats {
		if strings.HasSuffix(u, ".zip") {
			continue
		}
		if strings.HasPrefix(mime, "text/plain") {
			return u, false
		}
		if strings.HasPrefix(mime, "text/html") {
			htmlURL = u
		}
	}
	return htmlURL, htmlURL != ""
}

// stripBoilerplate removes the Project Gutenberg header and footer, keeping
// only the lines between the START and END markers. Texts without markers
// are returned whole.
func stripBoilerplate(body string) string {
	lines := strings.Split(body, "\n")

	start := 0
	end := len(lines)
	for i, line := range lines {
		if strings.Contains(line, startMarker) && start == 0 {
			start = i + 1
		}
		if strings.Contains(line, endMarker) {
			end = i
			break
		}
	}
	if start >= end {
		return body
	}

	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// extractText strips HTML markup, keeping text nodes separated by newlines.
func extractText(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return raw
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				sb.WriteString(text)
				sb.WriteByte('\n')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(sb.String())
}
