package wiki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
	"github.com/osmundr/GielinorBot_Go/internal/logger"
)

const (
	requestTimeout  = 10 * time.Second
	searchLimit     = "10"
	maxResponseSize = 4 << 20 // 4MB cap on wiki responses
)

// Client fetches monster page wikitext from a MediaWiki API.
// One search plus one parse call per lookup; no retries - a failed fetch
// falls through to the caller's fallback path instead.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	titler    cases.Caser
}

// NewClient creates a wiki API client
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: requestTimeout,
		},
		titler: cases.Title(language.English),
	}
}

// FetchMonsterWikitext finds the best-matching page for the monster name and
// returns its canonical title plus raw wikitext.
// Error taxonomy: domain.ErrMonsterNotFound when no page matches,
// domain.ErrMalformedResponse when the API answers with an unexpected shape,
// domain.ErrFetchFailed for transport-level failures.
func (c *Client) FetchMonsterWikitext(ctx context.Context, monsterName string) (string, string, error) {
	log := logger.FromContext(ctx)

	title, err := c.searchBestTitle(ctx, monsterName)
	if err != nil {
		return "", "", err
	}

	log.Debug("Resolved monster page", "monster", monsterName, "page", title)

	wikitext, err := c.fetchWikitext(ctx, title)
	if err != nil {
		return "", "", err
	}

	return title, wikitext, nil
}

// searchBestTitle runs an opensearch query and picks the hit closest to the
// requested name by levenshtein distance.
func (c *Client) searchBestTitle(ctx context.Context, monsterName string) (string, error) {
	params := url.Values{
		"action": {"opensearch"},
		"search": {c.titler.String(monsterName)},
		"limit":  {searchLimit},
		"format": {"json"},
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	// opensearch responds with [query, [titles...], [descriptions...], [urls...]]
	titles := gjson.GetBytes(body, "1")
	if !titles.IsArray() {
		return "", fmt.Errorf("%w: opensearch result is not an array", domain.ErrMalformedResponse)
	}

	best := ""
	bestDistance := -1
	want := strings.ToLower(monsterName)
	for _, hit := range titles.Array() {
		title := hit.String()
		if title == "" {
			continue
		}
		d := levenshtein.ComputeDistance(want, strings.ToLower(title))
		if bestDistance < 0 || d < bestDistance {
			best = title
			bestDistance = d
		}
	}

	if best == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrMonsterNotFound, monsterName)
	}

	return best, nil
}

// fetchWikitext pulls the raw wikitext for a page title.
func (c *Client) fetchWikitext(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":        {"parse"},
		"page":          {title},
		"prop":          {"wikitext"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	body, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	if apiErr := gjson.GetBytes(body, "error.code"); apiErr.Exists() {
		if apiErr.String() == "missingtitle" {
			return "", fmt.Errorf("%w: %s", domain.ErrMonsterNotFound, title)
		}
		return "", fmt.Errorf("%w: api error %s", domain.ErrMalformedResponse, apiErr.String())
	}

	wikitext := gjson.GetBytes(body, "parse.wikitext")
	if !wikitext.Exists() || wikitext.String() == "" {
		return "", fmt.Errorf("%w: missing wikitext for %s", domain.ErrMalformedResponse, title)
	}

	return wikitext.String(), nil
}

// get performs a single GET against the API with the standard headers.
func (c *Client) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrFetchFailed, err)
	}

	return body, nil
}
