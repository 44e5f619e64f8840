package prices

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

const (
	requestTimeout  = 10 * time.Second
	maxResponseSize = 16 << 20 // the mapping endpoint returns every tradeable item
)

// Client talks to the realtime prices API.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a prices API client
func NewClient(baseURL, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// FetchMapping returns the item name to id mapping for all tradeable items.
// Names are lowercased for lookup.
func (c *Client) FetchMapping(ctx context.Context) (map[string]int, error) {
	body, err := c.get(ctx, "/mapping")
	if err != nil {
		return nil, err
	}

	items := gjson.ParseBytes(body)
	if !items.IsArray() {
		return nil, fmt.Errorf("%w: mapping is not an array", domain.ErrMalformedResponse)
	}

	mapping := make(map[string]int)
	items.ForEach(func(_, item gjson.Result) bool {
		name := item.Get("name").String()
		id := int(item.Get("id").Int())
		if name != "" && id > 0 {
			mapping[lowercase(name)] = id
		}
		return true
	})

	if len(mapping) == 0 {
		return nil, fmt.Errorf("%w: empty mapping", domain.ErrMalformedResponse)
	}
	return mapping, nil
}

// FetchLatest returns the latest instant-buy and instant-sell prices for an
// item id.
func (c *Client) FetchLatest(ctx context.Context, itemID int) (high, low int, err error) {
	body, err := c.get(ctx, fmt.Sprintf("/latest?id=%d", itemID))
	if err != nil {
		return 0, 0, err
	}

	quote := gjson.GetBytes(body, fmt.Sprintf("data.%d", itemID))
	if !quote.Exists() {
		return 0, 0, fmt.Errorf("%w: id %d", domain.ErrItemNotFound, itemID)
	}

	return int(quote.Get("high").Int()), int(quote.Get("low").Int()), nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
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
