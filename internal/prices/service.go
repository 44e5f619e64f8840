package prices

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
	"github.com/osmundr/GielinorBot_Go/internal/logger"
	"github.com/osmundr/GielinorBot_Go/internal/metrics"
)

// Quoter fetches live data from the prices API; satisfied by *Client.
type Quoter interface {
	FetchMapping(ctx context.Context) (map[string]int, error)
	FetchLatest(ctx context.Context, itemID int) (high, low int, err error)
}

// Service resolves item names to live marketplace quotes.
type Service interface {
	GetPrice(ctx context.Context, itemName string) (*domain.ItemPrice, error)
}

type service struct {
	client Quoter
	cache  *expirable.LRU[string, *domain.ItemPrice]

	mappingMu sync.Mutex
	mapping   map[string]int
}

// NewService creates a price lookup service with an expiring quote cache.
func NewService(client Quoter, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		client: client,
		cache:  expirable.NewLRU[string, *domain.ItemPrice](cacheSize, nil, cacheTTL),
	}
}

// GetPrice returns the latest quote for an item, serving repeat lookups from
// the cache until the TTL lapses.
func (s *service) GetPrice(ctx context.Context, itemName string) (*domain.ItemPrice, error) {
	log := logger.FromContext(ctx)
	key := lowercase(itemName)

	if price, ok := s.cache.Get(key); ok {
		log.Debug("Price cache hit", "item", key)
		return price, nil
	}

	price, err := s.fetchPrice(ctx, key, itemName)
	metrics.RecordPriceLookup(err)
	if err != nil {
		return nil, err
	}

	s.cache.Add(key, price)
	log.Info("Price fetched", "item", price.ItemName, "high", price.High, "low", price.Low)
	return price, nil
}

func (s *service) fetchPrice(ctx context.Context, key, itemName string) (*domain.ItemPrice, error) {
	itemID, err := s.itemID(ctx, key)
	if err != nil {
		return nil, err
	}

	high, low, err := s.client.FetchLatest(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price for %q: %w", itemName, err)
	}

	return &domain.ItemPrice{
		ItemName:  itemName,
		ItemID:    itemID,
		High:      high,
		Low:       low,
		FetchedAt: time.Now(),
	}, nil
}

// itemID resolves an item name to its marketplace id, loading the mapping on
// first use. A failed load is retried on the next lookup rather than pinned.
func (s *service) itemID(ctx context.Context, key string) (int, error) {
	s.mappingMu.Lock()
	defer s.mappingMu.Unlock()

	if s.mapping == nil {
		mapping, err := s.client.FetchMapping(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load item mapping: %w", err)
		}
		s.mapping = mapping
	}

	itemID, ok := s.mapping[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotFound, key)
	}
	return itemID, nil
}

func lowercase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
