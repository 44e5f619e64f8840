package prices

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

// stubQuoter counts calls so tests can observe caching behaviour
type stubQuoter struct {
	mapping      map[string]int
	mappingErr   error
	mappingCalls int

	high, low   int
	latestErr   error
	latestCalls int
}

func (s *stubQuoter) FetchMapping(ctx context.Context) (map[string]int, error) {
	s.mappingCalls++
	if s.mappingErr != nil {
		return nil, s.mappingErr
	}
	return s.mapping, nil
}

func (s *stubQuoter) FetchLatest(ctx context.Context, itemID int) (int, int, error) {
	s.latestCalls++
	if s.latestErr != nil {
		return 0, 0, s.latestErr
	}
	return s.high, s.low, nil
}

func TestGetPrice(t *testing.T) {
	quoter := &stubQuoter{
		mapping: map[string]int{"twisted bow": 20997},
		high:    1500000000,
		low:     1450000000,
	}
	svc := NewService(quoter, 16, 5*time.Minute)

	price, err := svc.GetPrice(context.Background(), "Twisted bow")
	require.NoError(t, err)

	assert.Equal(t, "Twisted bow", price.ItemName)
	assert.Equal(t, 20997, price.ItemID)
	assert.Equal(t, 1500000000, price.High)
	assert.Equal(t, 1450000000, price.Low)
	assert.WithinDuration(t, time.Now(), price.FetchedAt, time.Minute)
}

func TestGetPriceServesRepeatLookupsFromCache(t *testing.T) {
	quoter := &stubQuoter{
		mapping: map[string]int{"coal": 453},
		high:    150,
		low:     140,
	}
	svc := NewService(quoter, 16, 5*time.Minute)

	first, err := svc.GetPrice(context.Background(), "Coal")
	require.NoError(t, err)

	// Case and spacing variants hit the same cache entry
	second, err := svc.GetPrice(context.Background(), "  COAL ")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, quoter.latestCalls)
	assert.Equal(t, 1, quoter.mappingCalls)
}

func TestGetPriceUnknownItem(t *testing.T) {
	quoter := &stubQuoter{mapping: map[string]int{"coal": 453}}
	svc := NewService(quoter, 16, 5*time.Minute)

	_, err := svc.GetPrice(context.Background(), "Notanitem")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestGetPriceMappingRetriedAfterFailure(t *testing.T) {
	quoter := &stubQuoter{
		mappingErr: errors.New("api down"),
	}
	svc := NewService(quoter, 16, 5*time.Minute)

	_, err := svc.GetPrice(context.Background(), "Coal")
	require.Error(t, err)

	// Mapping load recovers once the API comes back
	quoter.mappingErr = nil
	quoter.mapping = map[string]int{"coal": 453}
	quoter.high, quoter.low = 150, 140

	price, err := svc.GetPrice(context.Background(), "Coal")
	require.NoError(t, err)
	assert.Equal(t, 453, price.ItemID)
	assert.Equal(t, 2, quoter.mappingCalls)
}

func TestGetPricePropagatesLatestError(t *testing.T) {
	fetchErr := errors.New("api down")
	quoter := &stubQuoter{
		mapping:   map[string]int{"coal": 453},
		latestErr: fetchErr,
	}
	svc := NewService(quoter, 16, 5*time.Minute)

	_, err := svc.GetPrice(context.Background(), "Coal")
	assert.ErrorIs(t, err, fetchErr)
}
