package droptable

import (
	"context"
	"fmt"
	"strings"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
	"github.com/osmundr/GielinorBot_Go/internal/logger"
	"github.com/osmundr/GielinorBot_Go/internal/metrics"
	"github.com/osmundr/GielinorBot_Go/internal/simulation"
)

// Fetcher acquires raw wikitext for a monster's page.
type Fetcher interface {
	FetchMonsterWikitext(ctx context.Context, monsterName string) (title string, wikitext string, err error)
}

// Simulator turns a drop table and a kill count into aggregated loot.
type Simulator interface {
	Simulate(table *domain.DropTable, killCount int) *domain.SimulationResult
}

// Service is the public entry point for the loot simulator.
type Service interface {
	GetDropTable(ctx context.Context, monsterName string) (*domain.DropTable, error)
	SimulateKills(ctx context.Context, monsterName string, killCount int) (*domain.SimulationResult, error)
}

// Options tunes service behaviour.
type Options struct {
	// AllowEmptyTables lets a parse that found no drops anywhere come back
	// as a valid empty table (tagged with the requested name) instead of
	// ErrNoDropData. The fallback catalog is always consulted first either
	// way.
	AllowEmptyTables bool
}

type service struct {
	fetcher Fetcher
	parser  *Parser
	catalog *FallbackCatalog
	cache   *Cache
	engine  Simulator
	opts    Options
}

// NewService creates the drop table service.
func NewService(fetcher Fetcher, parser *Parser, catalog *FallbackCatalog, cache *Cache, engine Simulator, opts Options) Service {
	return &service{
		fetcher: fetcher,
		parser:  parser,
		catalog: catalog,
		cache:   cache,
		engine:  engine,
		opts:    opts,
	}
}

// SimulateKills resolves the monster's drop table and simulates killCount
// kills against it.
func (s *service) SimulateKills(ctx context.Context, monsterName string, killCount int) (*domain.SimulationResult, error) {
	log := logger.FromContext(ctx)

	if killCount < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidKillCount, killCount)
	}

	table, err := s.GetDropTable(ctx, monsterName)
	if err != nil {
		return nil, err
	}

	result := s.engine.Simulate(table, killCount)

	mode := metrics.ModeExact
	if killCount > simulation.ExactModeThreshold {
		mode = metrics.ModeApproximated
	}
	metrics.RecordSimulation(mode, killCount)

	log.Info(LogMsgSimulationComplete,
		"monster", table.Name,
		"kills", killCount,
		"mode", mode,
		"distinct_items", len(result.Loot),
		"notable_drops", len(result.UniqueDrops))

	return result, nil
}

// GetDropTable returns the monster's drop table, from cache when fresh,
// otherwise via the wiki with the fallback catalog behind it.
func (s *service) GetDropTable(ctx context.Context, monsterName string) (*domain.DropTable, error) {
	log := logger.FromContext(ctx)
	key := strings.ToLower(strings.TrimSpace(monsterName))

	if table, ok := s.cache.Get(key); ok {
		metrics.RecordCacheLookup(true)
		log.Debug(LogMsgCacheHit, "monster", key)
		return table, nil
	}
	metrics.RecordCacheLookup(false)

	title, wikitext, err := s.fetcher.FetchMonsterWikitext(ctx, monsterName)
	metrics.RecordWikiFetch(err)
	if err != nil {
		log.Warn(LogMsgFetchFailed, "monster", monsterName, "error", err)
		if table, ok := s.lookupFallback(key); ok {
			return table, nil
		}
		return nil, fmt.Errorf("%s %q: %w", ErrContextFailedToFetch, monsterName, err)
	}

	table := s.parser.Parse(wikitext, title)
	if !table.IsEmpty() {
		log.Info(LogMsgTableParsed,
			"monster", title,
			"always", len(table.Always),
			"main", len(table.Main),
			"uniques", len(table.Uniques),
			"tertiary", len(table.Tertiary))
		s.cache.Put(key, table)
		return table, nil
	}

	// Parse found nothing anywhere. Fallback first; an empty table is only
	// a valid result when the caller opted in.
	log.Warn(LogMsgParseEmpty, "monster", title)
	if fallback, ok := s.lookupFallback(key); ok {
		return fallback, nil
	}
	if s.opts.AllowEmptyTables {
		empty := &domain.DropTable{Name: monsterName, MainTableRolls: DefaultMainTableRolls}
		s.cache.Put(key, empty)
		return empty, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNoDropData, monsterName)
}

// lookupFallback checks the curated catalog and caches a hit.
func (s *service) lookupFallback(key string) (*domain.DropTable, bool) {
	table, ok := s.catalog.Lookup(key)
	if !ok {
		return nil, false
	}
	metrics.RecordFallbackHit()
	logger.Info(LogMsgFallbackUsed, "monster", table.Name)
	s.cache.Put(key, table)
	return table, true
}
