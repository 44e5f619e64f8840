package droptable

import "time"

// Cache defaults (overridable via config)
const (
	DefaultCacheCapacity = 100
	DefaultCacheTTL      = time.Hour
	DefaultSweepInterval = 10 * time.Minute
)

// Normalized rarity denominators for textual rarity buckets
const (
	RarityAlways   = 1
	RarityCommon   = 8
	RarityUncommon = 32
	RarityRare     = 128
	RarityVeryRare = 512

	// RarityDefault is used when the rarity text cannot be parsed at all
	RarityDefault = 128
)

// Mechanic override defaults
const (
	DefaultMainTableRolls = 1

	// Zulrah rolls its main table twice and hits its unique table at 1/130
	// unless the article text says otherwise
	ZulrahMainTableRolls    = 2
	ZulrahUniqueTableChance = 1.0 / 130.0
)

// Log messages
const (
	LogMsgCacheEvicted       = "Evicted oldest drop table cache entry"
	LogMsgCacheSwept         = "Swept expired drop table cache entries"
	LogMsgCacheHit           = "Drop table cache hit"
	LogMsgFetchFailed        = "Wiki fetch failed, trying fallback catalog"
	LogMsgParseEmpty         = "Parsed drop table is empty, trying fallback catalog"
	LogMsgFallbackUsed       = "Using fallback drop table"
	LogMsgTableParsed        = "Drop table parsed from wiki"
	LogMsgSimulationComplete = "Kill simulation complete"
)

// Error context messages
const (
	ErrContextFailedToFetch = "failed to fetch monster page"
	ErrContextFailedToParse = "failed to parse drop table"
)
