package config

import "time"

// External service defaults
const (
	DefaultWikiAPIURL   = "https://oldschool.runescape.wiki/api.php"
	DefaultPricesAPIURL = "https://prices.runescape.wiki/api/v1/osrs"
	DefaultUserAgent    = "gielinor-bot (drop table simulator)"
)

// Drop table cache defaults
const (
	DefaultDropTableCacheSize = 100
	DefaultDropTableCacheTTL  = time.Hour
	DefaultCacheSweepInterval = 10 * time.Minute
)

// Price cache defaults
const (
	DefaultPriceCacheTTL  = 5 * time.Minute
	DefaultPriceCacheSize = 256
)
