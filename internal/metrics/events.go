package metrics

// Convenience recorders so callers don't reach into label plumbing.

// RecordSimulation tracks one completed simulation and its kill volume.
func RecordSimulation(mode string, killCount int) {
	SimulationsTotal.WithLabelValues(mode).Inc()
	SimulatedKillsTotal.Add(float64(killCount))
}

// RecordCacheLookup tracks a drop table cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookupsTotal.WithLabelValues(ResultHit).Inc()
	} else {
		CacheLookupsTotal.WithLabelValues(ResultMiss).Inc()
	}
}

// RecordWikiFetch tracks the outcome of a wiki page fetch.
func RecordWikiFetch(err error) {
	if err != nil {
		WikiFetchesTotal.WithLabelValues(ResultError).Inc()
		return
	}
	WikiFetchesTotal.WithLabelValues(ResultSuccess).Inc()
}

// RecordFallbackHit tracks a fallback catalog serving a table.
func RecordFallbackHit() {
	FallbackHitsTotal.Inc()
}

// RecordPriceLookup tracks the outcome of a marketplace price lookup.
func RecordPriceLookup(err error) {
	if err != nil {
		PriceLookupsTotal.WithLabelValues(ResultError).Inc()
		return
	}
	PriceLookupsTotal.WithLabelValues(ResultSuccess).Inc()
}

// RecordRPSGame tracks one finished round and the player's outcome.
func RecordRPSGame(outcome string) {
	RPSGamesTotal.WithLabelValues(outcome).Inc()
}
