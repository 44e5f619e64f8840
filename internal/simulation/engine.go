package simulation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
	"github.com/osmundr/GielinorBot_Go/internal/utils"
)

const (
	// ExactModeThreshold is the largest kill count simulated kill-by-kill.
	// Above it the engine switches to the statistical approximation.
	ExactModeThreshold = 1000

	// NotableTertiaryRarity marks tertiary drops rare enough to report as
	// notable events alongside the uniques.
	NotableTertiaryRarity = 1000

	// fallbackWeightScale derives a lottery weight from a normalized rarity
	// when the rarity text is not a fraction: weight = scale / rarity.
	fallbackWeightScale = 1000
)

// weightFractionPattern pulls the numerator out of fractional rarity text.
// Main-table entries on the same page share a denominator, so the numerator
// alone is the lottery weight.
var weightFractionPattern = regexp.MustCompile(`^(\d[\d,]*(?:\.\d+)?)\s*/\s*\d`)

// Engine runs Monte-Carlo loot simulations over a drop table.
// Exact mode iterates every kill; approximated mode replaces per-kill
// iteration with expected counts plus a variance-preserving jitter.
type Engine struct{}

// NewEngine creates a simulation engine
func NewEngine() *Engine {
	return &Engine{}
}

// Simulate produces aggregated loot and notable drop events for killCount
// kills against the table. The caller is responsible for bounding killCount;
// the engine honours whatever it is given.
func (e *Engine) Simulate(table *domain.DropTable, killCount int) *domain.SimulationResult {
	result := &domain.SimulationResult{
		MonsterName: table.Name,
		KillCount:   killCount,
		Loot:        make(map[string]int),
		UniqueDrops: []domain.UniqueDropEvent{},
	}

	if killCount <= ExactModeThreshold {
		e.simulateExact(table, killCount, result)
	} else {
		e.simulateApproximated(table, killCount, result)
	}

	return result
}

// simulateExact rolls every kill individually.
func (e *Engine) simulateExact(table *domain.DropTable, killCount int, result *domain.SimulationResult) {
	rolls := mainTableRolls(table)

	for kill := 1; kill <= killCount; kill++ {
		for _, drop := range table.Always {
			result.Loot[drop.Item] += sampleQuantity(drop)
		}

		for roll := 0; roll < rolls; roll++ {
			if drop, ok := e.selectWeightedDrop(table.Main); ok {
				result.Loot[drop.Item] += sampleQuantity(drop)
			}
		}

		e.rollUniques(table, kill, result)

		for _, drop := range table.Tertiary {
			if drop.Rarity <= 0 || utils.RandomFloat() >= 1/drop.Rarity {
				continue
			}
			result.Loot[drop.Item] += sampleQuantity(drop)
			if drop.Rarity >= NotableTertiaryRarity {
				result.UniqueDrops = append(result.UniqueDrops, domain.UniqueDropEvent{
					Item:       drop.Item,
					KillNumber: kill,
					Rarity:     drop.Rarity,
				})
			}
		}
	}
}

// rollUniques performs the per-kill unique handling for exact mode: one
// shared Bernoulli trial when the table carries a unique-table chance,
// otherwise an independent trial per unique.
func (e *Engine) rollUniques(table *domain.DropTable, kill int, result *domain.SimulationResult) {
	if table.UniqueTableChance > 0 {
		if len(table.Uniques) == 0 || utils.RandomFloat() >= table.UniqueTableChance {
			return
		}
		drop := table.Uniques[utils.RandomInt(0, len(table.Uniques)-1)]
		result.Loot[drop.Item] += sampleQuantity(drop)
		result.UniqueDrops = append(result.UniqueDrops, domain.UniqueDropEvent{
			Item:       drop.Item,
			KillNumber: kill,
			Rarity:     drop.Rarity,
		})
		return
	}

	for _, drop := range table.Uniques {
		if drop.Rarity <= 0 || utils.RandomFloat() >= 1/drop.Rarity {
			continue
		}
		result.Loot[drop.Item] += sampleQuantity(drop)
		result.UniqueDrops = append(result.UniqueDrops, domain.UniqueDropEvent{
			Item:       drop.Item,
			KillNumber: kill,
			Rarity:     drop.Rarity,
		})
	}
}

// simulateApproximated avoids per-kill iteration for large kill counts.
// Kill numbers attached to notable events from per-item uniques and tertiary
// drops are uniform random placeholders, not true kill indexes.
func (e *Engine) simulateApproximated(table *domain.DropTable, killCount int, result *domain.SimulationResult) {
	for _, drop := range table.Always {
		result.Loot[drop.Item] += int(math.Round(meanQuantity(drop) * float64(killCount)))
	}

	e.approximateMain(table, killCount, result)

	if table.UniqueTableChance > 0 {
		// The shared-chance trial stays an explicit per-kill loop: the event
		// is rare enough that killCount cheap float comparisons beat working
		// out the binomial, and it keeps kill numbers exact.
		for kill := 1; kill <= killCount; kill++ {
			if len(table.Uniques) == 0 || utils.RandomFloat() >= table.UniqueTableChance {
				continue
			}
			drop := table.Uniques[utils.RandomInt(0, len(table.Uniques)-1)]
			result.Loot[drop.Item] += sampleQuantity(drop)
			result.UniqueDrops = append(result.UniqueDrops, domain.UniqueDropEvent{
				Item:       drop.Item,
				KillNumber: kill,
				Rarity:     drop.Rarity,
			})
		}
	} else {
		for _, drop := range table.Uniques {
			if drop.Rarity <= 0 {
				continue
			}
			hits := jitter(float64(killCount) / drop.Rarity)
			for i := 0; i < hits; i++ {
				result.Loot[drop.Item] += sampleQuantity(drop)
				result.UniqueDrops = append(result.UniqueDrops, domain.UniqueDropEvent{
					Item:       drop.Item,
					KillNumber: utils.RandomInt(1, killCount),
					Rarity:     drop.Rarity,
				})
			}
		}
	}

	for _, drop := range table.Tertiary {
		if drop.Rarity <= 0 {
			continue
		}
		hits := jitter(float64(killCount) / drop.Rarity)
		if hits <= 0 {
			continue
		}
		result.Loot[drop.Item] += int(math.Round(float64(hits) * meanQuantity(drop)))
		if drop.Rarity >= NotableTertiaryRarity {
			for i := 0; i < hits; i++ {
				result.UniqueDrops = append(result.UniqueDrops, domain.UniqueDropEvent{
					Item:       drop.Item,
					KillNumber: utils.RandomInt(1, killCount),
					Rarity:     drop.Rarity,
				})
			}
		}
	}
}

// approximateMain distributes the total main-table trials across candidates
// proportionally to their lottery weight.
func (e *Engine) approximateMain(table *domain.DropTable, killCount int, result *domain.SimulationResult) {
	totalWeight := 0.0
	for _, drop := range table.Main {
		totalWeight += lotteryWeight(drop)
	}
	if totalWeight <= 0 {
		return
	}

	trials := float64(killCount * mainTableRolls(table))
	for _, drop := range table.Main {
		expected := trials * (lotteryWeight(drop) / totalWeight)
		hits := jitter(expected)
		if hits > 0 {
			result.Loot[drop.Item] += int(math.Round(float64(hits) * meanQuantity(drop)))
		}
	}
}

// selectWeightedDrop draws one entry from the main table, proportionally to
// lottery weight. The draw is a cumulative linear scan in sequence order, so
// tie behaviour is stable.
func (e *Engine) selectWeightedDrop(main []domain.Drop) (domain.Drop, bool) {
	if len(main) == 0 {
		return domain.Drop{}, false
	}

	totalWeight := 0.0
	for _, drop := range main {
		totalWeight += lotteryWeight(drop)
	}
	if totalWeight <= 0 {
		return domain.Drop{}, false
	}

	remainder := utils.RandomFloat() * totalWeight
	for _, drop := range main {
		remainder -= lotteryWeight(drop)
		if remainder <= 0 {
			return drop, true
		}
	}
	// Float accumulation can leave a sliver of remainder; the last entry wins.
	return main[len(main)-1], true
}

// lotteryWeight derives the main-table weight for a drop: the literal
// numerator for fractional rarity text, otherwise scale/rarity.
func lotteryWeight(drop domain.Drop) float64 {
	if m := weightFractionPattern.FindStringSubmatch(drop.RarityText); m != nil {
		if n, err := strconv.ParseFloat(stripCommas(m[1]), 64); err == nil && n > 0 {
			return n
		}
	}
	if drop.Rarity <= 0 {
		return 0
	}
	return fallbackWeightScale / drop.Rarity
}

// jitter approximates sampling variance around an expected count:
// round(expected + (U-0.5)*sqrt(expected)), floored at zero.
func jitter(expected float64) int {
	if expected <= 0 {
		return 0
	}
	n := int(math.Round(expected + (utils.RandomFloat()-0.5)*math.Sqrt(expected)))
	if n < 0 {
		return 0
	}
	return n
}

func sampleQuantity(drop domain.Drop) int {
	return utils.RandomInt(drop.Quantity.Min, drop.Quantity.Max)
}

func meanQuantity(drop domain.Drop) float64 {
	return float64(drop.Quantity.Min+drop.Quantity.Max) / 2
}

func mainTableRolls(table *domain.DropTable) int {
	if table.MainTableRolls < 1 {
		return 1
	}
	return table.MainTableRolls
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
