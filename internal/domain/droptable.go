package domain

// Quantity is an inclusive drop amount range. Min and Max are both at least 1;
// a parse failure upstream collapses to {1,1}.
type Quantity struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Drop is a single line item within a drop table section.
// Rarity is the normalized "1-in-N" denominator (larger = rarer).
// RarityText keeps the original wiki text for display and for deriving the
// main-table lottery weight.
type Drop struct {
	Item       string   `json:"item"`
	Quantity   Quantity `json:"quantity"`
	Rarity     float64  `json:"rarity"`
	RarityText string   `json:"rarity_text"`
}

// DropTable is the full per-kill loot specification for one monster,
// partitioned into the four standard wiki sections.
//
// MainTableRolls is the number of weighted main-table draws per kill and is
// always at least 1. UniqueTableChance, when non-zero, is the probability of
// hitting the unique table at all on a given kill (followed by a uniform pick
// among Uniques); when zero each unique rolls independently at 1/Rarity.
type DropTable struct {
	Name              string  `json:"name"`
	Always            []Drop  `json:"always"`
	Main              []Drop  `json:"main"`
	Uniques           []Drop  `json:"uniques"`
	Tertiary          []Drop  `json:"tertiary"`
	MainTableRolls    int     `json:"main_table_rolls"`
	UniqueTableChance float64 `json:"unique_table_chance,omitempty"`
}

// IsEmpty reports whether the table has no drops in any section.
func (t *DropTable) IsEmpty() bool {
	return len(t.Always) == 0 && len(t.Main) == 0 && len(t.Uniques) == 0 && len(t.Tertiary) == 0
}

// UniqueDropEvent records a notable drop and the kill it occurred on.
// KillNumber is exact for simulations at or below the exact-mode threshold
// and a uniformly sampled placeholder above it.
type UniqueDropEvent struct {
	Item       string  `json:"item"`
	KillNumber int     `json:"kill_number"`
	Rarity     float64 `json:"rarity"`
}

// SimulationResult is the aggregate outcome of simulating KillCount kills.
type SimulationResult struct {
	MonsterName string            `json:"monster_name"`
	KillCount   int               `json:"kill_count"`
	Loot        map[string]int    `json:"loot"`
	UniqueDrops []UniqueDropEvent `json:"unique_drops"`
}
