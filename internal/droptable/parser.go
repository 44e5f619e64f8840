package droptable

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/osmundr/GielinorBot_Go/internal/domain"
)

// Parser turns raw wiki markup into a structured drop table.
//
// Wiki articles are written by hand and the markup drifts: headings change
// casing, drops-line templates reorder their parameters, some pages still
// use bare wikitable rows. Every extraction therefore runs an ordered
// cascade - the primary pattern first, then known alternates, stopping at
// the first one that yields anything.
type Parser struct{}

// NewParser creates a markup parser
func NewParser() *Parser {
	return &Parser{}
}

// Section heading cascades. Each entry captures the section body up to the
// next same-or-higher-level heading or end of document.
var (
	alwaysSectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)===\s*100%\s*===(.*?)(?:\n==|\z)`),
		regexp.MustCompile(`(?is)===\s*Always\s*===(.*?)(?:\n==|\z)`),
		regexp.MustCompile(`(?is)==\s*100%\s*drops?\s*==(.*?)(?:\n==|\z)`),
	}

	uniquesSectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)===\s*Uniques\s*===(.*?)(?:\n==|\z)`),
		regexp.MustCompile(`(?is)===\s*Unique\s+drop\s+table\s*===(.*?)(?:\n==|\z)`),
		regexp.MustCompile(`(?is)==+\s*Rare\s+drop\s+table\s*==+(.*?)(?:\n==|\z)`),
	}

	tertiarySectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?s)===\s*Tertiary\s*===(.*?)(?:\n==|\z)`),
		regexp.MustCompile(`(?is)==\s*Tertiary\s+drops?\s*==(.*?)(?:\n==|\z)`),
	}
)

// dropsLineExtractor pulls (item, quantity, rarity) triples out of a chunk of
// markup. Extractors run in declared order; the first to yield at least one
// triple wins.
type dropsLineExtractor struct {
	pattern *regexp.Regexp
	// capture group indexes for item, quantity, rarity
	item, quantity, rarity int
}

var dropsLineExtractors = []dropsLineExtractor{
	// Primary: canonical DropsLine with lowercase named parameters
	{
		pattern:  regexp.MustCompile(`\{\{DropsLine\|name=([^|}]+)\|quantity=([^|}]+)\|rarity=([^|}]+)[^}]*\}\}`),
		item:     1,
		quantity: 2,
		rarity:   3,
	},
	// Alternate 1: capitalised parameter names
	{
		pattern:  regexp.MustCompile(`\{\{DropsLine\|Name=([^|}]+)\|Quantity=([^|}]+)\|Rarity=([^|}]+)[^}]*\}\}`),
		item:     1,
		quantity: 2,
		rarity:   3,
	},
	// Alternate 2: rarity listed before quantity
	{
		pattern:  regexp.MustCompile(`\{\{DropsLine\|name=([^|}]+)\|rarity=([^|}]+)\|quantity=([^|}]+)[^}]*\}\}`),
		item:     1,
		quantity: 3,
		rarity:   2,
	},
	// Alternate 3: bare wikitable rows with a linked item name
	{
		pattern:  regexp.MustCompile(`\|\s*\[\[([^\]|]+)(?:\|[^\]]*)?\]\]\s*\|\|\s*([^|\n]+)\|\|\s*([^|\n]+)`),
		item:     1,
		quantity: 2,
		rarity:   3,
	},
}

// Mechanic override cascades
var (
	uniqueChancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)hits?\s+the\s+unique\s+(?:drop\s+)?table\s+with\s+(?:a\s+)?probability\s+(?:of\s+)?(\d+)\s*/\s*(\d[\d,]*)`),
		regexp.MustCompile(`(?i)unique\s+(?:drop\s+)?table[^.\n]*?(\d+)\s*/\s*(\d[\d,]*)`),
		regexp.MustCompile(`(?i)(\d+)\s*/\s*(\d[\d,]*)[^.\n]*?unique\s+(?:drop\s+)?table`),
	}

	mainRollsPattern = regexp.MustCompile(`(?i)rolls?\s+(?:on\s+)?(?:the\s+)?main\s+drop\s+table\s+(\d+|twice|thrice)\s*(?:times)?`)
)

// Quantity and rarity normalization patterns
var (
	parentheticalPattern  = regexp.MustCompile(`\([^)]*\)`)
	quantityRangePattern  = regexp.MustCompile(`^(\d+)\s*[-–]\s*(\d+)$`)
	quantityExactPattern  = regexp.MustCompile(`^(\d+)$`)
	rarityFractionPattern = regexp.MustCompile(`^(\d[\d,]*(?:\.\d+)?)\s*[/:]\s*(\d[\d,]*(?:\.\d+)?)$`)
)

// Parse builds a DropTable from raw wikitext. The returned table may be
// empty; the caller decides whether that routes to the fallback catalog.
func (p *Parser) Parse(wikitext, monsterName string) *domain.DropTable {
	table := &domain.DropTable{
		Name:           monsterName,
		MainTableRolls: DefaultMainTableRolls,
	}

	table.Always = p.parseSection(wikitext, alwaysSectionPatterns)
	table.Uniques = p.parseSection(wikitext, uniquesSectionPatterns)
	table.Tertiary = p.parseSection(wikitext, tertiarySectionPatterns)

	// Main table: everything in the document not already claimed by the
	// three named sections. Extract from the whole text, then subtract.
	table.Main = p.extractDrops(wikitext)
	p.deduplicate(table)

	p.applyMechanicOverrides(table, wikitext, monsterName)

	return table
}

// parseSection locates a section by its heading cascade and extracts its
// drops. A section that never matches leaves its sequence empty.
func (p *Parser) parseSection(wikitext string, patterns []*regexp.Regexp) []domain.Drop {
	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(wikitext)
		if m == nil {
			continue
		}
		return p.extractDrops(m[1])
	}
	return nil
}

// extractDrops runs the drops-line cascade over a chunk of markup.
func (p *Parser) extractDrops(section string) []domain.Drop {
	for _, extractor := range dropsLineExtractors {
		matches := extractor.pattern.FindAllStringSubmatch(section, -1)
		if len(matches) == 0 {
			continue
		}

		drops := make([]domain.Drop, 0, len(matches))
		seen := make(map[string]bool, len(matches))
		for _, m := range matches {
			item := strings.TrimSpace(m[extractor.item])
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true

			rarityText := strings.TrimSpace(m[extractor.rarity])
			drops = append(drops, domain.Drop{
				Item:       item,
				Quantity:   ParseQuantity(m[extractor.quantity]),
				Rarity:     ParseRarity(rarityText),
				RarityText: rarityText,
			})
		}
		if len(drops) > 0 {
			return drops
		}
	}
	return nil
}

// deduplicate removes cross-section duplicates as a post-pass, with priority
// always > uniques > tertiary > main.
func (p *Parser) deduplicate(table *domain.DropTable) {
	claimed := make(map[string]bool)
	claim := func(drops []domain.Drop) []domain.Drop {
		kept := drops[:0]
		for _, d := range drops {
			if claimed[d.Item] {
				continue
			}
			claimed[d.Item] = true
			kept = append(kept, d)
		}
		return kept
	}

	table.Always = claim(table.Always)
	table.Uniques = claim(table.Uniques)
	table.Tertiary = claim(table.Tertiary)
	table.Main = claim(table.Main)
}

// applyMechanicOverrides detects unique-table chance and main-table roll
// phrases in the article body, then applies named-monster special cases.
func (p *Parser) applyMechanicOverrides(table *domain.DropTable, wikitext, monsterName string) {
	for _, pattern := range uniqueChancePatterns {
		m := pattern.FindStringSubmatch(wikitext)
		if m == nil {
			continue
		}
		num, errN := strconv.ParseFloat(stripCommas(m[1]), 64)
		den, errD := strconv.ParseFloat(stripCommas(m[2]), 64)
		if errN == nil && errD == nil && num > 0 && den > 0 && num <= den {
			table.UniqueTableChance = num / den
			break
		}
	}

	if m := mainRollsPattern.FindStringSubmatch(wikitext); m != nil {
		switch strings.ToLower(m[1]) {
		case "twice":
			table.MainTableRolls = 2
		case "thrice":
			table.MainTableRolls = 3
		default:
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
				table.MainTableRolls = n
			}
		}
	}

	// Zulrah's two main rolls and unique chance predate the phrasing the
	// patterns above look for, so force them when the text said nothing.
	if strings.Contains(strings.ToLower(monsterName), "zulrah") {
		table.MainTableRolls = ZulrahMainTableRolls
		if table.UniqueTableChance == 0 {
			table.UniqueTableChance = ZulrahUniqueTableChance
		}
	}
}

// ParseQuantity normalizes quantity text to an inclusive range.
// Parenthetical annotations are stripped, "lo-hi" becomes an ordered range,
// a bare number becomes an exact range, anything else defaults to {1,1}.
func ParseQuantity(text string) domain.Quantity {
	cleaned := parentheticalPattern.ReplaceAllString(text, "")
	cleaned = strings.TrimSpace(stripCommas(cleaned))

	if m := quantityRangePattern.FindStringSubmatch(cleaned); m != nil {
		lo, _ := strconv.Atoi(m[1])
		hi, _ := strconv.Atoi(m[2])
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < 1 {
			lo = 1
		}
		if hi < lo {
			hi = lo
		}
		return domain.Quantity{Min: lo, Max: hi}
	}

	if m := quantityExactPattern.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		if n < 1 {
			n = 1
		}
		return domain.Quantity{Min: n, Max: n}
	}

	return domain.Quantity{Min: 1, Max: 1}
}

// ParseRarity normalizes rarity text to a "1-in-N" denominator.
// A fraction N/D yields D/N; textual buckets map to fixed denominators;
// anything unparseable defaults to RarityDefault.
func ParseRarity(text string) float64 {
	cleaned := strings.ToLower(strings.TrimSpace(parentheticalPattern.ReplaceAllString(text, "")))

	switch cleaned {
	case "always":
		return RarityAlways
	case "common":
		return RarityCommon
	case "uncommon":
		return RarityUncommon
	case "rare":
		return RarityRare
	case "very rare":
		return RarityVeryRare
	}

	if m := rarityFractionPattern.FindStringSubmatch(cleaned); m != nil {
		num, errN := strconv.ParseFloat(stripCommas(m[1]), 64)
		den, errD := strconv.ParseFloat(stripCommas(m[2]), 64)
		if errN == nil && errD == nil && num > 0 && den > 0 {
			return den / num
		}
	}

	return RarityDefault
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
