package classifier

import (
	_ "embed"
	"encoding/json"
)

// Category is the emergency service domain a report belongs to.
type Category string

const (
	CategoryMedical Category = "medical"
	CategoryPolice  Category = "police"
	CategoryFire    Category = "fire"
)

// categoryOrder fixes the tie-break order: medical beats police beats fire.
var categoryOrder = []Category{CategoryMedical, CategoryPolice, CategoryFire}

// Priority is a severity tier shared by the taxonomy and every downstream stage.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ScoreVector tallies keyword hits by tier for one category.
type ScoreVector struct {
	High   int
	Medium int
	Low    int
	Total  int
}

func (v ScoreVector) sum() int {
	return v.High + v.Medium + v.Low
}

// tierPhrases holds the ordered phrase lists for one category. Phrases may
// repeat across tiers; scoring is additive so duplicates are kept as shipped.
type tierPhrases struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

//go:embed keyword_taxonomy.json
var embeddedTaxonomy []byte

var loadedTaxonomy = mustLoadTaxonomy()

func mustLoadTaxonomy() map[Category]tierPhrases {
	var t map[Category]tierPhrases
	if err := json.Unmarshal(embeddedTaxonomy, &t); err != nil {
		panic(err)
	}
	for _, category := range categoryOrder {
		if _, ok := t[category]; !ok {
			panic("keyword taxonomy missing category: " + string(category))
		}
	}
	return t
}
