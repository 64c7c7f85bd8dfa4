// Package wasteguide is the static waste-classification lookup table.
package wasteguide

import (
	"strings"

	"wastetrack/internal/domain/waste"
)

// Entry is one classification group in the guide.
type Entry struct {
	Key                  string
	Category             waste.Category
	WasteType            string
	BinColor             waste.BinColor
	Items                []string
	DisposalInstructions string
	Tips                 []string
	Warning              string
	RecyclingBenefit     string
}

// SearchResult is a guide entry plus the items matching a query.
type SearchResult struct {
	Entry
	MatchingItems []string
}

var guide = []Entry{
	{
		Key:       "biodegradable",
		Category:  waste.CategoryBiodegradable,
		WasteType: "Biodegradable",
		BinColor:  waste.BinGreen,
		Items: []string{
			"Food waste", "Vegetable peels", "Fruit scraps", "Tea bags",
			"Coffee grounds", "Eggshells", "Garden waste", "Leaves",
			"Flowers", "Paper (uncoated)", "Cardboard", "Wooden items",
		},
		DisposalInstructions: "Dispose in GREEN bin. Can be composted to create nutrient-rich soil. Keep dry and avoid mixing with non-biodegradable waste.",
		Tips: []string{
			"Compost at home if possible",
			"Remove any plastic packaging",
			"Keep separate from other waste",
			"Use for garden composting",
		},
	},
	{
		Key:       "plastic",
		Category:  waste.CategoryRecyclable,
		WasteType: "Recyclable - Plastic",
		BinColor:  waste.BinBlue,
		Items: []string{
			"Plastic bottles", "Plastic containers", "Plastic bags",
			"PET bottles", "HDPE containers", "Plastic packaging",
			"Plastic toys", "Plastic furniture",
		},
		DisposalInstructions: "Dispose in BLUE bin. Clean and dry before recycling. Remove caps and labels if possible. Flatten bottles to save space.",
		Tips: []string{
			"Rinse containers before disposal",
			"Check for recycling symbol (1-7)",
			"Flatten to save space",
			"Avoid mixing with food waste",
		},
		RecyclingBenefit: "1 ton plastic recycled = 2 tons of CO2 emissions saved",
	},
	{
		Key:       "paper",
		Category:  waste.CategoryRecyclable,
		WasteType: "Recyclable - Paper",
		BinColor:  waste.BinBlue,
		Items: []string{
			"Newspapers", "Magazines", "Office paper", "Cardboard boxes",
			"Paper bags", "Books", "Notebooks", "Cartons",
		},
		DisposalInstructions: "Dispose in BLUE bin. Keep paper dry and clean. Remove any plastic coating, staples, or tape. Flatten boxes.",
		Tips: []string{
			"Keep dry to prevent contamination",
			"Remove plastic windows from envelopes",
			"Flatten cardboard boxes",
			"Shred sensitive documents",
		},
		RecyclingBenefit: "1 ton paper recycled = 17 trees saved",
	},
	{
		Key:       "glass",
		Category:  waste.CategoryRecyclable,
		WasteType: "Recyclable - Glass",
		BinColor:  waste.BinBlue,
		Items: []string{
			"Glass bottles", "Glass jars", "Glass containers",
			"Drinking glasses", "Glass tableware",
		},
		DisposalInstructions: "Dispose in BLUE bin. Rinse containers. Remove metal caps and lids. Be careful with broken glass - wrap in newspaper.",
		Tips: []string{
			"Rinse before recycling",
			"Remove metal lids",
			"Separate by color if possible",
			"Wrap broken glass safely",
		},
		RecyclingBenefit: "Glass can be recycled infinitely without quality loss",
	},
	{
		Key:       "metal",
		Category:  waste.CategoryRecyclable,
		WasteType: "Recyclable - Metal",
		BinColor:  waste.BinBlue,
		Items: []string{
			"Aluminum cans", "Steel cans", "Tin containers",
			"Aluminum foil", "Metal bottle caps", "Wire hangers",
			"Metal utensils", "Small metal items",
		},
		DisposalInstructions: "Dispose in BLUE bin. Rinse cans and containers. Crush cans to save space. Remove any plastic labels.",
		Tips: []string{
			"Rinse food cans",
			"Crush cans to save space",
			"Remove paper labels",
			"Separate ferrous and non-ferrous if possible",
		},
		RecyclingBenefit: "Recycling 1 aluminum can saves enough energy to run a TV for 3 hours",
	},
	{
		Key:       "ewaste",
		Category:  waste.CategoryEWaste,
		WasteType: "E-waste",
		BinColor:  waste.BinYellow,
		Items: []string{
			"Mobile phones", "Computers", "Laptops", "Tablets",
			"Batteries", "Chargers", "LED bulbs", "CFL bulbs",
			"Electronic toys", "Circuit boards", "Cables",
		},
		DisposalInstructions: "Dispose in YELLOW bin or take to authorized e-waste collection center. DO NOT throw in regular waste. Contains harmful materials and valuable recoverable materials.",
		Tips: []string{
			"Remove batteries before disposal",
			"Delete personal data from devices",
			"Take to certified e-waste recycler",
			"Check for buy-back programs",
		},
		Warning:          "Contains toxic materials like lead, mercury, and cadmium. Improper disposal harms environment.",
		RecyclingBenefit: "E-waste contains gold, silver, copper - valuable metals that can be recovered",
	},
	{
		Key:       "hazardous",
		Category:  waste.CategoryHazardous,
		WasteType: "Hazardous",
		BinColor:  waste.BinRed,
		Items: []string{
			"Batteries", "Paint", "Pesticides", "Chemicals",
			"Motor oil", "Cleaning products", "Medical waste",
			"Sharp objects", "Expired medicines",
		},
		DisposalInstructions: "Dispose in RED bin or take to hazardous waste collection facility. NEVER mix with regular waste. Handle with care.",
		Tips: []string{
			"Store separately in sealed containers",
			"Take to hazardous waste facility",
			"Return medicines to pharmacy",
			"Never pour down drains",
		},
		Warning: "DANGEROUS: Can cause serious harm to health and environment. Requires special handling.",
	},
}

// Lookup resolves a free-text waste description to a guide entry by
// keyword match. Unknown inputs default to biodegradable, matching the
// product's forgiving classification behavior.
func Lookup(wasteType string) Entry {
	t := strings.ToLower(wasteType)

	switch {
	case containsAny(t, "biodegradable", "food", "organic"):
		return guide[0]
	case strings.Contains(t, "plastic"):
		return guide[1]
	case containsAny(t, "paper", "cardboard"):
		return guide[2]
	case strings.Contains(t, "glass"):
		return guide[3]
	case containsAny(t, "metal", "aluminum", "tin"):
		return guide[4]
	case containsAny(t, "e-waste", "electronic", "battery"):
		return guide[5]
	case containsAny(t, "hazardous", "chemical", "medical"):
		return guide[6]
	}

	return guide[0]
}

// Search returns guide entries with items matching the query.
func Search(query string) []SearchResult {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var results []SearchResult
	for _, entry := range guide {
		var matching []string
		for _, item := range entry.Items {
			if strings.Contains(strings.ToLower(item), term) {
				matching = append(matching, item)
			}
		}
		if len(matching) > 0 {
			results = append(results, SearchResult{Entry: entry, MatchingItems: matching})
		}
	}
	return results
}

// Entries returns the full guide.
func Entries() []Entry {
	return guide
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
