package progress

import "strings"

// DefaultCosmetic is the trail every player owns.
const DefaultCosmetic = "default"

// Item is a purchasable cosmetic.
type Item struct {
	ID      string
	Name    string
	Price   int
	Preview string
}

// Catalog lists every purchasable item, cheapest first.
var Catalog = []Item{
	{ID: "trail_neon", Name: "Neon Trail", Price: 5, Preview: "Bright cyan blade glow"},
	{ID: "trail_rainbow", Name: "Rainbow Trail", Price: 8, Preview: "Shifts through all colors"},
	{ID: "trail_ember", Name: "Ember Trail", Price: 12, Preview: "Smouldering orange sparks"},
}

var catalogByID map[string]Item

func init() {
	catalogByID = make(map[string]Item, len(Catalog))
	for _, it := range Catalog {
		catalogByID[it.ID] = it
	}
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Item, bool) {
	it, ok := catalogByID[id]
	return it, ok
}

// TrailStyle maps a selected cosmetic ID to the trail style name used by
// renderers ("default", "neon", "rainbow", ...).
func TrailStyle(selected string) string {
	if selected == "" {
		return DefaultCosmetic
	}
	return strings.TrimPrefix(selected, "trail_")
}
