package catalog

// Item is static reference data loaded once at startup. Identity is ID;
// the core never mutates items.
type Item struct {
	ID    string  `json:"id" yaml:"id"`
	Name  string  `json:"name" yaml:"name"`
	Group string  `json:"group" yaml:"group"`
	Value float64 `json:"value" yaml:"value"`
}

// CategoryMap maps an item id to its crafting category. Items absent from
// the map are unconstrained during plan expansion.
type CategoryMap map[string]string
