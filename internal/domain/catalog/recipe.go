package catalog

// RecipeInput is one ingredient of a recipe.
type RecipeInput struct {
	ItemID string `json:"item" yaml:"item"`
	Qty    int    `json:"qty" yaml:"qty"`
}

// Recipe is a canonical production rule: one run consumes Inputs and yields
// Quantity units of Output after TimeSeconds. Several recipes may share the
// same output item; identity is ID and survives admin overrides.
type Recipe struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name,omitempty" yaml:"name"`
	Output       string        `json:"output" yaml:"output"`
	Quantity     int           `json:"quantity" yaml:"quantity"`
	RefinerClass string        `json:"refiner_class,omitempty" yaml:"refiner_class"`
	TimeSeconds  float64       `json:"time_seconds" yaml:"time_seconds"`
	Inputs       []RecipeInput `json:"inputs" yaml:"inputs"`
	Locked       bool          `json:"locked,omitempty" yaml:"locked"`
}

// DisplayName returns the recipe name, falling back to the output item id.
func (r Recipe) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.Output
}

// Clone returns a copy whose Inputs slice is independent of the receiver.
func (r Recipe) Clone() Recipe {
	out := r
	if r.Inputs != nil {
		out.Inputs = make([]RecipeInput, len(r.Inputs))
		copy(out.Inputs, r.Inputs)
	}
	return out
}
