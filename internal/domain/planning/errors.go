package planning

import "fmt"

// MissingRecipeError reports that no recipe in the index produces the
// requested item. Callers degrade to a "cannot be produced" state.
type MissingRecipeError struct {
	ItemID string
}

func (e *MissingRecipeError) Error() string {
	return fmt.Sprintf("no recipe produces item %q", e.ItemID)
}

// UnknownRecipeError reports a pinned recipe id that is not among the
// candidates for the target item. This is an invalid request, distinct from
// "no recipe exists at all".
type UnknownRecipeError struct {
	ItemID   string
	RecipeID string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("recipe %q does not produce item %q", e.RecipeID, e.ItemID)
}
