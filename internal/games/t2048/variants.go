// Package t2048 implements the 2048 sliding-tile game: the merge rule, the
// move engine with undo, tile spawning, and the registry adapter that drives
// it from the terminal front end.
package t2048

// Variant defines one registered flavour of the game.
type Variant struct {
	ID     string
	Title  string
	Width  int // Board side length
	Target int // Winning tile, 0 for endless play
}

// Variants lists the playable variants in menu order.
var Variants = []Variant{
	{ID: "2048", Title: "2048", Width: 4, Target: 2048},
	{ID: "2048_5x5", Title: "2048 (5x5)", Width: 5, Target: 4096},
	{ID: "2048_endless", Title: "2048 (Endless)", Width: 4, Target: 0},
}

// Endless returns true if the variant has no winning tile.
func (v Variant) Endless() bool {
	return v.Target == 0
}

// GetVariant returns the variant with the given ID, or nil.
func GetVariant(id string) *Variant {
	for i := range Variants {
		if Variants[i].ID == id {
			return &Variants[i]
		}
	}
	return nil
}
