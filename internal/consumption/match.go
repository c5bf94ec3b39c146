package consumption

import (
	"strings"

	"github.com/fekuna/household-pantry-service/internal/model"
)

// MatchLots returns the lots named like the ingredient, ignoring case.
// Names must be equal; there is no substring matching.
func MatchLots(ingredient model.RecipeIngredient, lots []model.InventoryLot) []model.InventoryLot {
	var matched []model.InventoryLot
	for _, lot := range lots {
		if strings.EqualFold(lot.Name, ingredient.Name) {
			matched = append(matched, lot)
		}
	}
	return matched
}
