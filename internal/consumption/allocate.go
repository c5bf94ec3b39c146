package consumption

import (
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/shopspring/decimal"
)

// Allocation is what one ingredient took from the pantry.
type Allocation struct {
	Deductions    []model.DeductionRecord
	Mutations     []model.LotMutation
	SkippedLotIDs []string        // name matched, unit did not
	Remaining     decimal.Decimal // > 0 is a shortfall
}

// Allocate draws needed from lots in the given order. Lots with a different
// unit label are skipped untouched. A lot drawn down to zero is staged for
// deletion.
func Allocate(ingredient model.RecipeIngredient, needed decimal.Decimal, lots []model.InventoryLot) Allocation {
	alloc := Allocation{Remaining: needed}

	for _, lot := range lots {
		if !alloc.Remaining.IsPositive() {
			break
		}
		if lot.Unit != ingredient.Unit {
			alloc.SkippedLotIDs = append(alloc.SkippedLotIDs, lot.ID)
			continue
		}
		if !lot.Quantity.IsPositive() {
			continue
		}

		taken := decimal.Min(lot.Quantity, alloc.Remaining)
		after := lot.Quantity.Sub(taken)

		mutation := model.LotMutation{
			LotID:          lot.ID,
			Kind:           model.LotMutationUpdate,
			QuantityBefore: lot.Quantity,
			QuantityAfter:  after,
		}
		if !after.IsPositive() {
			mutation.Kind = model.LotMutationDelete
			mutation.QuantityAfter = decimal.Zero
		}

		alloc.Mutations = append(alloc.Mutations, mutation)
		alloc.Deductions = append(alloc.Deductions, model.DeductionRecord{
			Ingredient:   ingredient.Name,
			LotID:        lot.ID,
			LotName:      lot.Name,
			QuantityUsed: taken,
			Unit:         lot.Unit,
		})
		alloc.Remaining = alloc.Remaining.Sub(taken)
	}

	return alloc
}
