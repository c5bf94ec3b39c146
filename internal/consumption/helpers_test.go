package consumption

import (
	"time"

	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/shopspring/decimal"
)

func qty(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func lot(id, name, quantity, unit string, expires *time.Time) model.InventoryLot {
	return model.InventoryLot{
		BaseModel: model.BaseModel{ID: id},
		OwnerID:   "house-1",
		Name:      name,
		Quantity:  qty(quantity),
		Unit:      unit,
		ExpiresAt: expires,
	}
}

func ingredient(name, quantity, unit string) model.RecipeIngredient {
	return model.RecipeIngredient{Name: name, Quantity: qty(quantity), Unit: unit}
}

func lotIDs(lots []model.InventoryLot) []string {
	ids := make([]string, 0, len(lots))
	for _, l := range lots {
		ids = append(ids, l.ID)
	}
	return ids
}
