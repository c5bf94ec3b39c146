package dto

import "github.com/shopspring/decimal"

type UseRecipeInput struct {
	OwnerID    string
	RecipeID   string
	Multiplier decimal.Decimal // Zero means 1
	Source     string          // 'grpc', 'meal_planner'
}
