package dto

import "time"

type UsageLogFilters struct {
	OwnerID   string
	RecipeID  string // Empty means all recipes
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}
