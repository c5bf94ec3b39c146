package pantryv1

import "time"

type UseRecipeRequest struct {
	RecipeID   string  `json:"recipe_id"`
	Multiplier float64 `json:"multiplier,omitempty"` // 0 means 1
}

type UseRecipeResponse struct {
	UsageLog       *UsageLog `json:"usage_log"`
	FullySatisfied bool      `json:"fully_satisfied"`
	// Warning is set when the pantry was updated but the usage log could not be stored.
	Warning string `json:"warning,omitempty"`
}

type ListUsageLogsRequest struct {
	RecipeID  string     `json:"recipe_id,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"` // inclusive
	EndDate   *time.Time `json:"end_date,omitempty"`   // exclusive
	Page      int32      `json:"page,omitempty"`
	PageSize  int32      `json:"page_size,omitempty"`
}

type ListUsageLogsResponse struct {
	UsageLogs []*UsageLog `json:"usage_logs"`
	Total     int32       `json:"total"`
}

type UsageLog struct {
	ID         string       `json:"id"`
	RecipeID   string       `json:"recipe_id"`
	RecipeName string       `json:"recipe_name"`
	Multiplier string       `json:"multiplier"`
	Deductions []*Deduction `json:"deductions"`
	Shortfalls []*Shortfall `json:"shortfalls"`
	CreatedAt  time.Time    `json:"created_at"`
}

type Deduction struct {
	Ingredient   string `json:"ingredient"`
	LotID        string `json:"lot_id"`
	LotName      string `json:"lot_name"`
	QuantityUsed string `json:"quantity_used"`
	Unit         string `json:"unit"`
}

type Shortfall struct {
	Ingredient    string   `json:"ingredient"`
	Unit          string   `json:"unit"`
	Requested     string   `json:"requested"`
	Missing       string   `json:"missing"`
	Reason        string   `json:"reason"`
	SkippedLotIDs []string `json:"skipped_lot_ids,omitempty"`
}

type ListLotsRequest struct {
	Name           string     `json:"name,omitempty"`
	ExpiringBefore *time.Time `json:"expiring_before,omitempty"`
	Page           int32      `json:"page,omitempty"`
	PageSize       int32      `json:"page_size,omitempty"`
}

type ListLotsResponse struct {
	Lots  []*Lot `json:"lots"`
	Total int32  `json:"total"`
}

type Lot struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Quantity  string     `json:"quantity"`
	Unit      string     `json:"unit"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type AddLotRequest struct {
	Name      string     `json:"name"`
	Quantity  string     `json:"quantity"` // decimal
	Unit      string     `json:"unit"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type RemoveLotRequest struct {
	ID string `json:"id"`
}

type RemoveLotResponse struct{}
