package model

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Recipe struct {
	BaseModel
	OwnerID     string            `db:"owner_id" json:"owner_id"`
	Name        string            `db:"name" json:"name"`
	Servings    int               `db:"servings" json:"servings"`
	Ingredients RecipeIngredients `db:"ingredients" json:"ingredients"` // JSONB
	TimesUsed   int               `db:"times_used" json:"times_used"`
	LastUsed    *time.Time        `db:"last_used" json:"last_used,omitempty"`
}

type RecipeIngredient struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Optional bool            `json:"optional"`
}

type RecipeIngredients []RecipeIngredient

func (r RecipeIngredients) Value() (driver.Value, error) {
	return marshalColumn(r)
}

func (r *RecipeIngredients) Scan(src any) error {
	return unmarshalColumn(src, r)
}

// RecipeUsage is the counter update committed together with lot mutations.
type RecipeUsage struct {
	RecipeID  string
	OwnerID   string
	TimesUsed int
	LastUsed  time.Time
}

// ConsumptionBatch holds every write of one reconciliation run. It is
// committed as a single unit.
type ConsumptionBatch struct {
	OwnerID   string
	Mutations []LotMutation
	Usage     RecipeUsage
}

var errUnsupportedColumn = errors.New("unsupported column source type")
