package model

import (
	"database/sql/driver"
	"time"

	"github.com/shopspring/decimal"
)

// UsageLog is the audit record of one reconciliation run. It is written once
// and never updated.
type UsageLog struct {
	ID         string           `db:"id" json:"id"`
	OwnerID    string           `db:"owner_id" json:"owner_id"`
	RecipeID   string           `db:"recipe_id" json:"recipe_id"`
	RecipeName string           `db:"recipe_name" json:"recipe_name"`
	Multiplier decimal.Decimal  `db:"multiplier" json:"multiplier"`
	Deductions DeductionRecords `db:"deductions" json:"deductions"`
	Shortfalls Shortfalls       `db:"shortfalls" json:"shortfalls"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
}

// FullySatisfied reports whether every non-optional ingredient was deducted in full.
func (l *UsageLog) FullySatisfied() bool {
	return len(l.Shortfalls) == 0
}

type DeductionRecord struct {
	Ingredient   string          `json:"ingredient"`
	LotID        string          `json:"lot_id"`
	LotName      string          `json:"lot_name"`
	QuantityUsed decimal.Decimal `json:"quantity_used"`
	Unit         string          `json:"unit"`
}

type DeductionRecords []DeductionRecord

func (d DeductionRecords) Value() (driver.Value, error) {
	return marshalColumn(d)
}

func (d *DeductionRecords) Scan(src any) error {
	return unmarshalColumn(src, d)
}

type ShortfallReason string

const (
	ShortfallNotFound     ShortfallReason = "not_found"
	ShortfallUnitMismatch ShortfallReason = "unit_mismatch"
	ShortfallInsufficient ShortfallReason = "insufficient"
)

// Shortfall is the part of an ingredient that no lot could cover.
type Shortfall struct {
	Ingredient    string          `json:"ingredient"`
	Unit          string          `json:"unit"`
	Requested     decimal.Decimal `json:"requested"`
	Missing       decimal.Decimal `json:"missing"`
	Reason        ShortfallReason `json:"reason"`
	SkippedLotIDs []string        `json:"skipped_lot_ids,omitempty"`
}

type Shortfalls []Shortfall

func (s Shortfalls) Value() (driver.Value, error) {
	return marshalColumn(s)
}

func (s *Shortfalls) Scan(src any) error {
	return unmarshalColumn(src, s)
}
