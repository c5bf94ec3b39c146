package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLot is one physical stock record in a household pantry.
type InventoryLot struct {
	BaseModel
	OwnerID   string          `db:"owner_id" json:"owner_id"`
	Name      string          `db:"name" json:"name"`
	Quantity  decimal.Decimal `db:"quantity" json:"quantity"`
	Unit      string          `db:"unit" json:"unit"`
	ExpiresAt *time.Time      `db:"expires_at" json:"expires_at,omitempty"` // Nullable
}

type LotMutationKind string

const (
	LotMutationUpdate LotMutationKind = "update"
	LotMutationDelete LotMutationKind = "delete"
)

// LotMutation is a staged write against a single lot. QuantityBefore is the
// quantity read at the start of the run and guards the write in the store.
type LotMutation struct {
	LotID          string
	Kind           LotMutationKind
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
}
