package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddLotInput struct {
	OwnerID   string
	Name      string
	Quantity  decimal.Decimal
	Unit      string
	ExpiresAt *time.Time // Nil for non-perishables
}
