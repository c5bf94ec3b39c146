package consumption

import (
	"slices"
	"strings"

	"github.com/fekuna/household-pantry-service/internal/model"
)

// OrderLots returns a copy of lots in consumption order: earliest expiration
// first, lots without expiration last, ties by id.
func OrderLots(lots []model.InventoryLot) []model.InventoryLot {
	ordered := slices.Clone(lots)
	slices.SortFunc(ordered, compareLots)
	return ordered
}

func compareLots(a, b model.InventoryLot) int {
	switch {
	case a.ExpiresAt != nil && b.ExpiresAt != nil:
		if c := a.ExpiresAt.Compare(*b.ExpiresAt); c != 0 {
			return c
		}
	case a.ExpiresAt != nil:
		return -1
	case b.ExpiresAt != nil:
		return 1
	}
	return strings.Compare(a.ID, b.ID)
}
