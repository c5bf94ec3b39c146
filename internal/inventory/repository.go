package inventory

import (
	"context"
	"errors"

	"github.com/fekuna/household-pantry-service/internal/inventory/dto"
	"github.com/fekuna/household-pantry-service/internal/model"
)

var ErrLotNotFound = errors.New("lot not found")

type Repository interface {
	// ListByOwner returns every lot of the household.
	ListByOwner(ctx context.Context, ownerID string) ([]model.InventoryLot, error)
	FindAll(ctx context.Context, filters *dto.LotFilters) ([]model.InventoryLot, int, error)

	Create(ctx context.Context, lot *model.InventoryLot) error
	// Delete returns ErrLotNotFound when the owner has no lot with that id.
	Delete(ctx context.Context, ownerID, id string) error
}
