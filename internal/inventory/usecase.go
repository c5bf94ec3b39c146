package inventory

import (
	"context"
	"errors"

	"github.com/fekuna/household-pantry-service/internal/inventory/dto"
	"github.com/fekuna/household-pantry-service/internal/model"
)

var (
	ErrMissingOwner = errors.New("missing owner identity")
	ErrInvalidLot   = errors.New("invalid lot")
)

type UseCase interface {
	ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.InventoryLot, int, error)
	AddLot(ctx context.Context, input *dto.AddLotInput) (*model.InventoryLot, error)
	RemoveLot(ctx context.Context, ownerID, id string) error
}
