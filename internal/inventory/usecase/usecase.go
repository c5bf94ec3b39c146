package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/household-pantry-service/internal/inventory"
	"github.com/fekuna/household-pantry-service/internal/inventory/dto"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger
	now    func() time.Time
}

func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger) inventory.UseCase {
	return &inventoryUseCase{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
}

func (uc *inventoryUseCase) ListLots(ctx context.Context, filters *dto.LotFilters) ([]model.InventoryLot, int, error) {
	if filters.OwnerID == "" {
		return nil, 0, inventory.ErrMissingOwner
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 {
		filters.PageSize = 50
	}

	lots, total, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		uc.logger.Error("failed to list lots", zap.String("owner_id", filters.OwnerID), zap.Error(err))
		return nil, 0, err
	}
	return lots, total, nil
}

func (uc *inventoryUseCase) AddLot(ctx context.Context, input *dto.AddLotInput) (*model.InventoryLot, error) {
	if input.OwnerID == "" {
		return nil, inventory.ErrMissingOwner
	}
	name := strings.TrimSpace(input.Name)
	unit := strings.TrimSpace(input.Unit)
	switch {
	case name == "":
		return nil, fmt.Errorf("%w: name is required", inventory.ErrInvalidLot)
	case unit == "":
		return nil, fmt.Errorf("%w: unit is required", inventory.ErrInvalidLot)
	case !input.Quantity.IsPositive():
		return nil, fmt.Errorf("%w: quantity must be positive", inventory.ErrInvalidLot)
	}

	now := uc.now()
	lot := &model.InventoryLot{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID:   input.OwnerID,
		Name:      name,
		Quantity:  input.Quantity,
		Unit:      unit,
		ExpiresAt: input.ExpiresAt,
	}

	if err := uc.repo.Create(ctx, lot); err != nil {
		uc.logger.Error("failed to create lot", zap.String("owner_id", input.OwnerID), zap.Error(err))
		return nil, err
	}
	uc.logger.Info("lot added",
		zap.String("owner_id", lot.OwnerID),
		zap.String("lot_id", lot.ID),
		zap.String("name", lot.Name),
		zap.String("quantity", lot.Quantity.String()),
	)
	return lot, nil
}

func (uc *inventoryUseCase) RemoveLot(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return inventory.ErrMissingOwner
	}
	if id == "" {
		return fmt.Errorf("%w: lot id is required", inventory.ErrInvalidLot)
	}

	if err := uc.repo.Delete(ctx, ownerID, id); err != nil {
		if !errors.Is(err, inventory.ErrLotNotFound) {
			uc.logger.Error("failed to delete lot", zap.String("owner_id", ownerID), zap.String("lot_id", id), zap.Error(err))
		}
		return err
	}
	uc.logger.Info("lot removed", zap.String("owner_id", ownerID), zap.String("lot_id", id))
	return nil
}
