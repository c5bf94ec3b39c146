package handler

import (
	"context"
	"errors"

	pantryv1 "github.com/fekuna/household-pantry-service/internal/api/pantryv1"
	"github.com/fekuna/household-pantry-service/internal/auth"
	"github.com/fekuna/household-pantry-service/internal/inventory"
	"github.com/fekuna/household-pantry-service/internal/inventory/dto"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type InventoryHandler struct {
	pantryv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) ListLots(ctx context.Context, req *pantryv1.ListLotsRequest) (*pantryv1.ListLotsResponse, error) {
	ownerID := auth.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing owner identity")
	}

	lots, count, err := h.uc.ListLots(ctx, &dto.LotFilters{
		OwnerID:        ownerID,
		Name:           req.Name,
		ExpiringBefore: req.ExpiringBefore,
		Page:           int(req.Page),
		PageSize:       int(req.PageSize),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	out := make([]*pantryv1.Lot, len(lots))
	for i := range lots {
		out[i] = mapLotToProto(&lots[i])
	}

	return &pantryv1.ListLotsResponse{
		Lots:  out,
		Total: int32(count),
	}, nil
}

func (h *InventoryHandler) AddLot(ctx context.Context, req *pantryv1.AddLotRequest) (*pantryv1.Lot, error) {
	ownerID := auth.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing owner identity")
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid quantity %q", req.Quantity)
	}

	lot, err := h.uc.AddLot(ctx, &dto.AddLotInput{
		OwnerID:   ownerID,
		Name:      req.Name,
		Quantity:  quantity,
		Unit:      req.Unit,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return mapLotToProto(lot), nil
}

func (h *InventoryHandler) RemoveLot(ctx context.Context, req *pantryv1.RemoveLotRequest) (*pantryv1.RemoveLotResponse, error) {
	ownerID := auth.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing owner identity")
	}

	if err := h.uc.RemoveLot(ctx, ownerID, req.ID); err != nil {
		return nil, toStatus(err)
	}
	return &pantryv1.RemoveLotResponse{}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, inventory.ErrMissingOwner):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, inventory.ErrInvalidLot):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, inventory.ErrLotNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func mapLotToProto(m *model.InventoryLot) *pantryv1.Lot {
	if m == nil {
		return nil
	}
	return &pantryv1.Lot{
		ID:        m.ID,
		Name:      m.Name,
		Quantity:  m.Quantity.String(),
		Unit:      m.Unit,
		ExpiresAt: m.ExpiresAt,
		UpdatedAt: m.UpdatedAt,
	}
}
