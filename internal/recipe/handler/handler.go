package handler

import (
	"context"
	"errors"

	pantryv1 "github.com/fekuna/household-pantry-service/internal/api/pantryv1"
	"github.com/fekuna/household-pantry-service/internal/auth"
	"github.com/fekuna/household-pantry-service/internal/consumption"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/fekuna/household-pantry-service/internal/recipe"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const logWriteWarning = "pantry was updated but the usage log could not be saved"

type RecipeHandler struct {
	pantryv1.UnimplementedRecipeServiceServer
	uc     recipe.UseCase
	logger logger.ZapLogger
}

func NewRecipeHandler(uc recipe.UseCase, log logger.ZapLogger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *RecipeHandler) UseRecipe(ctx context.Context, req *pantryv1.UseRecipeRequest) (*pantryv1.UseRecipeResponse, error) {
	ownerID := auth.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing owner identity")
	}
	if req.RecipeID == "" {
		return nil, status.Error(codes.InvalidArgument, "recipe_id is required")
	}

	log, err := h.uc.UseRecipe(ctx, &dto.UseRecipeInput{
		OwnerID:    ownerID,
		RecipeID:   req.RecipeID,
		Multiplier: decimal.NewFromFloat(req.Multiplier),
		Source:     "grpc",
	})
	if err != nil && !(errors.Is(err, consumption.ErrLogWriteFailure) && log != nil) {
		return nil, toStatus(err)
	}

	resp := &pantryv1.UseRecipeResponse{
		UsageLog:       mapUsageLogToProto(log),
		FullySatisfied: log.FullySatisfied(),
	}
	if err != nil {
		resp.Warning = logWriteWarning
	}
	return resp, nil
}

func (h *RecipeHandler) ListUsageLogs(ctx context.Context, req *pantryv1.ListUsageLogsRequest) (*pantryv1.ListUsageLogsResponse, error) {
	ownerID := auth.GetOwnerID(ctx)
	if ownerID == "" {
		return nil, status.Error(codes.Unauthenticated, "missing owner identity")
	}

	if req.StartDate != nil && req.EndDate != nil && !req.EndDate.After(*req.StartDate) {
		return nil, status.Error(codes.InvalidArgument, "end_date must be after start_date")
	}

	logs, count, err := h.uc.ListUsageLogs(ctx, &dto.UsageLogFilters{
		OwnerID:   ownerID,
		RecipeID:  req.RecipeID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Page:      int(req.Page),
		PageSize:  int(req.PageSize),
	})
	if err != nil {
		h.logger.Error("failed to list usage logs", zap.Error(err))
		return nil, toStatus(err)
	}

	out := make([]*pantryv1.UsageLog, len(logs))
	for i := range logs {
		out[i] = mapUsageLogToProto(&logs[i])
	}

	return &pantryv1.ListUsageLogsResponse{
		UsageLogs: out,
		Total:     int32(count),
	}, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, consumption.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, consumption.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, consumption.ErrInvalidMultiplier):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, consumption.ErrCommitFailure):
		return status.Error(codes.Aborted, err.Error())
	case errors.Is(err, recipe.ErrBusy):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, recipe.ErrLockUnavailable):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func mapUsageLogToProto(m *model.UsageLog) *pantryv1.UsageLog {
	if m == nil {
		return nil
	}

	deductions := make([]*pantryv1.Deduction, len(m.Deductions))
	for i, d := range m.Deductions {
		deductions[i] = &pantryv1.Deduction{
			Ingredient:   d.Ingredient,
			LotID:        d.LotID,
			LotName:      d.LotName,
			QuantityUsed: d.QuantityUsed.String(),
			Unit:         d.Unit,
		}
	}

	shortfalls := make([]*pantryv1.Shortfall, len(m.Shortfalls))
	for i, s := range m.Shortfalls {
		shortfalls[i] = &pantryv1.Shortfall{
			Ingredient:    s.Ingredient,
			Unit:          s.Unit,
			Requested:     s.Requested.String(),
			Missing:       s.Missing.String(),
			Reason:        string(s.Reason),
			SkippedLotIDs: s.SkippedLotIDs,
		}
	}

	return &pantryv1.UsageLog{
		ID:         m.ID,
		RecipeID:   m.RecipeID,
		RecipeName: m.RecipeName,
		Multiplier: m.Multiplier.String(),
		Deductions: deductions,
		Shortfalls: shortfalls,
		CreatedAt:  m.CreatedAt,
	}
}
