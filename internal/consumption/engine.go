package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/household-pantry-service/internal/inventory"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/fekuna/household-pantry-service/internal/recipe"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type runState string

const (
	stateCollecting runState = "collecting"
	stateCommitting runState = "committing"
	stateLogged     runState = "logged"
)

type Engine struct {
	recipes recipe.Repository
	lots    inventory.Repository
	logger  logger.ZapLogger
	now     func() time.Time
	newID   func() string
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

func NewEngine(recipes recipe.Repository, lots inventory.Repository, log logger.ZapLogger, opts ...Option) *Engine {
	e := &Engine{
		recipes: recipes,
		lots:    lots,
		logger:  log,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UseRecipe deducts multiplier batches of the recipe from the owner's lots
// and returns the usage log of the run. A zero multiplier means one batch.
//
// Shortfalls are reported in the log, not as errors. When the usage log
// cannot be stored the log is still returned, with an error wrapping
// ErrLogWriteFailure.
func (e *Engine) UseRecipe(ctx context.Context, ownerID, recipeID string, multiplier decimal.Decimal) (*model.UsageLog, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	if multiplier.IsZero() {
		multiplier = decimal.NewFromInt(1)
	}
	if multiplier.IsNegative() {
		return nil, ErrInvalidMultiplier
	}

	rcp, err := e.recipes.FindByID(ctx, ownerID, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe: %w", err)
	}
	if rcp == nil || rcp.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, recipeID)
	}

	lots, err := e.lots.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	log := e.logger.With(zap.String("owner_id", ownerID), zap.String("recipe_id", rcp.ID))
	log.Debug("reconciliation run", zap.String("state", string(stateCollecting)), zap.Int("lots", len(lots)))

	now := e.now()
	usage := &model.UsageLog{
		ID:         e.newID(),
		OwnerID:    ownerID,
		RecipeID:   rcp.ID,
		RecipeName: rcp.Name,
		Multiplier: multiplier,
		Deductions: model.DeductionRecords{},
		Shortfalls: model.Shortfalls{},
		CreatedAt:  now,
	}

	snap := newSnapshot(lots)
	for _, ing := range rcp.Ingredients {
		if ing.Optional {
			continue
		}

		needed := ing.Quantity.Mul(multiplier)
		candidates := OrderLots(MatchLots(ing, snap.available()))
		alloc := Allocate(ing, needed, candidates)

		for _, lotID := range alloc.SkippedLotIDs {
			log.Warn("unit mismatch, lot skipped",
				zap.String("ingredient", ing.Name),
				zap.String("unit", ing.Unit),
				zap.String("lot_id", lotID),
			)
		}

		snap.apply(alloc.Mutations)
		usage.Deductions = append(usage.Deductions, alloc.Deductions...)

		if alloc.Remaining.IsPositive() {
			shortfall := model.Shortfall{
				Ingredient:    ing.Name,
				Unit:          ing.Unit,
				Requested:     needed,
				Missing:       alloc.Remaining,
				Reason:        shortfallReason(candidates, alloc),
				SkippedLotIDs: alloc.SkippedLotIDs,
			}
			usage.Shortfalls = append(usage.Shortfalls, shortfall)
			log.Warn("ingredient shortfall",
				zap.String("ingredient", ing.Name),
				zap.String("missing", shortfall.Missing.String()),
				zap.String("unit", ing.Unit),
				zap.String("reason", string(shortfall.Reason)),
			)
		}
	}

	batch := &model.ConsumptionBatch{
		OwnerID:   ownerID,
		Mutations: snap.mutations(),
		Usage: model.RecipeUsage{
			RecipeID:  rcp.ID,
			OwnerID:   ownerID,
			TimesUsed: rcp.TimesUsed + 1,
			LastUsed:  now,
		},
	}

	log.Debug("reconciliation run", zap.String("state", string(stateCommitting)), zap.Int("mutations", len(batch.Mutations)))
	if err := e.recipes.ApplyConsumption(ctx, batch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommitFailure, err)
	}

	if err := e.recipes.CreateUsageLog(ctx, usage); err != nil {
		log.Error("usage log not stored after commit", zap.String("usage_log_id", usage.ID), zap.Error(err))
		return usage, fmt.Errorf("%w: %w", ErrLogWriteFailure, err)
	}
	log.Debug("reconciliation run", zap.String("state", string(stateLogged)), zap.String("usage_log_id", usage.ID))

	return usage, nil
}

func shortfallReason(candidates []model.InventoryLot, alloc Allocation) model.ShortfallReason {
	switch {
	case len(candidates) == 0:
		return model.ShortfallNotFound
	case len(alloc.Deductions) == 0 && len(alloc.SkippedLotIDs) == len(candidates):
		return model.ShortfallUnitMismatch
	default:
		return model.ShortfallInsufficient
	}
}
