package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/household-pantry-service/internal/consumption"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/fekuna/household-pantry-service/internal/pkg/search"
	"github.com/fekuna/household-pantry-service/internal/recipe"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const usageLogIndex = "usage_logs"

const usageLogMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"owner_id": { "type": "keyword" },
			"recipe_id": { "type": "keyword" },
			"recipe_name": { "type": "text" },
			"multiplier": { "type": "keyword" },
			"deductions": {
				"properties": {
					"ingredient": { "type": "text" },
					"lot_id": { "type": "keyword" },
					"lot_name": { "type": "text" },
					"unit": { "type": "keyword" }
				}
			},
			"shortfalls": {
				"properties": {
					"ingredient": { "type": "text" },
					"reason": { "type": "keyword" }
				}
			},
			"created_at": { "type": "date" }
		}
	}
}`

// Engine runs one reconciliation. *consumption.Engine satisfies it.
type Engine interface {
	UseRecipe(ctx context.Context, ownerID, recipeID string, multiplier decimal.Decimal) (*model.UsageLog, error)
}

// Locker is the per-household mutual exclusion used around engine runs.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type LockConfig struct {
	TTL        time.Duration
	Attempts   int
	RetryDelay time.Duration
}

type recipeUseCase struct {
	repo   recipe.Repository
	engine Engine
	locker Locker
	lock   LockConfig
	es     *search.Client
	logger logger.ZapLogger
}

func NewRecipeUseCase(repo recipe.Repository, engine Engine, locker Locker, lock LockConfig, es *search.Client, log logger.ZapLogger) recipe.UseCase {
	if lock.Attempts <= 0 {
		lock.Attempts = 3
	}
	if lock.RetryDelay <= 0 {
		lock.RetryDelay = 100 * time.Millisecond
	}
	if lock.TTL <= 0 {
		lock.TTL = 10 * time.Second
	}
	return &recipeUseCase{
		repo:   repo,
		engine: engine,
		locker: locker,
		lock:   lock,
		es:     es,
		logger: log,
	}
}

func (uc *recipeUseCase) UseRecipe(ctx context.Context, input *dto.UseRecipeInput) (*model.UsageLog, error) {
	if input.OwnerID == "" {
		return nil, consumption.ErrUnauthenticated
	}

	// 1. Serialize runs per household
	lockKey := fmt.Sprintf("lock:pantry:%s", input.OwnerID)
	lockValue := uuid.New().String()
	if err := uc.acquire(ctx, lockKey, lockValue); err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.locker.ReleaseLock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.logger.Error("failed to release pantry lock", zap.String("key", lockKey), zap.Error(err))
		}
	}()

	// 2. Run
	start := time.Now()
	log, err := uc.engine.UseRecipe(ctx, input.OwnerID, input.RecipeID, input.Multiplier)
	recipeRunDuration.Observe(time.Since(start).Seconds())
	observeRun(input.Source, log, err)

	switch {
	case err == nil:
		uc.logger.Info("recipe used",
			zap.String("owner_id", input.OwnerID),
			zap.String("recipe_id", input.RecipeID),
			zap.String("usage_log_id", log.ID),
			zap.Int("deductions", len(log.Deductions)),
			zap.Int("shortfalls", len(log.Shortfalls)),
			zap.String("source", input.Source),
		)
		// 3. Sync to Elastic
		go uc.indexUsageLog(context.Background(), log)
	case errors.Is(err, consumption.ErrLogWriteFailure):
		uc.logger.Error("pantry updated but usage log was not stored",
			zap.String("owner_id", input.OwnerID),
			zap.String("recipe_id", input.RecipeID),
			zap.Error(err),
		)
	default:
		uc.logger.Warn("recipe run failed",
			zap.String("owner_id", input.OwnerID),
			zap.String("recipe_id", input.RecipeID),
			zap.Error(err),
		)
	}

	return log, err
}

func (uc *recipeUseCase) acquire(ctx context.Context, key, value string) error {
	var lastErr error
	for i := 0; i < uc.lock.Attempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, key, value, uc.lock.TTL)
		if err != nil {
			uc.logger.Error("failed to acquire lock redis error", zap.Error(err))
		}
		if ok {
			return nil
		}
		lastErr = err
		if i == uc.lock.Attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(uc.lock.RetryDelay):
		}
	}
	// Only a clean "held by someone else" on the final attempt counts as contention.
	if lastErr != nil {
		return fmt.Errorf("%w: %w", recipe.ErrLockUnavailable, lastErr)
	}
	lockContention.Inc()
	return recipe.ErrBusy
}

func (uc *recipeUseCase) indexUsageLog(ctx context.Context, log *model.UsageLog) {
	if uc.es == nil {
		return
	}

	if err := uc.es.CreateIndex(ctx, usageLogIndex, usageLogMapping); err != nil {
		uc.logger.Error("failed to create usage log index", zap.Error(err))
		return
	}

	if err := uc.es.Index(ctx, usageLogIndex, log.ID, log); err != nil {
		uc.logger.Error("failed to index usage log", zap.String("usage_log_id", log.ID), zap.Error(err))
	}
}

func (uc *recipeUseCase) ListUsageLogs(ctx context.Context, filters *dto.UsageLogFilters) ([]model.UsageLog, int, error) {
	if filters.OwnerID == "" {
		return nil, 0, consumption.ErrUnauthenticated
	}
	if filters.Page <= 0 {
		filters.Page = 1
	}
	if filters.PageSize <= 0 {
		filters.PageSize = 20
	}
	return uc.repo.ListUsageLogs(ctx, filters)
}
