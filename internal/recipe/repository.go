package recipe

import (
	"context"

	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
)

type Repository interface {
	// FindByID returns nil without error when the recipe does not exist for the owner.
	FindByID(ctx context.Context, ownerID, id string) (*model.Recipe, error)

	// ApplyConsumption writes every lot mutation and the usage counters of
	// one run in a single transaction.
	ApplyConsumption(ctx context.Context, batch *model.ConsumptionBatch) error

	// Usage history
	CreateUsageLog(ctx context.Context, log *model.UsageLog) error
	ListUsageLogs(ctx context.Context, filters *dto.UsageLogFilters) ([]model.UsageLog, int, error)
}
