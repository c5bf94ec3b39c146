package recipe

import (
	"context"
	"errors"

	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
)

var (
	// ErrBusy is returned when another run for the same household holds the lock.
	ErrBusy = errors.New("pantry is busy, please try again later")
	// ErrLockUnavailable is returned when the lock store itself failed.
	ErrLockUnavailable = errors.New("pantry lock unavailable")
)

type UseCase interface {
	UseRecipe(ctx context.Context, input *dto.UseRecipeInput) (*model.UsageLog, error)
	ListUsageLogs(ctx context.Context, filters *dto.UsageLogFilters) ([]model.UsageLog, int, error)
}
