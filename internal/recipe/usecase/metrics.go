package usecase

import (
	"errors"

	"github.com/fekuna/household-pantry-service/internal/consumption"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipeRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pantry",
		Name:      "recipe_runs_total",
		Help:      "Recipe runs by outcome.",
	}, []string{"outcome", "source"})

	lotDeductions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pantry",
		Name:      "lot_deductions_total",
		Help:      "Deduction records written by committed runs.",
	})

	ingredientShortfalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pantry",
		Name:      "ingredient_shortfalls_total",
		Help:      "Ingredients that could not be fully deducted, by reason.",
	}, []string{"reason"})

	recipeRunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pantry",
		Name:      "recipe_run_duration_seconds",
		Help:      "Time spent in the engine for one recipe run, lock excluded.",
		Buckets:   prometheus.DefBuckets,
	})

	lockContention = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pantry",
		Name:      "lock_busy_total",
		Help:      "Runs rejected because the household lock was held.",
	})
)

const (
	outcomeSatisfied      = "satisfied"
	outcomePartial        = "partial"
	outcomeLogWriteFailed = "log_write_failed"
	outcomeNotFound       = "not_found"
	outcomeInvalid        = "invalid"
	outcomeCommitFailed   = "commit_failed"
	outcomeError          = "error"
)

func runOutcome(log *model.UsageLog, err error) string {
	switch {
	case err == nil && log.FullySatisfied():
		return outcomeSatisfied
	case err == nil:
		return outcomePartial
	case errors.Is(err, consumption.ErrLogWriteFailure):
		return outcomeLogWriteFailed
	case errors.Is(err, consumption.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, consumption.ErrInvalidMultiplier):
		return outcomeInvalid
	case errors.Is(err, consumption.ErrCommitFailure):
		return outcomeCommitFailed
	default:
		return outcomeError
	}
}

func observeRun(source string, log *model.UsageLog, err error) {
	recipeRuns.WithLabelValues(runOutcome(log, err), source).Inc()
	if log == nil {
		return
	}
	lotDeductions.Add(float64(len(log.Deductions)))
	for _, s := range log.Shortfalls {
		ingredientShortfalls.WithLabelValues(string(s.Reason)).Inc()
	}
}
