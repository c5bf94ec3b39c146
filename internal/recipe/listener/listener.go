package listener

import (
	"context"
	"errors"
	"time"

	"github.com/fekuna/household-pantry-service/internal/consumption"
	"github.com/fekuna/household-pantry-service/internal/pkg/broker"
	"github.com/fekuna/household-pantry-service/internal/pkg/logger"
	"github.com/fekuna/household-pantry-service/internal/recipe"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	EventMealCooked = "MealCooked"
	sourceMealPlan  = "meal_planner"
)

type MealListener struct {
	consumer broker.MessageReader
	uc       recipe.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewMealListener(consumer broker.MessageReader, uc recipe.UseCase, logger logger.ZapLogger) *MealListener {
	return &MealListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *MealListener) Start(ctx context.Context) {
	l.logger.Info("Starting meal planner Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping meal planner Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type MealCookedEvent struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"event_type"`
	Payload   MealCookedPayload `json:"payload"`
	Timestamp time.Time         `json:"timestamp"`
}

type MealCookedPayload struct {
	OwnerID    string          `json:"owner_id"`
	RecipeID   string          `json:"recipe_id"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func (l *MealListener) processMessage(ctx context.Context, value []byte) {
	var event MealCookedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventMealCooked {
		return
	}

	l.logger.Info("Processing MealCooked event",
		zap.String("event_id", event.EventID),
		zap.String("recipe_id", event.Payload.RecipeID),
	)

	_, err := l.uc.UseRecipe(ctx, &dto.UseRecipeInput{
		OwnerID:    event.Payload.OwnerID,
		RecipeID:   event.Payload.RecipeID,
		Multiplier: event.Payload.Multiplier,
		Source:     sourceMealPlan,
	})
	switch {
	case err == nil:
	case errors.Is(err, consumption.ErrLogWriteFailure):
		l.logger.Warn("Meal recorded without usage log",
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
	default:
		l.logger.Error("Failed to use recipe for meal",
			zap.String("event_id", event.EventID),
			zap.String("owner_id", event.Payload.OwnerID),
			zap.String("recipe_id", event.Payload.RecipeID),
			zap.Error(err),
		)
	}
}
