package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 4, 18, 30, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPGRepository(sqlx.NewDb(db, "pgx")), mock
}

func batch() *model.ConsumptionBatch {
	return &model.ConsumptionBatch{
		OwnerID: "house-1",
		Mutations: []model.LotMutation{
			{
				LotID:          "flour-1",
				Kind:           model.LotMutationDelete,
				QuantityBefore: decimal.NewFromInt(2),
				QuantityAfter:  decimal.Zero,
			},
			{
				LotID:          "flour-2",
				Kind:           model.LotMutationUpdate,
				QuantityBefore: decimal.NewFromInt(5),
				QuantityAfter:  decimal.NewFromInt(1),
			},
		},
		Usage: model.RecipeUsage{RecipeID: "pancakes", OwnerID: "house-1", TimesUsed: 8, LastUsed: now},
	}
}

func Test_FindByID_ScansRecipe(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{
		"id", "owner_id", "name", "servings", "ingredients", "times_used", "last_used", "created_at", "updated_at",
	}).AddRow(
		"pancakes", "house-1", "Pancakes", 4,
		[]byte(`[{"name":"flour","quantity":"2","unit":"cup","optional":false},{"name":"vanilla","quantity":"1","unit":"tbsp","optional":true}]`),
		7, nil, now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM recipes WHERE id = \$1 AND owner_id = \$2`).
		WithArgs("pancakes", "house-1").
		WillReturnRows(rows)

	rcp, err := repo.FindByID(context.Background(), "house-1", "pancakes")

	require.NoError(t, err)
	require.NotNil(t, rcp)
	assert.Equal(t, "Pancakes", rcp.Name)
	assert.Equal(t, 7, rcp.TimesUsed)
	assert.Nil(t, rcp.LastUsed)
	require.Len(t, rcp.Ingredients, 2)
	assert.Equal(t, "2", rcp.Ingredients[0].Quantity.String())
	assert.True(t, rcp.Ingredients[1].Optional)
}

func Test_FindByID_MissingReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM recipes`).
		WithArgs("waffles", "house-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rcp, err := repo.FindByID(context.Background(), "house-1", "waffles")

	require.NoError(t, err)
	assert.Nil(t, rcp)
}

func Test_ApplyConsumption_CommitsAllWrites(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM inventory_lots`).
		WithArgs("flour-1", "house-1", "2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE inventory_lots`).
		WithArgs("1", now, "flour-2", "house-1", "5").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE recipes`).
		WithArgs(8, now, "pancakes", "house-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ApplyConsumption(context.Background(), batch()))
}

func Test_ApplyConsumption_RollsBackOnStaleLot(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM inventory_lots`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE inventory_lots`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ApplyConsumption(context.Background(), batch())

	assert.ErrorIs(t, err, ErrConflict)
}

func Test_ApplyConsumption_RollsBackOnExecError(t *testing.T) {
	repo, mock := newMockRepo(t)
	dbErr := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM inventory_lots`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE inventory_lots`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE recipes`).
		WillReturnError(dbErr)
	mock.ExpectRollback()

	err := repo.ApplyConsumption(context.Background(), batch())

	assert.ErrorIs(t, err, dbErr)
}

func Test_ApplyConsumption_MissingRecipeRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	b := batch()
	b.Mutations = nil

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE recipes`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.ApplyConsumption(context.Background(), b)

	assert.ErrorIs(t, err, ErrConflict)
}

func Test_CreateUsageLog_StoresJSONColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	log := &model.UsageLog{
		ID:         "log-1",
		OwnerID:    "house-1",
		RecipeID:   "pancakes",
		RecipeName: "Pancakes",
		Multiplier: decimal.NewFromInt(1),
		Deductions: model.DeductionRecords{
			{Ingredient: "flour", LotID: "flour-1", LotName: "flour", QuantityUsed: decimal.NewFromInt(2), Unit: "cup"},
		},
		CreatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO usage_logs`).
		WithArgs(
			"log-1", "house-1", "pancakes", "Pancakes", "1",
			[]byte(`[{"ingredient":"flour","lot_id":"flour-1","lot_name":"flour","quantity_used":"2","unit":"cup"}]`),
			[]byte(`[]`),
			now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateUsageLog(context.Background(), log))
}

func Test_ListUsageLogs_FiltersByRecipe(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "usage_logs" WHERE .*"owner_id" = \$1.*"recipe_id" = \$2`).
		WithArgs("house-1", "pancakes").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "usage_logs" .* ORDER BY "created_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "recipe_id", "recipe_name", "multiplier", "deductions", "shortfalls", "created_at",
		}).AddRow(
			"log-1", "house-1", "pancakes", "Pancakes", "3",
			[]byte(`[{"ingredient":"flour","lot_id":"flour-1","lot_name":"flour","quantity_used":"2","unit":"cup"}]`),
			[]byte(`[{"ingredient":"sugar","unit":"cup","requested":"3","missing":"3","reason":"not_found"}]`),
			now,
		))

	logs, count, err := repo.ListUsageLogs(context.Background(), &dto.UsageLogFilters{
		OwnerID:  "house-1",
		RecipeID: "pancakes",
		Page:     1,
		PageSize: 20,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, logs, 1)
	assert.Equal(t, "3", logs[0].Multiplier.String())
	require.Len(t, logs[0].Deductions, 1)
	assert.Equal(t, "flour-1", logs[0].Deductions[0].LotID)
	require.Len(t, logs[0].Shortfalls, 1)
	assert.Equal(t, model.ShortfallNotFound, logs[0].Shortfalls[0].Reason)
}

func Test_ListUsageLogs_CreatedAtRange(t *testing.T) {
	repo, mock := newMockRepo(t)
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "usage_logs" WHERE .*"owner_id" = \$1.*"created_at" >= \$2.*"created_at" < \$3`).
		WithArgs("house-1", since, until).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "usage_logs" WHERE .*"created_at" >= \$2.*"created_at" < \$3.* ORDER BY "created_at" DESC`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "recipe_id", "recipe_name", "multiplier", "deductions", "shortfalls", "created_at",
		}))

	logs, count, err := repo.ListUsageLogs(context.Background(), &dto.UsageLogFilters{
		OwnerID:   "house-1",
		StartDate: &since,
		EndDate:   &until,
	})

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, logs)
}
