package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/fekuna/household-pantry-service/internal/recipe/dto"
	"github.com/jmoiron/sqlx"
)

// ErrConflict is returned when a staged write finds its row missing or
// changed since it was read.
var ErrConflict = errors.New("row missing or changed concurrently")

var dialect = goqu.Dialect("postgres")

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByID(ctx context.Context, ownerID, id string) (*model.Recipe, error) {
	var rcp model.Recipe
	query := `SELECT * FROM recipes WHERE id = $1 AND owner_id = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &rcp, query, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rcp, nil
}

func (r *PGRepository) ApplyConsumption(ctx context.Context, batch *model.ConsumptionBatch) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Lots. The quantity guard turns a lost update into a conflict.
	for _, m := range batch.Mutations {
		var res sql.Result
		switch m.Kind {
		case model.LotMutationDelete:
			res, err = tx.ExecContext(ctx,
				`DELETE FROM inventory_lots WHERE id = $1 AND owner_id = $2 AND quantity = $3`,
				m.LotID, batch.OwnerID, m.QuantityBefore,
			)
		default:
			res, err = tx.ExecContext(ctx, `
				UPDATE inventory_lots
				SET quantity = $1, updated_at = $2
				WHERE id = $3 AND owner_id = $4 AND quantity = $5
			`, m.QuantityAfter, batch.Usage.LastUsed, m.LotID, batch.OwnerID, m.QuantityBefore)
		}
		if err != nil {
			return fmt.Errorf("failed to %s lot %s: %w", m.Kind, m.LotID, err)
		}
		if err := expectOneRow(res, "lot "+m.LotID); err != nil {
			return err
		}
	}

	// 2. Recipe usage counters
	res, err := tx.ExecContext(ctx, `
		UPDATE recipes
		SET times_used = $1, last_used = $2, updated_at = $2
		WHERE id = $3 AND owner_id = $4
	`, batch.Usage.TimesUsed, batch.Usage.LastUsed, batch.Usage.RecipeID, batch.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to update recipe usage: %w", err)
	}
	if err := expectOneRow(res, "recipe "+batch.Usage.RecipeID); err != nil {
		return err
	}

	return tx.Commit()
}

func expectOneRow(res sql.Result, what string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows != 1 {
		return fmt.Errorf("%w: %s", ErrConflict, what)
	}
	return nil
}

func (r *PGRepository) CreateUsageLog(ctx context.Context, l *model.UsageLog) error {
	query := `
        INSERT INTO usage_logs (
            id, owner_id, recipe_id, recipe_name, multiplier,
            deductions, shortfalls, created_at
        )
        VALUES (
            :id, :owner_id, :recipe_id, :recipe_name, :multiplier,
            :deductions, :shortfalls, :created_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, l)
	return err
}

func (r *PGRepository) ListUsageLogs(ctx context.Context, f *dto.UsageLogFilters) ([]model.UsageLog, int, error) {
	ds := dialect.From("usage_logs").Where(goqu.C("owner_id").Eq(f.OwnerID))
	if f.RecipeID != "" {
		ds = ds.Where(goqu.C("recipe_id").Eq(f.RecipeID))
	}
	if f.StartDate != nil {
		ds = ds.Where(goqu.C("created_at").Gte(*f.StartDate))
	}
	if f.EndDate != nil {
		ds = ds.Where(goqu.C("created_at").Lt(*f.EndDate))
	}

	countQuery, countArgs, err := ds.Select(goqu.COUNT("*")).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}
	var count int
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, err
	}

	listDS := ds.Order(goqu.C("created_at").Desc())
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		listDS = listDS.Limit(uint(f.PageSize)).Offset(uint((page - 1) * f.PageSize))
	}
	query, args, err := listDS.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	logs := []model.UsageLog{}
	if err := r.DB.SelectContext(ctx, &logs, query, args...); err != nil {
		return nil, 0, err
	}
	return logs, count, nil
}
