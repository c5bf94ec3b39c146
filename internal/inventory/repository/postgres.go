package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/household-pantry-service/internal/inventory"
	"github.com/fekuna/household-pantry-service/internal/inventory/dto"
	"github.com/fekuna/household-pantry-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.InventoryLot, error) {
	lots := []model.InventoryLot{}
	query := `SELECT * FROM inventory_lots WHERE owner_id = $1 ORDER BY id`
	err := r.DB.SelectContext(ctx, &lots, query, ownerID)
	return lots, err
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.LotFilters) ([]model.InventoryLot, int, error) {
	lots := []model.InventoryLot{}
	var count int

	conditions := []string{"owner_id = :owner_id"}
	args := map[string]interface{}{"owner_id": f.OwnerID}

	if f.Name != "" {
		conditions = append(conditions, "LOWER(name) = LOWER(:name)")
		args["name"] = f.Name
	}
	if f.ExpiringBefore != nil {
		conditions = append(conditions, "expires_at IS NOT NULL AND expires_at < :expiring_before")
		args["expiring_before"] = *f.ExpiringBefore
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM inventory_lots"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	// Same order the lots are consumed in.
	query := "SELECT * FROM inventory_lots" + whereClause + " ORDER BY expires_at ASC NULLS LAST, id ASC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &lots, args)
	return lots, count, err
}

func (r *PGRepository) Create(ctx context.Context, lot *model.InventoryLot) error {
	query := `
        INSERT INTO inventory_lots (id, owner_id, name, quantity, unit, expires_at, created_at, updated_at)
        VALUES (:id, :owner_id, :name, :quantity, :unit, :expires_at, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, lot)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM inventory_lots WHERE id = $1 AND owner_id = $2", id, ownerID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return inventory.ErrLotNotFound
	}
	return nil
}
