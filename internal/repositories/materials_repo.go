package repositories

import (
	"context"
	"errors"
	"time"

	"texmart/internal/metrics"
	"texmart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *models.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Material, error)
	GetByCode(ctx context.Context, code string) (*models.Material, error)
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.MaterialFilter) ([]*models.Material, error)
}

type materialRepo struct {
	db Database
}

func NewMaterialRepository(db Database) MaterialRepository {
	return &materialRepo{db: db}
}

// mapMaterialWriteErr translates storage-level constraint rejections into
// domain errors. The unique index backs material_code, the check
// constraint backs the minimum buy price; both also exist as pre-checks in
// the service, this path only fires on races.
func mapMaterialWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		return models.NewConstraintError(models.DuplicateCode)
	case "23514":
		return models.NewConstraintError(models.PriceTooLow)
	}
	return err
}

func (r *materialRepo) Create(ctx context.Context, material *models.Material) error {
	defer metrics.TrackDBOperation("insert")(time.Now())

	query := `
		INSERT INTO materials (id, material_code, material_name, material_type, material_buy_price, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, material.ID, material.Code, material.Name, material.Type, material.BuyPrice, material.SupplierID)
	if err != nil {
		return mapMaterialWriteErr(err)
	}
	return nil
}

// Material reads LEFT JOIN the supplier: deleting a supplier does not
// cascade, so orphaned materials must still be readable.
const materialSelect = `
		SELECT m.id, m.material_code, m.material_name, m.material_type, m.material_buy_price, m.supplier_id, COALESCE(s.name, ''), m.created_at, m.updated_at
		FROM materials m
		LEFT JOIN suppliers s ON s.id = m.supplier_id
`

func scanMaterial(row pgx.Row) (*models.Material, error) {
	material := &models.Material{}
	err := row.Scan(&material.ID, &material.Code, &material.Name, &material.Type, &material.BuyPrice, &material.SupplierID, &material.SupplierName, &material.CreatedAt, &material.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return material, nil
}

func (r *materialRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	material, err := scanMaterial(r.db.QueryRow(ctx, materialSelect+`		WHERE m.id = $1
	`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMaterialNotFound
	}
	return material, err
}

func (r *materialRepo) GetByCode(ctx context.Context, code string) (*models.Material, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	material, err := scanMaterial(r.db.QueryRow(ctx, materialSelect+`		WHERE m.material_code = $1
	`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMaterialNotFound
	}
	return material, err
}

func (r *materialRepo) Update(ctx context.Context, material *models.Material) error {
	defer metrics.TrackDBOperation("update")(time.Now())

	query := `
		UPDATE materials
		SET material_code = $1, material_name = $2, material_type = $3, material_buy_price = $4, supplier_id = $5, updated_at = NOW()
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query, material.Code, material.Name, material.Type, material.BuyPrice, material.SupplierID, material.ID)
	if err != nil {
		return mapMaterialWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMaterialNotFound
	}
	return nil
}

func (r *materialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer metrics.TrackDBOperation("delete")(time.Now())

	query := `DELETE FROM materials WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrMaterialNotFound
	}
	return nil
}

func (r *materialRepo) List(ctx context.Context, filter *models.MaterialFilter) ([]*models.Material, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	query := materialSelect
	args := []any{}
	if filter != nil && filter.Type != "" {
		query += `		WHERE m.material_type = $1
`
		args = append(args, filter.Type)
	}
	query += `		ORDER BY m.material_code ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	materials := []*models.Material{}
	for rows.Next() {
		material, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, material)
	}
	return materials, rows.Err()
}
