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

type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	GetByName(ctx context.Context, name string) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Supplier, error)
}

type supplierRepo struct {
	db Database
}

func NewSupplierRepository(db Database) SupplierRepository {
	return &supplierRepo{db: db}
}

// uniqueViolation reports whether err is the storage layer rejecting a
// duplicate key (SQLSTATE 23505).
func uniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	defer metrics.TrackDBOperation("insert")(time.Now())

	query := `
		INSERT INTO suppliers (id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, supplier.ID, supplier.Name, supplier.Email, supplier.Phone, supplier.Address)
	if uniqueViolation(err) {
		return models.NewConstraintError(models.DuplicateName)
	}
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	supplier := &models.Supplier{}
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&supplier.ID, &supplier.Name, &supplier.Email, &supplier.Phone, &supplier.Address, &supplier.CreatedAt, &supplier.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) GetByName(ctx context.Context, name string) (*models.Supplier, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	supplier := &models.Supplier{}
	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM suppliers
		WHERE name = $1
	`
	err := r.db.QueryRow(ctx, query, name).Scan(&supplier.ID, &supplier.Name, &supplier.Email, &supplier.Phone, &supplier.Address, &supplier.CreatedAt, &supplier.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return supplier, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	defer metrics.TrackDBOperation("update")(time.Now())

	query := `
		UPDATE suppliers
		SET name = $1, email = $2, phone = $3, address = $4, updated_at = NOW()
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query, supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.ID)
	if uniqueViolation(err) {
		return models.NewConstraintError(models.DuplicateName)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	defer metrics.TrackDBOperation("delete")(time.Now())

	query := `DELETE FROM suppliers WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrSupplierNotFound
	}
	return nil
}

func (r *supplierRepo) List(ctx context.Context) ([]*models.Supplier, error) {
	defer metrics.TrackDBOperation("query")(time.Now())

	query := `
		SELECT id, name, email, phone, address, created_at, updated_at
		FROM suppliers
		ORDER BY name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []*models.Supplier{}
	for rows.Next() {
		supplier := &models.Supplier{}
		if err := rows.Scan(&supplier.ID, &supplier.Name, &supplier.Email, &supplier.Phone, &supplier.Address, &supplier.CreatedAt, &supplier.UpdatedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, rows.Err()
}
