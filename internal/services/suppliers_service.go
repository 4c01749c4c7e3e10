package services

import (
	"context"
	"errors"
	"strings"

	"texmart/internal/models"
	"texmart/internal/repositories"

	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Supplier, error)
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
	}
}

// validateSupplier applies the domain rules for a supplier record. The
// exclude id skips the record itself when checking name uniqueness on
// update.
func (s *supplierService) validateSupplier(ctx context.Context, supplier *models.Supplier, exclude uuid.UUID) error {
	if strings.TrimSpace(supplier.Name) == "" {
		return models.NewValidationError("Supplier name is required. Please provide a supplier name.")
	}

	existing, err := s.supplierRepo.GetByName(ctx, supplier.Name)
	if err == nil && existing.ID != exclude {
		return models.NewConstraintError(models.DuplicateName)
	}
	if err != nil && !errors.Is(err, models.ErrSupplierNotFound) {
		return err
	}
	return nil
}

func (s *supplierService) Create(ctx context.Context, supplier *models.Supplier) error {
	if err := s.validateSupplier(ctx, supplier, uuid.Nil); err != nil {
		return err
	}

	supplier.ID = uuid.New()
	return s.supplierRepo.Create(ctx, supplier)
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(ctx, id)
}

func (s *supplierService) Update(ctx context.Context, supplier *models.Supplier) error {
	if err := s.validateSupplier(ctx, supplier, supplier.ID); err != nil {
		return err
	}
	return s.supplierRepo.Update(ctx, supplier)
}

// Delete removes the supplier without touching materials that reference
// it; those materials keep their supplier_id and read back with an empty
// supplier_name.
func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.supplierRepo.Delete(ctx, id)
}

func (s *supplierService) List(ctx context.Context) ([]*models.Supplier, error) {
	return s.supplierRepo.List(ctx)
}
