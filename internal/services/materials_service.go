package services

import (
	"context"
	"errors"
	"strings"

	"texmart/internal/models"
	"texmart/internal/repositories"

	"github.com/google/uuid"
)

type MaterialService interface {
	Create(ctx context.Context, material *models.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Material, error)
	Update(ctx context.Context, material *models.Material) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.MaterialFilter) ([]*models.Material, error)
}

type materialService struct {
	materialRepo repositories.MaterialRepository
	supplierRepo repositories.SupplierRepository
}

func NewMaterialService(materialRepo repositories.MaterialRepository, supplierRepo repositories.SupplierRepository) MaterialService {
	return &materialService{
		materialRepo: materialRepo,
		supplierRepo: supplierRepo,
	}
}

// validateMaterial runs every domain rule against the full record, on
// create and update alike. Field-level checks come first, then the
// referential check, then code uniqueness (exclude skips the record
// itself on update). On success the joined supplier name is filled in so
// callers can serialize the record without a second fetch.
func (s *materialService) validateMaterial(ctx context.Context, material *models.Material, exclude uuid.UUID) error {
	if len(strings.TrimSpace(material.Code)) < 2 {
		return models.NewValidationError("Material code must be at least 2 characters long. Please provide a valid material code.")
	}
	if strings.TrimSpace(material.Name) == "" {
		return models.NewValidationError("Material name is required. Please provide a material name.")
	}
	if !models.ValidMaterialType(material.Type) {
		return models.NewValidationError("Invalid material type '%s'. Please select from: fabric, jeans, or cotton.", material.Type)
	}
	if material.BuyPrice < models.MinBuyPrice {
		return models.NewConstraintError(models.PriceTooLow)
	}

	supplier, err := s.supplierRepo.GetByID(ctx, material.SupplierID)
	if errors.Is(err, models.ErrSupplierNotFound) {
		return models.NewValidationError("Invalid supplier selected. Please choose a valid supplier.")
	}
	if err != nil {
		return err
	}

	existing, err := s.materialRepo.GetByCode(ctx, material.Code)
	if err == nil && existing.ID != exclude {
		return models.NewConstraintError(models.DuplicateCode)
	}
	if err != nil && !errors.Is(err, models.ErrMaterialNotFound) {
		return err
	}

	material.SupplierName = supplier.Name
	return nil
}

func (s *materialService) Create(ctx context.Context, material *models.Material) error {
	if err := s.validateMaterial(ctx, material, uuid.Nil); err != nil {
		return err
	}

	material.ID = uuid.New()
	return s.materialRepo.Create(ctx, material)
}

func (s *materialService) GetByID(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	return s.materialRepo.GetByID(ctx, id)
}

func (s *materialService) Update(ctx context.Context, material *models.Material) error {
	if err := s.validateMaterial(ctx, material, material.ID); err != nil {
		return err
	}
	return s.materialRepo.Update(ctx, material)
}

func (s *materialService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.materialRepo.Delete(ctx, id)
}

func (s *materialService) List(ctx context.Context, filter *models.MaterialFilter) ([]*models.Material, error) {
	return s.materialRepo.List(ctx, filter)
}
