package handlers

import (
	"errors"
	"net/http"

	"texmart/internal/logger"
	"texmart/internal/metrics"
	"texmart/internal/models"
	"texmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// MaterialHandlers handles material-related HTTP requests. Reads answer
// with the plain-JSON envelope, writes with the JSON-RPC one.
type MaterialHandlers struct {
	materialService services.MaterialService
	validator       *RequestValidator
}

// NewMaterialHandlers creates a new material handlers instance
func NewMaterialHandlers(materialService services.MaterialService) *MaterialHandlers {
	return &MaterialHandlers{
		materialService: materialService,
		validator:       NewRequestValidator(),
	}
}

// MaterialRequest is the write payload for material create and update.
// All fields are required on both operations.
type MaterialRequest struct {
	MaterialCode     *string    `json:"material_code" validate:"required"`
	MaterialName     *string    `json:"material_name" validate:"required"`
	MaterialType     *string    `json:"material_type" validate:"required"`
	MaterialBuyPrice *float64   `json:"material_buy_price" validate:"required"`
	SupplierID       *uuid.UUID `json:"supplier_id" validate:"required"`
}

func (r *MaterialRequest) toModel() *models.Material {
	return &models.Material{
		Code:       *r.MaterialCode,
		Name:       *r.MaterialName,
		Type:       *r.MaterialType,
		BuyPrice:   *r.MaterialBuyPrice,
		SupplierID: *r.SupplierID,
	}
}

// ListMaterials handles listing materials with optional material_type
// filtering, ordered by material code.
func (h *MaterialHandlers) ListMaterials(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("material", "list")

	var filter models.MaterialFilter
	if err := c.Bind(&filter); err != nil {
		return respondError(c, http.StatusBadRequest, "Invalid query parameters")
	}

	materials, err := h.materialService.List(ctx, &filter)
	if err != nil {
		log.Error("Unexpected error", zap.String("operation", "list materials"), zap.Error(err))
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respondList(c, materials, len(materials))
}

// GetMaterial handles getting a material by ID.
func (h *MaterialHandlers) GetMaterial(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("material", "get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, models.ErrMaterialNotFound.Error())
	}

	material, err := h.materialService.GetByID(ctx, id)
	if errors.Is(err, models.ErrMaterialNotFound) {
		return respondError(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		log.Error("Unexpected error", zap.String("operation", "get material"), zap.String("id", id.String()), zap.Error(err))
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respondItem(c, material)
}

// CreateMaterial handles creating a new material.
func (h *MaterialHandlers) CreateMaterial(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("material", "create")

	var req MaterialRequest
	id, err := decodeRPC(c, &req)
	if err != nil {
		return rpcError(c, id, http.StatusBadRequest, "Invalid request format")
	}
	if err := h.validator.Check(&req); err != nil {
		return rpcError(c, id, http.StatusBadRequest, err.Error())
	}

	material := req.toModel()
	if err := h.materialService.Create(ctx, material); err != nil {
		return rpcFailure(c, id, log, "create material", err)
	}

	return rpcSuccess(c, id, "Material created successfully", material)
}

// UpdateMaterial handles updating an existing material. The full record
// is required and re-validated, not just the changed fields.
func (h *MaterialHandlers) UpdateMaterial(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("material", "update")

	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rpcError(c, nil, http.StatusNotFound, models.ErrMaterialNotFound.Error())
	}

	var req MaterialRequest
	id, err := decodeRPC(c, &req)
	if err != nil {
		return rpcError(c, id, http.StatusBadRequest, "Invalid request format")
	}

	if _, err := h.materialService.GetByID(ctx, materialID); err != nil {
		return rpcFailure(c, id, log, "update material", err)
	}

	if err := h.validator.Check(&req); err != nil {
		return rpcError(c, id, http.StatusBadRequest, err.Error())
	}

	material := req.toModel()
	material.ID = materialID
	if err := h.materialService.Update(ctx, material); err != nil {
		return rpcFailure(c, id, log, "update material", err)
	}

	return rpcSuccess(c, id, "Material updated successfully", material)
}

// DeleteMaterial handles deleting a material.
func (h *MaterialHandlers) DeleteMaterial(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("material", "delete")

	materialID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rpcError(c, nil, http.StatusNotFound, models.ErrMaterialNotFound.Error())
	}

	var discard map[string]interface{}
	id, _ := decodeRPC(c, &discard)

	if err := h.materialService.Delete(ctx, materialID); err != nil {
		return rpcFailure(c, id, log, "delete material", err)
	}

	return rpcSuccess(c, id, "Material deleted successfully", nil)
}
