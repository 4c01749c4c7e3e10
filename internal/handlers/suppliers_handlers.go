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

// SupplierHandlers handles supplier-related HTTP requests
type SupplierHandlers struct {
	supplierService services.SupplierService
	validator       *RequestValidator
}

// NewSupplierHandlers creates a new supplier handlers instance
func NewSupplierHandlers(supplierService services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{
		supplierService: supplierService,
		validator:       NewRequestValidator(),
	}
}

// SupplierRequest is the write payload for supplier create and update.
// Only the name is required; contact fields are free-form.
type SupplierRequest struct {
	Name    *string `json:"name" validate:"required"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (r *SupplierRequest) toModel() *models.Supplier {
	return &models.Supplier{
		Name:    *r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// ListSuppliers handles listing all suppliers, ordered by name.
func (h *SupplierHandlers) ListSuppliers(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("supplier", "list")

	suppliers, err := h.supplierService.List(ctx)
	if err != nil {
		log.Error("Unexpected error", zap.String("operation", "list suppliers"), zap.Error(err))
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respondList(c, suppliers, len(suppliers))
}

// GetSupplier handles getting a supplier by ID.
func (h *SupplierHandlers) GetSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("supplier", "get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondError(c, http.StatusNotFound, models.ErrSupplierNotFound.Error())
	}

	supplier, err := h.supplierService.GetByID(ctx, id)
	if errors.Is(err, models.ErrSupplierNotFound) {
		return respondError(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		log.Error("Unexpected error", zap.String("operation", "get supplier"), zap.String("id", id.String()), zap.Error(err))
		return respondError(c, http.StatusInternalServerError, err.Error())
	}

	return respondItem(c, supplier)
}

// CreateSupplier handles creating a new supplier.
func (h *SupplierHandlers) CreateSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("supplier", "create")

	var req SupplierRequest
	id, err := decodeRPC(c, &req)
	if err != nil {
		return rpcError(c, id, http.StatusBadRequest, "Invalid request format")
	}
	if err := h.validator.Check(&req); err != nil {
		return rpcError(c, id, http.StatusBadRequest, err.Error())
	}

	supplier := req.toModel()
	if err := h.supplierService.Create(ctx, supplier); err != nil {
		return rpcFailure(c, id, log, "create supplier", err)
	}

	return rpcSuccess(c, id, "Supplier created successfully", supplier)
}

// UpdateSupplier handles updating an existing supplier.
func (h *SupplierHandlers) UpdateSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("supplier", "update")

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rpcError(c, nil, http.StatusNotFound, models.ErrSupplierNotFound.Error())
	}

	var req SupplierRequest
	id, err := decodeRPC(c, &req)
	if err != nil {
		return rpcError(c, id, http.StatusBadRequest, "Invalid request format")
	}

	if _, err := h.supplierService.GetByID(ctx, supplierID); err != nil {
		return rpcFailure(c, id, log, "update supplier", err)
	}

	if err := h.validator.Check(&req); err != nil {
		return rpcError(c, id, http.StatusBadRequest, err.Error())
	}

	supplier := req.toModel()
	supplier.ID = supplierID
	if err := h.supplierService.Update(ctx, supplier); err != nil {
		return rpcFailure(c, id, log, "update supplier", err)
	}

	return rpcSuccess(c, id, "Supplier updated successfully", supplier)
}

// DeleteSupplier handles deleting a supplier. Materials referencing it
// are left in place and read back with an empty supplier_name.
func (h *SupplierHandlers) DeleteSupplier(c echo.Context) error {
	ctx := c.Request().Context()
	log := logger.FromEcho(c)
	metrics.RecordOperation("supplier", "delete")

	supplierID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return rpcError(c, nil, http.StatusNotFound, models.ErrSupplierNotFound.Error())
	}

	var discard map[string]interface{}
	id, _ := decodeRPC(c, &discard)

	if err := h.supplierService.Delete(ctx, supplierID); err != nil {
		return rpcFailure(c, id, log, "delete supplier", err)
	}

	return rpcSuccess(c, id, "Supplier deleted successfully", nil)
}
