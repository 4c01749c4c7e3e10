package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"texmart/internal/models"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// rpcRequest is the JSON-RPC 2.0 envelope accepted by write endpoints.
type rpcRequest struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

// rpcResponse is the transport wrapper around a write result. Writes are
// always transport-success: failures travel inside the result payload.
type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result"`
}

// WriteResult is the payload placed in the JSON-RPC result field.
// error_code mirrors HTTP semantics (400/404/500) but rides inside the
// payload rather than the transport status.
type WriteResult struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorCode int         `json:"error_code,omitempty"`
}

// decodeRPC reads a write payload. The field set comes from params when
// the JSON-RPC envelope carries one; a bare top-level object is accepted
// as the field set directly, a compatibility fallback older clients rely
// on. The request id is returned for echoing back.
func decodeRPC(c echo.Context, dst interface{}) (json.RawMessage, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}

	var req rpcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	payload := body
	if len(req.Params) > 0 && string(req.Params) != "null" {
		payload = req.Params
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return req.ID, err
	}
	return req.ID, nil
}

func rpcResult(c echo.Context, id json.RawMessage, result WriteResult) error {
	if len(id) == 0 {
		id = json.RawMessage("null")
	}
	return c.JSON(http.StatusOK, rpcResponse{
		Jsonrpc: "2.0",
		ID:      id,
		Result:  result,
	})
}

func rpcSuccess(c echo.Context, id json.RawMessage, message string, data interface{}) error {
	return rpcResult(c, id, WriteResult{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func rpcError(c echo.Context, id json.RawMessage, code int, message string) error {
	return rpcResult(c, id, WriteResult{
		Success:   false,
		Error:     message,
		ErrorCode: code,
	})
}

// rpcFailure maps a store error to the payload error_code. Domain
// failures pass their message through unchanged; anything unexpected is
// logged with operation context and surfaces as a 500-equivalent.
func rpcFailure(c echo.Context, id json.RawMessage, log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, models.ErrMaterialNotFound), errors.Is(err, models.ErrSupplierNotFound):
		return rpcError(c, id, http.StatusNotFound, err.Error())
	case models.IsDomainError(err):
		return rpcError(c, id, http.StatusBadRequest, err.Error())
	}
	log.Error("Unexpected error", zap.String("operation", op), zap.Error(err))
	return rpcError(c, id, http.StatusInternalServerError, err.Error())
}
