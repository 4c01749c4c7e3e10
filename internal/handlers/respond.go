package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListResponse is the plain-JSON envelope for collection reads.
type ListResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   int         `json:"count"`
}

// ItemResponse is the plain-JSON envelope for single-resource reads.
type ItemResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the plain-JSON failure envelope. Unlike writes, reads
// carry the real HTTP status.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func respondList(c echo.Context, data interface{}, count int) error {
	return c.JSON(http.StatusOK, ListResponse{Success: true, Data: data, Count: count})
}

func respondItem(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, ItemResponse{Success: true, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Success: false, Error: message})
}
