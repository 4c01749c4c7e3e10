package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"texmart/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock services
type MockMaterialService struct {
	mock.Mock
}

func (m *MockMaterialService) Create(ctx context.Context, material *models.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialService) GetByID(ctx context.Context, id uuid.UUID) (*models.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Material), args.Error(1)
}

func (m *MockMaterialService) Update(ctx context.Context, material *models.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockMaterialService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterialService) List(ctx context.Context, filter *models.MaterialFilter) ([]*models.Material, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.Material), args.Error(1)
}

func newRequestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func rpcResultOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := decodeBody(t, rec)
	assert.Equal(t, "2.0", body["jsonrpc"])
	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok, "response carries no result object")
	return result
}

func TestListMaterials_PlainEnvelope(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	materials := []*models.Material{
		{ID: uuid.New(), Code: "AB1", Name: "Blue Denim", Type: "jeans", BuyPrice: 120, SupplierID: uuid.New(), SupplierName: "Acme"},
		{ID: uuid.New(), Code: "CO7", Name: "Raw Cotton", Type: "cotton", BuyPrice: 150, SupplierID: uuid.New(), SupplierName: "Acme"},
	}
	svc.On("List", mock.Anything, &models.MaterialFilter{}).Return(materials, nil)

	c, rec := newRequestContext(t, http.MethodGet, "/api/materials", "")
	require.NoError(t, h.ListMaterials(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	data := body["data"].([]interface{})
	first := data[0].(map[string]interface{})
	assert.Equal(t, "AB1", first["material_code"])
	assert.Equal(t, "Acme", first["supplier_name"])
}

func TestListMaterials_TypeFilter(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	svc.On("List", mock.Anything, &models.MaterialFilter{Type: "fabric"}).
		Return([]*models.Material{{Code: "FA2", Type: "fabric"}}, nil)

	c, rec := newRequestContext(t, http.MethodGet, "/api/materials?material_type=fabric", "")
	require.NoError(t, h.ListMaterials(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	svc.AssertExpectations(t)
}

func TestGetMaterial_NotFound(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, models.ErrMaterialNotFound)

	c, rec := newRequestContext(t, http.MethodGet, "/api/materials/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.GetMaterial(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Material not found", body["error"])
}

func TestCreateMaterial_Success(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	supplierID := uuid.New()
	materialID := uuid.New()
	svc.On("Create", mock.Anything, mock.AnythingOfType("*models.Material")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(*models.Material)
			m.ID = materialID
			m.SupplierName = "Acme"
		}).
		Return(nil)

	payload := `{"jsonrpc":"2.0","method":"call","params":{"material_code":"AB1","material_name":"Blue Denim","material_type":"jeans","material_buy_price":120,"supplier_id":"` + supplierID.String() + `"},"id":7}`
	c, rec := newRequestContext(t, http.MethodPost, "/api/materials", payload)
	require.NoError(t, h.CreateMaterial(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
	result := rpcResultOf(t, rec)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Material created successfully", result["message"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, materialID.String(), data["id"])
	assert.Equal(t, "AB1", data["material_code"])
	assert.Equal(t, "Acme", data["supplier_name"])
}

func TestCreateMaterial_ParamsFallback(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	supplierID := uuid.New()
	svc.On("Create", mock.Anything, mock.AnythingOfType("*models.Material")).Return(nil)

	// Bare field set without a JSON-RPC envelope is accepted too.
	payload := `{"material_code":"AB1","material_name":"Blue Denim","material_type":"jeans","material_buy_price":120,"supplier_id":"` + supplierID.String() + `"}`
	c, rec := newRequestContext(t, http.MethodPost, "/api/materials", payload)
	require.NoError(t, h.CreateMaterial(c))

	result := rpcResultOf(t, rec)
	assert.Equal(t, true, result["success"])
	svc.AssertExpectations(t)
}

func TestCreateMaterial_MissingField(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	payload := `{"jsonrpc":"2.0","method":"call","params":{"material_name":"Blue Denim","material_type":"jeans","material_buy_price":120,"supplier_id":"` + uuid.New().String() + `"},"id":1}`
	c, rec := newRequestContext(t, http.MethodPost, "/api/materials", payload)
	require.NoError(t, h.CreateMaterial(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := rpcResultOf(t, rec)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Missing required field: material_code", result["error"])
	assert.Equal(t, float64(400), result["error_code"])
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateMaterial_DuplicateCode(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*models.Material")).
		Return(models.NewConstraintError(models.DuplicateCode))

	payload := `{"jsonrpc":"2.0","method":"call","params":{"material_code":"AB1","material_name":"Blue Denim","material_type":"jeans","material_buy_price":120,"supplier_id":"` + uuid.New().String() + `"},"id":2}`
	c, rec := newRequestContext(t, http.MethodPost, "/api/materials", payload)
	require.NoError(t, h.CreateMaterial(c))

	result := rpcResultOf(t, rec)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, models.MsgDuplicateCode, result["error"])
	assert.Equal(t, float64(400), result["error_code"])
}

func TestCreateMaterial_PriceTooLow(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*models.Material")).
		Return(models.NewConstraintError(models.PriceTooLow))

	payload := `{"jsonrpc":"2.0","method":"call","params":{"material_code":"AB1","material_name":"Blue Denim","material_type":"jeans","material_buy_price":50,"supplier_id":"` + uuid.New().String() + `"},"id":3}`
	c, rec := newRequestContext(t, http.MethodPost, "/api/materials", payload)
	require.NoError(t, h.CreateMaterial(c))

	result := rpcResultOf(t, rec)
	assert.Equal(t, models.MsgPriceTooLow, result["error"])
	assert.Equal(t, float64(400), result["error_code"])
}

func TestUpdateMaterial_NotFound(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, models.ErrMaterialNotFound)

	payload := `{"jsonrpc":"2.0","method":"call","params":{"material_code":"AB1","material_name":"Blue Denim","material_type":"jeans","material_buy_price":120,"supplier_id":"` + uuid.New().String() + `"},"id":4}`
	c, rec := newRequestContext(t, http.MethodPut, "/api/materials/"+id.String(), payload)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.UpdateMaterial(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := rpcResultOf(t, rec)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, "Material not found", result["error"])
	assert.Equal(t, float64(404), result["error_code"])
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateMaterial_Success(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	id := uuid.New()
	supplierID := uuid.New()
	svc.On("GetByID", mock.Anything, id).
		Return(&models.Material{ID: id, Code: "AB1"}, nil)
	svc.On("Update", mock.Anything, mock.AnythingOfType("*models.Material")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(*models.Material)
			assert.Equal(t, id, m.ID)
			m.SupplierName = "Acme"
		}).
		Return(nil)

	payload := `{"jsonrpc":"2.0","method":"call","params":{"material_code":"AB2","material_name":"Black Denim","material_type":"jeans","material_buy_price":140,"supplier_id":"` + supplierID.String() + `"},"id":5}`
	c, rec := newRequestContext(t, http.MethodPut, "/api/materials/"+id.String(), payload)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.UpdateMaterial(c))

	result := rpcResultOf(t, rec)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Material updated successfully", result["message"])
	data := result["data"].(map[string]interface{})
	assert.Equal(t, "AB2", data["material_code"])
}

func TestDeleteMaterial_Success(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	c, rec := newRequestContext(t, http.MethodDelete, "/api/materials/"+id.String(), `{"jsonrpc":"2.0","method":"call","params":{},"id":6}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.DeleteMaterial(c))

	result := rpcResultOf(t, rec)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Material deleted successfully", result["message"])
}

func TestDeleteMaterial_NotFound(t *testing.T) {
	svc := new(MockMaterialService)
	h := NewMaterialHandlers(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(models.ErrMaterialNotFound)

	c, rec := newRequestContext(t, http.MethodDelete, "/api/materials/"+id.String(), `{"jsonrpc":"2.0","method":"call","params":{},"id":8}`)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	require.NoError(t, h.DeleteMaterial(c))

	result := rpcResultOf(t, rec)
	assert.Equal(t, false, result["success"])
	assert.Equal(t, float64(404), result["error_code"])
}
