package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"Stocked/internal/models"
	"Stocked/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBoxTypeService struct {
	mock.Mock
}

func (m *MockBoxTypeService) CreateBoxType(name string, quantity int, cost decimal.Decimal, minThreshold int) (*models.BoxType, error) {
	args := m.Called(name, quantity, cost, minThreshold)
	box, ok := args.Get(0).(*models.BoxType)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxTypeService) GetBoxTypes() ([]models.BoxType, error) {
	args := m.Called()
	return args.Get(0).([]models.BoxType), args.Error(1)
}

func (m *MockBoxTypeService) GetBoxTypeByID(id string) (*models.BoxType, error) {
	args := m.Called(id)
	box, ok := args.Get(0).(*models.BoxType)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxTypeService) UpdateBoxType(id string, patch services.BoxTypePatch) (*models.BoxType, error) {
	args := m.Called(id, patch)
	box, ok := args.Get(0).(*models.BoxType)
	if !ok {
		return nil, args.Error(1)
	}
	return box, args.Error(1)
}

func (m *MockBoxTypeService) DeleteBoxType(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) PredictBox(box *models.BoxType) (*services.Prediction, error) {
	args := m.Called(box)
	prediction, ok := args.Get(0).(*services.Prediction)
	if !ok {
		return nil, args.Error(1)
	}
	return prediction, args.Error(1)
}

func (m *MockPredictionService) PredictAll(boxes []models.BoxType) (map[string]*services.Prediction, error) {
	args := m.Called(boxes)
	return args.Get(0).(map[string]*services.Prediction), args.Error(1)
}

func newBoxTestApp(service *MockBoxTypeService, prediction *MockPredictionService) *fiber.App {
	app := fiber.New()
	handler := NewBoxHandler(service, prediction)
	app.Get("/boxes", handler.ListBoxes)
	app.Post("/boxes", handler.CreateBox)
	app.Get("/boxes/:id", handler.GetBoxByID)
	app.Put("/boxes/:id", handler.UpdateBox)
	app.Delete("/boxes/:id", handler.DeleteBox)
	return app
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBoxHandler_CreateBox(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	box := &models.BoxType{BaseModel: models.BaseModel{ID: "box-1"}, Name: "Small Box", Quantity: 100, MinThreshold: 10}
	mockService.On("CreateBoxType", "Small Box", 100, mock.AnythingOfType("decimal.Decimal"), 10).Return(box, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/boxes", map[string]interface{}{
		"name":          "Small Box",
		"quantity":      100,
		"cost":          2.5,
		"min_threshold": 10,
	}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_CreateBox_ValidationError(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	mockService.On("CreateBoxType", "", 0, mock.AnythingOfType("decimal.Decimal"), 0).
		Return(nil, &services.ValidationError{Message: "name must not be empty"})

	resp, err := app.Test(jsonRequest(http.MethodPost, "/boxes", map[string]interface{}{"name": ""}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBoxHandler_GetBoxByID_WithPrediction(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	box := &models.BoxType{BaseModel: models.BaseModel{ID: "box-1"}, Name: "Small Box", Quantity: 100, MinThreshold: 10}
	days := 9
	mockService.On("GetBoxTypeByID", "box-1").Return(box, nil)
	mockPrediction.On("PredictBox", box).Return(&services.Prediction{
		AvgDailyUsage:    10.0 / 3.0,
		DaysUntilEmpty:   &days,
		DaysUntilReorder: &days,
		Status:           services.StatusWarning,
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boxes/box-1", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "Small Box", payload["name"])
	assert.Equal(t, 3.33, payload["avg_daily_usage"])
	assert.Equal(t, float64(9), payload["days_until_empty"])
	assert.Equal(t, "warning", payload["status"])
}

func TestBoxHandler_GetBoxByID_NotFound(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	mockService.On("GetBoxTypeByID", "missing").Return(nil, services.ErrNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boxes/missing", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBoxHandler_UpdateBox_PartialBody(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	box := &models.BoxType{BaseModel: models.BaseModel{ID: "box-1"}, Name: "Renamed", Quantity: 100}
	mockService.On("UpdateBoxType", "box-1", mock.MatchedBy(func(patch services.BoxTypePatch) bool {
		return patch.Name != nil && *patch.Name == "Renamed" &&
			patch.Quantity == nil && patch.Cost == nil && patch.MinThreshold == nil
	})).Return(box, nil)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/boxes/box-1", map[string]interface{}{"name": "Renamed"}))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestBoxHandler_DeleteBox(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	mockService.On("DeleteBoxType", "box-1").Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/boxes/box-1", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestBoxHandler_DeleteBox_NotFound(t *testing.T) {
	mockService := new(MockBoxTypeService)
	mockPrediction := new(MockPredictionService)
	app := newBoxTestApp(mockService, mockPrediction)

	mockService.On("DeleteBoxType", "missing").Return(services.ErrNotFound)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/boxes/missing", nil))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
