package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"workout-builder-service/internal/adapters/primary/http/dto"
	"workout-builder-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListMuscles(t *testing.T) {
	_, attrRepo, router := setupRouter()
	attrRepo.On("ListValues", mock.Anything, domain.AttributePrimaryMuscle).Return([]*domain.AttributeValue{
		{ID: uuid.New(), Value: "BACK"},
		{ID: uuid.New(), Value: "CHEST"},
	}, nil)
	attrRepo.On("ListValues", mock.Anything, domain.AttributeSecondaryMuscle).Return([]*domain.AttributeValue{
		{ID: uuid.New(), Value: "FOREARMS"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/workout-builder/muscles", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListAttributeValuesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, "BACK", resp.Items[0].Value)
	assert.Equal(t, "FOREARMS", resp.Items[2].Value)
}

func TestListEquipment(t *testing.T) {
	_, attrRepo, router := setupRouter()
	attrRepo.On("ListValues", mock.Anything, domain.AttributeEquipment).Return([]*domain.AttributeValue{}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/workout-builder/equipment", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, w.Body.String())
}

func TestListAttributeValues(t *testing.T) {
	_, attrRepo, router := setupRouter()
	attrRepo.On("ListValues", mock.Anything, domain.AttributeType).Return([]*domain.AttributeValue{
		{ID: uuid.New(), Value: string(domain.TypeStrength)},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/v1/workout-builder/attributes/type/values", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(domain.TypeStrength))
}

func TestListAttributeValues_UnknownName(t *testing.T) {
	_, attrRepo, router := setupRouter()

	req, _ := http.NewRequest("GET", "/api/v1/workout-builder/attributes/color/values", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	attrRepo.AssertNotCalled(t, "ListValues", mock.Anything, mock.Anything)
}
