package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clinic-cms/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	testProducts := []model.Product{
		{ID: "P001", Name: "Product 1", Price: 10.00, Category: "Herbal", CreatedAt: time.Now()},
		{ID: "P002", Name: "Product 2", Price: 20.00, Category: "Oil", CreatedAt: time.Now()},
	}

	tests := []struct {
		name           string
		queryParams    string
		mockReturn     []model.Product
		mockError      error
		expectedStatus int
		expectService  bool
		category       string
		limit          int
	}{
		{
			name:           "Success without filter",
			queryParams:    "",
			mockReturn:     testProducts,
			expectedStatus: http.StatusOK,
			expectService:  true,
		},
		{
			name:           "Category and limit",
			queryParams:    "?category=Herbal&limit=5",
			mockReturn:     testProducts[:1],
			expectedStatus: http.StatusOK,
			expectService:  true,
			category:       "Herbal",
			limit:          5,
		},
		{
			name:           "Invalid limit parameter",
			queryParams:    "?limit=invalid",
			expectedStatus: http.StatusUnprocessableEntity,
			expectService:  false,
		},
		{
			name:           "Zero limit parameter",
			queryParams:    "?limit=0",
			expectedStatus: http.StatusUnprocessableEntity,
			expectService:  false,
		},
		{
			name:           "Service error",
			queryParams:    "",
			mockError:      errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				mockService.On("List", mock.Anything, tt.category, tt.limit).
					Return(tt.mockReturn, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/products"+tt.queryParams, nil)
			w := httptest.NewRecorder()

			handler.List(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectService {
				mockService.AssertExpectations(t)
			} else {
				mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestProductHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	testProduct := &model.Product{
		ID:        "P001",
		Name:      "Product 1",
		Price:     10.00,
		Category:  "Herbal",
		InStock:   true,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name           string
		productID      string
		mockReturn     *model.Product
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			productID:      "P001",
			mockReturn:     testProduct,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Product not found",
			productID:      "P999",
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeNotFound,
		},
		{
			name:           "Service error",
			productID:      "P001",
			mockError:      errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			mockService.On("GetByID", mock.Anything, tt.productID).
				Return(tt.mockReturn, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/api/products/"+tt.productID, nil)
			req = withURLParam(req, "id", tt.productID)
			w := httptest.NewRecorder()

			handler.GetByID(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedCode != "" {
				var body model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedCode, body.Error)
				if tt.expectedCode == model.ErrCodeInternal {
					assert.NotContains(t, body.Detail, "connection refused")
				}
			} else {
				var body map[string]any
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "P001", body["id"])
				assert.Equal(t, true, body["in_stock"])
				assert.Equal(t, "2024-03-01T10:00:00Z", body["created_at"])
			}

			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		expectService  bool
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			body:           `{"name":"Triphala Churna","category":"Herbal","price":250,"extra":"ignored"}`,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Wrong field type",
			body:           `{"name":"Triphala","price":"cheap"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   model.ErrCodeValidation,
		},
		{
			name:           "Empty body",
			body:           ``,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   model.ErrCodeValidation,
		},
		{
			name:           "Service validation error",
			body:           `{"name":""}`,
			expectService:  true,
			mockError:      model.NewValidationError("name is required"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   model.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)

			if tt.expectService {
				if tt.mockError != nil {
					mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.ProductCreate")).
						Return(nil, tt.mockError)
				} else {
					mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *model.ProductCreate) bool {
						return req.Name != nil && *req.Name == "Triphala Churna" && req.Price != nil && *req.Price == 250
					})).Return(&model.Product{ID: "new-id", Name: "Triphala Churna", InStock: true}, nil)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var body model.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedCode, body.Error)
				assert.NotEmpty(t, body.Detail)
			}
			if !tt.expectService {
				mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ReplaceAndDelete(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Replace passes path id", func(t *testing.T) {
		mockService := new(MockProductService)
		handler := NewProductHandler(mockService, logger)
		mockService.On("Replace", mock.Anything, "P001", mock.AnythingOfType("*model.ProductCreate")).
			Return(&model.Product{ID: "P001"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/products/P001", strings.NewReader(`{"name":"x"}`))
		req = withURLParam(req, "id", "P001")
		w := httptest.NewRecorder()

		handler.Replace(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	tests := []struct {
		name           string
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{name: "Delete success", expectedStatus: http.StatusOK, expectedBody: "Product deleted successfully"},
		{name: "Delete not found", mockError: model.ErrProductNotFound, expectedStatus: http.StatusNotFound, expectedBody: "Product not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProductService)
			handler := NewProductHandler(mockService, logger)
			mockService.On("Delete", mock.Anything, "P001").Return(tt.mockError)

			req := httptest.NewRequest(http.MethodDelete, "/api/products/P001", nil)
			req = withURLParam(req, "id", "P001")
			w := httptest.NewRecorder()

			handler.Delete(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
