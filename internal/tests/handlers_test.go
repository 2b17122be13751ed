package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "github.com/2Ricky2/canteenpay/internal/api/http"
	"github.com/2Ricky2/canteenpay/internal/domain"
	"github.com/2Ricky2/canteenpay/internal/mocks"
	"github.com/2Ricky2/canteenpay/internal/service"
)

type handlerMocks struct {
	accounts  *mocks.AccountServiceInterface
	menu      *mocks.MenuServiceInterface
	orders    *mocks.OrderServiceInterface
	analytics *mocks.AnalyticsServiceInterface
}

func setupTestRouter(t *testing.T) (*mux.Router, handlerMocks) {
	m := handlerMocks{
		accounts:  mocks.NewAccountServiceInterface(t),
		menu:      mocks.NewMenuServiceInterface(t),
		orders:    mocks.NewOrderServiceInterface(t),
		analytics: mocks.NewAnalyticsServiceInterface(t),
	}
	handler := httpapi.NewHandler(m.accounts, m.menu, m.orders, m.analytics, t.TempDir())
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func asAdmin(m handlerMocks) {
	m.accounts.On("Session", mock.Anything, "admin-token").
		Return(&domain.User{ID: 1, Role: domain.RoleAdmin}, nil)
}

func TestHandler_Signup(t *testing.T) {
	tests := []struct {
		name            string
		payload         string
		prepareMocks    func(m handlerMocks)
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:    "success",
			payload: `{"user_name":"Ann","user_email":"ann@mail.com","user_pass":"secret"}`,
			prepareMocks: func(m handlerMocks) {
				m.accounts.On("Signup", "Ann", "ann@mail.com", "secret").Return(nil).Once()
			},
			expectedSuccess: true,
			expectedMessage: "User created successfully",
		},
		{
			name:    "duplicate_email",
			payload: `{"user_name":"Ann","user_email":"taken@mail.com","user_pass":"secret"}`,
			prepareMocks: func(m handlerMocks) {
				m.accounts.On("Signup", "Ann", "taken@mail.com", "secret").Return(service.ErrEmailTaken).Once()
			},
			expectedSuccess: false,
			expectedMessage: "Email already exists",
		},
		{
			name:    "missing_fields",
			payload: `{"user_name":"","user_email":"","user_pass":""}`,
			prepareMocks: func(m handlerMocks) {
				m.accounts.On("Signup", "", "", "").Return(service.ErrMissingFields).Once()
			},
			expectedSuccess: false,
			expectedMessage: "All fields required",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			testCase.prepareMocks(m)

			req := httptest.NewRequest("POST", "/signup", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, testCase.expectedSuccess, body["success"])
			assert.Equal(t, testCase.expectedMessage, body["message"])
		})
	}
}

func TestHandler_LoginNeverReturnsPassword(t *testing.T) {
	router, m := setupTestRouter(t)

	user := &domain.User{ID: 1, Name: "Ann", Email: "ann@mail.com", Role: domain.RoleUser, Wallet: 25.50}
	m.accounts.On("Login", mock.Anything, "ann@mail.com", "secret").
		Return(user, "token-123", nil).Once()

	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(`{"user_email":"ann@mail.com","user_pass":"secret"}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"token":"token-123"`)
	assert.Contains(t, recorder.Body.String(), `"user_email":"ann@mail.com"`)
	assert.NotContains(t, recorder.Body.String(), "user_pass")
	assert.NotContains(t, recorder.Body.String(), "secret")
}

func TestHandler_PlaceOrder(t *testing.T) {
	tests := []struct {
		name            string
		serviceError    error
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:            "success",
			serviceError:    nil,
			expectedSuccess: true,
			expectedMessage: "Order placed successfully!",
		},
		{
			name:            "out_of_stock",
			serviceError:    service.ErrOutOfStock,
			expectedSuccess: false,
			expectedMessage: "Out of stock",
		},
		{
			name:            "food_not_found",
			serviceError:    service.ErrItemNotFound,
			expectedSuccess: false,
			expectedMessage: "Food not found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)

			var order *domain.Order
			if testCase.serviceError == nil {
				order = &domain.Order{ID: 1, UserID: 2, MenuID: 3}
			}
			m.orders.On("Place", mock.Anything, 2, 3).Return(order, testCase.serviceError).Once()

			req := httptest.NewRequest("POST", "/order", bytes.NewBufferString(`{"user_id":2,"menu_id":3}`))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, testCase.expectedSuccess, body["success"])
			assert.Equal(t, testCase.expectedMessage, body["message"])
		})
	}
}

func TestHandler_GetMenu(t *testing.T) {
	router, m := setupTestRouter(t)

	m.menu.On("List").Return([]domain.MenuItem{
		{ID: 1, Name: "Rice Meal", Category: domain.CategoryLunch, Price: 50, Quantity: 3},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/menu", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Rice Meal"`)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
}

func TestHandler_GetActiveOrders(t *testing.T) {
	router, m := setupTestRouter(t)

	m.orders.On("ActiveOrders", 7).Return([]domain.OrderView{
		{ID: 3, Status: domain.StatusActive, Quantity: 1, TotalPrice: 50, FoodName: "Rice Meal", Price: 50},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/orders/7", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"food_name":"Rice Meal"`)
}

func TestHandler_AdminGuard(t *testing.T) {
	t.Run("missing_token", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		req := httptest.NewRequest("GET", "/users", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"success":false`)
	})

	t.Run("non_admin_session", func(t *testing.T) {
		router, m := setupTestRouter(t)

		m.accounts.On("Session", mock.Anything, "user-token").
			Return(&domain.User{ID: 2, Role: domain.RoleUser}, nil).Once()

		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("X-Session-Token", "user-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin_session", func(t *testing.T) {
		router, m := setupTestRouter(t)
		asAdmin(m)

		m.accounts.On("ListUsers").Return([]domain.User{
			{ID: 1, Name: "Root", Email: "root@mail.com", Role: domain.RoleAdmin},
		}, nil).Once()

		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("X-Session-Token", "admin-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"root@mail.com"`)
	})
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name            string
		payload         string
		serviceError    error
		expectedMessage string
	}{
		{
			name:            "success",
			payload:         `{"status":"Paid"}`,
			serviceError:    nil,
			expectedMessage: "Order marked as Paid",
		},
		{
			name:            "invalid_status",
			payload:         `{"status":"Shipped"}`,
			serviceError:    service.ErrInvalidStatus,
			expectedMessage: "Invalid status value",
		},
		{
			name:            "missing_status",
			payload:         `{}`,
			serviceError:    service.ErrMissingFields,
			expectedMessage: "Missing status",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			router, m := setupTestRouter(t)
			asAdmin(m)

			m.orders.On("UpdateStatus", mock.Anything, 5, mock.AnythingOfType("string")).
				Return(testCase.serviceError).Once()

			req := httptest.NewRequest("PUT", "/orders/5", bytes.NewBufferString(testCase.payload))
			req.Header.Set("X-Session-Token", "admin-token")
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusOK, recorder.Code)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, testCase.expectedMessage, body["message"])
		})
	}
}

func TestHandler_GetPopular(t *testing.T) {
	router, m := setupTestRouter(t)

	m.analytics.On("Popular", mock.Anything, 0).Return([]domain.PopularItem{
		{MenuID: 1, Name: "Rice Meal", Category: domain.CategoryLunch, Score: 12},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/analytics/popular", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"Rice Meal"`)
}
