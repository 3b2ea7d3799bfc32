package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/streamly-api/internal/domain"
	"github.com/phrazzld/streamly-api/internal/service"
	"github.com/phrazzld/streamly-api/internal/store/memory"
)

const testCard = "4532123456789012"

// newPaymentTestServer wires a payment handler onto a router with the
// production route shapes. The user store is seeded with one user holding
// testCard so payments against it succeed.
func newPaymentTestServer(t *testing.T) http.Handler {
	t.Helper()

	users := memory.NewUserStore()
	err := users.Create(context.Background(), &domain.User{
		Username: "alicesmith",
		CCNumber: testCard,
	})
	require.NoError(t, err)

	paymentService := service.NewPaymentService(memory.NewPaymentStore(), users)
	handler := NewPaymentHandler(paymentService)

	r := chi.NewRouter()
	r.Get("/payments/getAll", handler.GetAll)
	r.Get("/payments/getPaymentById/{id}", handler.GetByID)
	r.Post("/payments/create", handler.Create)
	r.Delete("/payments/delete/{id}", handler.Delete)

	return r
}

func TestCreatePaymentEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		payload     map[string]interface{}
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "valid payment",
			payload:    map[string]interface{}{"ccNumber": testCard, "amount": 250},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed card",
			payload:     map[string]interface{}{"ccNumber": "1234", "amount": 250},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Card number must be numeric and 16 digits long",
		},
		{
			name:        "unregistered card",
			payload:     map[string]interface{}{"ccNumber": "9999888877776666", "amount": 250},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Card number is not registered to any user",
		},
		{
			name:        "amount too small",
			payload:     map[string]interface{}{"ccNumber": testCard, "amount": 99},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Amount must be exactly 3 digits (100-999)",
		},
		{
			name:        "amount too large",
			payload:     map[string]interface{}{"ccNumber": testCard, "amount": 1000},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Amount must be exactly 3 digits (100-999)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newPaymentTestServer(t)

			w := postJSON(t, router, "/payments/create", tt.payload)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantMessage != "" {
				var resp struct {
					Message string `json:"message"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantMessage, resp.Message)
			}
		})
	}
}

func TestCreatePaymentEndpointResponseBody(t *testing.T) {
	t.Parallel()

	router := newPaymentTestServer(t)

	w := postJSON(t, router, "/payments/create", map[string]interface{}{
		"ccNumber": testCard,
		"amount":   250,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp PaymentCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Payment created successfully", resp.Message)
	assert.Equal(t, int64(1), resp.Payment.ID)
	assert.Equal(t, 250, resp.Payment.Amount)
	assert.Equal(t, testCard, resp.Payment.CCNumber)
	assert.NotEmpty(t, resp.Payment.Date)
}

func TestGetAllPaymentsEndpoint(t *testing.T) {
	t.Parallel()

	router := newPaymentTestServer(t)

	for _, amount := range []int{100, 200} {
		w := postJSON(t, router, "/payments/create", map[string]interface{}{
			"ccNumber": testCard,
			"amount":   amount,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/payments/getAll", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PaymentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Payments, 2)
	assert.Equal(t, int64(1), resp.Payments[0].ID)
	assert.Equal(t, int64(2), resp.Payments[1].ID)
}

func TestGetPaymentByIDEndpoint(t *testing.T) {
	t.Parallel()

	router := newPaymentTestServer(t)

	w := postJSON(t, router, "/payments/create", map[string]interface{}{
		"ccNumber": testCard,
		"amount":   300,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/payments/getPaymentById/1", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)
	var resp PaymentEnvelope
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	assert.Equal(t, 300, resp.Payment.Amount)

	for _, path := range []string{"/payments/getPaymentById/42", "/payments/getPaymentById/abc"} {
		req = httptest.NewRequest(http.MethodGet, path, nil)
		w3 := httptest.NewRecorder()
		router.ServeHTTP(w3, req)

		assert.Equal(t, http.StatusNotFound, w3.Code)
		assert.Contains(t, w3.Body.String(), "Payment not found")
	}
}

func TestDeletePaymentEndpoint(t *testing.T) {
	t.Parallel()

	router := newPaymentTestServer(t)

	w := postJSON(t, router, "/payments/create", map[string]interface{}{
		"ccNumber": testCard,
		"amount":   300,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/payments/delete/1", nil)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Payment deleted successfully")

	req = httptest.NewRequest(http.MethodDelete, "/payments/delete/1", nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)

	assert.Equal(t, http.StatusNotFound, w3.Code)
	assert.Contains(t, w3.Body.String(), "Payment not found")
}
