package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
)

func issueToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{"id": float64(7), "name": "Ada Okoro", "role": "user"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func confirmRouter(backend *services.BackendClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares.Identify())
	router.POST("/payments/confirm/:orderId", ConfirmPayment(backend))
	return router
}

func TestConfirmPayment(t *testing.T) {
	original := captureDelay
	captureDelay = 0
	defer func() { captureDelay = original }()

	var updatedStatus string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/payments/order/5":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"payment_id":9,"order_id":5,"amount":2598,"status":"pending"}`))
		case r.Method == http.MethodPut && r.URL.Path == "/payments/9":
			var body struct {
				Status string `json:"status"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			updatedStatus = body.Status
			w.Write([]byte(`{"message":"updated"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	router := confirmRouter(services.NewBackendClient(srv.URL))
	token := issueToken(t)

	t.Run("card capture marks paid with a reference", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payments/confirm/5", strings.NewReader(`{"payment_method":"CARD"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Paid", updatedStatus)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Paid", body["status"])
		assert.NotEmpty(t, body["transaction_ref"])
	})

	t.Run("cash on delivery skips capture", func(t *testing.T) {
		updatedStatus = ""
		req := httptest.NewRequest(http.MethodPost, "/payments/confirm/5", strings.NewReader(`{"payment_method":"COD"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, updatedStatus)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/payments/confirm/5", strings.NewReader(`{"payment_method":"CARD"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
