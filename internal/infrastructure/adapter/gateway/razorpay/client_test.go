package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	gatewayport "github.com/mayankmishra1802/imagify/internal/domain/port/gateway"
)

func TestClient_CreateOrder(t *testing.T) {
	t.Run("places order with basic auth and receipt", func(t *testing.T) {
		var captured orderRequest
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)

			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key_test", user)
			assert.Equal(t, "secret_test", pass)

			assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

			_ = json.NewEncoder(w).Encode(orderResponse{
				ID:       "order_abc",
				Amount:   captured.Amount,
				Currency: captured.Currency,
				Receipt:  captured.Receipt,
				Status:   "created",
			})
		}))
		defer ts.Close()

		client := NewClient(Options{KeyID: "key_test", KeySecret: "secret_test", BaseURL: ts.URL})
		order, err := client.CreateOrder(context.Background(), gatewayport.CreateOrderInput{
			Amount:   83500,
			Currency: "INR",
			Receipt:  "txn-1",
			Notes:    map[string]string{"planId": "Basic"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "order_abc", order.ID)
		assert.Equal(t, int64(83500), order.Amount)
		assert.Equal(t, "txn-1", order.Receipt)
		assert.Equal(t, int64(83500), captured.Amount)
		assert.Equal(t, "Basic", captured.Notes["planId"])
	})

	t.Run("surfaces API error description", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount exceeds maximum"}}`))
		}))
		defer ts.Close()

		client := NewClient(Options{KeyID: "key_test", KeySecret: "secret_test", BaseURL: ts.URL})
		order, err := client.CreateOrder(context.Background(), gatewayport.CreateOrderInput{Amount: 1, Currency: "INR"})

		assert.Nil(t, order)
		assert.ErrorContains(t, err, "amount exceeds maximum")
	})

	t.Run("fails without credentials", func(t *testing.T) {
		client := NewClient(Options{})
		_, err := client.CreateOrder(context.Background(), gatewayport.CreateOrderInput{Amount: 1})
		assert.Error(t, err)
	})
}

func TestClient_FetchOrder(t *testing.T) {
	t.Run("fetches order by id", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/orders/order_abc", r.URL.Path)

			_ = json.NewEncoder(w).Encode(orderResponse{
				ID:       "order_abc",
				Amount:   83500,
				Currency: "INR",
				Receipt:  "txn-1",
				Status:   "paid",
			})
		}))
		defer ts.Close()

		client := NewClient(Options{KeyID: "key_test", KeySecret: "secret_test", BaseURL: ts.URL})
		order, err := client.FetchOrder(context.Background(), "order_abc")

		assert.NoError(t, err)
		assert.True(t, order.IsPaid())
		assert.Equal(t, "txn-1", order.Receipt)
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		client := NewClient(Options{KeyID: "key_test", KeySecret: "secret_test"})
		_, err := client.FetchOrder(context.Background(), "  ")
		assert.Error(t, err)
	})
}
