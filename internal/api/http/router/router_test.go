package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/server/internal/api/http/handler"
	"github.com/storefront/server/internal/model"
	"github.com/storefront/server/internal/repository/inmemory"
	"github.com/storefront/server/internal/service"
	"github.com/storefront/server/internal/testutil"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func newTestRouter(pingErr error) http.Handler {
	log := testutil.MakeNoopLogger()
	store := inmemory.NewStore()

	userService := service.NewUser(store.Users(), log)
	productService := service.NewProduct(store.Products(), log)
	orderService := service.NewOrder(store.Orders(), store.Users(), log)

	r := New(
		handler.NewUser(userService, log),
		handler.NewProduct(productService, log),
		handler.NewOrder(orderService, log),
		handler.NewHealth(stubPinger{err: pingErr}, time.Second, log),
		log,
		5*time.Second,
	)
	return r.Register()
}

func doJSON(t *testing.T, mux http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := doJSON(t, newTestRouter(nil), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","db":"ok"}`, rec.Body.String())

	rec = doJSON(t, newTestRouter(errors.New("down")), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","db":"error"}`, rec.Body.String())
}

func TestRouter_UserOrderLifecycle(t *testing.T) {
	mux := newTestRouter(nil)

	// create a user
	rec := doJSON(t, mux, http.MethodPost, "/users", `{"email":"a@x.com","name":"A"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))

	// duplicate email conflicts
	rec = doJSON(t, mux, http.MethodPost, "/users", `{"email":"a@x.com","name":"B"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	// an order referencing the user
	rec = doJSON(t, mux, http.MethodPost, "/orders", `{"user_id":"`+user.ID.String()+`","status":"pending","total_cents":500}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var order model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	// user delete is rejected while the order exists
	rec = doJSON(t, mux, http.MethodDelete, "/users/"+user.ID.String(), "")
	require.Equal(t, http.StatusConflict, rec.Code)

	// delete the order, then the user
	rec = doJSON(t, mux, http.MethodDelete, "/orders/"+order.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, mux, http.MethodDelete, "/users/"+user.ID.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	// user is gone
	rec = doJSON(t, mux, http.MethodGet, "/users/"+user.ID.String(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_OrderForUnknownUserIsBadRequest(t *testing.T) {
	mux := newTestRouter(nil)

	rec := doJSON(t, mux, http.MethodPost, "/orders", `{"user_id":"550e8400-e29b-41d4-a716-446655440000","status":"pending","total_cents":500}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user_id", body["field"])
}

func TestRouter_ProductRoutes(t *testing.T) {
	mux := newTestRouter(nil)

	rec := doJSON(t, mux, http.MethodPost, "/products", `{"sku":"SKU-1","name":"Widget","price_cents":1999}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var product model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))

	rec = doJSON(t, mux, http.MethodPost, "/products", `{"sku":"SKU-1","name":"Clone","price_cents":1}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, mux, http.MethodPost, "/products", `{"sku":"SKU-2","name":"Gadget","price_cents":-5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, mux, http.MethodPut, "/products/"+product.ID.String(), `{"price_cents":2999}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, mux, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, int64(2999), products[0].PriceCents)
}
