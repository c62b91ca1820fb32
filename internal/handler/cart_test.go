package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apparel-storefront/internal/cart"
	"apparel-storefront/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCatalogService implements service.CatalogService for testing
type MockCatalogService struct {
	Products []*model.Product
	Err      error
}

func (m *MockCatalogService) ListProducts(_ context.Context) ([]*model.Product, error) {
	return m.Products, m.Err
}

func (m *MockCatalogService) GetProduct(_ context.Context, productID string) (*model.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.ID == productID {
			return p, nil
		}
	}
	return nil, echo.ErrNotFound
}

type noopPersister struct{}

func (noopPersister) Save(_ context.Context, _ string, _ []cart.Line) error {
	return nil
}

func (noopPersister) Load(_ context.Context, _ string) ([]cart.Line, error) {
	return nil, nil
}

func newCartHandler() (*CartHandler, *cart.Store) {
	store := cart.NewStore(noopPersister{}, 0)
	catalog := &MockCatalogService{
		Products: []*model.Product{
			{ID: "tee_classic", Name: "Classic Tee", Price: 2900, Currency: "USD"},
		},
	}
	return NewCartHandler(store, catalog), store
}

func doRequest(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", "session-1")
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}

	require.NoError(t, h(c))
	return rec
}

func TestAddItemResolvesProductServerSide(t *testing.T) {
	h, _ := newCartHandler()

	rec := doRequest(t, h.AddItem, http.MethodPost, "/api/cart/items",
		`{"product_id":"tee_classic","color":"black","size":"M"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var snap cart.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "Classic Tee", snap.Lines[0].Name)
	assert.Equal(t, int64(2900), snap.Lines[0].UnitPrice)
	assert.Equal(t, int64(2900), snap.Total)
}

func TestAddItemUnknownProduct(t *testing.T) {
	h, _ := newCartHandler()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"product_id":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", "session-1")

	err := h.AddItem(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestUpdateItemQuantityZeroRemovesLine(t *testing.T) {
	h, store := newCartHandler()
	ctx := context.Background()

	snap := store.Add(ctx, "session-1", cart.LineInput{ProductID: "tee_classic", Name: "Classic Tee", UnitPrice: 2900})

	rec := doRequest(t, h.UpdateItem, http.MethodPatch, "/api/cart/items/"+snap.Lines[0].ID,
		`{"quantity":0}`, map[string]string{"lineID": snap.Lines[0].ID})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.Snapshot(ctx, "session-1").Lines)
}

func TestGetCartEmpty(t *testing.T) {
	h, _ := newCartHandler()

	rec := doRequest(t, h.GetCart, http.MethodGet, "/api/cart", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var snap cart.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.Count)
}
