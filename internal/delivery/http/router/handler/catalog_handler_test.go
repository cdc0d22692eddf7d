package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockUC "truefind/internal/mocks/usecase"
)

func newCatalogContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/firebase/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestCatalogHandler_Summary_MultipleProducts(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(catalogUC)

	catalogUC.EXPECT().
		ProductNames(mock.Anything).
		Return([]string{"Air Jordan 1", "Yeezy 350"}, nil)

	c, rec := newCatalogContext()

	err := handler.Summary(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Products: Air Jordan 1, Yeezy 350", rec.Body.String())
}

func TestCatalogHandler_Summary_SingleProduct(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(catalogUC)

	catalogUC.EXPECT().
		ProductNames(mock.Anything).
		Return([]string{"Air Jordan 1"}, nil)

	c, rec := newCatalogContext()

	err := handler.Summary(c)

	require.NoError(t, err)
	assert.Equal(t, "Product: Air Jordan 1", rec.Body.String())
}

func TestCatalogHandler_Summary_NoProducts(t *testing.T) {
	catalogUC := mockUC.NewMockCatalogUsecase(t)
	handler := NewCatalogHandler(catalogUC)

	catalogUC.EXPECT().
		ProductNames(mock.Anything).
		Return(nil, nil)

	c, rec := newCatalogContext()

	err := handler.Summary(c)

	require.NoError(t, err)
	assert.Equal(t, "no products stored", rec.Body.String())
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	err := HealthCheck(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
