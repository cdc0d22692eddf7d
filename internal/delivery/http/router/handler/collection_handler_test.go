package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"truefind/internal/delivery/http/validator"
	"truefind/internal/domain/entity"
	domainerrors "truefind/internal/domain/errors"
	mockUC "truefind/internal/mocks/usecase"
	"truefind/internal/usecase"
)

func newCollectionContext(t *testing.T, method, body string, principal *entity.UserProfile) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/verified/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set("principal", principal)
	}

	return c, rec
}

func TestCollectionHandler_List_ReturnsBareArray(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	principal := &entity.UserProfile{ID: uuid.New(), UID: "firebase-uid-1"}
	entries := []*entity.CollectionEntry{
		{
			UserID: principal.ID,
			Kind:   entity.CollectionVerified,
			Product: &entity.Product{
				Name:               "Air Jordan 1",
				Platform:           "StockX",
				Price:              "250.00",
				VerificationStatus: "verified",
				ImageURL:           "https://example.com/aj1.png",
			},
		},
	}

	collectionUC.EXPECT().
		List(mock.Anything, principal.ID, entity.CollectionVerified).
		Return(entries, nil)

	c, rec := newCollectionContext(t, http.MethodGet, "", principal)

	err := handler.List(entity.CollectionVerified)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"product": {
			"name": "Air Jordan 1",
			"platform": "StockX",
			"price": "250.00",
			"verification_status": "verified",
			"image_url": "https://example.com/aj1.png"
		}
	}]`, rec.Body.String())
}

func TestCollectionHandler_List_EmptyCollectionIsEmptyArray(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	principal := &entity.UserProfile{ID: uuid.New(), UID: "firebase-uid-1"}

	collectionUC.EXPECT().
		List(mock.Anything, principal.ID, entity.CollectionWatchlist).
		Return(nil, nil)

	c, rec := newCollectionContext(t, http.MethodGet, "", principal)

	err := handler.List(entity.CollectionWatchlist)(c)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCollectionHandler_List_NoPrincipal(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	c, _ := newCollectionContext(t, http.MethodGet, "", nil)

	err := handler.List(entity.CollectionVerified)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestCollectionHandler_Add_Verified(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	principal := &entity.UserProfile{ID: uuid.New(), UID: "firebase-uid-1"}

	collectionUC.EXPECT().
		Add(mock.Anything, principal.ID, entity.CollectionVerified, &usecase.AddProductInput{
			Name:               "Air Jordan 1",
			Platform:           "StockX",
			Price:              "250.00",
			VerificationStatus: "verified",
			ImageURL:           "https://example.com/aj1.png",
		}).
		Return(nil)

	body := `{
		"name": "Air Jordan 1",
		"platform": "StockX",
		"price": "250.00",
		"verification_status": "verified",
		"image_url": "https://example.com/aj1.png"
	}`
	c, rec := newCollectionContext(t, http.MethodPost, body, principal)

	err := handler.Add(entity.CollectionVerified)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "Product added to verified list"}`, rec.Body.String())
}

func TestCollectionHandler_Add_WatchlistStatus(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	principal := &entity.UserProfile{ID: uuid.New(), UID: "firebase-uid-1"}

	collectionUC.EXPECT().
		Add(mock.Anything, principal.ID, entity.CollectionWatchlist, mock.AnythingOfType("*usecase.AddProductInput")).
		Return(nil)

	body := `{
		"name": "Air Jordan 1",
		"platform": "StockX",
		"price": "250.00",
		"verification_status": "verified",
		"image_url": "https://example.com/aj1.png"
	}`
	c, rec := newCollectionContext(t, http.MethodPost, body, principal)

	err := handler.Add(entity.CollectionWatchlist)(c)

	require.NoError(t, err)
	assert.JSONEq(t, `{"status": "Product added to watchlist"}`, rec.Body.String())
}

func TestCollectionHandler_Add_MissingFieldFailsValidation(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	principal := &entity.UserProfile{ID: uuid.New(), UID: "firebase-uid-1"}

	// No platform: the payload must fail before the usecase is touched.
	body := `{
		"name": "Air Jordan 1",
		"price": "250.00",
		"verification_status": "verified",
		"image_url": "https://example.com/aj1.png"
	}`
	c, _ := newCollectionContext(t, http.MethodPost, body, principal)

	err := handler.Add(entity.CollectionVerified)(c)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	collectionUC.AssertNotCalled(t, "Add")
}

func TestCollectionHandler_Add_NoPrincipal(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	handler := NewCollectionHandler(collectionUC, newTestLogger())

	c, _ := newCollectionContext(t, http.MethodPost, `{}`, nil)

	err := handler.Add(entity.CollectionVerified)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	collectionUC.AssertNotCalled(t, "Add")
}
