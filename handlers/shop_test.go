package handlers

import (
	"errors"
	"net/http"
	"testing"

	"trimly/models"

	"github.com/gin-gonic/gin"
)

type mockShopRepo struct {
	GetByIDFunc func(id string) (*models.Shop, error)
}

func (m *mockShopRepo) GetByID(id string) (*models.Shop, error)                 { return m.GetByIDFunc(id) }
func (m *mockShopRepo) IncrementQueue(shopID string, estimatedWaitTime int) error { return nil }
func (m *mockShopRepo) DecrementQueue(shopID string) error                        { return nil }

func shopRouter(repo *mockShopRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/shops/:id", NewShopHandler(repo).GetShopByID)
	return r
}

func TestGetShopByID(t *testing.T) {
	repo := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) {
		return &models.Shop{ID: id, ShopName: "Fade Factory", CurrentQueueLength: 3, EstimatedWaitTime: 45}, nil
	}}
	w := doJSON(t, shopRouter(repo), http.MethodGet, "/api/shops/shop-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestGetShopByIDNotFound(t *testing.T) {
	repo := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) { return nil, nil }}
	w := doJSON(t, shopRouter(repo), http.MethodGet, "/api/shops/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetShopByIDRepoFailure(t *testing.T) {
	repo := &mockShopRepo{GetByIDFunc: func(id string) (*models.Shop, error) {
		return nil, errors.New("mongo down")
	}}
	w := doJSON(t, shopRouter(repo), http.MethodGet, "/api/shops/shop-1", nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
