package handlers

import (
	"net/http"

	shopRepo "trimly/database/repository/shop"
	"trimly/utils"

	"github.com/gin-gonic/gin"
)

// ShopHandler exposes the shop read path the booking flow depends on.
type ShopHandler struct {
	Repo shopRepo.ShopRepository
}

func NewShopHandler(repo shopRepo.ShopRepository) *ShopHandler {
	return &ShopHandler{Repo: repo}
}

// GetShopByID handles GET /api/shops/:id. Public: customers browse shops and
// their live queue state before booking.
func (h *ShopHandler) GetShopByID(c *gin.Context) {
	shop, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load shop", "")
		return
	}
	if shop == nil {
		utils.JSONError(c, http.StatusNotFound, "Shop not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop": shop})
}
