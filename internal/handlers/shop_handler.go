package handlers

import (
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/catalog"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	store *catalog.ShopStore
}

func NewShopHandler(store *catalog.ShopStore) *ShopHandler {
	return &ShopHandler{store: store}
}

// Add: GET /add_shop
func (h *ShopHandler) Add(c *gin.Context) {
	shop, err := h.store.Create(catalog.ShopInput{
		Name:    c.Query("name"),
		Address: c.Query("address"),
		Phone:   c.Query("phone"),
		Email:   c.Query("email"),
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Shop '" + shop.Name + "' added successfully",
		"shop":    shop,
	})
}

// Edit: GET /shop/edit
func (h *ShopHandler) Edit(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	shop, err := h.store.Update(id, catalog.ShopPatch{
		Name:    optString(c, "name"),
		Address: optString(c, "address"),
		Phone:   optString(c, "phone"),
		Email:   optString(c, "email"),
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Shop '" + shop.Name + "' updated successfully",
		"shop":    shop,
	})
}

// Delete: GET /shop/delete
func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shop deleted successfully"})
}

// View: GET /shop/view
func (h *ShopHandler) View(c *gin.Context) {
	shops, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"shops": shops})
}
