package handlers

import (
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/catalog"

	"github.com/gin-gonic/gin"
)

// SellingProductHandler: /selling/* routes.
type SellingProductHandler struct {
	store *catalog.SellingProductStore
}

func NewSellingProductHandler(store *catalog.SellingProductStore) *SellingProductHandler {
	return &SellingProductHandler{store: store}
}

func (h *SellingProductHandler) Add(c *gin.Context) {
	price, err := reqFloat(c, "price")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	quantity, err := reqInt(c, "quantity")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	p, err := h.store.Create(catalog.SellingProductInput{
		Name:     c.Query("name"),
		Type:     c.Query("type"),
		Price:    price,
		Quantity: quantity,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Selling product '" + p.Name + "' added successfully",
		"product": p,
	})
}

func (h *SellingProductHandler) Edit(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	patch := catalog.SellingProductPatch{
		Name: optString(c, "name"),
		Type: optString(c, "type"),
	}
	if patch.Price, err = optFloat(c, "price"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.Quantity, err = optInt(c, "quantity"); err != nil {
		apperr.Abort(c, err)
		return
	}

	p, err := h.store.Update(id, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Selling product '" + p.Name + "' updated successfully",
		"product": p,
	})
}

func (h *SellingProductHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Selling product deleted successfully"})
}

func (h *SellingProductHandler) View(c *gin.Context) {
	ps, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selling_products": ps})
}

// RepairingProductHandler: /repairing/* routes.
type RepairingProductHandler struct {
	store *catalog.RepairingProductStore
}

func NewRepairingProductHandler(store *catalog.RepairingProductStore) *RepairingProductHandler {
	return &RepairingProductHandler{store: store}
}

func (h *RepairingProductHandler) Add(c *gin.Context) {
	quantity, err := reqInt(c, "quantity")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	p, err := h.store.Create(catalog.RepairingProductInput{
		Name:     c.Query("name"),
		Type:     c.Query("type"),
		Company:  c.Query("company"),
		Model:    c.Query("model"),
		Quantity: quantity,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Repairing product '" + p.Name + "' added successfully",
		"product": p,
	})
}

func (h *RepairingProductHandler) Edit(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	patch := catalog.RepairingProductPatch{
		Name:    optString(c, "name"),
		Type:    optString(c, "type"),
		Company: optString(c, "company"),
		Model:   optString(c, "model"),
	}
	if patch.Quantity, err = optInt(c, "quantity"); err != nil {
		apperr.Abort(c, err)
		return
	}

	p, err := h.store.Update(id, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Repairing product '" + p.Name + "' updated successfully",
		"product": p,
	})
}

func (h *RepairingProductHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repairing product deleted successfully"})
}

func (h *RepairingProductHandler) View(c *gin.Context) {
	ps, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repairing_products": ps})
}
