package handlers

import (
	"net/http"

	"go-repairshop/internal/apperr"
	"go-repairshop/internal/catalog"

	"github.com/gin-gonic/gin"
)

// AccessoryHandler: /accessory/* routes. One route per operation; the old
// action=... multiplexing is gone.
type AccessoryHandler struct {
	store *catalog.AccessoryStore
}

func NewAccessoryHandler(store *catalog.AccessoryStore) *AccessoryHandler {
	return &AccessoryHandler{store: store}
}

func (h *AccessoryHandler) Add(c *gin.Context) {
	initialStock, err := reqInt(c, "initial_stock")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	minimumStock, err := reqInt(c, "minimum_stock")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	unitPrice, err := reqFloat(c, "unit_price")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	acc, err := h.store.Create(catalog.AccessoryInput{
		Name:         c.Query("name"),
		Type:         c.Query("type"),
		Company:      c.Query("company"),
		Category:     c.Query("category"),
		InitialStock: initialStock,
		MinimumStock: minimumStock,
		UnitPrice:    unitPrice,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Accessory '" + acc.Name + "' added successfully",
		"accessory": acc,
	})
}

func (h *AccessoryHandler) Update(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	patch := catalog.AccessoryPatch{
		Name:     optString(c, "name"),
		Type:     optString(c, "type"),
		Company:  optString(c, "company"),
		Category: optString(c, "category"),
	}
	if patch.InitialStock, err = optInt(c, "initial_stock"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.MinimumStock, err = optInt(c, "minimum_stock"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.UnitPrice, err = optFloat(c, "unit_price"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.LastPurchaseQuantity, err = optInt(c, "last_purchase_quantity"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.AddedStock, err = optInt(c, "added_stock"); err != nil {
		apperr.Abort(c, err)
		return
	}

	acc, err := h.store.Update(id, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Accessory '" + acc.Name + "' updated successfully",
		"accessory": acc,
	})
}

func (h *AccessoryHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Accessory deleted successfully"})
}

func (h *AccessoryHandler) View(c *gin.Context) {
	accs, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessories": accs})
}

// RepairingAccessoryHandler: /repairing_accessory/* routes.
type RepairingAccessoryHandler struct {
	store *catalog.RepairingAccessoryStore
}

func NewRepairingAccessoryHandler(store *catalog.RepairingAccessoryStore) *RepairingAccessoryHandler {
	return &RepairingAccessoryHandler{store: store}
}

func (h *RepairingAccessoryHandler) Add(c *gin.Context) {
	currentStock, err := reqInt(c, "current_stock")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	minimumStock, err := reqInt(c, "minimum_stock")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	repairingCost, err := reqFloat(c, "repairing_cost")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	sellingCost, err := reqFloat(c, "selling_cost")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	acc, err := h.store.Create(catalog.RepairingAccessoryInput{
		Name:          c.Query("name"),
		Type:          c.Query("type"),
		Company:       c.Query("company"),
		Model:         c.Query("model"),
		CurrentStock:  currentStock,
		MinimumStock:  minimumStock,
		RepairingCost: repairingCost,
		SellingCost:   sellingCost,
	})
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":             "Repairing accessory '" + acc.Name + "' added successfully",
		"repairing_accessory": acc,
	})
}

func (h *RepairingAccessoryHandler) Update(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}

	patch := catalog.RepairingAccessoryPatch{
		Name:    optString(c, "name"),
		Type:    optString(c, "type"),
		Company: optString(c, "company"),
		Model:   optString(c, "model"),
	}
	if patch.MinimumStock, err = optInt(c, "minimum_stock"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.RepairingCost, err = optFloat(c, "repairing_cost"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.SellingCost, err = optFloat(c, "selling_cost"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.AddStock, err = optInt(c, "add_stock"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.LastPurchaseQuantity, err = optInt(c, "last_purchase_quantity"); err != nil {
		apperr.Abort(c, err)
		return
	}
	if patch.LastRepairingQuantity, err = optInt(c, "last_repairing_quantity"); err != nil {
		apperr.Abort(c, err)
		return
	}

	acc, err := h.store.Update(id, patch)
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":             "Repairing accessory '" + acc.Name + "' updated successfully",
		"repairing_accessory": acc,
	})
}

func (h *RepairingAccessoryHandler) Delete(c *gin.Context) {
	id, err := reqUint(c, "id")
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	if err := h.store.Delete(id); err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Repairing accessory deleted successfully"})
}

func (h *RepairingAccessoryHandler) View(c *gin.Context) {
	accs, err := h.store.List()
	if err != nil {
		apperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repairing_accessories": accs})
}
